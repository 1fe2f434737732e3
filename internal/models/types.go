package models

import (
	"time"
)

// Attribute names of the library table.
const (
	AttributePK            = "PK"
	AttributeSK            = "SK"
	AttributeEntityType    = "EntityType"
	AttributeTitle         = "Title"
	AttributePublishedDate = "PublishedDate"
	AttributeAuthor        = "Author"
)

// APIError represents an API error response
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ValidationError represents a validation error with field-specific details
type ValidationError struct {
	Field   string      `json:"field"`
	Tag     string      `json:"tag,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return ve.Message
}

// HealthCheck represents system health status
type HealthCheck struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
