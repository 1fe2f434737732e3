package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RefIDPrefix prefixes every review reference id
const RefIDPrefix = "r#"

type refIDService struct {
	logger *logrus.Logger
}

// NewRefIDService creates a new reference id generator
func NewRefIDService(logger *logrus.Logger) RefIDService {
	return &refIDService{logger: logger}
}

// GenerateRefID returns "r#" followed by a random canonical UUID
func (s *refIDService) GenerateRefID(ctx context.Context) string {
	recordID := uuid.NewString()
	s.logger.WithField("uuid", recordID).Info("Generated UUID")
	return RefIDPrefix + recordID
}
