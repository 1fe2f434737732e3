package repositories

import (
	"errors"
	"time"
)

// Deployment modes of the record store client.
const (
	ModeProd  = "prod"
	ModeLocal = "local"
)

// Config represents record store configuration
type Config struct {
	// Mode selects the region-addressed endpoint (prod) or an explicit URL (anything else)
	Mode string `json:"mode" yaml:"mode"`

	// Region is the AWS region of the table in prod mode
	Region string `json:"region" yaml:"region"`

	// Endpoint is the local/test endpoint URL
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// TableName is the library table
	TableName string `json:"table_name" yaml:"table_name"`

	// PaginateScan makes ScanAll follow LastEvaluatedKey instead of returning the first page
	PaginateScan bool `json:"paginate_scan" yaml:"paginate_scan"`

	// Timeout bounds client construction
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultConfig returns a default record store configuration
func DefaultConfig() *Config {
	return &Config{
		Mode:      ModeProd,
		Region:    "ap-southeast-1",
		TableName: "BookLibrary",
		Timeout:   10 * time.Second,
	}
}

// IsLocal reports whether the explicit endpoint should be used.
func (c *Config) IsLocal() bool {
	return c.Mode != ModeProd
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.TableName == "" {
		return errors.New("table name is required")
	}

	if c.IsLocal() && c.Endpoint == "" {
		return errors.New("endpoint is required outside prod mode")
	}

	if !c.IsLocal() && c.Region == "" {
		return errors.New("region is required in prod mode")
	}

	return nil
}
