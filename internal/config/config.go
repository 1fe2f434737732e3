package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names accepted in LAMBDA_ENV
const (
	EnvironmentProd  = "prod"
	EnvironmentLocal = "local"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	DynamoDB    DynamoDBConfig
	Email       EmailConfig
	JWT         JWTConfig
	Log         LogConfig
	RateLimit   RateLimitConfig
}

// DynamoDBConfig holds record store configuration
type DynamoDBConfig struct {
	Region       string
	Endpoint     string
	TableName    string
	PaginateScan bool
}

// EmailConfig holds negative review notifier addresses
type EmailConfig struct {
	From string
	To   string
}

// JWTConfig holds JWT configuration for the local server
type JWTConfig struct {
	Secret      string
	Issuer      string
	ExpiryHours int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// RateLimitConfig holds request rate limiting for the local server
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("LAMBDA_ENV", EnvironmentProd)
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("DYNAMODB_REGION", "ap-southeast-1")
	viper.SetDefault("DYNAMODB_TABLE_NAME", "BookLibrary")
	viper.SetDefault("SCAN_PAGINATE", false)
	viper.SetDefault("JWT_ISSUER", "book-library-api")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	config := &Config{
		Environment: strings.ToLower(viper.GetString("LAMBDA_ENV")),
		Port:        viper.GetString("PORT"),
		DynamoDB: DynamoDBConfig{
			Region:       viper.GetString("DYNAMODB_REGION"),
			Endpoint:     viper.GetString("DYNAMODB_ENDPOINT"),
			TableName:    viper.GetString("DYNAMODB_TABLE_NAME"),
			PaginateScan: viper.GetBool("SCAN_PAGINATE"),
		},
		Email: EmailConfig{
			From: viper.GetString("EMAIL_FROM"),
			To:   viper.GetString("EMAIL_TO"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			Issuer:      viper.GetString("JWT_ISSUER"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// IsLocal reports whether the record store is reached through an explicit endpoint
func (c *Config) IsLocal() bool {
	return c.Environment != EnvironmentProd
}

// Validate rejects configurations the record store client cannot be built from
func (c *Config) Validate() error {
	var errs []error

	if c.DynamoDB.TableName == "" {
		errs = append(errs, errors.New("DYNAMODB_TABLE_NAME must not be empty"))
	}
	if c.IsLocal() && c.DynamoDB.Endpoint == "" {
		errs = append(errs, fmt.Errorf("DYNAMODB_ENDPOINT is required when LAMBDA_ENV is %q", c.Environment))
	}
	if !c.IsLocal() && c.DynamoDB.Region == "" {
		errs = append(errs, errors.New("DYNAMODB_REGION is required in prod"))
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		errs = append(errs, errors.New("rate limit settings must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Warnings lists settings that are accepted but will degrade a feature
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Email.From == "" || c.Email.To == "" {
		warnings = append(warnings, "EMAIL_FROM or EMAIL_TO is not set; negative review notifications will not be sent")
	}
	if c.Email.From != "" && !strfmt.IsEmail(c.Email.From) {
		warnings = append(warnings, fmt.Sprintf("EMAIL_FROM %q does not look like an email address", c.Email.From))
	}
	if c.Email.To != "" && !strfmt.IsEmail(c.Email.To) {
		warnings = append(warnings, fmt.Sprintf("EMAIL_TO %q does not look like an email address", c.Email.To))
	}

	return warnings
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
