package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LAMBDA_ENV", "")
	t.Setenv("DYNAMODB_ENDPOINT", "")
	t.Setenv("DYNAMODB_TABLE_NAME", "")
	t.Setenv("DYNAMODB_REGION", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Environment != EnvironmentProd {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvironmentProd)
	}
	if cfg.DynamoDB.Region != "ap-southeast-1" {
		t.Errorf("DynamoDB.Region = %q, want ap-southeast-1", cfg.DynamoDB.Region)
	}
	if cfg.DynamoDB.TableName != "BookLibrary" {
		t.Errorf("DynamoDB.TableName = %q, want BookLibrary", cfg.DynamoDB.TableName)
	}
	if cfg.DynamoDB.PaginateScan {
		t.Error("DynamoDB.PaginateScan should default to false")
	}
	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want 8081", cfg.Port)
	}
	if cfg.IsLocal() {
		t.Error("prod config should not be local")
	}
}

func TestLoad_Local(t *testing.T) {
	t.Setenv("LAMBDA_ENV", "local")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("SCAN_PAGINATE", "true")
	t.Setenv("EMAIL_FROM", "from@example.com")
	t.Setenv("EMAIL_TO", "to@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.IsLocal() {
		t.Error("expected local config")
	}
	if cfg.DynamoDB.Endpoint != "http://localhost:8000" {
		t.Errorf("DynamoDB.Endpoint = %q", cfg.DynamoDB.Endpoint)
	}
	if !cfg.DynamoDB.PaginateScan {
		t.Error("DynamoDB.PaginateScan should be true")
	}
	if cfg.Email.From != "from@example.com" || cfg.Email.To != "to@example.com" {
		t.Errorf("Email = %+v", cfg.Email)
	}
}

func TestLoad_LocalWithoutEndpoint(t *testing.T) {
	t.Setenv("LAMBDA_ENV", "local")
	t.Setenv("DYNAMODB_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Error("expected error for local mode without endpoint")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "prod",
			config: Config{
				Environment: EnvironmentProd,
				DynamoDB:    DynamoDBConfig{Region: "ap-southeast-1", TableName: "BookLibrary"},
			},
		},
		{
			name: "local",
			config: Config{
				Environment: EnvironmentLocal,
				DynamoDB:    DynamoDBConfig{Endpoint: "http://localhost:8000", TableName: "BookLibrary"},
			},
		},
		{
			name: "missing table",
			config: Config{
				Environment: EnvironmentProd,
				DynamoDB:    DynamoDBConfig{Region: "ap-southeast-1"},
			},
			wantErr: true,
		},
		{
			name: "prod without region",
			config: Config{
				Environment: EnvironmentProd,
				DynamoDB:    DynamoDBConfig{TableName: "BookLibrary"},
			},
			wantErr: true,
		},
		{
			name: "negative rate limit",
			config: Config{
				Environment: EnvironmentProd,
				DynamoDB:    DynamoDBConfig{Region: "ap-southeast-1", TableName: "BookLibrary"},
				RateLimit:   RateLimitConfig{RequestsPerSecond: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Warnings(t *testing.T) {
	tests := []struct {
		name  string
		email EmailConfig
		want  int
	}{
		{name: "configured", email: EmailConfig{From: "a@example.com", To: "b@example.com"}, want: 0},
		{name: "missing", email: EmailConfig{}, want: 1},
		{name: "malformed", email: EmailConfig{From: "not-an-address", To: "b@example.com"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Email: tt.email}
			if got := cfg.Warnings(); len(got) != tt.want {
				t.Errorf("Warnings() = %v, want %d entries", got, tt.want)
			}
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	cfg := &Config{Log: LogConfig{Format: "text"}}

	AdaptConfigForServerless(cfg, &ServerlessConfig{IsLambda: false})
	if cfg.Log.Format != "text" {
		t.Errorf("server mode should keep format, got %q", cfg.Log.Format)
	}

	AdaptConfigForServerless(cfg, &ServerlessConfig{IsLambda: true})
	if cfg.Log.Format != "json" {
		t.Errorf("lambda mode should force json, got %q", cfg.Log.Format)
	}
}
