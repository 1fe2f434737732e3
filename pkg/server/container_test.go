package server

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/sirupsen/logrus"

	"book-library-api/internal/config"
)

type nopDynamo struct{}

func (nopDynamo) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	return &sdk.GetItemOutput{}, nil
}

func (nopDynamo) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	return &sdk.QueryOutput{}, nil
}

func (nopDynamo) Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	return &sdk.ScanOutput{}, nil
}

func (nopDynamo) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	return &sdk.PutItemOutput{}, nil
}

type nopComprehend struct{}

func (nopComprehend) DetectSentiment(ctx context.Context, params *comprehend.DetectSentimentInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectSentimentOutput, error) {
	return &comprehend.DetectSentimentOutput{}, nil
}

type nopSES struct{}

func (nopSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	return &sesv2.SendEmailOutput{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: config.EnvironmentLocal,
		DynamoDB: config.DynamoDBConfig{
			Endpoint:     "http://localhost:8000",
			TableName:    "BookLibrary",
			PaginateScan: true,
		},
		Email: config.EmailConfig{From: "from@example.com", To: "to@example.com"},
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// TestNewContainerWithClients verifies that the container can be created successfully
func TestNewContainerWithClients(t *testing.T) {
	container, err := NewContainerWithClients(testConfig(), quietLogger(), Clients{
		DynamoDB:   nopDynamo{},
		Comprehend: nopComprehend{},
		SES:        nopSES{},
	})
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container.BookService == nil {
		t.Error("BookService is nil")
	}
	if container.RefIDService == nil {
		t.Error("RefIDService is nil")
	}
	if container.ReviewService == nil {
		t.Error("ReviewService is nil")
	}
	if container.Repositories() == nil || container.Repositories().RecordRepo == nil {
		t.Error("RecordRepo is nil")
	}

	// Test cleanup
	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

func TestNewContainerWithClients_MissingDynamoDB(t *testing.T) {
	if _, err := NewContainerWithClients(testConfig(), quietLogger(), Clients{}); err == nil {
		t.Error("expected error without a dynamodb client")
	}
}

func TestNewContainerWithClients_NilConfig(t *testing.T) {
	if _, err := NewContainerWithClients(nil, quietLogger(), Clients{DynamoDB: nopDynamo{}}); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestRepositoryConfig(t *testing.T) {
	repoCfg := RepositoryConfig(testConfig())

	if !repoCfg.IsLocal() {
		t.Error("expected local mode")
	}
	if repoCfg.Endpoint != "http://localhost:8000" {
		t.Errorf("Endpoint = %q", repoCfg.Endpoint)
	}
	if !repoCfg.PaginateScan {
		t.Error("PaginateScan should carry over")
	}
	if err := repoCfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
