package dynamodb

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"book-library-api/internal/repositories"
)

// NewRepositoryContainer wires all DynamoDB backed repositories around one client.
func NewRepositoryContainer(client DynamoDBAPI, cfg *repositories.Config, logger *logrus.Logger) (*repositories.RepositoryContainer, error) {
	if client == nil {
		return nil, fmt.Errorf("dynamodb client cannot be nil")
	}
	if cfg == nil {
		cfg = repositories.DefaultConfig()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &repositories.RepositoryContainer{
		RecordRepo: NewRecordRepository(client, cfg, logger),
	}, nil
}

// Open builds the DynamoDB client from configuration and wires the repositories.
func Open(ctx context.Context, cfg *repositories.Config, logger *logrus.Logger) (*repositories.RepositoryContainer, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	client, err := NewClient(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return NewRepositoryContainer(client, cfg, logger)
}
