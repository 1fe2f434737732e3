package server

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/sirupsen/logrus"

	"book-library-api/internal/config"
	"book-library-api/internal/logging"
	"book-library-api/internal/repositories"
	ddbrepo "book-library-api/internal/repositories/dynamodb"
	"book-library-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config              *config.Config
	Logger              *logrus.Logger
	BookService         services.BookService
	RefIDService        services.RefIDService
	SentimentService    services.SentimentService
	NotificationService services.NotificationService
	ReviewService       services.ReviewService

	// Internal dependencies
	repos    *repositories.RepositoryContainer
	services *services.ServiceContainer
}

// Clients are the AWS service clients the container is built around
type Clients struct {
	DynamoDB   ddbrepo.DynamoDBAPI
	Comprehend services.DetectSentimentAPI
	SES        services.SendEmailAPI
}

// RepositoryConfig maps application configuration onto the record store configuration
func RepositoryConfig(cfg *config.Config) *repositories.Config {
	repoCfg := repositories.DefaultConfig()
	repoCfg.Mode = cfg.Environment
	repoCfg.Region = cfg.DynamoDB.Region
	repoCfg.Endpoint = cfg.DynamoDB.Endpoint
	repoCfg.TableName = cfg.DynamoDB.TableName
	repoCfg.PaginateScan = cfg.DynamoDB.PaginateScan
	return repoCfg
}

// NewContainer creates a new dependency injection container backed by real AWS clients
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := logging.New(cfg)

	dynamoClient, err := ddbrepo.NewClient(ctx, RepositoryConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
	}

	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(loadCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	if awsCfg.Region == "" {
		awsCfg.Region = cfg.DynamoDB.Region
	}

	return NewContainerWithClients(cfg, logger, Clients{
		DynamoDB:   dynamoClient,
		Comprehend: comprehend.NewFromConfig(awsCfg),
		SES:        sesv2.NewFromConfig(awsCfg),
	})
}

// NewContainerWithClients wires repositories and services around the given clients
func NewContainerWithClients(cfg *config.Config, logger *logrus.Logger, clients Clients) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = logging.New(cfg)
	}

	for _, warning := range cfg.Warnings() {
		logger.Warn(warning)
	}

	repos, err := ddbrepo.NewRepositoryContainer(clients.DynamoDB, RepositoryConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	serviceConfig := &services.ServiceConfig{
		Comprehend: clients.Comprehend,
		SES:        clients.SES,
		EmailConfig: &services.EmailConfig{
			From: cfg.Email.From,
			To:   cfg.Email.To,
		},
		Logger: logger,
	}

	serviceContainer, err := services.NewServiceContainer(repos, serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}
	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service container: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"table":       cfg.DynamoDB.TableName,
		"mode":        config.GetDeploymentMode(),
	}).Info("Container initialized")

	return &Container{
		Config:              cfg,
		Logger:              logger,
		BookService:         serviceContainer.BookService,
		RefIDService:        serviceContainer.RefIDService,
		SentimentService:    serviceContainer.SentimentService,
		NotificationService: serviceContainer.NotificationService,
		ReviewService:       serviceContainer.ReviewService,
		repos:               repos,
		services:            serviceContainer,
	}, nil
}

// Repositories exposes the record store repositories
func (c *Container) Repositories() *repositories.RepositoryContainer {
	return c.repos
}

// Close releases container resources. AWS SDK clients hold no connections that need closing.
func (c *Container) Close() error {
	c.services = nil
	c.repos = nil
	return nil
}
