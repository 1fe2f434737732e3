package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"book-library-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	BookService         BookService
	RefIDService        RefIDService
	SentimentService    SentimentService
	NotificationService NotificationService
	ReviewService       ReviewService
}

// ServiceConfig holds the external clients and configuration used by services
type ServiceConfig struct {
	Comprehend  DetectSentimentAPI
	SES         SendEmailAPI
	EmailConfig *EmailConfig
	Logger      *logrus.Logger
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(repos *repositories.RepositoryContainer, config *ServiceConfig) (*ServiceContainer, error) {
	if repos == nil || repos.RecordRepo == nil {
		return nil, fmt.Errorf("repository container cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{}
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	bookService := NewBookService(repos.RecordRepo, logger)
	refIDService := NewRefIDService(logger)

	container := &ServiceContainer{
		BookService:  bookService,
		RefIDService: refIDService,
	}

	// Review side workflow services need their AWS clients
	if config.Comprehend != nil {
		container.SentimentService = NewSentimentService(config.Comprehend, logger)
	}
	if config.SES != nil {
		container.NotificationService = NewNotificationService(config.SES, config.EmailConfig, logger)
	}
	if container.SentimentService != nil && container.NotificationService != nil {
		container.ReviewService = NewReviewService(
			repos.RecordRepo,
			container.SentimentService,
			refIDService,
			container.NotificationService,
			logger,
		)
	}

	return container, nil
}

// Validate validates that the book services are initialized
func (sc *ServiceContainer) Validate() error {
	if sc.BookService == nil {
		return fmt.Errorf("book service is nil")
	}
	if sc.RefIDService == nil {
		return fmt.Errorf("ref id service is nil")
	}
	return nil
}
