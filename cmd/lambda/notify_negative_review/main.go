package main

import (
	"context"
	"errors"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"book-library-api/internal/handlers"
	"book-library-api/internal/models"
	"book-library-api/pkg/lambda"
)

func handler(ctx context.Context, req models.NotificationRequest) (*models.NotificationResult, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return nil, err
	}
	if container.NotificationService == nil {
		return nil, errors.New("notification service is not configured")
	}

	reviewHandler := handlers.NewReviewHandler(handlers.ReviewHandlerConfig{
		NotificationService: container.NotificationService,
		Logger:              container.Logger,
	})

	return reviewHandler.HandleNotifyNegativeReview(ctx, req)
}

func main() {
	awslambda.StartWithOptions(handler, awslambda.WithEnableSIGTERM(func() {
		_ = lambda.GetConnectionManager().Cleanup()
	}))
}
