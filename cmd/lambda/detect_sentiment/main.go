package main

import (
	"context"
	"errors"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"book-library-api/internal/handlers"
	"book-library-api/internal/models"
	"book-library-api/pkg/lambda"
)

func handler(ctx context.Context, req models.SentimentRequest) (*models.SentimentResult, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return nil, err
	}
	if container.SentimentService == nil {
		return nil, errors.New("sentiment service is not configured")
	}

	reviewHandler := handlers.NewReviewHandler(handlers.ReviewHandlerConfig{
		SentimentService: container.SentimentService,
		Logger:           container.Logger,
	})

	return reviewHandler.HandleDetectSentiment(ctx, req)
}

func main() {
	awslambda.StartWithOptions(handler, awslambda.WithEnableSIGTERM(func() {
		_ = lambda.GetConnectionManager().Cleanup()
	}))
}
