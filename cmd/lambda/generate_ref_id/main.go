package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"book-library-api/internal/handlers"
	"book-library-api/pkg/lambda"
)

// handler returns a bare string so the workflow can store it as the review sort key
func handler(ctx context.Context) (string, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return "", err
	}

	reviewHandler := handlers.NewReviewHandler(handlers.ReviewHandlerConfig{
		RefIDService: container.RefIDService,
		Logger:       container.Logger,
	})

	return reviewHandler.HandleGenerateRefID(ctx)
}

func main() {
	awslambda.StartWithOptions(handler, awslambda.WithEnableSIGTERM(func() {
		_ = lambda.GetConnectionManager().Cleanup()
	}))
}
