package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"book-library-api/internal/handlers"
	"book-library-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	bookHandler := handlers.NewBookHandler(container.BookService, container.Logger)

	resp, err := bookHandler.HandleGet(ctx, lambda.FromAPIGateway(event))
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return resp.ToAPIGateway(), nil
}

func main() {
	awslambda.StartWithOptions(handler, awslambda.WithEnableSIGTERM(func() {
		_ = lambda.GetConnectionManager().Cleanup()
	}))
}
