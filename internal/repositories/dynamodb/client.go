package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"

	"book-library-api/internal/repositories"
)

// DynamoDBAPI defines the DynamoDB operations required by the record repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
}

var _ DynamoDBAPI = (*sdk.Client)(nil)

// localRegion is used to sign requests against DynamoDB Local, which ignores it.
const localRegion = "us-east-1"

// NewClient builds a DynamoDB client. The endpoint is chosen once here: prod mode addresses
// the configured region, any other mode talks to the explicit endpoint URL.
func NewClient(ctx context.Context, cfg *repositories.Config, logger *logrus.Logger) (*sdk.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid record store config: %w", err)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if !cfg.IsLocal() {
		awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}

		logger.WithFields(logrus.Fields{
			"region": cfg.Region,
			"table":  cfg.TableName,
		}).Info("Using dynamodb in region")

		return sdk.NewFromConfig(awsCfg), nil
	}

	region := cfg.Region
	if region == "" {
		region = localRegion
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": cfg.Endpoint,
		"table":    cfg.TableName,
	}).Info("Using dynamodb local")

	return sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
	}), nil
}
