package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"

	"book-library-api/internal/models"
	"book-library-api/internal/repositories"
)

// recordRepository implements repositories.RecordRepository on a DynamoDB table
type recordRepository struct {
	client       DynamoDBAPI
	tableName    string
	paginateScan bool
	logger       *logrus.Logger
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(client DynamoDBAPI, cfg *repositories.Config, logger *logrus.Logger) repositories.RecordRepository {
	return &recordRepository{
		client:       client,
		tableName:    cfg.TableName,
		paginateScan: cfg.PaginateScan,
		logger:       logger,
	}
}

// GetByKey retrieves the record stored at PK = SK = key
func (r *recordRepository) GetByKey(ctx context.Context, key string) (*models.StoredRecord, error) {
	if key == "" {
		return nil, repositories.NewRepositoryError("get", r.tableName, key, repositories.ErrInvalidKey)
	}

	r.logger.WithField("key", key).Info("Query for book with partition key")

	out, err := r.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			models.AttributePK: &types.AttributeValueMemberS{Value: key},
			models.AttributeSK: &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, repositories.ConnectionError("get", r.tableName, err)
	}
	if len(out.Item) == 0 {
		return nil, repositories.NotFoundError(r.tableName, key)
	}

	record, err := decodeItem(out.Item)
	if err != nil {
		return nil, repositories.NewRepositoryError("get", r.tableName, key, fmt.Errorf("%w: %v", repositories.ErrDecode, err))
	}

	return record, nil
}

// QueryByAttribute queries the "<attribute>Index" secondary index
func (r *recordRepository) QueryByAttribute(ctx context.Context, attribute, value string) ([]*models.StoredRecord, error) {
	indexName := models.IndexNameFor(attribute)
	if attribute == "" {
		return nil, repositories.InvalidFilterError(indexName, attribute, errors.New("empty attribute name"))
	}

	keyCond := expression.Key(attribute).Equal(expression.Value(value))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, repositories.InvalidFilterError(indexName, attribute, err)
	}

	r.logger.WithFields(logrus.Fields{
		"index":  indexName,
		"filter": attribute,
		"value":  value,
	}).Info("Query for books by filter and value")

	input := &sdk.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(indexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var items []map[string]types.AttributeValue
	paginator := sdk.NewQueryPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if isMissingIndex(err) {
				return nil, repositories.InvalidFilterError(indexName, attribute, err)
			}
			return nil, repositories.ConnectionError("query", indexName, err)
		}
		items = append(items, page.Items...)
	}

	return r.decode("query", indexName, items)
}

// ScanAll returns every record in the table. Only the first page is read unless
// PaginateScan is configured.
func (r *recordRepository) ScanAll(ctx context.Context) ([]*models.StoredRecord, error) {
	r.logger.WithField("table", r.tableName).Info("Query for all books")

	input := &sdk.ScanInput{TableName: aws.String(r.tableName)}

	if !r.paginateScan {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, repositories.ConnectionError("scan", r.tableName, err)
		}
		if len(out.LastEvaluatedKey) > 0 {
			r.logger.WithField("table", r.tableName).Warn("Scan result truncated to first page")
		}
		return r.decode("scan", r.tableName, out.Items)
	}

	var items []map[string]types.AttributeValue
	paginator := sdk.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, repositories.ConnectionError("scan", r.tableName, err)
		}
		items = append(items, page.Items...)
	}

	return r.decode("scan", r.tableName, items)
}

// PutRecord writes a record to the table
func (r *recordRepository) PutRecord(ctx context.Context, record *models.StoredRecord) error {
	if record == nil || record.PK == "" || record.SK == "" {
		return repositories.NewRepositoryError("put", r.tableName, "", repositories.ErrInvalidKey)
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return repositories.NewRepositoryError("put", r.tableName, record.PK, fmt.Errorf("failed to marshal record: %w", err))
	}

	if _, err := r.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		return repositories.ConnectionError("put", r.tableName, err)
	}

	r.logger.WithFields(logrus.Fields{
		"pk":          record.PK,
		"sk":          record.SK,
		"entity_type": record.EntityType,
	}).Debug("Record stored")

	return nil
}

func (r *recordRepository) decode(op, entity string, items []map[string]types.AttributeValue) ([]*models.StoredRecord, error) {
	records := make([]*models.StoredRecord, 0, len(items))
	for _, item := range items {
		record, err := decodeItem(item)
		if err != nil {
			return nil, repositories.NewRepositoryError(op, entity, stringAttr(item, models.AttributePK), fmt.Errorf("%w: %v", repositories.ErrDecode, err))
		}
		records = append(records, record)
	}
	return records, nil
}

// decodeItem reads EntityType from the raw item before decoding the rest. Book items must
// decode cleanly. Other kinds share attribute names with books under their own types, so
// when they do not fit StoredRecord only their keys are kept.
func decodeItem(item map[string]types.AttributeValue) (*models.StoredRecord, error) {
	entityType := stringAttr(item, models.AttributeEntityType)

	record := &models.StoredRecord{}
	err := attributevalue.UnmarshalMap(item, record)
	if err == nil {
		return record, nil
	}
	if entityType == models.EntityTypeBook {
		return nil, err
	}

	return &models.StoredRecord{
		PK:         stringAttr(item, models.AttributePK),
		SK:         stringAttr(item, models.AttributeSK),
		EntityType: entityType,
	}, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

// isMissingIndex detects the errors DynamoDB returns for a query against an unknown index.
func isMissingIndex(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationException" {
		msg := strings.ToLower(apiErr.ErrorMessage())
		return strings.Contains(msg, "index") || strings.Contains(msg, "key schema")
	}

	return false
}
