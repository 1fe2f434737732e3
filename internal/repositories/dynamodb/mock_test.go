package dynamodb

import (
	"context"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type apiCall[T, U any] func(context.Context, *T, ...func(*sdk.Options)) (*U, error)

// mockClient is an expectation-based fake of DynamoDBAPI. Unset functions fail the test.
type mockClient struct {
	GetFunc   apiCall[sdk.GetItemInput, sdk.GetItemOutput]
	QueryFunc apiCall[sdk.QueryInput, sdk.QueryOutput]
	ScanFunc  apiCall[sdk.ScanInput, sdk.ScanOutput]
	PutFunc   apiCall[sdk.PutItemInput, sdk.PutItemOutput]
}

var _ DynamoDBAPI = (*mockClient)(nil)

func newMockClient(t *testing.T) *mockClient {
	return &mockClient{
		GetFunc:   unexpected[sdk.GetItemInput, sdk.GetItemOutput](t),
		QueryFunc: unexpected[sdk.QueryInput, sdk.QueryOutput](t),
		ScanFunc:  unexpected[sdk.ScanInput, sdk.ScanOutput](t),
		PutFunc:   unexpected[sdk.PutItemInput, sdk.PutItemOutput](t),
	}
}

func unexpected[T, U any](t *testing.T) apiCall[T, U] {
	return func(ctx context.Context, params *T, optFns ...func(*sdk.Options)) (*U, error) {
		t.Fatal("unexpected call")
		return nil, nil
	}
}

func (m *mockClient) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	return m.GetFunc(ctx, params, optFns...)
}

func (m *mockClient) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	return m.QueryFunc(ctx, params, optFns...)
}

func (m *mockClient) Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	return m.ScanFunc(ctx, params, optFns...)
}

func (m *mockClient) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	return m.PutFunc(ctx, params, optFns...)
}
