package repositories

import (
	"context"

	"book-library-api/internal/models"
)

// RecordRepository is a typed, read-mostly view of the library table.
type RecordRepository interface {
	// GetByKey looks up the record whose PK and SK both equal key.
	// Returns an error satisfying IsNotFound when no item exists.
	GetByKey(ctx context.Context, key string) (*models.StoredRecord, error)

	// QueryByAttribute queries the "<attribute>Index" secondary index for records whose
	// attribute equals value. Returns an error satisfying IsInvalidFilter when the index is missing.
	QueryByAttribute(ctx context.Context, attribute, value string) ([]*models.StoredRecord, error)

	// ScanAll returns every record in the table.
	ScanAll(ctx context.Context) ([]*models.StoredRecord, error)

	// PutRecord writes a record, replacing any item with the same keys.
	PutRecord(ctx context.Context, record *models.StoredRecord) error
}

// RepositoryContainer holds all repository instances
type RepositoryContainer struct {
	RecordRepo RecordRepository
}
