package mock

import (
	"context"
	"sort"
	"sync"

	"book-library-api/internal/models"
	"book-library-api/internal/repositories"
)

// RecordRepository is an in-memory implementation of repositories.RecordRepository for testing.
// Records are returned in insertion order.
type RecordRepository struct {
	mu      sync.RWMutex
	records []*models.StoredRecord
	indexes map[string]bool

	// Err, when set, is returned by every operation
	Err error

	Calls []string
}

var _ repositories.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository creates a repository seeded with records. indexes lists the attributes
// that have a "<attribute>Index" secondary index.
func NewRecordRepository(indexes []string, records ...*models.StoredRecord) *RecordRepository {
	m := &RecordRepository{indexes: make(map[string]bool)}
	for _, attr := range indexes {
		m.indexes[attr] = true
	}
	for _, r := range records {
		copied := *r
		m.records = append(m.records, &copied)
	}
	return m
}

// GetByKey implements repositories.RecordRepository.GetByKey
func (m *RecordRepository) GetByKey(ctx context.Context, key string) (*models.StoredRecord, error) {
	m.record("GetByKey")
	if m.Err != nil {
		return nil, m.Err
	}
	if key == "" {
		return nil, repositories.NewRepositoryError("get", "mock", key, repositories.ErrInvalidKey)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.records {
		if r.PK == key && r.SK == key {
			copied := *r
			return &copied, nil
		}
	}
	return nil, repositories.NotFoundError("mock", key)
}

// QueryByAttribute implements repositories.RecordRepository.QueryByAttribute
func (m *RecordRepository) QueryByAttribute(ctx context.Context, attribute, value string) ([]*models.StoredRecord, error) {
	m.record("QueryByAttribute")
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.indexes[attribute] {
		return nil, repositories.InvalidFilterError(models.IndexNameFor(attribute), attribute, repositories.ErrInvalidFilter)
	}

	out := []*models.StoredRecord{}
	for _, r := range m.records {
		if attributeValue(r, attribute) == value {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

// ScanAll implements repositories.RecordRepository.ScanAll
func (m *RecordRepository) ScanAll(ctx context.Context) ([]*models.StoredRecord, error) {
	m.record("ScanAll")
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.StoredRecord, 0, len(m.records))
	for _, r := range m.records {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

// PutRecord implements repositories.RecordRepository.PutRecord
func (m *RecordRepository) PutRecord(ctx context.Context, record *models.StoredRecord) error {
	m.record("PutRecord")
	if m.Err != nil {
		return m.Err
	}
	if record == nil || record.PK == "" || record.SK == "" {
		return repositories.NewRepositoryError("put", "mock", "", repositories.ErrInvalidKey)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	for i, r := range m.records {
		if r.PK == record.PK && r.SK == record.SK {
			m.records[i] = &copied
			return nil
		}
	}
	m.records = append(m.records, &copied)
	return nil
}

// Records returns a copy of the stored records sorted by PK then SK.
func (m *RecordRepository) Records() []models.StoredRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.StoredRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PK != out[j].PK {
			return out[i].PK < out[j].PK
		}
		return out[i].SK < out[j].SK
	})
	return out
}

func (m *RecordRepository) record(call string) {
	m.mu.Lock()
	m.Calls = append(m.Calls, call)
	m.mu.Unlock()
}

func attributeValue(r *models.StoredRecord, attribute string) string {
	switch attribute {
	case models.AttributePK:
		return r.PK
	case models.AttributeSK:
		return r.SK
	case models.AttributeEntityType:
		return r.EntityType
	case models.AttributeTitle:
		return r.Title
	case models.AttributePublishedDate:
		return r.PublishedDate
	case models.AttributeAuthor:
		return r.Author
	case "Reviewer":
		return r.Reviewer
	case "Sentiment":
		return r.Sentiment
	default:
		return ""
	}
}
