package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"book-library-api/internal/models"
	"book-library-api/internal/repositories"
	"book-library-api/internal/services"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Seeder loads library records from seed files into the record store
type Seeder struct {
	repo   repositories.RecordRepository
	logger *logrus.Logger
	dryRun bool
}

// Result counts what a seed run wrote
type Result struct {
	Books   int
	Reviews int
	Other   int
	DryRun  bool
}

// Total is the number of records written (or that would be written on a dry run)
func (r *Result) Total() int {
	return r.Books + r.Reviews + r.Other
}

// NewSeeder creates a new seeder. repo may be nil for a dry run.
func NewSeeder(repo repositories.RecordRepository, logger *logrus.Logger, dryRun bool) *Seeder {
	return &Seeder{
		repo:   repo,
		logger: logger,
		dryRun: dryRun,
	}
}

// LoadFile reads a YAML or JSON seed file holding a list of records
func LoadFile(path string) ([]*models.StoredRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return Parse(data, format)
}

// Parse decodes seed data. format is "json", "yaml" or "yml".
func Parse(data []byte, format string) ([]*models.StoredRecord, error) {
	var records []*models.StoredRecord

	switch format {
	case "json":
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse JSON seed data: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse YAML seed data: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed format %q", format)
	}

	return records, nil
}

// Validate checks that every record has a key and that book records project cleanly
func Validate(records []*models.StoredRecord) error {
	for i, record := range records {
		if record == nil {
			return fmt.Errorf("record %d is empty", i)
		}
		if record.PK == "" || record.SK == "" || record.EntityType == "" {
			return fmt.Errorf("record %d: PK, SK and EntityType are required", i)
		}
		if record.IsBook() && record.PK != record.SK {
			return fmt.Errorf("record %d: book %q must use the same PK and SK", i, record.PK)
		}
		if _, err := services.ProjectOne(record); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// Seed validates and writes records. Nothing is written if any record is invalid.
func (s *Seeder) Seed(ctx context.Context, records []*models.StoredRecord) (*Result, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}
	if !s.dryRun && s.repo == nil {
		return nil, fmt.Errorf("seeder has no repository")
	}

	result := &Result{DryRun: s.dryRun}
	for _, record := range records {
		log := s.logger.WithFields(logrus.Fields{
			"pk":          record.PK,
			"sk":          record.SK,
			"entity_type": record.EntityType,
		})

		if s.dryRun {
			log.Debug("Would write record")
		} else {
			if err := s.repo.PutRecord(ctx, record); err != nil {
				return result, fmt.Errorf("failed to write record %s/%s: %w", record.PK, record.SK, err)
			}
			log.Debug("Wrote record")
		}

		switch record.EntityType {
		case models.EntityTypeBook:
			result.Books++
		case models.EntityTypeReview:
			result.Reviews++
		default:
			result.Other++
		}
	}

	s.logger.WithFields(logrus.Fields{
		"books":   result.Books,
		"reviews": result.Reviews,
		"other":   result.Other,
		"dry_run": result.DryRun,
	}).Info("Seeding completed")

	return result, nil
}
