package services

import (
	"fmt"
	"strings"

	"book-library-api/internal/models"
)

// MissingFieldsError lists the required book attributes absent from a record.
type MissingFieldsError struct {
	Key    string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("book record %q is missing required attributes: %s", e.Key, strings.Join(e.Fields, ", "))
}

// ProjectOne maps a stored record to its public Book form. Records of any other entity type
// yield a nil book and no error. A book record lacking a required attribute is a data
// integrity fault.
func ProjectOne(record *models.StoredRecord) (*models.Book, error) {
	if !record.IsBook() {
		return nil, nil
	}

	var missing []string
	if record.PK == "" {
		missing = append(missing, models.AttributePK)
	}
	if record.Title == "" {
		missing = append(missing, models.AttributeTitle)
	}
	if record.PublishedDate == "" {
		missing = append(missing, models.AttributePublishedDate)
	}
	if record.Author == "" {
		missing = append(missing, models.AttributeAuthor)
	}
	if len(missing) > 0 {
		return nil, dataIntegrity("project", &MissingFieldsError{Key: record.PK, Fields: missing})
	}

	return &models.Book{
		BookID:        record.PK,
		Title:         record.Title,
		PublishedDate: record.PublishedDate,
		Author:        record.Author,
	}, nil
}

// ProjectMany projects records in order, dropping anything that is not a book.
// The first integrity fault aborts the projection; partial lists are never returned.
func ProjectMany(records []*models.StoredRecord) (*models.BookCollection, error) {
	books := make([]models.Book, 0, len(records))
	for _, record := range records {
		book, err := ProjectOne(record)
		if err != nil {
			return nil, err
		}
		if book == nil {
			continue
		}
		books = append(books, *book)
	}
	return &models.BookCollection{Books: books}, nil
}
