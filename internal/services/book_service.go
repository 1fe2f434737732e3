package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"book-library-api/internal/models"
	"book-library-api/internal/repositories"
)

// bookService implements the BookService interface
type bookService struct {
	recordRepo repositories.RecordRepository
	logger     *logrus.Logger
}

// NewBookService creates a new book service instance
func NewBookService(recordRepo repositories.RecordRepository, logger *logrus.Logger) BookService {
	return &bookService{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// GetBook retrieves a single book by id
func (s *bookService) GetBook(ctx context.Context, bookID string) (*models.Book, error) {
	if err := models.ValidateRequired(bookID, "bookId"); err != nil {
		return nil, invalidInput("get book", err)
	}

	record, err := s.recordRepo.GetByKey(ctx, bookID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, err
		}
		if repositories.IsDecode(err) {
			return nil, dataIntegrity("get book", err)
		}
		return nil, dependency("get book", err)
	}

	book, err := ProjectOne(record)
	if err != nil {
		return nil, err
	}

	if book == nil {
		s.logger.WithFields(logrus.Fields{
			"book_id":     bookID,
			"entity_type": record.EntityType,
		}).Warn("Record at book key is not a book")
	}

	return book, nil
}

// ListBooks retrieves the full or filtered list of books
func (s *bookService) ListBooks(ctx context.Context, query models.BookQuery) (*models.BookCollection, error) {
	var (
		records []*models.StoredRecord
		err     error
	)

	switch {
	case query.IsFiltered():
		records, err = s.recordRepo.QueryByAttribute(ctx, query.FilterAttribute, query.FilterValue)
	case query.FilterAttribute != "" || query.FilterValue != "":
		return nil, invalidInput("list books", errors.New("filter and value must be provided together"))
	default:
		records, err = s.recordRepo.ScanAll(ctx)
	}

	if err != nil {
		if repositories.IsInvalidFilter(err) {
			return nil, invalidInput("list books", err)
		}
		if repositories.IsDecode(err) {
			return nil, dataIntegrity("list books", err)
		}
		return nil, dependency("list books", err)
	}

	collection, err := ProjectMany(records)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"records": len(records),
		"books":   len(collection.Books),
	}).Debug("Projected books")

	return collection, nil
}
