package services

import (
	"context"

	"book-library-api/internal/models"
)

// BookService resolves books from the record store
type BookService interface {
	// GetBook returns the book stored under bookID. A nil book with a nil error means a
	// record exists at that key but is not a book. A missing record is reported with an
	// error satisfying repositories.IsNotFound.
	GetBook(ctx context.Context, bookID string) (*models.Book, error)

	// ListBooks returns all books, or the books matching a filter attribute/value pair.
	ListBooks(ctx context.Context, query models.BookQuery) (*models.BookCollection, error)
}

// RefIDService generates opaque review reference ids
type RefIDService interface {
	GenerateRefID(ctx context.Context) string
}

// SentimentService classifies the sentiment of review text
type SentimentService interface {
	DetectSentiment(ctx context.Context, req *models.SentimentRequest) (*models.SentimentResult, error)
}

// NotificationService emails a notification about a negative review
type NotificationService interface {
	NotifyNegativeReview(ctx context.Context, req *models.NotificationRequest) (*models.NotificationResult, error)
}

// ReviewService runs the review sentiment workflow
type ReviewService interface {
	SubmitReview(ctx context.Context, req *models.ReviewRequest) (*models.ReviewResult, error)
}
