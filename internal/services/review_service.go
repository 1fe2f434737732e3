package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"book-library-api/internal/models"
	"book-library-api/internal/repositories"
)

// reviewService implements the ReviewService interface by chaining the classifier,
// the ref id generator, the record store and the notifier.
type reviewService struct {
	recordRepo   repositories.RecordRepository
	sentiment    SentimentService
	refIDs       RefIDService
	notification NotificationService
	logger       *logrus.Logger
}

// NewReviewService creates a new review workflow
func NewReviewService(
	recordRepo repositories.RecordRepository,
	sentiment SentimentService,
	refIDs RefIDService,
	notification NotificationService,
	logger *logrus.Logger,
) ReviewService {
	return &reviewService{
		recordRepo:   recordRepo,
		sentiment:    sentiment,
		refIDs:       refIDs,
		notification: notification,
		logger:       logger,
	}
}

// SubmitReview classifies, stores and, for negative reviews, reports a review.
// The first failing step aborts the run.
func (s *reviewService) SubmitReview(ctx context.Context, req *models.ReviewRequest) (*models.ReviewResult, error) {
	if req == nil {
		req = &models.ReviewRequest{}
	}
	if err := models.ValidateStruct(req); err != nil {
		return nil, invalidInput("submit review", err)
	}

	log := s.logger.WithFields(logrus.Fields{
		"book_id":  req.BookID,
		"reviewer": req.Reviewer,
	})

	sentiment, err := s.sentiment.DetectSentiment(ctx, &models.SentimentRequest{Message: req.Message})
	if err != nil {
		return nil, err
	}

	refID := s.refIDs.GenerateRefID(ctx)

	record := models.NewReviewRecord(req.BookID, refID, req.Reviewer, req.Message, sentiment.Sentiment)
	if err := s.recordRepo.PutRecord(ctx, record); err != nil {
		log.WithError(err).Error("Failed to store review")
		return nil, dependency("store review", err)
	}

	result := &models.ReviewResult{
		RefID:     refID,
		BookID:    req.BookID,
		Sentiment: sentiment.Sentiment,
	}

	if !sentiment.IsNegative() {
		log.WithField("sentiment", sentiment.Sentiment).Info("Review stored")
		return result, nil
	}

	notified, err := s.notification.NotifyNegativeReview(ctx, &models.NotificationRequest{
		SentimentResult: models.SentimentInvocation{Payload: *sentiment},
		Reviewer:        req.Reviewer,
		Message:         req.Message,
	})
	if err != nil {
		return nil, err
	}

	result.Notified = notified.Sent
	log.WithFields(logrus.Fields{
		"sentiment": sentiment.Sentiment,
		"notified":  result.Notified,
	}).Info("Negative review stored")

	return result, nil
}
