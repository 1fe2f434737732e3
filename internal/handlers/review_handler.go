package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"book-library-api/internal/models"
	"book-library-api/internal/services"
)

// ReviewHandler serves the review workflow and its individual steps
type ReviewHandler struct {
	reviewService       services.ReviewService
	refIDService        services.RefIDService
	sentimentService    services.SentimentService
	notificationService services.NotificationService
	logger              *logrus.Logger
}

// ReviewHandlerConfig holds the services behind the review handler
type ReviewHandlerConfig struct {
	ReviewService       services.ReviewService
	RefIDService        services.RefIDService
	SentimentService    services.SentimentService
	NotificationService services.NotificationService
	Logger              *logrus.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(cfg ReviewHandlerConfig) *ReviewHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ReviewHandler{
		reviewService:       cfg.ReviewService,
		refIDService:        cfg.RefIDService,
		sentimentService:    cfg.SentimentService,
		notificationService: cfg.NotificationService,
		logger:              logger,
	}
}

// HandleGenerateRefID is the reference id workflow step
func (h *ReviewHandler) HandleGenerateRefID(ctx context.Context) (string, error) {
	return h.refIDService.GenerateRefID(ctx), nil
}

// HandleDetectSentiment is the sentiment classification workflow step
func (h *ReviewHandler) HandleDetectSentiment(ctx context.Context, req models.SentimentRequest) (*models.SentimentResult, error) {
	return h.sentimentService.DetectSentiment(ctx, &req)
}

// HandleNotifyNegativeReview is the notification workflow step
func (h *ReviewHandler) HandleNotifyNegativeReview(ctx context.Context, req models.NotificationRequest) (*models.NotificationResult, error) {
	return h.notificationService.NotifyNegativeReview(ctx, &req)
}

// @Summary Submit a review
// @Description Classify a review, store it and notify on negative sentiment
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body models.ReviewRequest true "Review"
// @Success 201 {object} models.ReviewResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	if h.reviewService == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "Review workflow unavailable",
			Message: "sentiment or notification client is not configured",
		})
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	result, err := h.reviewService.SubmitReview(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Message: err.Error(),
			})
			return
		}
		h.logger.WithError(err).WithField("book_id", req.BookID).Error("Review workflow failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, result)
}
