package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	smithymiddleware "github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/sirupsen/logrus"

	"book-library-api/internal/models"
)

const (
	notificationSubject = "Review analysis result"
	notificationCharset = "UTF-8"

	// MissingEmailConfigBody acknowledges a notification that could not be sent for lack of addresses
	MissingEmailConfigBody = "Cannot sent notification email, there may be a missing configuration."
)

// SendEmailAPI is the subset of the SES v2 client used by the notifier
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailConfig holds notifier addresses
type EmailConfig struct {
	From string
	To   string
}

// IsConfigured reports whether both addresses are present
func (c *EmailConfig) IsConfigured() bool {
	return c != nil && c.From != "" && c.To != ""
}

// notificationService implements the NotificationService interface
type notificationService struct {
	client SendEmailAPI
	config *EmailConfig
	logger *logrus.Logger
}

// NewNotificationService creates a new negative review notifier backed by SES
func NewNotificationService(client SendEmailAPI, config *EmailConfig, logger *logrus.Logger) NotificationService {
	if config == nil {
		config = &EmailConfig{}
	}
	return &notificationService{
		client: client,
		config: config,
		logger: logger,
	}
}

// FormatNotification renders the notification body
func FormatNotification(req *models.NotificationRequest) string {
	return fmt.Sprintf("Sentiment analysis: %s review from user(%s): \"%s\".",
		req.SentimentResult.Payload.Sentiment, req.Reviewer, req.Message)
}

// NotifyNegativeReview emails the configured recipient. Missing addresses are logged and
// acknowledged without sending.
func (s *notificationService) NotifyNegativeReview(ctx context.Context, req *models.NotificationRequest) (*models.NotificationResult, error) {
	if req == nil {
		req = &models.NotificationRequest{}
	}
	if err := models.ValidateStruct(req); err != nil {
		return nil, invalidInput("notify negative review", err)
	}

	content := FormatNotification(req)

	if !s.config.IsConfigured() {
		s.logger.Error("No email address configured.")
		return &models.NotificationResult{
			StatusCode: http.StatusOK,
			Body:       MissingEmailConfigBody,
		}, nil
	}

	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.config.From),
		Destination: &types.Destination{
			ToAddresses: []string{s.config.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(notificationSubject),
					Charset: aws.String(notificationCharset),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(content),
						Charset: aws.String(notificationCharset),
					},
				},
			},
		},
	})
	if err != nil {
		s.logger.WithError(err).WithField("reviewer", req.Reviewer).Error("Failed to send notification email")
		return nil, dependency("notify negative review", err)
	}

	messageID := aws.ToString(out.MessageId)
	metadata := responseMetadata(out.ResultMetadata)
	s.logger.WithFields(logrus.Fields{
		"message_id": messageID,
		"request_id": metadata.RequestID,
	}).Info("Email sent")

	return &models.NotificationResult{
		MessageID:        messageID,
		ResponseMetadata: metadata,
		Sent:             true,
	}, nil
}

// responseMetadata extracts the request id and HTTP status of a completed SES call.
// A call that returned without error and without a raw response is reported as 200.
func responseMetadata(md smithymiddleware.Metadata) *models.ResponseMetadata {
	meta := &models.ResponseMetadata{HTTPStatusCode: http.StatusOK}
	if requestID, ok := awsmiddleware.GetRequestIDMetadata(md); ok {
		meta.RequestID = requestID
	}
	if raw, ok := awsmiddleware.GetRawResponse(md).(*smithyhttp.Response); ok && raw.Response != nil {
		meta.HTTPStatusCode = raw.StatusCode
	}
	return meta
}
