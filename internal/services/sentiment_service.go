package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"
	"github.com/sirupsen/logrus"

	"book-library-api/internal/models"
)

// DetectSentimentAPI is the subset of the Comprehend client used by the classifier
type DetectSentimentAPI interface {
	DetectSentiment(ctx context.Context, params *comprehend.DetectSentimentInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectSentimentOutput, error)
}

// sentimentService implements the SentimentService interface
type sentimentService struct {
	client   DetectSentimentAPI
	language types.LanguageCode
	logger   *logrus.Logger
}

// NewSentimentService creates a new sentiment classifier backed by Comprehend
func NewSentimentService(client DetectSentimentAPI, logger *logrus.Logger) SentimentService {
	return &sentimentService{
		client:   client,
		language: types.LanguageCodeEn,
		logger:   logger,
	}
}

// DetectSentiment classifies the review message
func (s *sentimentService) DetectSentiment(ctx context.Context, req *models.SentimentRequest) (*models.SentimentResult, error) {
	if req == nil {
		req = &models.SentimentRequest{}
	}
	if err := models.ValidateStruct(req); err != nil {
		return nil, invalidInput("detect sentiment", err)
	}

	s.logger.WithField("message_length", len(req.Message)).Info("Received sentiment request")

	out, err := s.client.DetectSentiment(ctx, &comprehend.DetectSentimentInput{
		Text:         aws.String(req.Message),
		LanguageCode: s.language,
	})
	if err != nil {
		s.logger.WithError(err).Error("Sentiment detection failed")
		return nil, dependency("detect sentiment", err)
	}

	result := &models.SentimentResult{Sentiment: string(out.Sentiment)}
	if score := out.SentimentScore; score != nil {
		result.SentimentScore = models.SentimentScore{
			Positive: aws.ToFloat32(score.Positive),
			Negative: aws.ToFloat32(score.Negative),
			Neutral:  aws.ToFloat32(score.Neutral),
			Mixed:    aws.ToFloat32(score.Mixed),
		}
	}

	s.logger.WithField("sentiment", result.Sentiment).Info("Retrieved sentiment")

	return result, nil
}
