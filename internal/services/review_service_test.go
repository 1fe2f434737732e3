package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	comprehendtypes "github.com/aws/aws-sdk-go-v2/service/comprehend/types"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-library-api/internal/models"
	"book-library-api/internal/repositories"
	"book-library-api/internal/repositories/mock"
)

var refIDPattern = regexp.MustCompile(`^r#[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestRefIDService_GenerateRefID(t *testing.T) {
	service := NewRefIDService(testLogger())

	first := service.GenerateRefID(context.Background())
	second := service.GenerateRefID(context.Background())

	assert.Regexp(t, refIDPattern, first)
	assert.Regexp(t, refIDPattern, second)
	assert.NotEqual(t, first, second)
}

func sentimentOutput(label comprehendtypes.SentimentType) *comprehend.DetectSentimentOutput {
	return &comprehend.DetectSentimentOutput{
		Sentiment: label,
		SentimentScore: &comprehendtypes.SentimentScore{
			Positive: aws.Float32(0.1),
			Negative: aws.Float32(0.7),
			Neutral:  aws.Float32(0.15),
			Mixed:    aws.Float32(0.05),
		},
	}
}

func TestSentimentService_DetectSentiment(t *testing.T) {
	ctx := context.Background()

	t.Run("Classified", func(t *testing.T) {
		client := &fakeComprehend{t: t, detect: func(in *comprehend.DetectSentimentInput) (*comprehend.DetectSentimentOutput, error) {
			return sentimentOutput(comprehendtypes.SentimentTypeNegative), nil
		}}
		service := NewSentimentService(client, testLogger())

		result, err := service.DetectSentiment(ctx, &models.SentimentRequest{Message: "boring"})

		require.NoError(t, err)
		assert.Equal(t, models.SentimentNegative, result.Sentiment)
		assert.InDelta(t, 0.7, result.SentimentScore.Negative, 0.0001)
		assert.InDelta(t, 0.05, result.SentimentScore.Mixed, 0.0001)

		require.Len(t, client.calls, 1)
		assert.Equal(t, "boring", aws.ToString(client.calls[0].Text))
		assert.Equal(t, comprehendtypes.LanguageCodeEn, client.calls[0].LanguageCode)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		client := &fakeComprehend{t: t}
		service := NewSentimentService(client, testLogger())

		_, err := service.DetectSentiment(ctx, &models.SentimentRequest{})

		assert.True(t, IsInvalidInput(err))
		assert.Empty(t, client.calls)
	})

	t.Run("ServiceFailure", func(t *testing.T) {
		cause := errors.New("text size limit exceeded")
		client := &fakeComprehend{t: t, detect: func(in *comprehend.DetectSentimentInput) (*comprehend.DetectSentimentOutput, error) {
			return nil, cause
		}}
		service := NewSentimentService(client, testLogger())

		result, err := service.DetectSentiment(ctx, &models.SentimentRequest{Message: "x"})

		assert.Nil(t, result)
		assert.True(t, IsDependency(err))
		assert.ErrorIs(t, err, cause)
	})
}

func negativeNotification() *models.NotificationRequest {
	return &models.NotificationRequest{
		SentimentResult: models.SentimentInvocation{Payload: models.SentimentResult{Sentiment: models.SentimentNegative}},
		Reviewer:        "bob",
		Message:         "boring",
	}
}

func TestFormatNotification(t *testing.T) {
	assert.Equal(t,
		`Sentiment analysis: NEGATIVE review from user(bob): "boring".`,
		FormatNotification(negativeNotification()))
}

func TestNotificationService_NotifyNegativeReview(t *testing.T) {
	ctx := context.Background()

	t.Run("Sent", func(t *testing.T) {
		client := &fakeSES{t: t, send: func(in *sesv2.SendEmailInput) (*sesv2.SendEmailOutput, error) {
			return &sesv2.SendEmailOutput{MessageId: aws.String("m-1")}, nil
		}}
		service := NewNotificationService(client, &EmailConfig{From: "from@example.com", To: "to@example.com"}, testLogger())

		result, err := service.NotifyNegativeReview(ctx, negativeNotification())

		require.NoError(t, err)
		assert.True(t, result.Sent)
		assert.Equal(t, "m-1", result.MessageID)
		assert.Equal(t, &models.ResponseMetadata{HTTPStatusCode: http.StatusOK}, result.ResponseMetadata)

		require.Len(t, client.calls, 1)
		in := client.calls[0]
		assert.Equal(t, "from@example.com", aws.ToString(in.FromEmailAddress))
		assert.Equal(t, []string{"to@example.com"}, in.Destination.ToAddresses)
		assert.Equal(t, "Review analysis result", aws.ToString(in.Content.Simple.Subject.Data))
		assert.Equal(t, "UTF-8", aws.ToString(in.Content.Simple.Body.Text.Charset))
		assert.Equal(t, `Sentiment analysis: NEGATIVE review from user(bob): "boring".`, aws.ToString(in.Content.Simple.Body.Text.Data))
	})

	t.Run("ResponseMetadata", func(t *testing.T) {
		client := &fakeSES{t: t, send: func(in *sesv2.SendEmailInput) (*sesv2.SendEmailOutput, error) {
			out := &sesv2.SendEmailOutput{MessageId: aws.String("m-2")}
			awsmiddleware.SetRequestIDMetadata(&out.ResultMetadata, "req-42")
			return out, nil
		}}
		service := NewNotificationService(client, &EmailConfig{From: "from@example.com", To: "to@example.com"}, testLogger())

		result, err := service.NotifyNegativeReview(ctx, negativeNotification())

		require.NoError(t, err)
		require.NotNil(t, result.ResponseMetadata)
		assert.Equal(t, "req-42", result.ResponseMetadata.RequestID)
		assert.Equal(t, http.StatusOK, result.ResponseMetadata.HTTPStatusCode)
	})

	t.Run("MissingConfiguration", func(t *testing.T) {
		for _, cfg := range []*EmailConfig{nil, {From: "from@example.com"}, {To: "to@example.com"}} {
			client := &fakeSES{t: t}
			service := NewNotificationService(client, cfg, testLogger())

			result, err := service.NotifyNegativeReview(ctx, negativeNotification())

			require.NoError(t, err)
			assert.False(t, result.Sent)
			assert.Equal(t, 200, result.StatusCode)
			assert.Equal(t, MissingEmailConfigBody, result.Body)
			assert.Empty(t, client.calls)
		}
	})

	t.Run("SendFailure", func(t *testing.T) {
		client := &fakeSES{t: t, send: func(in *sesv2.SendEmailInput) (*sesv2.SendEmailOutput, error) {
			return nil, errors.New("address not verified")
		}}
		service := NewNotificationService(client, &EmailConfig{From: "a@example.com", To: "b@example.com"}, testLogger())

		_, err := service.NotifyNegativeReview(ctx, negativeNotification())

		assert.True(t, IsDependency(err))
	})

	t.Run("MissingReviewer", func(t *testing.T) {
		service := NewNotificationService(&fakeSES{t: t}, &EmailConfig{From: "a@example.com", To: "b@example.com"}, testLogger())

		_, err := service.NotifyNegativeReview(ctx, &models.NotificationRequest{Message: "boring"})

		assert.True(t, IsInvalidInput(err))
	})
}

func newReviewFixture(t *testing.T, label comprehendtypes.SentimentType) (*mock.RecordRepository, *fakeSES, ReviewService) {
	repo := mock.NewRecordRepository(nil, models.NewBookRecord("b1", "Dune", "1965-08-01", "Frank Herbert"))
	comprehendClient := &fakeComprehend{t: t, detect: func(in *comprehend.DetectSentimentInput) (*comprehend.DetectSentimentOutput, error) {
		return sentimentOutput(label), nil
	}}
	sesClient := &fakeSES{t: t, send: func(in *sesv2.SendEmailInput) (*sesv2.SendEmailOutput, error) {
		return &sesv2.SendEmailOutput{MessageId: aws.String("m-1")}, nil
	}}
	logger := testLogger()

	service := NewReviewService(
		repo,
		NewSentimentService(comprehendClient, logger),
		NewRefIDService(logger),
		NewNotificationService(sesClient, &EmailConfig{From: "a@example.com", To: "b@example.com"}, logger),
		logger,
	)
	return repo, sesClient, service
}

func TestReviewService_SubmitReview(t *testing.T) {
	ctx := context.Background()

	t.Run("PositiveReview", func(t *testing.T) {
		repo, ses, service := newReviewFixture(t, comprehendtypes.SentimentTypePositive)

		result, err := service.SubmitReview(ctx, &models.ReviewRequest{BookID: "b1", Reviewer: "ann", Message: "loved it"})

		require.NoError(t, err)
		assert.Regexp(t, refIDPattern, result.RefID)
		assert.Equal(t, models.SentimentPositive, result.Sentiment)
		assert.False(t, result.Notified)
		assert.Empty(t, ses.calls)

		records := repo.Records()
		require.Len(t, records, 2)
		review := records[1]
		assert.Equal(t, "b1", review.PK)
		assert.Equal(t, result.RefID, review.SK)
		assert.Equal(t, models.EntityTypeReview, review.EntityType)
		assert.Equal(t, "ann", review.Reviewer)
		assert.Equal(t, "loved it", review.Message)
		assert.Equal(t, models.SentimentPositive, review.Sentiment)
	})

	t.Run("NegativeReview", func(t *testing.T) {
		repo, ses, service := newReviewFixture(t, comprehendtypes.SentimentTypeNegative)

		result, err := service.SubmitReview(ctx, &models.ReviewRequest{BookID: "b1", Reviewer: "bob", Message: "boring"})

		require.NoError(t, err)
		assert.True(t, result.Notified)
		require.Len(t, ses.calls, 1)
		assert.Equal(t, `Sentiment analysis: NEGATIVE review from user(bob): "boring".`,
			aws.ToString(ses.calls[0].Content.Simple.Body.Text.Data))
		assert.Equal(t, []string{"PutRecord"}, repo.Calls)
	})

	t.Run("InvalidRequest", func(t *testing.T) {
		repo, _, service := newReviewFixture(t, comprehendtypes.SentimentTypePositive)

		_, err := service.SubmitReview(ctx, &models.ReviewRequest{BookID: "b1"})

		assert.True(t, IsInvalidInput(err))
		assert.Empty(t, repo.Calls)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo, ses, service := newReviewFixture(t, comprehendtypes.SentimentTypeNegative)
		repo.Err = repositories.ConnectionError("put", "BookLibrary", errors.New("throttled"))

		_, err := service.SubmitReview(ctx, &models.ReviewRequest{BookID: "b1", Reviewer: "bob", Message: "boring"})

		assert.True(t, IsDependency(err))
		assert.Empty(t, ses.calls)
	})
}

func TestNewServiceContainer(t *testing.T) {
	t.Run("BookServicesOnly", func(t *testing.T) {
		repos := &repositories.RepositoryContainer{RecordRepo: mock.NewRecordRepository(nil)}

		container, err := NewServiceContainer(repos, nil)

		require.NoError(t, err)
		require.NoError(t, container.Validate())
		assert.Nil(t, container.ReviewService)
	})

	t.Run("WithAWSClients", func(t *testing.T) {
		repos := &repositories.RepositoryContainer{RecordRepo: mock.NewRecordRepository(nil)}

		container, err := NewServiceContainer(repos, &ServiceConfig{
			Comprehend: &fakeComprehend{t: t},
			SES:        &fakeSES{t: t},
			Logger:     testLogger(),
		})

		require.NoError(t, err)
		assert.NotNil(t, container.SentimentService)
		assert.NotNil(t, container.NotificationService)
		assert.NotNil(t, container.ReviewService)
	})

	t.Run("NilRepositories", func(t *testing.T) {
		_, err := NewServiceContainer(nil, nil)
		assert.Error(t, err)
	})
}
