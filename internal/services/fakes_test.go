package services

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/sirupsen/logrus"
)

type fakeComprehend struct {
	t      *testing.T
	detect func(*comprehend.DetectSentimentInput) (*comprehend.DetectSentimentOutput, error)
	calls  []*comprehend.DetectSentimentInput
}

func (f *fakeComprehend) DetectSentiment(ctx context.Context, params *comprehend.DetectSentimentInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectSentimentOutput, error) {
	f.calls = append(f.calls, params)
	if f.detect == nil {
		f.t.Fatal("unexpected call to DetectSentiment")
	}
	return f.detect(params)
}

type fakeSES struct {
	t     *testing.T
	send  func(*sesv2.SendEmailInput) (*sesv2.SendEmailOutput, error)
	calls []*sesv2.SendEmailInput
}

func (f *fakeSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.calls = append(f.calls, params)
	if f.send == nil {
		f.t.Fatal("unexpected call to SendEmail")
	}
	return f.send(params)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
