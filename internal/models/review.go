package models

// Sentiment labels returned by the text analysis service.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
	SentimentMixed    = "MIXED"
)

// ReviewRequest is the payload accepted by the review workflow.
type ReviewRequest struct {
	BookID   string `json:"bookId" validate:"required,min=1"`
	Reviewer string `json:"reviewer" validate:"required,min=1"`
	Message  string `json:"message" validate:"required,min=1"`
}

// SentimentRequest is the input of the sentiment classifier.
type SentimentRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// SentimentScore holds the per-label confidence scores.
type SentimentScore struct {
	Positive float32 `json:"Positive"`
	Negative float32 `json:"Negative"`
	Neutral  float32 `json:"Neutral"`
	Mixed    float32 `json:"Mixed"`
}

// SentimentResult is the classifier output.
type SentimentResult struct {
	Sentiment      string         `json:"Sentiment"`
	SentimentScore SentimentScore `json:"SentimentScore"`
}

// IsNegative reports whether the review was classified as negative.
func (r *SentimentResult) IsNegative() bool {
	return r != nil && r.Sentiment == SentimentNegative
}

// SentimentInvocation is how a workflow step hands a lambda result to the next step.
type SentimentInvocation struct {
	Payload SentimentResult `json:"Payload"`
}

// NotificationRequest is the input of the negative review notifier.
type NotificationRequest struct {
	SentimentResult SentimentInvocation `json:"sentimentResult"`
	Reviewer        string              `json:"reviewer" validate:"required"`
	Message         string              `json:"message" validate:"required"`
}

// NotificationResult is returned by the notifier. MessageID and ResponseMetadata carry the
// mail service response when mail was sent; StatusCode and Body form the acknowledgment
// returned when mail is not configured.
type NotificationResult struct {
	MessageID        string            `json:"MessageId,omitempty"`
	ResponseMetadata *ResponseMetadata `json:"ResponseMetadata,omitempty"`
	StatusCode       int               `json:"statusCode,omitempty"`
	Body             string            `json:"body,omitempty"`
	Sent             bool              `json:"sent"`
}

// ResponseMetadata describes the mail service call that delivered a notification.
type ResponseMetadata struct {
	RequestID      string `json:"RequestId,omitempty"`
	HTTPStatusCode int    `json:"HTTPStatusCode"`
}

// ReviewResult summarizes one run of the review workflow.
type ReviewResult struct {
	RefID     string `json:"refId"`
	BookID    string `json:"bookId"`
	Sentiment string `json:"sentiment"`
	Notified  bool   `json:"notified"`
}
