package models

import (
	"errors"
	"testing"
)

// TestBookRecordCreation tests book record construction and kind detection
func TestBookRecordCreation(t *testing.T) {
	record := NewBookRecord("b1", "T", "2020", "A")
	if record.PK != "b1" || record.SK != "b1" {
		t.Errorf("Expected PK and SK 'b1', got '%s' and '%s'", record.PK, record.SK)
	}
	if !record.IsBook() {
		t.Error("Expected book record to report IsBook")
	}

	review := NewReviewRecord("b1", "r#123", "alice", "great", SentimentPositive)
	if review.IsBook() {
		t.Error("Expected review record not to report IsBook")
	}
	if review.SK != "r#123" {
		t.Errorf("Expected review SK 'r#123', got '%s'", review.SK)
	}

	var nilRecord *StoredRecord
	if nilRecord.IsBook() {
		t.Error("Expected nil record not to report IsBook")
	}
}

// TestBookQuery tests filter detection and index naming
func TestBookQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    BookQuery
		filtered bool
	}{
		{"empty", BookQuery{}, false},
		{"attribute only", BookQuery{FilterAttribute: "Author"}, false},
		{"value only", BookQuery{FilterValue: "X"}, false},
		{"both", BookQuery{FilterAttribute: "Author", FilterValue: "X"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.IsFiltered(); got != tt.filtered {
				t.Errorf("Expected IsFiltered=%v, got %v", tt.filtered, got)
			}
		})
	}

	if name := (BookQuery{FilterAttribute: "Author"}).IndexName(); name != "AuthorIndex" {
		t.Errorf("Expected index name 'AuthorIndex', got '%s'", name)
	}
}

// TestReviewRequestValidation tests tag validation of review payloads
func TestReviewRequestValidation(t *testing.T) {
	valid := &ReviewRequest{BookID: "b1", Reviewer: "alice", Message: "loved it"}
	if err := ValidateStruct(valid); err != nil {
		t.Errorf("Valid review failed validation: %v", err)
	}

	invalid := &ReviewRequest{BookID: "b1"}
	err := ValidateStruct(invalid)
	if err == nil {
		t.Fatal("Expected validation error for missing reviewer and message")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Errorf("Expected 2 validation errors, got %d", len(verrs))
	}
	if verrs[0].Field != "Reviewer" || verrs[0].Tag != "required" {
		t.Errorf("Unexpected first validation error: %+v", verrs[0])
	}
}

// TestSentimentResult tests negative sentiment detection
func TestSentimentResult(t *testing.T) {
	if !(&SentimentResult{Sentiment: SentimentNegative}).IsNegative() {
		t.Error("Expected NEGATIVE to be negative")
	}
	if (&SentimentResult{Sentiment: SentimentMixed}).IsNegative() {
		t.Error("Expected MIXED not to be negative")
	}
	var nilResult *SentimentResult
	if nilResult.IsNegative() {
		t.Error("Expected nil result not to be negative")
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("  ", "bookId"); err == nil {
		t.Error("Expected error for blank value")
	}
	if err := ValidateRequired("b1", "bookId"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
