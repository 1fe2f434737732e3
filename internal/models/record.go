package models

// Entity type discriminators stored in the EntityType attribute.
const (
	EntityTypeBook   = "book"
	EntityTypeReview = "review"
)

// StoredRecord is a generic PK/SK keyed item of the library table. Book records use the
// same value for PK and SK; review records use the book id as PK and the review ref id as SK.
type StoredRecord struct {
	PK            string `json:"PK" yaml:"PK" dynamodbav:"PK"`
	SK            string `json:"SK" yaml:"SK" dynamodbav:"SK"`
	EntityType    string `json:"EntityType" yaml:"EntityType" dynamodbav:"EntityType"`
	Title         string `json:"Title,omitempty" yaml:"Title,omitempty" dynamodbav:"Title,omitempty"`
	PublishedDate string `json:"PublishedDate,omitempty" yaml:"PublishedDate,omitempty" dynamodbav:"PublishedDate,omitempty"`
	Author        string `json:"Author,omitempty" yaml:"Author,omitempty" dynamodbav:"Author,omitempty"`
	Reviewer      string `json:"Reviewer,omitempty" yaml:"Reviewer,omitempty" dynamodbav:"Reviewer,omitempty"`
	Message       string `json:"Message,omitempty" yaml:"Message,omitempty" dynamodbav:"Message,omitempty"`
	Sentiment     string `json:"Sentiment,omitempty" yaml:"Sentiment,omitempty" dynamodbav:"Sentiment,omitempty"`
}

// IsBook reports whether the record carries a book.
func (r *StoredRecord) IsBook() bool {
	return r != nil && r.EntityType == EntityTypeBook
}

// NewBookRecord creates a book record keyed by bookID.
func NewBookRecord(bookID, title, publishedDate, author string) *StoredRecord {
	return &StoredRecord{
		PK:            bookID,
		SK:            bookID,
		EntityType:    EntityTypeBook,
		Title:         title,
		PublishedDate: publishedDate,
		Author:        author,
	}
}

// NewReviewRecord creates a review record stored under the reviewed book's partition.
func NewReviewRecord(bookID, refID, reviewer, message, sentiment string) *StoredRecord {
	return &StoredRecord{
		PK:         bookID,
		SK:         refID,
		EntityType: EntityTypeReview,
		Reviewer:   reviewer,
		Message:    message,
		Sentiment:  sentiment,
	}
}
