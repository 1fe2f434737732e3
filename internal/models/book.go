package models

// Book is the public projection of a book record.
type Book struct {
	BookID        string `json:"bookId"`
	Title         string `json:"title"`
	PublishedDate string `json:"publishedDate"`
	Author        string `json:"author"`
}

// BookCollection wraps a list of books under the "books" key.
type BookCollection struct {
	Books []Book `json:"books"`
}

// BookQuery describes a list request. An empty query means all books.
type BookQuery struct {
	FilterAttribute string
	FilterValue     string
}

// IsFiltered reports whether the query targets a secondary index.
func (q BookQuery) IsFiltered() bool {
	return q.FilterAttribute != "" && q.FilterValue != ""
}

// IndexName returns the secondary index name used for the filter attribute.
func (q BookQuery) IndexName() string {
	return IndexNameFor(q.FilterAttribute)
}

// IndexNameFor returns the index naming convention "<attribute>Index".
func IndexNameFor(attribute string) string {
	return attribute + "Index"
}
