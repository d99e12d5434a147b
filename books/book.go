// Package books holds the domain model and its persistence gateway.
package books

// Book is the persisted record. Timestamps are RFC 3339 UTC strings; the id
// and createdAt never change after creation.
type Book struct {
	ID            string  `json:"id" dynamodbav:"id"`
	Title         string  `json:"title" dynamodbav:"title"`
	Author        string  `json:"author" dynamodbav:"author"`
	ISBN          string  `json:"isbn" dynamodbav:"isbn"`
	Price         float64 `json:"price" dynamodbav:"price"`
	Description   string  `json:"description,omitempty" dynamodbav:"description,omitempty"`
	PublishedDate string  `json:"publishedDate,omitempty" dynamodbav:"publishedDate,omitempty"`
	CreatedAt     string  `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt     string  `json:"updatedAt" dynamodbav:"updatedAt"`
}

// ListFilter narrows a paginated listing. Author takes precedence over
// Title when both are set.
type ListFilter struct {
	Author string
	Title  string
	Limit  int32
	Cursor string
}
