package validation

import "fmt"

// msgAtLeastOneField mirrors the empty-object rule for partial updates; it
// addresses the whole body, so the field path is empty.
const msgAtLeastOneField = "At least one field must be provided to update"

// fieldMessages maps "<field>.<rule>" to the message reported to callers.
// One fixed message per violated rule.
var fieldMessages = map[string]string{
	"title.type":     "Title must be a string",
	"title.required": "Title is required",
	"title.min":      "Title cannot be empty",
	"title.max":      "Title cannot exceed 200 characters",

	"author.type":     "Author must be a string",
	"author.required": "Author is required",
	"author.min":      "Author cannot be empty",
	"author.max":      "Author cannot exceed 100 characters",

	"isbn.type":        "ISBN must be a string",
	"isbn.required":    "ISBN is required",
	"isbn.isbn_format": "ISBN must be between 10 and 17 characters and contain only digits and hyphens",

	"price.number":    "Price must be a number",
	"price.required":  "Price is required",
	"price.gt":        "Price must be a positive number",
	"price.lte":       "Price cannot exceed 999,999.99",
	"price.precision": "Price cannot have more than 2 decimal places",

	"description.type": "Description must be a string",
	"description.max":  "Description cannot exceed 1000 characters",

	"publishedDate.type":       "Published date must be a string",
	"publishedDate.iso_date":   "Published date must be in ISO format (YYYY-MM-DD)",
	"publishedDate.not_future": "Published date cannot be in the future",

	"id.required": "Book ID is required",

	"limit.number":  "Limit must be a number",
	"limit.integer": "Limit must be an integer",
	"limit.gte":     "Limit must be at least 1",
	"limit.lte":     "Limit cannot exceed 100",

	"offset.min": "Offset cannot be empty",
}

func message(field, rule string) string {
	if m, ok := fieldMessages[field+"."+rule]; ok {
		return m
	}
	return fmt.Sprintf("%s is not valid", field)
}
