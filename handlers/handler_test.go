package handlers_test

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"github.com/libraryshop/books-api/books"
	"github.com/libraryshop/books-api/dyndb"
	"github.com/libraryshop/books-api/handlers"
)

// newTestHandler wires a handler to a scripted store, stage "test".
func newTestHandler(store *dyndb.MockStore[books.Book]) *handlers.Handler {
	return handlers.New(books.NewRepositoryWithStore(store), "test")
}

// decodeBody unmarshals a response body into a generic map for assertions.
func decodeBody(t *testing.T, resp events.APIGatewayProxyResponse) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	return body
}

// details extracts the validation details list from an error body.
func details(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["details"].([]any)
	require.True(t, ok, "body has no details list: %v", body)

	out := make([]map[string]any, 0, len(raw))
	for _, d := range raw {
		entry, ok := d.(map[string]any)
		require.True(t, ok)
		out = append(out, entry)
	}
	return out
}

func sampleBook() books.Book {
	return books.Book{
		ID:        "b1",
		Title:     "The Go Programming Language",
		Author:    "Alan Donovan",
		ISBN:      "978-0134190440",
		Price:     39.99,
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-01T00:00:00Z",
	}
}

const validBookBody = `{
	"title": "The Go Programming Language",
	"author": "Alan Donovan",
	"isbn": "978-0134190440",
	"price": 39.99
}`
