// Package handlers implements the five CRUD operation pipelines. Every
// pipeline is the same fixed sequence: method check, input validation,
// storage call, normalized response; any failed step short-circuits through
// the responder.
package handlers

import (
	"encoding/json"
	"strings"

	"github.com/libraryshop/books-api/books"
)

// Handler bundles the process-wide collaborators. It holds no per-request
// state; one instance serves the whole process lifetime.
type Handler struct {
	repo  *books.Repository
	stage string
}

// New builds a handler for the given stage label ("dev" when empty).
func New(repo *books.Repository, stage string) *Handler {
	if stage == "" {
		stage = "dev"
	}
	return &Handler{repo: repo, stage: stage}
}

// parseBody decodes a JSON object body into a raw map, keeping numbers as
// json.Number so the validator can inspect price precision.
func parseBody(body string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
