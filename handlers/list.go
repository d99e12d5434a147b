package handlers

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/libraryshop/books-api/books"
	"github.com/libraryshop/books-api/responder"
	"github.com/libraryshop/books-api/validation"
)

type listBooksResponse struct {
	Message    string       `json:"message"`
	Books      []books.Book `json:"books"`
	TotalCount int          `json:"totalCount"`
	Limit      int32        `json:"limit"`
	Offset     string       `json:"offset,omitempty"`
	NextOffset string       `json:"nextOffset,omitempty"`
	HasMore    bool         `json:"hasMore"`
	Stage      string       `json:"stage"`
}

// List handles GET /books with optional author/title filters and cursor
// pagination.
func (h *Handler) List(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod != http.MethodGet {
		return responder.MethodNotAllowed(http.MethodGet)
	}

	query, details := validation.SearchParams(req.QueryStringParameters)
	if details != nil {
		return responder.ValidationError(details)
	}

	items, nextCursor, err := h.repo.List(ctx, books.ListFilter{
		Author: query.Author,
		Title:  query.Title,
		Limit:  query.Limit,
		Cursor: query.Offset,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("error listing books")
		return responder.InternalServerError("An error occurred while retrieving books")
	}

	return responder.Success(http.StatusOK, listBooksResponse{
		Message:    "Books retrieved successfully",
		Books:      items,
		TotalCount: len(items),
		Limit:      query.Limit,
		Offset:     query.Offset,
		NextOffset: nextCursor,
		HasMore:    nextCursor != "",
		Stage:      h.stage,
	})
}
