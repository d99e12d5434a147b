package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/libraryshop/books-api/books"
	"github.com/libraryshop/books-api/dyndb"
	"github.com/libraryshop/books-api/responder"
	"github.com/libraryshop/books-api/validation"
)

type updateBookResponse struct {
	Message       string      `json:"message"`
	Book          *books.Book `json:"book"`
	UpdatedFields []string    `json:"updatedFields"`
	Stage         string      `json:"stage"`
}

// Update handles PUT /books/{id}: partial field replacement with a refreshed
// updatedAt. Unspecified fields stay untouched.
func (h *Handler) Update(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod != http.MethodPut {
		return responder.MethodNotAllowed(http.MethodPut)
	}

	id, ok := req.PathParameters["id"]
	if !ok || id == "" {
		return responder.BadRequest("Book ID is required in the URL path")
	}
	if details := validation.BookID(id); details != nil {
		return responder.ValidationError(details)
	}

	if req.Body == "" {
		return responder.BadRequest("Request body is required")
	}
	raw, err := parseBody(req.Body)
	if err != nil {
		return responder.BadRequest("Invalid JSON in request body")
	}

	patch, details := validation.UpdateBook(raw)
	if details != nil {
		return responder.ValidationError(details)
	}

	if _, err := h.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, dyndb.ErrNotFound) {
			return responder.NotFound()
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("book_id", id).Msg("error checking if book exists")
		return responder.InternalServerError("An error occurred while checking if the book exists")
	}

	updated, err := h.repo.Update(ctx, id, patch.FieldMap())
	if err != nil {
		// The book can vanish between the check and the write; the
		// conditional update reports that as not-found.
		if errors.Is(err, dyndb.ErrNotFound) {
			return responder.NotFound()
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("book_id", id).Msg("error updating book")
		return responder.InternalServerError("An error occurred while updating the book")
	}

	return responder.Success(http.StatusOK, updateBookResponse{
		Message:       "Book updated successfully",
		Book:          updated,
		UpdatedFields: patch.Fields(),
		Stage:         h.stage,
	})
}
