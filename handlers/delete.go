package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/libraryshop/books-api/dyndb"
	"github.com/libraryshop/books-api/responder"
	"github.com/libraryshop/books-api/validation"
)

type deleteBookResponse struct {
	Message       string `json:"message"`
	DeletedBookID string `json:"deletedBookId"`
	Stage         string `json:"stage"`
}

// Delete handles DELETE /books/{id}. Hard delete, no tombstone.
func (h *Handler) Delete(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod != http.MethodDelete {
		return responder.MethodNotAllowed(http.MethodDelete)
	}

	id, ok := req.PathParameters["id"]
	if !ok || id == "" {
		return responder.BadRequest("Book ID is required in the URL path")
	}
	if details := validation.BookID(id); details != nil {
		return responder.ValidationError(details)
	}

	if _, err := h.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, dyndb.ErrNotFound) {
			return responder.NotFound()
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("book_id", id).Msg("error checking if book exists")
		return responder.InternalServerError("An error occurred while checking if the book exists")
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, dyndb.ErrNotFound) {
			return responder.NotFound()
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("book_id", id).Msg("error deleting book")
		return responder.InternalServerError("An error occurred while deleting the book")
	}

	return responder.Success(http.StatusOK, deleteBookResponse{
		Message:       "Book deleted successfully",
		DeletedBookID: id,
		Stage:         h.stage,
	})
}
