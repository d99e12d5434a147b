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

type getBookResponse struct {
	Message string      `json:"message"`
	Book    *books.Book `json:"book"`
	Stage   string      `json:"stage"`
}

// GetByID handles GET /books/{id}.
func (h *Handler) GetByID(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod != http.MethodGet {
		return responder.MethodNotAllowed(http.MethodGet)
	}

	id, ok := req.PathParameters["id"]
	if !ok || id == "" {
		return responder.BadRequest("Book ID is required in the URL path")
	}
	if details := validation.BookID(id); details != nil {
		return responder.ValidationError(details)
	}

	book, err := h.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dyndb.ErrNotFound) {
			return responder.NotFound()
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("book_id", id).Msg("error getting book by id")
		return responder.InternalServerError("An error occurred while retrieving the book")
	}

	return responder.Success(http.StatusOK, getBookResponse{
		Message: "Book retrieved successfully",
		Book:    book,
		Stage:   h.stage,
	})
}
