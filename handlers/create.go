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

type createBookResponse struct {
	Message string      `json:"message"`
	Book    *books.Book `json:"book"`
	Stage   string      `json:"stage"`
}

// Create handles POST /books.
func (h *Handler) Create(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod != http.MethodPost {
		return responder.MethodNotAllowed(http.MethodPost)
	}

	if req.Body == "" {
		return responder.BadRequest("Request body is required")
	}
	raw, err := parseBody(req.Body)
	if err != nil {
		return responder.BadRequest("Invalid JSON in request body")
	}

	input, details := validation.CreateBook(raw)
	if details != nil {
		return responder.ValidationError(details)
	}

	created, err := h.repo.Create(ctx, books.Book{
		Title:         input.Title,
		Author:        input.Author,
		ISBN:          input.ISBN,
		Price:         input.Price,
		Description:   input.Description,
		PublishedDate: input.PublishedDate,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("error creating book")
		return responder.InternalServerError("An error occurred while creating the book")
	}

	return responder.Success(http.StatusCreated, createBookResponse{
		Message: "Book created successfully",
		Book:    created,
		Stage:   h.stage,
	})
}
