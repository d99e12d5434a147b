// Package responder builds the uniform HTTP envelope shared by every
// operation: one fixed header set, one body shape per outcome. Handlers
// never assemble responses by hand.
package responder

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/libraryshop/books-api/validation"
)

type errorBody struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// headers returns a fresh header map so transports can add entries without
// sharing state across responses.
func headers() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

func respond(status int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		fallback, _ := json.Marshal(errorBody{
			Error:   "Internal Server Error",
			Message: "An error occurred while serializing the response",
		})
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers(),
			Body:       string(fallback),
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers(),
		Body:       string(payload),
	}
}

// Success serializes the payload verbatim. Create passes 201, everything
// else 200.
func Success(status int, payload any) events.APIGatewayProxyResponse {
	return respond(status, payload)
}

// BadRequest reports a malformed request (missing id, absent or unparseable
// body).
func BadRequest(message string) events.APIGatewayProxyResponse {
	if message == "" {
		message = "Bad Request"
	}
	return respond(http.StatusBadRequest, errorBody{Error: "Bad Request", Message: message})
}

// ValidationError reports schema violations with their field details.
func ValidationError(details []validation.FieldError) events.APIGatewayProxyResponse {
	return respond(http.StatusBadRequest, errorBody{
		Error:   "Validation Error",
		Message: "The provided data is not valid",
		Details: details,
	})
}

// MethodNotAllowed names the only verb the operation accepts.
func MethodNotAllowed(method string) events.APIGatewayProxyResponse {
	return respond(http.StatusMethodNotAllowed, errorBody{
		Error:   "Method Not Allowed",
		Message: fmt.Sprintf("Only %s method is allowed", method),
	})
}

// NotFound reports an absent id-addressed record.
func NotFound() events.APIGatewayProxyResponse {
	return respond(http.StatusNotFound, errorBody{
		Error:   "Not Found",
		Message: "Book not found",
	})
}

// InternalServerError hides storage and unexpected failures behind a generic
// message; callers pass an operation-specific one or "" for the default.
func InternalServerError(message string) events.APIGatewayProxyResponse {
	if message == "" {
		message = "An error occurred while processing the request"
	}
	return respond(http.StatusInternalServerError, errorBody{
		Error:   "Internal Server Error",
		Message: message,
	})
}
