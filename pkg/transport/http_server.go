package transport

import (
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/libraryshop/books-api/handlers"
	"github.com/libraryshop/books-api/pkg/metrics"
)

// NewRouter mounts the five operations on their REST routes. Each route goes
// through the same Lambda adapter used in production, so local requests get
// identical logging, metrics and panic handling.
func NewRouter(h *handlers.Handler, logger zerolog.Logger, provider metrics.Provider) *mux.Router {
	router := mux.NewRouter()

	route := func(method, path, op string, fn OperationFunc) {
		adapter := NewLambdaAdapter(op, fn, logger, provider)
		router.HandleFunc(path, serveOperation(adapter)).Methods(method)
	}

	route(http.MethodPost, "/books", "create_book", h.Create)
	route(http.MethodGet, "/books", "get_books", h.List)
	route(http.MethodGet, "/books/{id}", "get_book_by_id", h.GetByID)
	route(http.MethodPut, "/books/{id}", "update_book", h.Update)
	route(http.MethodDelete, "/books/{id}", "delete_book", h.Delete)

	return router
}

// StartHTTPServer runs the local development server.
func StartHTTPServer(port int, h *handlers.Handler, logger zerolog.Logger, provider metrics.Provider) error {
	router := NewRouter(h, logger, provider)

	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Msg("http server listening")

	return http.ListenAndServe(addr, router)
}

// serveOperation translates between net/http and the API Gateway event shape.
func serveOperation(adapter *LambdaAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := toEvent(r)
		if err != nil {
			http.Error(w, `{"error":"Bad Request","message":"Unable to read request body"}`, http.StatusBadRequest)
			return
		}

		resp, _ := adapter.Handle(r.Context(), event)

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}

func toEvent(r *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}
	defer r.Body.Close()

	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	query := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               headers,
		QueryStringParameters: query,
		PathParameters:        mux.Vars(r),
		Body:                  string(body),
	}, nil
}
