package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libraryshop/books-api/pkg/transport"
	"github.com/libraryshop/books-api/responder"
)

// captureProvider records emitted counts for assertions.
type captureProvider struct {
	mu     sync.Mutex
	counts map[string][]string
}

func newCaptureProvider() *captureProvider {
	return &captureProvider{counts: make(map[string][]string)}
}

func (c *captureProvider) Count(name string, value float64, tags []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[name] = tags
	return nil
}

func (c *captureProvider) Gauge(name string, value float64, tags []string) error     { return nil }
func (c *captureProvider) Histogram(name string, value float64, tags []string) error { return nil }

func TestLambdaAdapter_PropagatesCorrelationID(t *testing.T) {
	t.Parallel()

	adapter := transport.NewLambdaAdapter("get_books", func(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
		return responder.Success(http.StatusOK, map[string]string{"message": "ok"})
	}, zerolog.Nop(), nil)

	resp, err := adapter.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Headers:    map[string]string{"x-correlation-id": "corr-123"},
	})

	require.NoError(t, err)
	assert.Equal(t, "corr-123", resp.Headers[transport.HeaderCorrelationID])
}

func TestLambdaAdapter_GeneratesCorrelationID(t *testing.T) {
	t.Parallel()

	adapter := transport.NewLambdaAdapter("get_books", func(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
		return responder.Success(http.StatusOK, map[string]string{"message": "ok"})
	}, zerolog.Nop(), nil)

	resp, err := adapter.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Headers[transport.HeaderCorrelationID])
}

func TestLambdaAdapter_PanicGuard(t *testing.T) {
	t.Parallel()

	adapter := transport.NewLambdaAdapter("create_book", func(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
		panic("boom")
	}, zerolog.Nop(), nil)

	resp, err := adapter.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost})

	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Internal Server Error", body["error"])
	assert.Equal(t, "An error occurred while processing the request", body["message"])
}

func TestLambdaAdapter_EmitsRequestMetric(t *testing.T) {
	t.Parallel()

	provider := newCaptureProvider()
	adapter := transport.NewLambdaAdapter("delete_book", func(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
		return responder.NotFound()
	}, zerolog.Nop(), provider)

	_, err := adapter.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodDelete})
	require.NoError(t, err)

	tags, ok := provider.counts["request.completed"]
	require.True(t, ok)
	assert.Contains(t, tags, "operation:delete_book")
	assert.Contains(t, tags, "status:4xx")
}
