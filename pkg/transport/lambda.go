// Package transport adapts the operation pipelines to their runtimes: the
// Lambda adapter wraps a pipeline with correlation-id propagation, request
// logging, metrics and a panic guard; the HTTP server mounts the same
// adapters on local routes.
package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/libraryshop/books-api/pkg/metrics"
	"github.com/libraryshop/books-api/responder"
)

const HeaderCorrelationID = "x-correlation-id"

// OperationFunc is the shape shared by all five operation pipelines.
type OperationFunc func(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse

// LambdaAdapter wraps one operation for the Lambda runtime.
type LambdaAdapter struct {
	op      string
	fn      OperationFunc
	logger  zerolog.Logger
	metrics metrics.Provider
}

// NewLambdaAdapter builds the adapter for a named operation. A nil provider
// falls back to the no-op implementation.
func NewLambdaAdapter(op string, fn OperationFunc, logger zerolog.Logger, provider metrics.Provider) *LambdaAdapter {
	if provider == nil {
		provider = &metrics.NoopProvider{}
	}
	return &LambdaAdapter{op: op, fn: fn, logger: logger, metrics: provider}
}

// Handle processes one API Gateway event. Panics inside the pipeline are
// converted to the standard 500 envelope instead of crashing the runtime.
func (a *LambdaAdapter) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	start := time.Now()

	corrID := req.Headers["X-Correlation-Id"]
	if corrID == "" {
		// API Gateway may normalize header casing.
		corrID = req.Headers[HeaderCorrelationID]
	}
	if corrID == "" {
		corrID = uuid.NewString()
	}

	logger := a.logger.With().
		Str("correlation_id", corrID).
		Str("operation", a.op).
		Logger()
	ctx = logger.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("recovered from panic in operation")
			resp = responder.InternalServerError("")
		}

		logger.Info().
			Str("method", req.HTTPMethod).
			Str("path", req.Path).
			Int("status", resp.StatusCode).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("request completed")

		tags := []string{
			fmt.Sprintf("operation:%s", a.op),
			fmt.Sprintf("status:%dxx", resp.StatusCode/100),
		}
		_ = a.metrics.Count("request.completed", 1, tags)

		if resp.Headers == nil {
			resp.Headers = make(map[string]string)
		}
		resp.Headers[HeaderCorrelationID] = corrID
	}()

	resp = a.fn(ctx, req)
	return resp, nil
}
