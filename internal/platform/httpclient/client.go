// Package httpclient provides an instrumented HTTP client for outbound
// deliveries such as validation webhooks. Each request passes through:
//
//	Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → Retry → HTTP
//
// Construction:
//
//	client := httpclient.New(httpclient.Options{
//	    Name:           "validation-webhook",
//	    Timeout:        cfg.Webhook.Timeout,
//	    Retry:          cfg.Webhook.Retry,
//	    CircuitBreaker: cfg.Webhook.CircuitBreaker,
//	    RateLimit:      cfg.Webhook.RateLimit,
//	}, metrics, logger)
//
// Executing requests:
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
//	resp, err := client.Do(ctx, req)
//
// Request and correlation IDs set by inbound middleware are forwarded:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/config"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/telemetry"
)

// Unexported context keys for the IDs forwarded on outbound requests.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns a new context carrying the inbound request ID. The
// client sends it as X-Request-ID so a webhook receiver can tie a delivery
// back to the API call that triggered the validation run.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a new context carrying the inbound correlation
// ID, forwarded as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Options configures a Client. Name identifies the peer in traces, metrics,
// logs and health results.
type Options struct {
	Name           string
	Timeout        time.Duration
	Retry          config.RetryConfig
	CircuitBreaker config.CircuitBreakerConfig
	RateLimit      config.RateLimitConfig
}

// retryConfig is the retry policy copied out of config.RetryConfig at
// construction.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is an instrumented HTTP client with circuit breaker, rate limiting,
// retry, header injection, and OpenTelemetry tracing.
type Client struct {
	httpClient *http.Client
	name       string
	breaker    *gobreaker.CircuitBreaker[struct{}]
	limiter    *rate.Limiter // nil when rate limiting is disabled
	retryCfg   retryConfig
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// New creates a Client from opts.
//
// opts.Name labels the breaker, spans and the peer_service metric attribute.
// A RateLimit with zero RequestsPerSecond disables the limiter. A nil metrics
// skips metric recording and a nil logger discards breaker state-change logs.
// Retry.MaxAttempts must be at least 1; Do fails every call otherwise.
func New(opts Options, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	maxFailures := opts.CircuitBreaker.MaxFailures
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: toUint32(opts.CircuitBreaker.HalfOpenLimit),
		Timeout:     opts.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if opts.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit.RequestsPerSecond), opts.RateLimit.Burst)
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		name:       opts.Name,
		breaker:    cb,
		limiter:    limiter,
		retryCfg: retryConfig{
			maxAttempts:     opts.Retry.MaxAttempts,
			initialInterval: opts.Retry.InitialInterval,
			maxInterval:     opts.Retry.MaxInterval,
			multiplier:      opts.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do executes req through the full pipeline.
//
// On a non-retryable status resp is returned with an open body the caller
// must close. When retries are exhausted on a retryable status both resp and
// err are non-nil and the caller should still close resp.Body. When the
// breaker rejects the call or the network fails, resp is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)

		retryErr := c.doWithRetry(spanCtx, req, &resp)
		c.finishSpan(span, resp, retryErr)

		return struct{}{}, retryErr
	})

	c.recordMetrics(ctx, method, start, resp, err)

	return resp, err
}

// Name returns the peer identifier. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.name
}

// CircuitBreakerState returns the breaker state as "closed", "half-open"
// or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck reports peer availability from the breaker state without
// making a network call. A half-open breaker is reported as degraded and an
// open one as failing.
func (c *Client) HealthCheck(_ context.Context) error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.name, state)
	}
}

// waitForRateLimit blocks until the limiter grants a token or ctx ends.
// It is a no-op when rate limiting is disabled.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// injectHeaders copies request and correlation IDs from ctx onto req.
// Missing or empty IDs are not sent.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// startSpan opens a client span and injects W3C trace context into req.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	ctx, span := tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.name),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.name),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

// finishSpan records the final status code and marks the span as failed
// when the retry loop returned an error.
func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	result := "error"
	if resp != nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
