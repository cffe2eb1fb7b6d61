package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/logging"
)

// Logging returns middleware that stores a request-scoped logger, carrying the
// request and correlation IDs, in the context for handlers and services to
// pick up with logging.FromContext.
//
// The request start is logged at DEBUG together with redacted headers. The
// completion record is INFO, or ERROR for 5xx responses, and carries the
// matched route, status, response size and duration.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
					slog.GroupAttrs("headers", RedactHeaders(r.Header)...),
				)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			child.LogAttrs(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
