package middleware

import (
	"net/http"

	appctx "github.com/suttonsam862/WholesaleOS4.0-sub009/internal/app/context"
)

// AppContext returns middleware that gives every request its own
// appctx.RequestContext. The RequestContext replaces the request's context,
// so order and organization lookups made while validating are memoized for
// the lifetime of the request and shared with fan-out workers.
//
// Register it after CorrelationID so the wrapped context already carries the
// request and correlation IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(appctx.New(r.Context())))
		})
	}
}
