package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		header       string
		wantFromReq  bool
		wantVerbatim bool
	}{
		{name: "reuses incoming header", header: "corr-abc", wantVerbatim: true},
		{name: "falls back to request ID", header: "", wantFromReq: true},
		{name: "oversized header falls back to request ID", header: strings.Repeat("c", 200), wantFromReq: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.RequestID()(
				middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					gotID = middleware.CorrelationIDFromContext(r.Context())
				})),
			)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Correlation-ID", tt.header)
			}
			handler.ServeHTTP(rec, req)

			want := tt.header
			if tt.wantFromReq {
				want = rec.Header().Get("X-Request-ID")
				if want == "" {
					t.Fatal("X-Request-ID response header is empty")
				}
			}

			if gotID != want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, want)
			}
			if respID := rec.Header().Get("X-Correlation-ID"); respID != want {
				t.Errorf("response X-Correlation-ID = %q, want %q", respID, want)
			}
		})
	}
}

func TestCorrelationIDFromContext_NotFound(t *testing.T) {
	t.Parallel()

	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty", id)
	}
}

func TestWithCorrelationID_StoresInContext(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithCorrelationID(context.Background(), "corr-xyz")
	if id := middleware.CorrelationIDFromContext(ctx); id != "corr-xyz" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", id, "corr-xyz")
	}
}
