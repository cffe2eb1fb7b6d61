package middleware_test

import (
	"net/http"
	"testing"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "authorization",
			headers: http.Header{"Authorization": {"Bearer secret-token"}},
			want:    map[string]string{"Authorization": redactedValue},
		},
		{
			name:    "api key",
			headers: http.Header{"X-Api-Key": {"my-api-key-value"}},
			want:    map[string]string{"X-Api-Key": redactedValue},
		},
		{
			name:    "cookie",
			headers: http.Header{"Cookie": {"session=abc123"}},
			want:    map[string]string{"Cookie": redactedValue},
		},
		{
			name:    "webhook signature",
			headers: http.Header{"X-Signature-256": {"sha256=deadbeef"}},
			want:    map[string]string{"X-Signature-256": redactedValue},
		},
		{
			name:    "non-sensitive passes through",
			headers: http.Header{"Content-Type": {"application/json"}, "X-Request-Id": {"req-1"}},
			want:    map[string]string{"Content-Type": "application/json", "X-Request-Id": "req-1"},
		},
		{
			name:    "multi-value joined",
			headers: http.Header{"Accept": {"text/html", "application/json"}},
			want:    map[string]string{"Accept": "text/html,application/json"},
		},
		{
			name: "mixed",
			headers: http.Header{
				"Authorization": {"Bearer secret"},
				"Content-Type":  {"application/json"},
			},
			want: map[string]string{"Authorization": redactedValue, "Content-Type": "application/json"},
		},
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)
			if len(attrs) != len(tt.want) {
				t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(tt.want))
			}
			for _, a := range attrs {
				if got := a.Value.String(); got != tt.want[a.Key] {
					t.Errorf("%s = %q, want %q", a.Key, got, tt.want[a.Key])
				}
			}
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Correlation-Id": {"c"},
		"Accept":           {"a"},
		"Content-Type":     {"b"},
	})

	want := []string{"Accept", "Content-Type", "X-Correlation-Id"}
	for i, a := range attrs {
		if a.Key != want[i] {
			t.Errorf("attrs[%d].Key = %q, want %q", i, a.Key, want[i])
		}
	}
}
