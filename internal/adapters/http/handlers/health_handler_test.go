package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/dto"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/handlers"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != "ok" {
		t.Errorf("status = %q, want %q", resp.Status, "ok")
	}
}

// --- Readiness ---

func TestReadiness(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("connection refused")

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"database": nil, "validation-webhook": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{"database": "ok", "validation-webhook": "ok"},
		},
		{
			name:       "optional webhook failing degrades",
			results:    map[string]error{"database": nil, "validation-webhook": errRefused},
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
			wantChecks: map[string]string{"database": "ok", "validation-webhook": "connection refused"},
		},
		{
			name:       "database failing is not ready",
			results:    map[string]error{"database": errRefused, "validation-webhook": nil},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{"database": "connection refused", "validation-webhook": "ok"},
		},
		{
			name:       "required failure wins over optional",
			results:    map[string]error{"database": errRefused, "validation-webhook": errRefused},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			h := handlers.NewHealthHandler(registry, "validation-webhook")

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			h.Readiness(rec, req)

			requireStatus(t, rec, tt.wantCode)

			resp := decodeJSON[dto.HealthResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			for name, want := range tt.wantChecks {
				if resp.Checks[name] != want {
					t.Errorf("checks[%s] = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}
