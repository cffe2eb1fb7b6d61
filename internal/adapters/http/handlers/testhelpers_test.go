package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/organization"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
)

const (
	testUpdatedValue = "Updated"

	testOrgID   = "0190a5c4-7b1e-7000-8000-000000000001"
	testOrderID = "0190a5c4-7b1e-7000-8000-000000000002"
	testItemID  = "0190a5c4-7b1e-7000-8000-000000000003"
	testJobID   = "0190a5c4-7b1e-7000-8000-000000000004"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validOrganization() organization.Organization {
	return organization.Organization{
		ID:        testOrgID,
		Name:      "Riverside High Athletics",
		Email:     "athletics@riverside.example",
		City:      "Birmingham",
		State:     "AL",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validLineItem() order.LineItem {
	return order.LineItem{
		ID:          testItemID,
		OrderID:     testOrderID,
		Description: "Practice jersey",
		Color:       "navy",
		Quantity:    24,
		UnitPrice:   decimal.RequireFromString("18.50"),
		Sizes:       order.SizeBreakdown{order.SizeM: 12, order.SizeL: 12},
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validOrder() order.Order {
	return order.Order{
		ID:             testOrderID,
		OrderNumber:    "ORD-1001",
		OrganizationID: testOrgID,
		Status:         order.StatusNew,
		Priority:       order.PriorityNormal,
		OrderDate:      testTime,
		LineItems:      []order.LineItem{validLineItem()},
		CreatedAt:      testTime,
		UpdatedAt:      testTime,
	}
}

func validDesignJob() designjob.DesignJob {
	return designjob.DesignJob{
		ID:        testJobID,
		JobNumber: "DJ-200",
		OrderID:   testOrderID,
		Brief:     "Two-color chest logo",
		Status:    designjob.StatusPending,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validReport() validation.Report {
	return validation.Report{
		Summary: validation.Summary{
			EntityType:   validation.EntityOrder,
			EntityID:     testOrderID,
			RunID:        "run-1",
			Status:       validation.StatusWarning,
			PassCount:    3,
			WarningCount: 1,
			LastRunAt:    testTime,
			ExpiresAt:    testTime.Add(24 * time.Hour),
		},
		Results: []validation.Result{
			{Check: "due_date_present", Field: "due_date", Status: validation.StatusWarning, Message: "no due date set"},
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
