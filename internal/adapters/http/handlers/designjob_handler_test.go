package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/dto"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/handlers"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/mocks"
)

func newDesignJobHandler(t *testing.T) (*handlers.DesignJobHandler, *mocks.MockDesignJobService) {
	t.Helper()
	svc := mocks.NewMockDesignJobService(t)
	return handlers.NewDesignJobHandler(svc), svc
}

func TestListDesignJobs_WithFilters(t *testing.T) {
	t.Parallel()
	h, svc := newDesignJobHandler(t)

	want := designjob.Filter{Status: designjob.StatusReview, OrderID: testOrderID}
	svc.EXPECT().ListDesignJobs(mock.Anything, want).Return([]designjob.DesignJob{validDesignJob()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/design-jobs?status=review&order_id="+testOrderID, nil)
	h.ListDesignJobs(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DesignJobListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestCreateDesignJob_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDesignJobHandler(t)

	created := validDesignJob()
	svc.EXPECT().CreateDesignJob(mock.Anything, mock.MatchedBy(func(j *designjob.DesignJob) bool {
		return j.JobNumber == "DJ-200" && j.OrderID == testOrderID && j.Deadline != nil
	})).Return(&created, nil)

	body := jsonBody(t, dto.CreateDesignJobRequest{JobNumber: "DJ-200", OrderID: testOrderID, Deadline: "2026-02-28"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/design-jobs", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateDesignJob(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.DesignJobResponse](t, rec)
	if resp.ID != testJobID {
		t.Errorf("ID = %q, want %q", resp.ID, testJobID)
	}
}

func TestCreateDesignJob_UnknownOrder(t *testing.T) {
	t.Parallel()
	h, svc := newDesignJobHandler(t)

	svc.EXPECT().CreateDesignJob(mock.Anything, mock.Anything).
		Return(nil, domain.NewFieldError("order_id", "unknown order"))

	body := jsonBody(t, dto.CreateDesignJobRequest{JobNumber: "DJ-200", OrderID: testOrderID})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/design-jobs", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateDesignJob(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.order_id" {
		t.Errorf("Errors = %+v, want one body.order_id entry", resp.Errors)
	}
}

func TestCreateDesignJob_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newDesignJobHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/design-jobs", bytes.NewBufferString(`{"status":"done"}`))
	req.Header.Set("Content-Type", "application/json")
	h.CreateDesignJob(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetDesignJob_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newDesignJobHandler(t)

	svc.EXPECT().GetDesignJob(mock.Anything, testJobID).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/design-jobs/"+testJobID, nil),
		map[string]string{"id": testJobID})
	h.GetDesignJob(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestUpdateDesignJob_Patch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		match func(designjob.Patch) bool
	}{
		{
			name: "clear deadline",
			body: `{"deadline":""}`,
			match: func(p designjob.Patch) bool {
				return p.ClearDeadline && p.Deadline == nil
			},
		},
		{
			name: "unlink order",
			body: `{"order_id":""}`,
			match: func(p designjob.Patch) bool {
				return p.OrderID != nil && *p.OrderID == "" && !p.ClearDeadline
			},
		},
		{
			name: "advance status",
			body: `{"status":"approved","assigned_designer":"Sam"}`,
			match: func(p designjob.Patch) bool {
				return p.Status != nil && *p.Status == designjob.StatusApproved &&
					p.AssignedDesigner != nil && *p.AssignedDesigner == "Sam"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newDesignJobHandler(t)

			updated := validDesignJob()
			svc.EXPECT().UpdateDesignJob(mock.Anything, testJobID, mock.MatchedBy(tt.match)).Return(&updated, nil)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/design-jobs/"+testJobID, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withChiParams(req, map[string]string{"id": testJobID})
			h.UpdateDesignJob(rec, req)

			requireStatus(t, rec, http.StatusOK)
		})
	}
}
