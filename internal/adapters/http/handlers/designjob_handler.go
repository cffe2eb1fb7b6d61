package handlers

import (
	"net/http"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/dto"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// DesignJobHandler handles HTTP requests for design jobs.
type DesignJobHandler struct {
	svc ports.DesignJobService
}

// NewDesignJobHandler creates a new DesignJobHandler with the given service port.
func NewDesignJobHandler(svc ports.DesignJobService) *DesignJobHandler {
	return &DesignJobHandler{svc: svc}
}

// ListDesignJobs handles GET /api/v1/design-jobs with optional status and
// order_id filters.
func (h *DesignJobHandler) ListDesignJobs(w http.ResponseWriter, r *http.Request) {
	status, err := queryEnum(r, "status", designjob.Status.IsValid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter := designjob.Filter{
		Status:  status,
		OrderID: r.URL.Query().Get("order_id"),
	}

	jobs, err := h.svc.ListDesignJobs(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDesignJobListResponse(jobs))
}

// CreateDesignJob handles POST /api/v1/design-jobs.
func (h *DesignJobHandler) CreateDesignJob(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDesignJobRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	job := &designjob.DesignJob{
		JobNumber:        req.JobNumber,
		OrderID:          req.OrderID,
		Brief:            req.Brief,
		Status:           designjob.Status(req.Status),
		AssignedDesigner: req.AssignedDesigner,
		Deadline:         optionalDate(req.Deadline),
	}

	created, err := h.svc.CreateDesignJob(r.Context(), job)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToDesignJobResponse(created))
}

// GetDesignJob handles GET /api/v1/design-jobs/{id}.
func (h *DesignJobHandler) GetDesignJob(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	job, err := h.svc.GetDesignJob(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDesignJobResponse(job))
}

// UpdateDesignJob handles PATCH /api/v1/design-jobs/{id}.
func (h *DesignJobHandler) UpdateDesignJob(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateDesignJobRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateDesignJob(r.Context(), id, mapUpdateDesignJobRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDesignJobResponse(updated))
}

// mapUpdateDesignJobRequest converts an UpdateDesignJobRequest DTO to a domain Patch.
func mapUpdateDesignJobRequest(req *dto.UpdateDesignJobRequest) designjob.Patch {
	patch := designjob.Patch{
		JobNumber:        req.JobNumber,
		OrderID:          req.OrderID,
		Brief:            req.Brief,
		AssignedDesigner: req.AssignedDesigner,
	}
	if req.Status != nil {
		s := designjob.Status(*req.Status)
		patch.Status = &s
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			patch.ClearDeadline = true
		} else {
			patch.Deadline = optionalDate(*req.Deadline)
		}
	}
	return patch
}
