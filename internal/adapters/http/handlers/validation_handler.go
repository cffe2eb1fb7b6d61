package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/dto"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// ValidationHandler handles HTTP requests for advisory validation runs and
// their stored results.
type ValidationHandler struct {
	svc ports.ValidationService
}

// NewValidationHandler creates a new ValidationHandler with the given service port.
func NewValidationHandler(svc ports.ValidationService) *ValidationHandler {
	return &ValidationHandler{svc: svc}
}

// Validate handles POST /api/v1/validation/{entityType}/{id}. It runs the
// check catalog now and returns the fresh report.
func (h *ValidationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	ref, err := parseEntityRef(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	report, err := h.svc.Validate(r.Context(), ref)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToValidationReportResponse(report))
}

// GetReport handles GET /api/v1/validation/{entityType}/{id}.
func (h *ValidationHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ref, err := parseEntityRef(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	report, err := h.svc.GetReport(r.Context(), ref)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToValidationReportResponse(report))
}

// BulkValidate handles POST /api/v1/validation/bulk. Individual failures are
// reported in the body; the response is 200 unless the batch itself is
// rejected.
func (h *ValidationHandler) BulkValidate(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkValidateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	refs := make([]validation.EntityRef, len(req.Items))
	for i, item := range req.Items {
		refs[i] = validation.EntityRef{Type: validation.EntityType(item.EntityType), ID: item.ID}
	}

	result, err := h.svc.BulkValidate(r.Context(), refs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkValidateResponse(result))
}

// ListSummaries handles GET /api/v1/validation/summaries with optional
// entity_type, status and include_expired filters.
func (h *ValidationHandler) ListSummaries(w http.ResponseWriter, r *http.Request) {
	entityType, err := queryEnum(r, "entity_type", validation.EntityType.IsValid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	status, err := queryEnum(r, "status", validation.Status.IsValid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	includeExpired, err := parseBoolQuery(r, "include_expired")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter := validation.SummaryFilter{
		EntityType:     entityType,
		Status:         status,
		IncludeExpired: includeExpired,
	}

	summaries, err := h.svc.ListSummaries(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToValidationSummaryListResponse(summaries))
}

// PurgeExpired handles DELETE /api/v1/validation/expired.
func (h *ValidationHandler) PurgeExpired(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.PurgeExpired(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PurgeResponse{Removed: removed})
}

func parseEntityRef(r *http.Request) (validation.EntityRef, error) {
	id, err := parseID(r, "id")
	if err != nil {
		return validation.EntityRef{}, err
	}
	return validation.EntityRef{
		Type: validation.EntityType(chi.URLParam(r, "entityType")),
		ID:   id,
	}, nil
}
