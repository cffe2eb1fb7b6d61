// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/dto"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/organization"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// OrganizationHandler handles HTTP requests for organizations and their contacts.
type OrganizationHandler struct {
	svc ports.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler with the given service port.
func NewOrganizationHandler(svc ports.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

// ListOrganizations handles GET /api/v1/organizations.
func (h *OrganizationHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.svc.ListOrganizations(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrganizationListResponse(orgs))
}

// CreateOrganization handles POST /api/v1/organizations.
func (h *OrganizationHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrganizationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	org := &organization.Organization{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		City:  req.City,
		State: req.State,
		Notes: req.Notes,
	}

	created, err := h.svc.CreateOrganization(r.Context(), org)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToOrganizationResponse(created))
}

// GetOrganization handles GET /api/v1/organizations/{id}.
func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	org, err := h.svc.GetOrganization(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrganizationResponse(org))
}

// UpdateOrganization handles PATCH /api/v1/organizations/{id}.
func (h *OrganizationHandler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateOrganizationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := organization.Patch{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		City:  req.City,
		State: req.State,
		Notes: req.Notes,
	}

	updated, err := h.svc.UpdateOrganization(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrganizationResponse(updated))
}

// ListContacts handles GET /api/v1/organizations/{id}/contacts.
func (h *OrganizationHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	contacts, err := h.svc.ListContacts(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContactListResponse(contacts))
}

// AddContact handles POST /api/v1/organizations/{id}/contacts.
func (h *OrganizationHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact := &organization.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}

	created, err := h.svc.AddContact(r.Context(), id, contact)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToContactResponse(created))
}
