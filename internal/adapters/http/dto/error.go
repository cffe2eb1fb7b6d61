package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/logging"
)

// Problem type URIs. Clients branch on Type rather than parsing Detail.
const (
	ProblemValidation  = "urn:wholesaleos:problem:validation"
	ProblemNotFound    = "urn:wholesaleos:problem:not-found"
	ProblemConflict    = "urn:wholesaleos:problem:conflict"
	ProblemForbidden   = "urn:wholesaleos:problem:forbidden"
	ProblemUnavailable = "urn:wholesaleos:problem:unavailable"
	ProblemTimeout     = "urn:wholesaleos:problem:timeout"
)

// Field locations. A ValidationError field named "path.id" or
// "query.status" keeps its location; any other field is reported under
// "body.".
const (
	locationBody  = "body."
	locationPath  = "path."
	locationQuery = "query."
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
// Errors that map to no domain sentinel are reported as a bare 500 and their
// text is never exposed.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, problemType := domainErrorToStatus(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = http.StatusText(status)
	}

	resp := ErrorResponse{
		Type:     problemType,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	if resp.Status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	writeProblem(w, r, resp)
}

// WriteProblem writes a problem response that has no domain error behind it,
// such as a request deadline expiring in middleware.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, problemType, detail string) {
	writeProblem(w, r, ErrorResponse{
		Type:     problemType,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes and
// problem types.
func domainErrorToStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ProblemValidation
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ProblemNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ProblemForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ProblemConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway, ProblemUnavailable
	default:
		return http.StatusInternalServerError, "about:blank"
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: fieldLocation(field),
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}

func fieldLocation(field string) string {
	if strings.HasPrefix(field, locationPath) || strings.HasPrefix(field, locationQuery) {
		return field
	}
	return locationBody + field
}
