package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/dto"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
)

// parseID extracts a UUID path parameter from the chi URL params and
// returns it in canonical form.
func parseID(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", domain.NewFieldError("path."+param, "must be a valid UUID")
	}
	return id.String(), nil
}

// parseIDs extracts several UUID path parameters, stopping at the first
// invalid one.
func parseIDs(r *http.Request, params ...string) ([]string, error) {
	ids := make([]string, len(params))
	for i, p := range params {
		id, err := parseID(r, p)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// parseBoolQuery reads an optional boolean query parameter. Absent means false.
func parseBoolQuery(r *http.Request, name string) (bool, error) {
	switch r.URL.Query().Get(name) {
	case "":
		return false, nil
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, domain.NewFieldError("query."+name, "must be true or false")
	}
}

// queryEnum reads an optional enum query parameter. Absent yields the zero
// value; a present value must satisfy isValid.
func queryEnum[T ~string](r *http.Request, name string, isValid func(T) bool) (T, error) {
	v := T(r.URL.Query().Get(name))
	if v != "" && !isValid(v) {
		return "", domain.NewFieldError("query."+name, fmt.Sprintf("invalid: %q", string(v)))
	}
	return v, nil
}

// date converts a request date already checked by Validate. Empty yields
// the zero time.
func date(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := dto.ParseDate(s)
	return t
}

// optionalDate is date for nullable fields: empty yields nil.
func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := date(s)
	return &t
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
