// Package webhook delivers validation status-change events to an external
// HTTP endpoint. It implements ports.ValidationNotifier on top of the
// instrumented httpclient, so deliveries get retry, circuit breaking, rate
// limiting and tracing.
package webhook

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 16 // 64 KB

// problemDetail is the subset of an RFC 9457 body the receiver may return.
type problemDetail struct {
	Detail string `json:"detail"`
}

// translateHTTPError maps a rejected delivery to a domain error. Receivers
// that answer with application/problem+json get their detail surfaced.
func translateHTTPError(resp *http.Response) error {
	detail := parseProblemDetail(resp).Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("webhook endpoint %s: %w", detail, domain.ErrNotFound)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("webhook rejected signature: %s: %w", detail, domain.ErrForbidden)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("webhook rejected payload: %s: %w", detail, domain.ErrValidation)
	default:
		return fmt.Errorf("webhook returned %d: %s: %w", resp.StatusCode, detail, domain.ErrUnavailable)
	}
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}
