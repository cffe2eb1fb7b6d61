package middleware

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts headers into slog attributes sorted by name, with
// any header in logging.SensitiveHeaders replaced by "[REDACTED]".
// Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for key := range headers {
		names = append(names, key)
	}
	sort.Strings(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, key := range names {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(key)] {
			value = strings.Join(headers[key], ",")
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
