package ports

import "context"

// HealthChecker reports the health of one backing dependency: the store, or
// the validation webhook when notifications are enabled.
type HealthChecker interface {
	// Name identifies the component in readiness output, e.g. "database".
	Name() string
	// HealthCheck returns nil when healthy. It must honor ctx deadlines,
	// since readiness probes bound every check.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them for the
// readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
