package config

const (
	defaultServerPort = 8080

	defaultDatabaseMaxOpenConns = 10
	defaultDatabaseMaxIdleConns = 5

	defaultBulkConcurrency = 4
	defaultBulkMaxItems    = 100

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":            "sqlite",
		"database.dsn":               "file:wholesaleos.db?_pragma=busy_timeout(5000)",
		"database.dsn_file":          "",
		"database.max_open_conns":    defaultDatabaseMaxOpenConns,
		"database.max_idle_conns":    defaultDatabaseMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,

		"validation.result_ttl":       "24h",
		"validation.refresh_on_read":  true,
		"validation.bulk_concurrency": defaultBulkConcurrency,
		"validation.bulk_max_items":   defaultBulkMaxItems,

		"webhook.enabled":                         false,
		"webhook.url":                             "",
		"webhook.secret":                          "",
		"webhook.secret_file":                     "",
		"webhook.timeout":                         "5s",
		"webhook.retry.max_attempts":              defaultRetryMaxAttempts,
		"webhook.retry.initial_interval":          "100ms",
		"webhook.retry.max_interval":              "10s",
		"webhook.retry.multiplier":                defaultRetryMultiplier,
		"webhook.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"webhook.circuit_breaker.timeout":         "30s",
		"webhook.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"webhook.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"webhook.rate_limit.burst":                defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "wholesaleos",
	}
}
