package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.Validation.validate(),
		c.Webhook.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	switch d.Driver {
	case "sqlite", "pgx":
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("database.driver must be one of: sqlite, pgx; got %q", d.Driver))
	}
	if d.DSN == "" {
		errs = append(errs, errors.New("database.dsn must not be empty"))
	}
	if d.MaxOpenConns < 0 {
		errs = append(errs, fmt.Errorf("database.max_open_conns must not be negative, got %d", d.MaxOpenConns))
	}
	if d.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("database.max_idle_conns must not be negative, got %d", d.MaxIdleConns))
	}

	return errors.Join(errs...)
}

func (v *ValidationConfig) validate() error {
	var errs []error

	if v.ResultTTL <= 0 {
		errs = append(errs, errors.New("validation.result_ttl must be positive"))
	}
	if v.BulkConcurrency < 1 {
		errs = append(errs, fmt.Errorf("validation.bulk_concurrency must be >= 1, got %d", v.BulkConcurrency))
	}
	if v.BulkMaxItems < 1 {
		errs = append(errs, fmt.Errorf("validation.bulk_max_items must be >= 1, got %d", v.BulkMaxItems))
	}

	return errors.Join(errs...)
}

func (w *WebhookConfig) validate() error {
	if !w.Enabled {
		return nil
	}

	var errs []error

	if u, err := url.Parse(w.URL); w.URL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("webhook.url must be an absolute URL when webhook is enabled, got %q", w.URL))
	}
	if w.Timeout <= 0 {
		errs = append(errs, errors.New("webhook.timeout must be positive"))
	}
	if w.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("webhook.retry.max_attempts must be >= 1, got %d", w.Retry.MaxAttempts))
	}
	if w.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("webhook.retry.multiplier must be positive, got %f", w.Retry.Multiplier))
	}
	if w.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("webhook.circuit_breaker.max_failures must be >= 1, got %d",
			w.CircuitBreaker.MaxFailures))
	}
	if w.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("webhook.rate_limit.requests_per_second must not be negative, got %f",
			w.RateLimit.RequestsPerSecond))
	}
	if w.RateLimit.RequestsPerSecond > 0 && w.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("webhook.rate_limit.burst must be >= 1 when rate limiting, got %d",
			w.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
