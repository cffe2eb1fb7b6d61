package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Database.Driver != "pgx" {
		t.Errorf("Database.Driver = %q, want \"pgx\" for prod", cfg.Database.Driver)
	}
	if cfg.Validation.RefreshOnRead {
		t.Error("Validation.RefreshOnRead = true, want false for prod")
	}
	if !cfg.Webhook.Enabled {
		t.Error("Webhook.Enabled = false, want true for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Webhook.Retry.MaxAttempts != 3 {
		t.Errorf("Webhook.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Webhook.Retry.MaxAttempts)
	}
	if cfg.Webhook.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Webhook.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Webhook.CircuitBreaker.MaxFailures)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want \"sqlite\" (from base)", cfg.Database.Driver)
	}
	if cfg.Validation.BulkConcurrency != 4 {
		t.Errorf("Validation.BulkConcurrency = %d, want 4 (from base)", cfg.Validation.BulkConcurrency)
	}
	// local.yaml overrides the TTL.
	if cfg.Validation.ResultTTL != time.Hour {
		t.Errorf("Validation.ResultTTL = %v, want 1h (from local)", cfg.Validation.ResultTTL)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "server:\n  port: 9999\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (profile)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (base)", cfg.Log.Level)
	}
	if cfg.Validation.ResultTTL != 24*time.Hour {
		t.Errorf("Validation.ResultTTL = %v, want 24h (default)", cfg.Validation.ResultTTL)
	}
	if !cfg.Validation.RefreshOnRead {
		t.Error("Validation.RefreshOnRead = false, want true (default)")
	}
	if cfg.Webhook.Enabled {
		t.Error("Webhook.Enabled = true, want false (default)")
	}
}

func TestLoad_EnvOverrideDefaultOnlyKey(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: info\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "log:\n  format: text\n")
	t.Setenv("APP_VALIDATION_BULK_MAX_ITEMS", "7")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Validation.BulkMaxItems != 7 {
		t.Errorf("Validation.BulkMaxItems = %d, want 7 (env override)", cfg.Validation.BulkMaxItems)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_WEBHOOK_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Webhook.Retry.MaxAttempts != 7 {
		t.Errorf("Webhook.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Webhook.Retry.MaxAttempts)
	}
}

func TestLoad_SecretFiles(t *testing.T) {
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "webhook_secret")
	dsnPath := filepath.Join(dir, "dsn")
	writeFile(t, secretPath, "whsec-from-file\n")
	writeFile(t, dsnPath, "postgres://wholesaleos:pw@db:5432/wholesaleos\n")
	writeFile(t, filepath.Join(dir, "base.yaml"), "webhook:\n  secret: inline\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "database:\n  driver: pgx\n")
	t.Setenv("APP_WEBHOOK_SECRET_FILE", secretPath)
	t.Setenv("APP_DATABASE_DSN_FILE", dsnPath)

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Webhook.Secret != "whsec-from-file" {
		t.Errorf("Webhook.Secret = %q, want contents of secret file", cfg.Webhook.Secret)
	}
	if cfg.Database.DSN != "postgres://wholesaleos:pw@db:5432/wholesaleos" {
		t.Errorf("Database.DSN = %q, want contents of dsn file", cfg.Database.DSN)
	}
}

func TestLoad_MissingSecretFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: info\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "webhook:\n  secret_file: /nonexistent/secret\n")

	if _, err := config.Load("test", config.WithConfigDir(dir)); err == nil {
		t.Fatal("Load() returned nil error, want error for unreadable secret file")
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `prod\x`, "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_UnknownDatabaseDriver(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Database.Driver = "mysql"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for unknown driver")
	}
}

func TestValidate_ValidationSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{name: "zero ttl", modify: func(c *config.Config) { c.Validation.ResultTTL = 0 }},
		{name: "zero concurrency", modify: func(c *config.Config) { c.Validation.BulkConcurrency = 0 }},
		{name: "zero bulk max", modify: func(c *config.Config) { c.Validation.BulkMaxItems = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_Webhook(t *testing.T) {
	t.Parallel()

	t.Run("disabled webhook skips checks", func(t *testing.T) {
		t.Parallel()
		cfg := validBaseConfig()
		cfg.Webhook.Enabled = false
		cfg.Webhook.URL = ""
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("enabled webhook needs absolute url", func(t *testing.T) {
		t.Parallel()
		cfg := validBaseConfig()
		cfg.Webhook.Enabled = true
		cfg.Webhook.URL = "/hooks"
		if err := cfg.Validate(); err == nil {
			t.Fatal("Validate() returned nil, want error for relative url")
		}
	})

	t.Run("rate limit needs burst", func(t *testing.T) {
		t.Parallel()
		cfg := validBaseConfig()
		cfg.Webhook.Enabled = true
		cfg.Webhook.RateLimit.Burst = 0
		if err := cfg.Validate(); err == nil {
			t.Fatal("Validate() returned nil, want error for zero burst")
		}
	})
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			DSN:          "file::memory:",
			MaxOpenConns: 1,
		},
		Validation: config.ValidationConfig{
			ResultTTL:       24 * time.Hour,
			RefreshOnRead:   true,
			BulkConcurrency: 4,
			BulkMaxItems:    100,
		},
		Webhook: config.WebhookConfig{
			URL:     "http://localhost:9000/hooks",
			Timeout: 5 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			RateLimit: config.RateLimitConfig{
				RequestsPerSecond: 10,
				Burst:             5,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
