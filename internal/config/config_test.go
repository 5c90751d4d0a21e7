package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/gamelog/external/apisports"
	"github.com/riskibarqy/gamelog/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("RELAY_REMOTE_URL", "")
	t.Setenv("APISPORTS_FOOTBALL_BASE_URL", "")
	t.Setenv("APISPORTS_BASKETBALL_BASE_URL", "")
	t.Setenv("APP_LOG_LEVEL", "")
	t.Setenv("APP_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UpstreamTimeout != 0 {
		t.Fatalf("expected no upstream timeout by default, got=%s", cfg.UpstreamTimeout)
	}
	if cfg.APISportsFootballBaseURL != apisports.DefaultFootballBaseURL || cfg.APISportsBasketballBaseURL != apisports.DefaultBasketballBaseURL {
		t.Fatalf("unexpected base urls: %s %s", cfg.APISportsFootballBaseURL, cfg.APISportsBasketballBaseURL)
	}
	if cfg.UseRemoteRelay() {
		t.Fatalf("expected in-process relay by default")
	}
	if cfg.LogLevel != logging.LevelInfo || cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("unexpected log defaults: level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.RelayRemoteTimeout != 30*time.Second {
		t.Fatalf("unexpected relay remote timeout: %s", cfg.RelayRemoteTimeout)
	}
}

func TestLoad_UpstreamSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("UPSTREAM_TIMEOUT", "8s")
	t.Setenv("APISPORTS_FOOTBALL_BASE_URL", "http://localhost:9000/")
	t.Setenv("RELAY_REMOTE_URL", "https://project.supabase.co/functions/v1/football-api")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UpstreamTimeout != 8*time.Second {
		t.Fatalf("unexpected UpstreamTimeout: %s", cfg.UpstreamTimeout)
	}
	if cfg.APISportsFootballBaseURL != "http://localhost:9000" {
		t.Fatalf("expected trailing slash trimmed, got=%s", cfg.APISportsFootballBaseURL)
	}
	if !cfg.UseRemoteRelay() {
		t.Fatalf("expected remote relay when RELAY_REMOTE_URL is set")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "negative upstream timeout", key: "UPSTREAM_TIMEOUT", val: "-1s"},
		{name: "base url without scheme", key: "APISPORTS_BASKETBALL_BASE_URL", val: "v1.basketball.api-sports.io"},
		{name: "unknown log format", key: "APP_LOG_FORMAT", val: "xml"},
		{name: "zero remote timeout", key: "RELAY_REMOTE_TIMEOUT", val: "0s"},
		{name: "bad pprof flag", key: "PPROF_ENABLED", val: "maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(tc.key, tc.val)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.val)
			}
		})
	}
}

func TestEnvCredential_ReadsAtCallTime(t *testing.T) {
	t.Setenv(CredentialEnvKey, "")
	source := EnvCredential{}
	if got := source.Credential(); got != "" {
		t.Fatalf("expected empty credential, got=%q", got)
	}

	t.Setenv(CredentialEnvKey, " rotated-key ")
	if got := source.Credential(); got != "rotated-key" {
		t.Fatalf("expected rotated credential, got=%q", got)
	}
}

func TestLoad_SwaggerDisabledInProdByDefault(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SWAGGER_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled in prod")
	}
}
