package config

import (
	"errors"
	"testing"

	"meddoc-validate/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SERVER_PORT", "MAX_FILE_SIZE", "LOG_LEVEL",
		"ANTHROPIC_API_KEY", "ANTHROPIC_BASE_URL", "ANTHROPIC_MODEL",
		"REQUEST_TIMEOUT_SECONDS", "MAX_DOCUMENT_CHARS",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 50*1024*1024 {
		t.Fatalf("expected default max file size 50MB, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetAnthropicBaseURL() != "https://api.anthropic.com" {
		t.Fatalf("expected default base URL, got %s", cfg.GetAnthropicBaseURL())
	}
	if cfg.GetModel() != "claude-sonnet-4-20250514" {
		t.Fatalf("expected default model, got %s", cfg.GetModel())
	}
	if cfg.GetRequestTimeout() != 120 {
		t.Fatalf("expected default request timeout 120, got %d", cfg.GetRequestTimeout())
	}
	if cfg.GetMaxDocumentChars() != 400000 {
		t.Fatalf("expected default max document chars 400000, got %d", cfg.GetMaxDocumentChars())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_BASE_URL", "http://localhost:9999")
	t.Setenv("ANTHROPIC_MODEL", "claude-test")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
	t.Setenv("MAX_DOCUMENT_CHARS", "1000")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetAnthropicAPIKey() != "sk-test" {
		t.Fatalf("expected api key sk-test, got %s", cfg.GetAnthropicAPIKey())
	}
	if cfg.GetAnthropicBaseURL() != "http://localhost:9999" {
		t.Fatalf("expected base URL override, got %s", cfg.GetAnthropicBaseURL())
	}
	if cfg.GetModel() != "claude-test" {
		t.Fatalf("expected model claude-test, got %s", cfg.GetModel())
	}
	if cfg.GetRequestTimeout() != 30 {
		t.Fatalf("expected request timeout 30, got %d", cfg.GetRequestTimeout())
	}
	if cfg.GetMaxDocumentChars() != 1000 {
		t.Fatalf("expected max document chars 1000, got %d", cfg.GetMaxDocumentChars())
	}
}

func TestValidate_MissingCredential(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()
	err := cfg.Validate()
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}

	// The container must refuse to build so no request can ever be served.
	if _, err := NewContainer(); !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected container construction to fail, got %v", err)
	}
}

func TestValidate_WithCredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
