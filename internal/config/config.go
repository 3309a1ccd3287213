package config

import (
	"os"
	"strconv"

	"meddoc-validate/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort       string
	MaxFileSize      int64
	LogLevel         string
	AnthropicAPIKey  string
	AnthropicBaseURL string
	Model            string
	RequestTimeout   int
	MaxDocumentChars int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:       getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:      getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		AnthropicAPIKey:  getEnvOrDefault("ANTHROPIC_API_KEY", ""),
		AnthropicBaseURL: getEnvOrDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		Model:            getEnvOrDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		RequestTimeout:   getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 120),
		MaxDocumentChars: getEnvIntOrDefault("MAX_DOCUMENT_CHARS", 400000),
	}
}

// Validate checks the startup preconditions. A missing model credential is a
// hard stop: the process must refuse to serve any request without it.
func (c *AppConfig) Validate() error {
	if c.AnthropicAPIKey == "" {
		return domain.ErrMissingCredential
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAnthropicAPIKey returns the model-service credential
func (c *AppConfig) GetAnthropicAPIKey() string {
	return c.AnthropicAPIKey
}

// GetAnthropicBaseURL returns the model-service base URL
func (c *AppConfig) GetAnthropicBaseURL() string {
	return c.AnthropicBaseURL
}

// GetModel returns the fixed model identifier used for every completion
func (c *AppConfig) GetModel() string {
	return c.Model
}

// GetRequestTimeout returns the completion-call timeout in seconds
func (c *AppConfig) GetRequestTimeout() int {
	return c.RequestTimeout
}

// GetMaxDocumentChars returns the largest extracted text the service will
// forward to the model
func (c *AppConfig) GetMaxDocumentChars() int {
	return c.MaxDocumentChars
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
