package domain

import "context"

// TextExtractor converts an uploaded PDF byte stream into plain text.
type TextExtractor interface {
	ExtractText(pdfBytes []byte) (*ExtractionResult, error)
}

// ReportGenerator produces a compliance assessment for extracted document text.
type ReportGenerator interface {
	Validate(ctx context.Context, documentText string) (*ComplianceReport, error)
}

// CompletionClient sends one prompt to a hosted model and returns its text response.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAnthropicAPIKey() string
	GetAnthropicBaseURL() string
	GetModel() string
	GetRequestTimeout() int
	GetMaxDocumentChars() int
	Validate() error
}
