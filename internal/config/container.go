package config

import (
	"meddoc-validate/internal/domain"
	"meddoc-validate/internal/infra/anthropic"
	"meddoc-validate/internal/service"
	"meddoc-validate/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config    domain.Config
	Logger    domain.Logger
	Extractor domain.TextExtractor
	Validator domain.ReportGenerator
}

// NewContainer creates a new dependency injection container. It fails when a
// startup precondition (the model credential) is not met, before any
// component that could issue a request is built.
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	appLogger := logger.NewLogger(cfg.GetLogLevel())

	completionClient := anthropic.NewClient(
		cfg.GetAnthropicBaseURL(),
		cfg.GetAnthropicAPIKey(),
		cfg.GetModel(),
		cfg.GetRequestTimeout(),
		appLogger,
	)

	extractor := service.NewPDFExtractor(appLogger)
	validator := service.NewComplianceValidator(completionClient, appLogger, cfg.GetModel(), cfg.GetMaxDocumentChars())

	return &Container{
		Config:    cfg,
		Logger:    appLogger,
		Extractor: extractor,
		Validator: validator,
	}, nil
}
