package service

import (
	"context"
	"fmt"
	"strings"

	"meddoc-validate/internal/domain"
	apperrors "meddoc-validate/pkg/errors"
)

// ComplianceValidator builds the regulatory prompt for a document and runs
// one completion call against the hosted model. It holds no state across
// requests.
type ComplianceValidator struct {
	client           domain.CompletionClient
	logger           domain.Logger
	model            string
	maxDocumentChars int
}

// NewComplianceValidator creates a new compliance validator
func NewComplianceValidator(client domain.CompletionClient, logger domain.Logger, model string, maxDocumentChars int) *ComplianceValidator {
	return &ComplianceValidator{
		client:           client,
		logger:           logger,
		model:            model,
		maxDocumentChars: maxDocumentChars,
	}
}

// Validate sends the document text to the model inside the fixed regulatory
// prompt and returns the response text unmodified. The report is never
// parsed or truncated; the model's output is the assessment. Documents whose
// text exceeds the configured limit are rejected before any network call.
func (v *ComplianceValidator) Validate(ctx context.Context, documentText string) (*domain.ComplianceReport, error) {
	if v.maxDocumentChars > 0 && len(documentText) > v.maxDocumentChars {
		return nil, apperrors.NewTooLargeError(
			fmt.Sprintf("extracted text is %d characters (limit %d)", len(documentText), v.maxDocumentChars), nil)
	}

	prompt := BuildCompliancePrompt(documentText)
	v.logger.Debug("Sending compliance prompt", "model", v.model, "prompt_chars", len(prompt))

	report, err := v.client.Complete(ctx, prompt)
	if err != nil {
		return nil, apperrors.NewServiceError("compliance analysis service failed", err)
	}
	if strings.TrimSpace(report) == "" {
		return nil, apperrors.NewServiceError("compliance analysis service failed", domain.ErrEmptyCompletion)
	}

	return &domain.ComplianceReport{
		Report:     report,
		Model:      v.model,
		Frameworks: domain.FrameworkNames(),
	}, nil
}
