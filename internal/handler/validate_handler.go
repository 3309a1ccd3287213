// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"meddoc-validate/internal/domain"
	apperrors "meddoc-validate/pkg/errors"
)

// ValidateHandler runs the per-upload pipeline: read the PDF, extract its
// text, generate the compliance report, render the result. No state survives
// the request.
type ValidateHandler struct {
	extractor   domain.TextExtractor
	validator   domain.ReportGenerator
	logger      domain.Logger
	maxFileSize int64
}

// NewValidateHandler creates a new validate handler
func NewValidateHandler(extractor domain.TextExtractor, validator domain.ReportGenerator, logger domain.Logger, maxFileSize int64) *ValidateHandler {
	return &ValidateHandler{
		extractor:   extractor,
		validator:   validator,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// validateResponse is the success payload for one analyzed document
type validateResponse struct {
	Report     string   `json:"report"`
	Model      string   `json:"model"`
	Frameworks []string `json:"frameworks"`
	Pages      int      `json:"pages"`
}

// ValidateDocument handles POST /api/v1/validate
func (h *ValidateHandler) ValidateDocument(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxFileSize {
		writeAppError(w, h.uploadTooLarge())
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeAppError(w, h.uploadTooLarge())
			return
		}
		writeAppError(w, apperrors.NewValidationError(domain.ErrNoFileUploaded.Error()))
		return
	}
	defer file.Close()

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload", err, "filename", header.Filename)
		writeAppError(w, apperrors.NewValidationError("failed to read uploaded file"))
		return
	}
	if len(pdfBytes) == 0 {
		writeAppError(w, apperrors.NewValidationError(domain.ErrNoFileUploaded.Error()))
		return
	}

	extraction, err := h.extractor.ExtractText(pdfBytes)
	if err != nil {
		h.logger.Warn("Extraction failed", "filename", header.Filename, "error", err)
		writeAppError(w, err)
		return
	}
	h.logger.Info("Document extracted", "filename", header.Filename, "pages", extraction.PageCount, "text_chars", len(extraction.Text))

	report, err := h.validator.Validate(r.Context(), extraction.Text)
	if err != nil {
		h.logger.Error("Compliance analysis failed", err, "filename", header.Filename)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Report:     report.Report,
		Model:      report.Model,
		Frameworks: report.Frameworks,
		Pages:      extraction.PageCount,
	})
}

func (h *ValidateHandler) uploadTooLarge() *apperrors.AppError {
	return apperrors.NewTooLargeError(
		fmt.Sprintf("uploaded file exceeds the %d byte limit", h.maxFileSize), nil)
}

// GetFrameworks handles GET /api/v1/frameworks
func (h *ValidateHandler) GetFrameworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.ComplianceScope())
}
