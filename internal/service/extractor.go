package service

import (
	"strings"

	"meddoc-validate/internal/domain"
	apperrors "meddoc-validate/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor handles PDF text extraction
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		logger: logger,
	}
}

// ExtractText extracts the plain text of every page, in page order, joined
// by single newlines. Page text is passed through verbatim, whitespace
// included. A page with no extractable text (scanned or image-only)
// contributes an empty fragment rather than an error; only a document that
// cannot be opened as a PDF fails. The input bytes are never written to disk.
func (e *PDFExtractor) ExtractText(pdfBytes []byte) (*domain.ExtractionResult, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, apperrors.NewExtractionError("document could not be parsed as a PDF", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)

	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			// A single unreadable page becomes an empty fragment so the
			// remaining pages keep their order.
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return &domain.ExtractionResult{
		Text:      strings.Join(pages, "\n"),
		PageCount: numPages,
	}, nil
}
