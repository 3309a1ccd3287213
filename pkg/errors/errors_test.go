package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
)

func TestConstructorStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		err    *AppError
		typ    ErrorType
		status int
	}{
		{"validation", NewValidationError("no file uploaded"), ErrorTypeValidation, http.StatusBadRequest},
		{"extraction", NewExtractionError("not a PDF", nil), ErrorTypeExtraction, http.StatusUnprocessableEntity},
		{"service", NewServiceError("model call failed", nil), ErrorTypeService, http.StatusBadGateway},
		{"too large", NewTooLargeError("over the limit", nil), ErrorTypeTooLarge, http.StatusRequestEntityTooLarge},
	}

	for _, tc := range cases {
		if !IsType(tc.err, tc.typ) {
			t.Fatalf("%s: expected type %q, got %q", tc.name, tc.typ, tc.err.Type)
		}
		if GetStatusCode(tc.err) != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.status, GetStatusCode(tc.err))
		}
	}
}

func TestGetStatusCode_UnknownErrorDefaultsToInternal(t *testing.T) {
	if got := GetStatusCode(stderrors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, got)
	}
}

func TestError_IncludesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewServiceError("model call failed", cause)

	if !stderrors.Is(err, cause) {
		t.Fatalf("expected cause in the error chain")
	}
	msg := err.Error()
	if msg != "service: model call failed: connection refused" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
