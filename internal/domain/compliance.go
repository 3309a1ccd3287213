package domain

// ExtractionResult holds the plain text pulled out of one uploaded PDF.
// The text lives only for the duration of the request and is never
// written back to disk.
type ExtractionResult struct {
	Text      string
	PageCount int
}

// ComplianceReport is the model's assessment of one document. The report
// text is rendered to the caller as-is; the service performs no compliance
// determination of its own.
type ComplianceReport struct {
	Report     string   `json:"report"`
	Model      string   `json:"model"`
	Frameworks []string `json:"frameworks"`
}
