package service

import (
	"strings"

	"meddoc-validate/internal/domain"
)

// severityGuidance is prose the model uses to grade findings. It mirrors FDA
// enforcement practice (Warning Letters, 483 observations) and is never
// interpreted by this service.
var severityGuidance = []string{
	"CRITICAL: Direct patient safety impact, missing required systems, likely FDA Warning Letter. Examples: missing process validation, no DHR system, inadequate CAPA.",
	"MAJOR: Significant compliance gap, likely FDA 483 observation, regulatory action possible. Examples: incomplete procedures, inadequate training records, missing critical documentation.",
	"MINOR: Documentation improvement opportunity, low enforcement risk. Examples: format inconsistencies, unclear wording, missing non-critical references.",
}

// BuildCompliancePrompt assembles the single instructional prompt sent to the
// model: analyst role, the fixed regulatory scope, severity guidance, and the
// full document text verbatim.
func BuildCompliancePrompt(documentText string) string {
	var b strings.Builder

	b.WriteString("You are an FDA regulatory compliance expert with extensive experience in medical device inspections and quality system regulations.\n\n")

	b.WriteString("REGULATORY FRAMEWORKS TO ASSESS AGAINST:\n")
	for _, f := range domain.ComplianceScope() {
		b.WriteString("- ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("SEVERITY CLASSIFICATION GUIDELINES:\n")
	for _, s := range severityGuidance {
		b.WriteString("- ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("DOCUMENT TO ANALYZE:\n")
	b.WriteString(documentText)
	b.WriteString("\n\n")

	b.WriteString("Provide a thorough compliance assessment of the document against every framework listed above. ")
	b.WriteString("For each gap, cite the framework, describe the finding, assign a severity, and give a specific, actionable recommendation. ")
	b.WriteString("Note compliance strengths as well. Base severity on real FDA enforcement precedents.\n")

	return b.String()
}
