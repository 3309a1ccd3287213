package domain

import "errors"

// Domain errors
var (
	ErrMissingCredential = errors.New("ANTHROPIC_API_KEY is not set")
	ErrEmptyCompletion   = errors.New("model returned an empty response")
	ErrNoFileUploaded    = errors.New("no file uploaded")
)
