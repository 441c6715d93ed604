package errors

import "errors"

// Pipeline errors
var (
	ErrEmptyTranscript = errors.New("transcript is empty")
	ErrExtractorNotSet = errors.New("extractor is not configured")
	ErrWriteFailed     = errors.New("document write failed")
	ErrNoResult        = errors.New("no meeting notes processed yet")
)
