package errors

// ErrorCode is the stable, machine-readable part of an AppError.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	ErrorCode_HTTP_OK          ErrorCode = "OK"
	ErrorCode_INTERNAL         ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_PAYLOAD  ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_NOT_FOUND        ErrorCode = "NOT_FOUND"

	// Configuration
	ErrorCode_CONFIG_MISSING ErrorCode = "CONFIG_MISSING"

	// Pipeline stages
	ErrorCode_AI_EXTRACTION_FAILED      ErrorCode = "AI_EXTRACTION_FAILED"
	ErrorCode_AI_SERVICE_UNAVAILABLE    ErrorCode = "AI_SERVICE_UNAVAILABLE"
	ErrorCode_PARSE_FAILED              ErrorCode = "PARSE_FAILED"
	ErrorCode_INTEGRATION_NOTION_FAILED ErrorCode = "INTEGRATION_NOTION_FAILED"
)

