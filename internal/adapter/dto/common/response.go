package common

// SuccessResponse is the envelope for successful responses
type SuccessResponse struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed responses. Data carries whatever
// was produced before the failure.
type ErrorResponse struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

// ComponentStatus describes one pipeline dependency without exposing secrets
type ComponentStatus struct {
	Configured bool     `json:"configured"`
	Provider   string   `json:"provider,omitempty"`
	Missing    []string `json:"missing,omitempty"`
}

// StatusResponse lists the configured pipeline components
type StatusResponse struct {
	Environment string          `json:"environment"`
	Extractor   ComponentStatus `json:"extractor"`
	Notion      ComponentStatus `json:"notion"`
	Slack       ComponentStatus `json:"slack"`
}
