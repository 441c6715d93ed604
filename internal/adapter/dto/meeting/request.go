package meeting

// ProcessRequest is the body of POST /v1/meetings/notes
type ProcessRequest struct {
	Transcript string `json:"transcript" validate:"required,notblank"`
	DryRun     bool   `json:"dry_run,omitempty"`
	Notify     *bool  `json:"notify,omitempty"` // defaults to true when a webhook is configured
}

// AnalyzeRequest is the body of POST /v1/meetings/notes/analyze
type AnalyzeRequest struct {
	Transcript string `json:"transcript" validate:"required,notblank"`
}
