package runcontext

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRunID        KeyContext = "run_id"
	keyRunSource    KeyContext = "run_source"
	keyRunStartTime KeyContext = "run_start_time"
)

// Sources a pipeline run can start from
const (
	SourceHTTP = "http"
	SourceCLI  = "cli"
)

// RunMetadata describes one pipeline run
type RunMetadata struct {
	RunID     string
	Source    string
	StartTime time.Time
}

// RunBegin tags ctx with the run metadata. runID is the HTTP request ID
// for API calls and a fresh UUID for CLI runs.
func RunBegin(parentCtx context.Context, runID, source string) context.Context {
	ctx := context.WithValue(parentCtx, keyRunID, runID)
	ctx = context.WithValue(ctx, keyRunSource, source)
	ctx = context.WithValue(ctx, keyRunStartTime, time.Now())
	return ctx
}

// GetRunID extracts the run ID from context
func GetRunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(keyRunID).(string)
	return id, ok && id != ""
}

// GetRunSource extracts the run source from context
func GetRunSource(ctx context.Context) (string, bool) {
	source, ok := ctx.Value(keyRunSource).(string)
	return source, ok
}

// GetRunStartTime extracts the run start time from context
func GetRunStartTime(ctx context.Context) (time.Time, bool) {
	start, ok := ctx.Value(keyRunStartTime).(time.Time)
	return start, ok
}

// GetRunMetadata extracts all run metadata from context
func GetRunMetadata(ctx context.Context) *RunMetadata {
	id, _ := GetRunID(ctx)
	source, _ := GetRunSource(ctx)
	start, _ := GetRunStartTime(ctx)

	return &RunMetadata{
		RunID:     id,
		Source:    source,
		StartTime: start,
	}
}

// Fields returns the zap fields identifying the run, or nil outside a run
func Fields(ctx context.Context) []zap.Field {
	meta := GetRunMetadata(ctx)
	if meta.RunID == "" {
		return nil
	}

	fields := []zap.Field{zap.String("run_id", meta.RunID)}
	if meta.Source != "" {
		fields = append(fields, zap.String("source", meta.Source))
	}
	if !meta.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(meta.StartTime)))
	}
	return fields
}
