package meeting

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/runcontext"
)

// DocumentWriter files a record in the document store
type DocumentWriter interface {
	Write(ctx context.Context, record *entities.MeetingRecord) (string, error)
	PageURL(pageID string) string
}

// Notifier announces a filed record. It reports failure instead of
// returning an error.
type Notifier interface {
	Notify(ctx context.Context, record *entities.MeetingRecord, pageID string) bool
}

// Options tunes a single Process call
type Options struct {
	// SkipWrite stops after parsing
	SkipWrite bool
	// Notify posts to the chat webhook after a successful write
	Notify bool
}

// Result is everything one pipeline run produced. Record is set whenever
// parsing succeeded, even if a later stage failed.
type Result struct {
	Record   *entities.MeetingRecord
	RawText  string
	PageID   string
	PageURL  string
	Notified bool
}

// Service runs the extract, parse, write and notify stages in order
type Service interface {
	Analyze(ctx context.Context, transcript string) (*Result, error)
	Process(ctx context.Context, transcript string, opts Options) (*Result, error)
}

type meetingService struct {
	extractor *Extractor
	parser    *Parser
	writer    DocumentWriter
	notifier  Notifier
	logger    *zap.Logger
}

// NewService constructs the pipeline. writer and notifier may be nil.
func NewService(extractor *Extractor, writer DocumentWriter, notifier Notifier, logger *zap.Logger) Service {
	return &meetingService{
		extractor: extractor,
		parser:    NewParser(),
		writer:    writer,
		notifier:  notifier,
		logger:    logger,
	}
}

// Analyze extracts and parses without touching any sink
func (s *meetingService) Analyze(ctx context.Context, transcript string) (*Result, error) {
	logger := s.runLogger(ctx)

	raw, err := s.extractor.Extract(ctx, transcript)
	if err != nil {
		return nil, err
	}

	record, err := s.parser.Parse(raw)
	if err != nil {
		if logger != nil {
			logger.Warn("⚠️ Extractor output is not a JSON object",
				zap.Int("raw_chars", len(raw)),
				zap.Error(err),
			)
		}
		return &Result{RawText: raw}, err
	}

	if logger != nil {
		logger.Info("✅ Meeting notes parsed",
			zap.String("title", record.Title()),
			zap.Int("fields", len(record.Values)),
		)
	}

	return &Result{Record: record, RawText: raw}, nil
}

// Process runs the whole pipeline. A write failure keeps the parsed record
// in the result and wraps ErrWriteFailed.
func (s *meetingService) Process(ctx context.Context, transcript string, opts Options) (*Result, error) {
	result, err := s.Analyze(ctx, transcript)
	if err != nil {
		return result, err
	}

	logger := s.runLogger(ctx)

	if opts.SkipWrite || s.writer == nil {
		return result, nil
	}

	pageID, err := s.writer.Write(ctx, result.Record)
	if err != nil {
		if logger != nil {
			logger.Error("❌ Failed to file meeting notes", zap.Error(err))
		}
		return result, fmt.Errorf("%w: %w", usecaseErrors.ErrWriteFailed, err)
	}
	result.PageID = pageID
	result.PageURL = s.writer.PageURL(pageID)

	if logger != nil {
		logger.Info("📄 Meeting notes filed",
			zap.String("page_id", pageID),
			zap.String("page_url", result.PageURL),
		)
	}

	if opts.Notify && s.notifier != nil {
		result.Notified = s.notifier.Notify(ctx, result.Record, pageID)
	}

	return result, nil
}

func (s *meetingService) runLogger(ctx context.Context) *zap.Logger {
	if s.logger == nil {
		return nil
	}
	return s.logger.With(runcontext.Fields(ctx)...)
}
