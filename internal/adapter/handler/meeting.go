package handler

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	meetingDto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/runcontext"
)

const latestKey = "latest"

// Meeting handles the meeting notes endpoints
type Meeting struct {
	svc    meetingUsecase.Service
	cfg    *config.Config
	latest *cache.MemoryStore[*meetingDto.NotesResponse]
	logger *zap.Logger
	now    func() time.Time
}

// NewMeetingHandler creates a new meeting notes handler. svc may be nil
// when no extractor is configured.
func NewMeetingHandler(
	svc meetingUsecase.Service,
	cfg *config.Config,
	latest *cache.MemoryStore[*meetingDto.NotesResponse],
	logger *zap.Logger,
) *Meeting {
	if latest == nil {
		latest = cache.NewMemoryStore[*meetingDto.NotesResponse]()
	}
	return &Meeting{
		svc:    svc,
		cfg:    cfg,
		latest: latest,
		logger: logger,
		now:    time.Now,
	}
}

// Process handles POST /meetings/notes
// @Summary      Process a meeting transcript
// @Description  Extracts meeting fields, files them in Notion and optionally notifies Slack
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.ProcessRequest  true  "Transcript"
// @Success      200      {object}  meeting.NotesResponse
// @Failure      400      {object}  common.ErrorResponse  "Missing transcript"
// @Failure      422      {object}  common.ErrorResponse  "Extractor output is not JSON"
// @Failure      502      {object}  common.ErrorResponse  "Extraction or Notion write failed"
// @Failure      503      {object}  common.ErrorResponse  "Required configuration missing"
// @Router       /meetings/notes [post]
func (h *Meeting) Process(c echo.Context) error {
	var req meetingDto.ProcessRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("transcript is required"))
	}
	if err := h.ready(!req.DryRun); err != nil {
		return HandleError(h.logger, c, err)
	}

	notify := h.cfg.Slack.WebhookURL != ""
	if req.Notify != nil {
		notify = notify && *req.Notify
	}

	opts := meetingUsecase.Options{SkipWrite: req.DryRun, Notify: notify}
	return h.run(c, func(ctx context.Context) (*meetingUsecase.Result, error) {
		return h.svc.Process(ctx, req.Transcript, opts)
	})
}

// Analyze handles POST /meetings/notes/analyze
// @Summary      Analyze a meeting transcript
// @Description  Extracts and parses meeting fields without writing anywhere
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.AnalyzeRequest  true  "Transcript"
// @Success      200      {object}  meeting.NotesResponse
// @Failure      422      {object}  common.ErrorResponse  "Extractor output is not JSON"
// @Router       /meetings/notes/analyze [post]
func (h *Meeting) Analyze(c echo.Context) error {
	var req meetingDto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("transcript is required"))
	}
	if err := h.ready(false); err != nil {
		return HandleError(h.logger, c, err)
	}

	return h.run(c, func(ctx context.Context) (*meetingUsecase.Result, error) {
		return h.svc.Analyze(ctx, req.Transcript)
	})
}

// Latest handles GET /meetings/notes/latest
// @Summary      Most recent meeting notes
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  meeting.NotesResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/notes/latest [get]
func (h *Meeting) Latest(c echo.Context) error {
	resp, ok := h.latest.Get(latestKey)
	if !ok {
		return HandleError(h.logger, c, errors.ErrNotFound("meeting notes").WithDetail("reason", usecaseErrors.ErrNoResult.Error()))
	}
	return HandleSuccess(h.logger, c, resp)
}

// ready checks the configuration the requested stages need
func (h *Meeting) ready(needsNotion bool) error {
	if err := h.cfg.ValidateExtractor(); err != nil {
		return toAppError(err)
	}
	if needsNotion {
		if err := h.cfg.ValidateNotion(); err != nil {
			return toAppError(err)
		}
	}
	if h.svc == nil {
		return errors.ErrAIServiceUnavailable(h.cfg.Extractor.Provider)
	}
	return nil
}

func (h *Meeting) run(c echo.Context, call func(ctx context.Context) (*meetingUsecase.Result, error)) error {
	ctx := runcontext.RunBegin(c.Request().Context(), getRequestID(c), runcontext.SourceHTTP)
	result, err := call(ctx)
	resp := presenter.ToNotesResponse(result, h.now())

	if resp != nil && resp.Record != nil {
		h.latest.Set(latestKey, resp, 0)
	}

	if err != nil {
		if resp == nil {
			return HandleError(h.logger, c, toAppError(err))
		}
		return HandleErrorWithData(h.logger, c, toAppError(err), resp)
	}
	return HandleSuccess(h.logger, c, resp)
}

// toAppError maps pipeline errors to API errors
func toAppError(err error) error {
	var parseErr *meetingUsecase.ParseError
	var cfgErr *config.ConfigError

	switch {
	case stdErrors.As(err, &cfgErr):
		return errors.ErrConfigMissing(cfgErr.Missing)
	case stdErrors.Is(err, usecaseErrors.ErrEmptyTranscript):
		return errors.ErrInvalidArgument("transcript is empty")
	case stdErrors.As(err, &parseErr):
		return errors.ErrParseFailed(parseErr.Raw, parseErr.Err)
	case stdErrors.Is(err, usecaseErrors.ErrWriteFailed):
		return errors.ErrNotionWriteFailed(err)
	default:
		return errors.ErrExtractionFailed(err)
	}
}
