package notion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// ErrNotionNotConfigured is returned before any API call when the token or
// the database ID is missing
var ErrNotionNotConfigured = errors.New("notion api key or database id is not set")

// PageCreator is the part of notionapi.PageService the writer uses
type PageCreator interface {
	Create(ctx context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

// Writer files meeting records as pages of one Notion database
type Writer struct {
	cfg    config.NotionConfig
	pages  PageCreator
	logger *zap.Logger
}

// NewWriter creates a writer. When pages is nil an API client is built
// from the configured token.
func NewWriter(cfg *config.NotionConfig, pages PageCreator, logger *zap.Logger) *Writer {
	if pages == nil && cfg.APIKey != "" {
		pages = notionapi.NewClient(notionapi.Token(cfg.APIKey)).Page
	}
	return &Writer{cfg: *cfg, pages: pages, logger: logger}
}

// Configured reports whether both the token and the database ID are set
func (w *Writer) Configured() bool {
	return w.cfg.APIKey != "" && w.cfg.DatabaseID != "" && w.pages != nil
}

// Write creates one page for the record and returns its ID. Every call
// creates a new page.
func (w *Writer) Write(ctx context.Context, record *entities.MeetingRecord) (string, error) {
	if !w.Configured() {
		return "", ErrNotionNotConfigured
	}
	if record == nil {
		return "", entities.ErrNilRecord
	}

	request := w.BuildRequest(record)

	page, err := w.pages.Create(ctx, request)
	if err != nil {
		if w.logger != nil {
			w.logger.Error("❌ Notion page create failed",
				zap.String("database_id", w.cfg.DatabaseID),
				zap.Error(err),
			)
		}
		return "", fmt.Errorf("create notion page: %w", err)
	}

	pageID := string(page.ID)
	if w.logger != nil {
		w.logger.Info("✅ Notion page created",
			zap.String("page_id", pageID),
			zap.Int("properties", len(request.Properties)),
			zap.Int("blocks", len(request.Children)),
		)
	}
	return pageID, nil
}

// BuildRequest maps the record onto the database schema
func (w *Writer) BuildRequest(record *entities.MeetingRecord) *notionapi.PageCreateRequest {
	request := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(w.cfg.DatabaseID),
		},
		Properties: buildProperties(record, w.cfg.TitleProperty, w.logger),
	}
	if w.cfg.WriteBody {
		request.Children = buildBody(record)
	}
	return request
}

// PageURL returns the browsable address of a page
func (w *Writer) PageURL(pageID string) string {
	return PageURL(w.cfg.PageBaseURL, pageID)
}

// PageURL joins base and the page ID with its dashes removed
func PageURL(base, pageID string) string {
	if pageID == "" {
		return ""
	}
	if base == "" {
		base = "https://notion.so/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.ReplaceAll(pageID, "-", "")
}
