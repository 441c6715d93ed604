package slack

import (
	"context"
	"net/http"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/summary"
)

// PageURLFunc turns a page ID into a link
type PageURLFunc func(pageID string) string

// Notifier posts a short summary of a filed record to an incoming webhook
type Notifier struct {
	webhookURL string
	pageURL    PageURLFunc
	client     *http.Client
	logger     *zap.Logger
}

// NewNotifier creates a notifier. An empty webhookURL disables it.
func NewNotifier(webhookURL string, pageURL PageURLFunc, logger *zap.Logger) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		pageURL:    pageURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Enabled reports whether a webhook URL is set
func (n *Notifier) Enabled() bool {
	return n != nil && n.webhookURL != ""
}

// Notify sends one message and reports whether the webhook answered 200.
// It never returns an error; failures are logged.
func (n *Notifier) Notify(ctx context.Context, record *entities.MeetingRecord, pageID string) bool {
	if !n.Enabled() {
		if n != nil && n.logger != nil {
			n.logger.Info("Slack webhook not configured, skipping notification")
		}
		return false
	}

	msg := &slack.WebhookMessage{
		Blocks: &slack.Blocks{BlockSet: n.BuildBlocks(record, pageID)},
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.client, msg); err != nil {
		if n.logger != nil {
			n.logger.Error("❌ Slack notification failed", zap.Error(err))
		}
		return false
	}

	if n.logger != nil {
		n.logger.Info("📣 Slack notification sent", zap.String("page_id", pageID))
	}
	return true
}

// BuildBlocks lays out the message: header, date and lead, attendees,
// divider, then decisions, follow-ups and the page link when present.
func (n *Notifier) BuildBlocks(record *entities.MeetingRecord, pageID string) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "📝 새 회의록: "+record.Title(), true, false),
		),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			markdown("*일시:*\n" + record.Get(entities.FieldDate).StringOr(entities.NoInformation)),
			markdown("*진행자:*\n" + record.Get(entities.FieldLead).StringOr(entities.NoInformation)),
		}, nil),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			markdown("*참석자:*\n" + record.Get(entities.FieldAttendees).StringOr(entities.NoInformation)),
		}, nil),
		slack.NewDividerBlock(),
	}

	for _, section := range summary.Render(record, summary.SlackHighlights) {
		if len(section.Lines) == 0 {
			continue
		}
		blocks = append(blocks, slack.NewSectionBlock(markdown("*"+section.Label+":*\n"+section.Text()), nil, nil))
	}

	if pageID != "" && n.pageURL != nil {
		blocks = append(blocks,
			slack.NewSectionBlock(markdown("자세한 내용은 노션 회의록에서 확인하세요:"), nil, nil),
			slack.NewSectionBlock(markdown("<"+n.pageURL(pageID)+"|📋 노션에서 회의록 보기>"), nil, nil),
		)
	}

	return blocks
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}
