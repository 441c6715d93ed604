package notion

import (
	"strings"

	"github.com/jomei/notionapi"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/summary"
)

// Database property names
const (
	PropertyDate      = "회의 일시"
	PropertyAttendees = "참석자"
)

// Notion limits for one rich text array
const (
	maxRunLength = 2000
	maxRuns      = 100
)

func buildProperties(record *entities.MeetingRecord, titleProperty string, logger *zap.Logger) notionapi.Properties {
	if titleProperty == "" {
		titleProperty = "이름"
	}

	props := notionapi.Properties{
		titleProperty: notionapi.TitleProperty{
			Type:  notionapi.PropertyTypeTitle,
			Title: richText(record.Title()),
		},
	}

	if date := record.Get(entities.FieldDate); date.IsPresent() {
		start, err := NormalizeDate(date.String())
		if err != nil {
			if logger != nil {
				logger.Warn("⚠️ Skipping date property", zap.Error(err))
			}
		} else {
			props[PropertyDate] = newDateProperty(start)
		}
	}

	if attendees := record.Get(entities.FieldAttendees); attendees.IsPresent() {
		props[PropertyAttendees] = textProperty(richText(attendees.String()))
	}

	// Agenda and discussion: lists become one numbered run
	for _, section := range summary.Render(record, summary.NotionText) {
		if section.IsList() {
			props[section.Label] = textProperty(richText(section.Text()))
			continue
		}
		props[section.Label] = textProperty(richText(verbatim(section.Value)))
	}

	// Decisions and follow-ups: one run per item plus a newline run
	for _, section := range summary.Render(record, summary.NotionItems) {
		if !section.IsList() {
			props[section.Label] = textProperty(richText(verbatim(section.Value)))
			continue
		}
		if len(section.Lines) == 0 {
			props[section.Label] = textProperty([]notionapi.RichText{run("")})
			continue
		}
		var runs []notionapi.RichText
		for _, line := range section.Lines {
			runs = append(runs, richText(line)...)
			runs = append(runs, run("\n"))
		}
		props[section.Label] = textProperty(runs)
	}

	return props
}

// verbatim returns text values unchanged and renders anything else
func verbatim(v entities.Value) string {
	if v.Kind == entities.KindText {
		return v.Text
	}
	return summary.Item(v)
}

func textProperty(runs []notionapi.RichText) notionapi.RichTextProperty {
	return notionapi.RichTextProperty{
		Type:     notionapi.PropertyTypeRichText,
		RichText: limitRuns(runs),
	}
}

// limitRuns merges the runs back into full-length runs when there are more
// than maxRuns of them
func limitRuns(runs []notionapi.RichText) []notionapi.RichText {
	if len(runs) <= maxRuns {
		return runs
	}

	var b strings.Builder
	for _, r := range runs {
		if r.Text != nil {
			b.WriteString(r.Text.Content)
		}
	}
	return richText(b.String())
}

func run(content string) notionapi.RichText {
	return notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}
}

// richText splits content into runs no longer than maxRunLength characters.
// Content beyond maxRuns runs is dropped.
func richText(content string) []notionapi.RichText {
	runes := []rune(content)
	if len(runes) <= maxRunLength {
		return []notionapi.RichText{run(content)}
	}

	runs := make([]notionapi.RichText, 0, len(runes)/maxRunLength+1)
	for start := 0; start < len(runes) && len(runs) < maxRuns; start += maxRunLength {
		end := start + maxRunLength
		if end > len(runes) {
			end = len(runes)
		}
		runs = append(runs, run(string(runes[start:end])))
	}
	return runs
}
