package notion

import (
	"github.com/jomei/notionapi"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/summary"
)

// maxChildren is the block limit of one create request
const maxChildren = 100

// buildBody renders the detail fields that have no database property.
// Sections are cut whole at maxChildren blocks; a heading is only kept
// together with at least one block under it.
func buildBody(record *entities.MeetingRecord) []notionapi.Block {
	var blocks []notionapi.Block

	add := func(heading string, lines []string, paragraph string) {
		if len(lines) == 0 && paragraph == "" {
			return
		}
		section := []notionapi.Block{heading2(heading)}
		if paragraph != "" {
			section = append(section, paragraphBlock(paragraph))
		}
		for _, line := range lines {
			section = append(section, bullet(line))
		}

		room := maxChildren - len(blocks)
		if room < 2 {
			return
		}
		if len(section) > room {
			section = section[:room]
		}
		blocks = append(blocks, section...)
	}

	if purpose := record.Get(entities.FieldPurpose); purpose.IsPresent() {
		add("회의 목적", nil, purpose.String())
	}

	agenda := record.Get(entities.FieldAgenda)
	add("회의 아젠다", itemLines(agenda, agendaLine), textOf(agenda))

	discussion := record.Get(entities.FieldDiscussion)
	add("주요 논의 내용", itemLines(discussion, summary.Item), textOf(discussion))

	add("회의 피드백", labelled(record.Get(entities.FieldFeedback),
		entities.KeyGood, entities.KeyImprove, entities.KeySuggestions), "")

	add("다음 회의 일정", labelled(record.Get(entities.FieldNextMeeting),
		entities.KeyWhen, entities.KeyPlace, entities.KeyMainAgenda), "")

	return blocks
}

// itemLines renders each list entry with render, skipping blank ones
func itemLines(v entities.Value, render func(entities.Value) string) []string {
	if v.Kind != entities.KindList {
		return nil
	}
	lines := make([]string, 0, len(v.List))
	for _, item := range v.List {
		if line := render(item); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// textOf returns the value when it is plain text
func textOf(v entities.Value) string {
	if v.Kind == entities.KindText && v.IsPresent() {
		return v.Text
	}
	return ""
}

// agendaLine shows an agenda item with its duration and materials
func agendaLine(v entities.Value) string {
	line := summary.Item(v)
	if v.Kind != entities.KindObject {
		return line
	}
	if d := v.Get(entities.KeyDuration); d.IsPresent() {
		line += " (" + entities.KeyDuration + ": " + d.String() + ")"
	}
	if m := v.Get(entities.KeyMaterials); m.IsPresent() {
		line += " - " + entities.KeyMaterials + ": " + m.String()
	}
	return line
}

// labelled renders "key: value" lines for the present keys of an object
func labelled(v entities.Value, keys ...string) []string {
	var lines []string
	for _, key := range keys {
		if field := v.Get(key); field.IsPresent() {
			lines = append(lines, key+": "+field.String())
		}
	}
	return lines
}

func heading2(text string) *notionapi.Heading2Block {
	return &notionapi.Heading2Block{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeHeading2,
		},
		Heading2: notionapi.Heading{RichText: richText(text)},
	}
}

func paragraphBlock(text string) *notionapi.ParagraphBlock {
	return &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeParagraph,
		},
		Paragraph: notionapi.Paragraph{RichText: richText(text)},
	}
}

func bullet(text string) *notionapi.BulletedListItemBlock {
	return &notionapi.BulletedListItemBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeBulletedListItem,
		},
		BulletedListItem: notionapi.ListItem{RichText: richText(text)},
	}
}
