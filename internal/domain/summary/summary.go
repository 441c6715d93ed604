package summary

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Style selects how list items are marked
type Style int

const (
	Numbered Style = iota
	Bulleted
)

// Marker returns the prefix for the item at zero-based index i
func (s Style) Marker(i int) string {
	if s == Bulleted {
		return "• "
	}
	return fmt.Sprintf("%d. ", i+1)
}

// contentKeys is the lookup order for the main text of an object item
var contentKeys = []string{
	entities.KeyContent,
	entities.KeyTitle,
	entities.KeyItemTitle,
	entities.KeyAgendaTitle,
}

// Item renders one list entry without its marker. Object items show their
// content followed by "(담당자: X, 기한: Y)" when either part is known.
func Item(v entities.Value) string {
	switch v.Kind {
	case entities.KindText:
		return strings.TrimSpace(v.Text)
	case entities.KindList:
		return v.String()
	case entities.KindObject:
		return objectItem(v)
	}
	return ""
}

func objectItem(v entities.Value) string {
	content := v.Get(contentKeys...).String()

	if points := v.Get(entities.KeyDiscussionItems); points.IsPresent() {
		if content == "" {
			content = points.String()
		} else {
			content += ": " + points.String()
		}
	}

	var extra []string
	if owner := v.Get(entities.KeyOwner); owner.IsPresent() {
		extra = append(extra, "담당자: "+owner.String())
	}
	if due := v.Get(entities.KeyDue); due.IsPresent() {
		extra = append(extra, "기한: "+due.String())
	}
	if len(extra) > 0 {
		content += " (" + strings.Join(extra, ", ") + ")"
	}
	return content
}

// Lines renders every item of a list value with its marker. Non-list
// values render as a single unmarked line; absent values render nothing.
func Lines(v entities.Value, style Style) []string {
	switch v.Kind {
	case entities.KindList:
		lines := make([]string, 0, len(v.List))
		for i, item := range v.List {
			lines = append(lines, style.Marker(i)+Item(item))
		}
		return lines
	case entities.KindText, entities.KindObject:
		if !v.IsPresent() {
			return nil
		}
		return []string{Item(v)}
	}
	return nil
}

// Block joins Lines with every line newline-terminated
func Block(v entities.Value, style Style) string {
	var b strings.Builder
	for _, line := range Lines(v, style) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
