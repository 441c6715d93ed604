package summary

import (
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Entry binds a record field to the label a sink shows for it
type Entry struct {
	Field entities.Field
	Label string
}

// FieldSet is the subset of a record one sink renders, and how
type FieldSet struct {
	Style   Style
	Entries []Entry
}

// Section is one rendered entry
type Section struct {
	Label string
	Value entities.Value
	Lines []string
}

// IsList reports whether the section came from a list value
func (s Section) IsList() bool {
	return s.Value.Kind == entities.KindList
}

// Text returns the lines joined and newline-terminated
func (s Section) Text() string {
	out := ""
	for _, line := range s.Lines {
		out += line + "\n"
	}
	return out
}

// Render returns a section for each entry present in the record, in the
// order the field set lists them.
func Render(record *entities.MeetingRecord, set FieldSet) []Section {
	sections := make([]Section, 0, len(set.Entries))
	for _, entry := range set.Entries {
		v := record.Get(entry.Field)
		if !v.IsPresent() {
			continue
		}
		sections = append(sections, Section{
			Label: entry.Label,
			Value: v,
			Lines: Lines(v, set.Style),
		})
	}
	return sections
}

// Field sets for the two sinks
var (
	NotionItems = FieldSet{
		Style: Numbered,
		Entries: []Entry{
			{Field: entities.FieldDecisions, Label: "결정 사항"},
			{Field: entities.FieldFollowUps, Label: "다음 액션 아이템"},
		},
	}

	NotionText = FieldSet{
		Style: Numbered,
		Entries: []Entry{
			{Field: entities.FieldAgenda, Label: "주요 안건"},
			{Field: entities.FieldDiscussion, Label: "논의 내용 요약"},
		},
	}

	SlackHighlights = FieldSet{
		Style: Bulleted,
		Entries: []Entry{
			{Field: entities.FieldDecisions, Label: "주요 결정 사항"},
			{Field: entities.FieldFollowUps, Label: "후속 액션"},
		},
	}
)
