package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// RecordView is the display form of a record, with placeholders for
// anything the model left out
type RecordView struct {
	Title     string   `json:"title" yaml:"title"`
	Date      string   `json:"date" yaml:"date"`
	Lead      string   `json:"lead" yaml:"lead"`
	Attendees string   `json:"attendees" yaml:"attendees"`
	Purpose   string   `json:"purpose" yaml:"purpose"`
	Agenda    []string `json:"agenda" yaml:"agenda"`
	Decisions []string `json:"decisions" yaml:"decisions"`
	FollowUps []string `json:"follow_ups" yaml:"follow_ups"`
}

// NotesResponse is returned by the process, analyze and latest endpoints
type NotesResponse struct {
	View        *RecordView             `json:"view,omitempty" yaml:"view,omitempty"`
	Record      *entities.MeetingRecord `json:"record,omitempty" yaml:"record,omitempty"`
	RawText     string                  `json:"raw_text,omitempty" yaml:"raw_text,omitempty"`
	PageID      string                  `json:"page_id,omitempty" yaml:"page_id,omitempty"`
	PageURL     string                  `json:"page_url,omitempty" yaml:"page_url,omitempty"`
	Notified    bool                    `json:"notified" yaml:"notified"`
	ProcessedAt time.Time               `json:"processed_at" yaml:"processed_at"`
}
