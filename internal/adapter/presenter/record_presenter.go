package presenter

import (
	"time"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/summary"
	meetingUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
)

// ToRecordView converts a record to its display form
func ToRecordView(r *entities.MeetingRecord) *meeting.RecordView {
	if r == nil {
		return nil
	}

	return &meeting.RecordView{
		Title:     r.Get(entities.FieldTitle).StringOr(entities.NoInformation),
		Date:      r.Get(entities.FieldDate).StringOr(entities.NoInformation),
		Lead:      r.Get(entities.FieldLead).StringOr(entities.NoInformation),
		Attendees: r.Get(entities.FieldAttendees).StringOr(entities.NoInformation),
		Purpose:   r.Get(entities.FieldPurpose).StringOr(entities.NoInformation),
		Agenda:    linesOr(r.Get(entities.FieldAgenda), "아젠다 "+entities.NoInformation),
		Decisions: linesOr(r.Get(entities.FieldDecisions), "결정 사항 "+entities.NoInformation),
		FollowUps: linesOr(r.Get(entities.FieldFollowUps), "후속 액션 "+entities.NoInformation),
	}
}

// ToNotesResponse converts a pipeline result to the API response
func ToNotesResponse(result *meetingUsecase.Result, processedAt time.Time) *meeting.NotesResponse {
	if result == nil {
		return nil
	}

	return &meeting.NotesResponse{
		View:        ToRecordView(result.Record),
		Record:      result.Record,
		RawText:     result.RawText,
		PageID:      result.PageID,
		PageURL:     result.PageURL,
		Notified:    result.Notified,
		ProcessedAt: processedAt,
	}
}

func linesOr(v entities.Value, fallback string) []string {
	lines := summary.Lines(v, summary.Numbered)
	if len(lines) == 0 {
		return []string{fallback}
	}
	return lines
}
