package entities

// Field names one meeting attribute. Keys lists the canonical key first,
// followed by the older names some prompts produce.
type Field struct {
	Name string
	Keys []string
}

// Key returns the canonical key
func (f Field) Key() string {
	return f.Keys[0]
}

var (
	FieldTitle        = Field{Name: "title", Keys: []string{"회의 제목"}}
	FieldDate         = Field{Name: "date", Keys: []string{"회의 일시", "일자"}}
	FieldLead         = Field{Name: "lead", Keys: []string{"회의 리드"}}
	FieldAttendees    = Field{Name: "attendees", Keys: []string{"참석자"}}
	FieldStage        = Field{Name: "stage", Keys: []string{"진행 단계"}}
	FieldAgendaShared = Field{Name: "agenda_shared", Keys: []string{"아젠다 사전 공유"}}
	FieldPurpose      = Field{Name: "purpose", Keys: []string{"회의 목적"}}
	FieldAgenda       = Field{Name: "agenda", Keys: []string{"회의 아젠다", "주요 안건"}}
	FieldDiscussion   = Field{Name: "discussion", Keys: []string{"주요 논의 내용", "논의된 내용 요약"}}
	FieldDecisions    = Field{Name: "decisions", Keys: []string{"주요 결정 사항", "결정 사항"}}
	FieldFollowUps    = Field{Name: "follow_ups", Keys: []string{"후속 액션", "다음 액션 아이템"}}
	FieldFeedback     = Field{Name: "feedback", Keys: []string{"회의 피드백"}}
	FieldNextMeeting  = Field{Name: "next_meeting", Keys: []string{"다음 회의 일정"}}
)

// Fields lists every known attribute in display order
var Fields = []Field{
	FieldTitle,
	FieldDate,
	FieldLead,
	FieldAttendees,
	FieldStage,
	FieldAgendaShared,
	FieldPurpose,
	FieldAgenda,
	FieldDiscussion,
	FieldDecisions,
	FieldFollowUps,
	FieldFeedback,
	FieldNextMeeting,
}

// Object item keys
const (
	KeyContent         = "내용"
	KeyTitle           = "제목"
	KeyDetail          = "세부 내용"
	KeyOwner           = "담당자"
	KeyDue             = "기한"
	KeyItemTitle       = "항목 제목"
	KeyDuration        = "소요시간"
	KeyMaterials       = "관련 자료"
	KeyAgendaTitle     = "아젠다 제목"
	KeyDiscussionItems = "논의 내용"
	KeyGood            = "좋았던 점"
	KeyImprove         = "개선할 점"
	KeySuggestions     = "다음 회의 제안 사항"
	KeyWhen            = "일시"
	KeyPlace           = "장소"
	KeyMainAgenda      = "주요 아젠다"
)

// Placeholders
const (
	NoInformation = "정보 없음"
	UntitledNotes = "무제 회의록"
)

// MeetingRecord is one parsed extraction result. It lives for a single
// pipeline run.
type MeetingRecord struct {
	Values map[string]Value
	Raw    string
}

// NewMeetingRecord wraps a parsed object together with the text it came from
func NewMeetingRecord(values map[string]Value, raw string) *MeetingRecord {
	if values == nil {
		values = map[string]Value{}
	}
	return &MeetingRecord{Values: values, Raw: raw}
}

// Get returns the first present value among the field's keys
func (r *MeetingRecord) Get(f Field) Value {
	if r == nil {
		return Value{}
	}
	return Object(r.Values).Get(f.Keys...)
}

// Has reports whether the field is present under any of its keys
func (r *MeetingRecord) Has(f Field) bool {
	return r.Get(f).IsPresent()
}

// Title returns the meeting title or the untitled fallback
func (r *MeetingRecord) Title() string {
	return r.Get(FieldTitle).StringOr(UntitledNotes)
}

// MarshalJSON writes the record as the object it was parsed from
func (r *MeetingRecord) MarshalJSON() ([]byte, error) {
	return Object(r.Values).MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler
func (r *MeetingRecord) MarshalYAML() (interface{}, error) {
	return Object(r.Values).Interface(), nil
}
