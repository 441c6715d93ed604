package notion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

type fakePages struct {
	calls    int
	requests []*notionapi.PageCreateRequest
	err      error
}

func (f *fakePages) Create(_ context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	f.calls++
	f.requests = append(f.requests, request)
	if f.err != nil {
		return nil, f.err
	}
	return &notionapi.Page{ID: notionapi.ObjectID("1234abcd-5678-90ef")}, nil
}

func testConfig() *config.NotionConfig {
	return &config.NotionConfig{
		APIKey:        "secret_token",
		DatabaseID:    "db-id",
		TitleProperty: "이름",
		PageBaseURL:   "https://notion.so/",
	}
}

func record(values map[string]entities.Value) *entities.MeetingRecord {
	return entities.NewMeetingRecord(values, "")
}

func obj(kv ...string) entities.Value {
	fields := map[string]entities.Value{}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = entities.Text(kv[i+1])
	}
	return entities.Object(fields)
}

func contents(t *testing.T, props notionapi.Properties, name string) []string {
	t.Helper()
	prop, ok := props[name].(notionapi.RichTextProperty)
	require.True(t, ok, "property %s is not rich text", name)
	out := make([]string, 0, len(prop.RichText))
	for _, rt := range prop.RichText {
		out = append(out, rt.Text.Content)
	}
	return out
}

func TestWrite_NotConfiguredMakesNoCalls(t *testing.T) {
	for _, cfg := range []*config.NotionConfig{
		{DatabaseID: "db-id"},
		{APIKey: "secret_token"},
	} {
		pages := &fakePages{}
		w := NewWriter(cfg, pages, nil)

		_, err := w.Write(context.Background(), record(nil))

		assert.ErrorIs(t, err, ErrNotionNotConfigured)
		assert.Zero(t, pages.calls)
	}
}

func TestWrite_ReturnsPageID(t *testing.T) {
	pages := &fakePages{}
	w := NewWriter(testConfig(), pages, nil)

	id, err := w.Write(context.Background(), record(map[string]entities.Value{
		"회의 제목": entities.Text("주간 회의"),
	}))
	require.NoError(t, err)

	assert.Equal(t, "1234abcd-5678-90ef", id)
	assert.Equal(t, 1, pages.calls)
	assert.Equal(t, "https://notion.so/1234abcd567890ef", w.PageURL(id))

	req := pages.requests[0]
	assert.Equal(t, notionapi.DatabaseID("db-id"), req.Parent.DatabaseID)
	title := req.Properties["이름"].(notionapi.TitleProperty)
	assert.Equal(t, "주간 회의", title.Title[0].Text.Content)
}

func TestWrite_WrapsAPIError(t *testing.T) {
	boom := errors.New("validation_error")
	w := NewWriter(testConfig(), &fakePages{err: boom}, nil)

	_, err := w.Write(context.Background(), record(nil))
	assert.ErrorIs(t, err, boom)
}

func TestBuildRequest_TitleFallback(t *testing.T) {
	req := NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"회의 제목": entities.Text(""),
	}))

	title := req.Properties["이름"].(notionapi.TitleProperty)
	assert.Equal(t, entities.UntitledNotes, title.Title[0].Text.Content)
	assert.NotContains(t, req.Properties, PropertyDate)
	assert.NotContains(t, req.Properties, PropertyAttendees)
}

func TestBuildRequest_DecisionsNumberedRuns(t *testing.T) {
	req := NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"결정 사항": entities.List(obj("제목", "A", "세부 내용", "B"), obj("제목", "C")),
	}))

	assert.Equal(t, []string{"1. A", "\n", "2. C", "\n"}, contents(t, req.Properties, "결정 사항"))
}

func TestBuildRequest_ActionItemsWithOwner(t *testing.T) {
	req := NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"다음 액션 아이템": entities.List(
			obj("내용", "데모 점검", "담당자", "박연구원", "기한", "2024-04-17"),
			entities.Text("공유"),
		),
	}))

	assert.Equal(t,
		[]string{"1. 데모 점검 (담당자: 박연구원, 기한: 2024-04-17)", "\n", "2. 공유", "\n"},
		contents(t, req.Properties, "다음 액션 아이템"))
}

func TestBuildRequest_EmptyListKeepsProperty(t *testing.T) {
	req := NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"결정 사항":     entities.List(),
		"다음 액션 아이템": entities.List(),
	}))

	assert.Equal(t, []string{""}, contents(t, req.Properties, "결정 사항"))
	assert.Equal(t, []string{""}, contents(t, req.Properties, "다음 액션 아이템"))
}

func TestBuildRequest_TextFieldsVerbatim(t *testing.T) {
	req := NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"결정 사항":     entities.Text("B안으로 결정"),
		"논의된 내용 요약": entities.Text("출시 목표는 5월 중순"),
		"주요 안건":     entities.List(entities.Text("리뷰"), entities.Text("일정")),
		"참석자":       entities.List(entities.Text("이대표"), entities.Text("김팀장")),
	}))

	assert.Equal(t, []string{"B안으로 결정"}, contents(t, req.Properties, "결정 사항"))
	assert.Equal(t, []string{"출시 목표는 5월 중순"}, contents(t, req.Properties, "논의 내용 요약"))
	assert.Equal(t, []string{"1. 리뷰\n2. 일정\n"}, contents(t, req.Properties, "주요 안건"))
	assert.Equal(t, []string{"이대표, 김팀장"}, contents(t, req.Properties, PropertyAttendees))
}

func TestBuildRequest_DateSentAsWritten(t *testing.T) {
	tests := map[string]string{
		"2024-04-10":          `{"type":"date","date":{"start":"2024-04-10"}}`,
		"2024-04-10 14:00":    `{"type":"date","date":{"start":"2024-04-10T14:00"}}`,
		"2024-04-10T14:00:30": `{"type":"date","date":{"start":"2024-04-10T14:00:30"}}`,
	}
	for in, want := range tests {
		req := NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
			"회의 일시": entities.Text(in),
		}))

		prop, ok := req.Properties[PropertyDate]
		require.True(t, ok, in)
		assert.Equal(t, notionapi.PropertyTypeDate, prop.GetType())

		b, err := json.Marshal(prop)
		require.NoError(t, err)
		assert.JSONEq(t, want, string(b), in)
	}

	req := NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"회의 일시": entities.Text("2024년 4월 10일 오후 2시"),
	}))
	assert.NotContains(t, req.Properties, PropertyDate)
}

func TestBuildRequest_DateHasNoZoneOnTheWire(t *testing.T) {
	req := NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"회의 일시": entities.Text("2024-04-10 14:00"),
	}))

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"start":"2024-04-10T14:00"`)
	assert.NotContains(t, string(b), "14:00:00Z")
}

func TestRichText_SplitsLongContent(t *testing.T) {
	long := strings.Repeat("가", maxRunLength*2+5)

	runs := richText(long)
	require.Len(t, runs, 3)
	assert.Len(t, []rune(runs[0].Text.Content), maxRunLength)
	assert.Len(t, []rune(runs[2].Text.Content), 5)
}

func TestBuildRequest_ManyDecisionsStayWithinRunLimit(t *testing.T) {
	items := func(n int) entities.Value {
		list := make([]entities.Value, 0, n)
		for i := 1; i <= n; i++ {
			list = append(list, entities.Text(fmt.Sprintf("결정 %d", i)))
		}
		return entities.List(list...)
	}

	req := NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"결정 사항": items(50),
	}))
	got := contents(t, req.Properties, "결정 사항")
	require.Len(t, got, maxRuns)
	assert.Equal(t, []string{"1. 결정 1", "\n"}, got[:2])

	req = NewWriter(testConfig(), &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"결정 사항": items(60),
	}))
	got = contents(t, req.Properties, "결정 사항")
	assert.LessOrEqual(t, len(got), maxRuns)

	var want strings.Builder
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&want, "%d. 결정 %d\n", i, i)
	}
	assert.Equal(t, want.String(), strings.Join(got, ""))
}

func TestRichText_CapsRunCount(t *testing.T) {
	runs := richText(strings.Repeat("a", maxRunLength*(maxRuns+3)))
	assert.Len(t, runs, maxRuns)
}

func TestBuildRequest_Body(t *testing.T) {
	cfg := testConfig()
	cfg.WriteBody = true
	req := NewWriter(cfg, &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"회의 목적":    entities.Text("출시 점검"),
		"회의 아젠다":   entities.List(obj("항목 제목", "리뷰", "소요시간", "10분")),
		"다음 회의 일정": obj("일시", "2024-04-17", "장소", ""),
	}))

	require.Len(t, req.Children, 6)
	h, ok := req.Children[0].(*notionapi.Heading2Block)
	require.True(t, ok)
	assert.Equal(t, "회의 목적", h.Heading2.RichText[0].Text.Content)

	agenda := req.Children[3].(*notionapi.BulletedListItemBlock)
	assert.Equal(t, "리뷰 (소요시간: 10분)", agenda.BulletedListItem.RichText[0].Text.Content)

	next := req.Children[5].(*notionapi.BulletedListItemBlock)
	assert.Equal(t, "일시: 2024-04-17", next.BulletedListItem.RichText[0].Text.Content)

	cfg.WriteBody = false
	req = NewWriter(cfg, &fakePages{}, nil).BuildRequest(record(map[string]entities.Value{
		"회의 목적": entities.Text("출시 점검"),
	}))
	assert.Empty(t, req.Children)
}

func TestBuildBody_NoTrailingHeadingAtBlockLimit(t *testing.T) {
	agenda := make([]entities.Value, 0, maxChildren)
	for i := 0; i < maxChildren-3; i++ {
		agenda = append(agenda, entities.Text(fmt.Sprintf("안건 %d", i+1)))
	}

	blocks := buildBody(record(map[string]entities.Value{
		"회의 목적":    entities.Text("점검"),
		"회의 아젠다":   entities.List(agenda...),
		"주요 논의 내용": entities.Text("논의"),
		"회의 피드백":   obj("좋았던 점", "빠른 진행"),
	}))

	// purpose (2) + agenda (1 + 97) fills the request; later sections are dropped whole
	require.Len(t, blocks, maxChildren)
	_, isHeading := blocks[len(blocks)-1].(*notionapi.Heading2Block)
	assert.False(t, isHeading)

	agenda = append(agenda, entities.Text("넘침 1"), entities.Text("넘침 2"), entities.Text("넘침 3"))
	blocks = buildBody(record(map[string]entities.Value{
		"회의 아젠다":   entities.List(agenda...),
		"주요 논의 내용": entities.Text("논의"),
	}))
	require.Len(t, blocks, maxChildren)
	for _, b := range blocks[1:] {
		_, isHeading := b.(*notionapi.Heading2Block)
		assert.False(t, isHeading)
	}
}

func TestNormalizeDate(t *testing.T) {
	valid := map[string]string{
		"2024-04-10":          "2024-04-10",
		" 2024-04-10 14:00 ":  "2024-04-10T14:00",
		"2024-04-10T14:00:30": "2024-04-10T14:00:30",
	}
	for in, want := range valid {
		got, err := NormalizeDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "2024/04/10", "4월 10일", "2024-04-10 14:00 KST", "2024-13-01"} {
		_, err := NormalizeDate(in)
		assert.ErrorIs(t, err, ErrUnrecognizedDate, in)
	}
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "https://notion.so/abc123", PageURL("https://notion.so", "abc-123"))
	assert.Equal(t, "", PageURL("https://notion.so/", ""))
}
