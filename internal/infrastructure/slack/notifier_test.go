package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

func pageURL(id string) string {
	return "https://notion.so/" + strings.ReplaceAll(id, "-", "")
}

func sampleRecord() *entities.MeetingRecord {
	return entities.NewMeetingRecord(map[string]entities.Value{
		"회의 제목":    entities.Text("2024년 2분기 신제품 개발 회의"),
		"일자":       entities.Text("2024-04-10"),
		"회의 리드":    entities.Text("김팀장"),
		"참석자":      entities.Text("이대표, 김팀장, 박연구원, 최디자이너"),
		"주요 결정 사항": entities.List(
			entities.Object(map[string]entities.Value{
				"제목":    entities.Text("사용자 테스트 그룹 모집 시작"),
				"세부 내용": entities.Text("테스트 참가자 10명 모집"),
			}),
		),
		"후속 액션": entities.List(entities.Text("시연용 데모 안정화 (박연구원)")),
	}, "")
}

type webhookPayload struct {
	Blocks []struct {
		Type string `json:"type"`
		Text *struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"text"`
		Fields []struct {
			Text string `json:"text"`
		} `json:"fields"`
	} `json:"blocks"`
}

func TestNotify_Success(t *testing.T) {
	var payload webhookPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ok := NewNotifier(ts.URL, pageURL, nil).Notify(context.Background(), sampleRecord(), "1234-abcd")
	require.True(t, ok)

	require.Len(t, payload.Blocks, 8)
	assert.Equal(t, "header", payload.Blocks[0].Type)
	assert.Equal(t, "📝 새 회의록: 2024년 2분기 신제품 개발 회의", payload.Blocks[0].Text.Text)
	assert.Equal(t, "*일시:*\n2024-04-10", payload.Blocks[1].Fields[0].Text)
	assert.Equal(t, "*진행자:*\n김팀장", payload.Blocks[1].Fields[1].Text)
	assert.Equal(t, "*참석자:*\n이대표, 김팀장, 박연구원, 최디자이너", payload.Blocks[2].Fields[0].Text)
	assert.Equal(t, "divider", payload.Blocks[3].Type)
	assert.Equal(t, "*주요 결정 사항:*\n• 사용자 테스트 그룹 모집 시작\n", payload.Blocks[4].Text.Text)
	assert.Equal(t, "*후속 액션:*\n• 시연용 데모 안정화 (박연구원)\n", payload.Blocks[5].Text.Text)
	assert.Equal(t, "<https://notion.so/1234abcd|📋 노션에서 회의록 보기>", payload.Blocks[7].Text.Text)
}

func TestNotify_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("invalid_blocks"))
	}))
	defer ts.Close()

	assert.False(t, NewNotifier(ts.URL, pageURL, nil).Notify(context.Background(), sampleRecord(), ""))
}

func TestNotify_NoWebhook(t *testing.T) {
	assert.False(t, NewNotifier("", pageURL, nil).Notify(context.Background(), sampleRecord(), "id"))
}

func TestNotify_TransportError(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	url := ts.URL
	ts.Close()

	assert.False(t, NewNotifier(url, pageURL, nil).Notify(context.Background(), sampleRecord(), ""))
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestBuildBlocks_Placeholders(t *testing.T) {
	blocks := NewNotifier("http://example.invalid", pageURL, nil).
		BuildBlocks(entities.NewMeetingRecord(nil, ""), "")

	require.Len(t, blocks, 4)
	b, err := json.Marshal(blocks[1])
	require.NoError(t, err)
	assert.Contains(t, string(b), entities.NoInformation)

	h, err := json.Marshal(blocks[0])
	require.NoError(t, err)
	assert.Contains(t, string(h), entities.UntitledNotes)
}
