package meeting

import "strings"

// promptFields is the field list sent to the model, one "- name: hint" line each
var promptFields = []string{
	"회의 제목: (회의 제목, 알 수 없다면 빈 문자열)",
	"회의 리드: (회의 진행자 이름)",
	"참석자: (쉼표로 구분된 참석자 목록)",
	"회의 일시: (YYYY-MM-DD 또는 YYYY-MM-DD HH:MM 형식, 알 수 없다면 빈 문자열)",
	"진행 단계: ('시작 전' 또는 '시작 후')",
	"아젠다 사전 공유: (체크된 참석자 목록을 배열 형태로)",
	"회의 목적: (회의 목적 텍스트)",
	"회의 아젠다: (각 아젠다 항목을 객체 배열로 - 항목 제목, 소요시간, 관련 자료 속성 포함)",
	"주요 논의 내용: (각 아젠다 항목별 논의 내용을 객체 배열로 - 아젠다 제목, 논의 내용 배열 속성 포함)",
	"주요 결정 사항: (결정 사항 목록을 객체 배열로 - 제목, 세부 내용 속성 포함)",
	"후속 액션: (후속 조치 목록을 객체 배열로 - 내용, 담당자, 기한 속성 포함)",
	"회의 피드백: (좋았던 점, 개선할 점, 다음 회의 제안 사항을 속성으로 가진 객체)",
	"다음 회의 일정: (일시, 장소, 주요 아젠다를 속성으로 가진 객체)",
}

// BuildPrompt embeds the transcript verbatim in the extraction instruction
func BuildPrompt(transcript string) string {
	var b strings.Builder
	b.WriteString("다음 회의록 텍스트를 분석하여 아래 항목들을 추출하고, JSON 형식으로 정리해줘. ")
	b.WriteString("각 항목의 값이 없다면 빈 문자열(\"\")로 표시해줘.\n\n")
	b.WriteString("회의록 텍스트:\n\"\"\"\n")
	b.WriteString(transcript)
	b.WriteString("\n\"\"\"\n\n")
	b.WriteString("추출 항목:\n")
	for _, field := range promptFields {
		b.WriteString("- ")
		b.WriteString(field)
		b.WriteString("\n")
	}
	b.WriteString("\n결과는 반드시 JSON 형식으로만 반환해야 하며, 다른 설명은 포함하지 마.")
	return b.String()
}
