package ui

import (
	"fmt"

	"github.com/sandevgo/daybook/internal/core"
)

// Fixed Korean labels of the journal. There is no other locale.
const (
	AnsweredLabel   = "이미 완료하였습니다."
	NotLoadedLabel  = "오늘의 질문이 로드되지 않았습니다."
	SavedLabel      = "저장되었습니다!"
	EmptyMemories   = "아직 기록이 없습니다."
	SortAscLabel    = "🔼 오름차순"
	SortDescLabel   = "🔽 내림차순"
	questionHeading = "오늘의 질문 #%d번째 질문"
)

// Weekdays are the calendar column headers, Sunday first.
var Weekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

func QuestionHeading(number int) string {
	return fmt.Sprintf(questionHeading, number)
}

// QuestionText falls back to NotLoadedLabel for an empty question.
func QuestionText(q string) string {
	if q == "" {
		return NotLoadedLabel
	}
	return q
}

func SortLabel(o core.SortOrder) string {
	if o == core.SortAsc {
		return SortAscLabel
	}
	return SortDescLabel
}

// MemoryHeading is the one-line title of a memory entry.
func MemoryHeading(r core.MemoryRecord) string {
	return fmt.Sprintf("#%d | %s", r.Number, r.Question)
}

// MonthTitle renders a calendar title such as "2024년 6월".
func MonthTitle(year int, month int) string {
	return fmt.Sprintf("%d년 %d월", year, month)
}
