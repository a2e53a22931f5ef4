package core

import (
	"context"
	"fmt"
	"time"
)

const (
	DaybookName    = "daybook"
	DaybookVersion = "0.1.0"

	// AllAnsweredMessage is shown as today's question once every question in the bank has an answer.
	AllAnsweredMessage = "모든 질문에 답하셨습니다!"

	DefaultPageSize = 5
)

// MemoryRecord is one answered question. The JSON shape is the persisted format.
type MemoryRecord struct {
	Number   int       `json:"number" validate:"gte=1"`
	Question string    `json:"question"`
	Answer   string    `json:"answer" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortAsc, SortDesc:
		return SortOrder(s), nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// DayCell is one slot of a month grid. Leading cells before day 1 have Empty set.
type DayCell struct {
	Empty     bool
	Day       int
	IsToday   bool
	HasMemory bool
	// Memory is the earliest record of the day in log order, Count is how many fall on it.
	Memory *MemoryRecord
	Count  int
}

// Pagination describes the page buttons of the memory list.
type Pagination struct {
	Current int
	Count   int
	Sort    SortOrder
}

// ViewState is the session-only projection state owned by the journal controller.
type ViewState struct {
	Sort  SortOrder
	Page  int
	Month time.Time // first day of the calendar month, local time
}

// Command is a slash command of the console view, such as /sort or /page.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args []string) (string, error)
}
