// Package projector derives the visible memory page and the month calendar
// from the memory log. Everything here is pure.
package projector

import (
	"slices"
	"time"

	"github.com/sandevgo/daybook/internal/core"
)

// SortedView returns a copy of records ordered by number. Equal numbers keep
// their log order in both directions.
func SortedView(records []core.MemoryRecord, order core.SortOrder) []core.MemoryRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b core.MemoryRecord) int {
		if order == core.SortAsc {
			return a.Number - b.Number
		}
		return b.Number - a.Number
	})
	return sorted
}

// PageCount is ceil(total/pageSize), zero for an empty log.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate slices out 1-based page of sorted. A page outside 1..pageCount
// yields no items.
func Paginate(sorted []core.MemoryRecord, page, pageSize int) ([]core.MemoryRecord, int) {
	count := PageCount(len(sorted), pageSize)
	if page < 1 || page > count {
		return nil, count
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(sorted))
	return slices.Clone(sorted[start:end]), count
}

// CalendarGrid lays out month as weekday-aligned cells, Sunday first. Record
// dates are compared as calendar days in loc.
func CalendarGrid(records []core.MemoryRecord, year int, month time.Month, now time.Time, loc *time.Location) []core.DayCell {
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	byDay := make(map[int][]int, len(records))
	for i, r := range records {
		d := r.Date.In(loc)
		if d.Year() == year && d.Month() == month {
			byDay[d.Day()] = append(byDay[d.Day()], i)
		}
	}

	today := now.In(loc)
	cells := make([]core.DayCell, 0, offset+days)
	for range offset {
		cells = append(cells, core.DayCell{Empty: true})
	}

	for day := 1; day <= days; day++ {
		cell := core.DayCell{
			Day:     day,
			IsToday: today.Year() == year && today.Month() == month && today.Day() == day,
		}
		if idx := byDay[day]; len(idx) > 0 {
			rec := records[idx[0]]
			cell.HasMemory = true
			cell.Memory = &rec
			cell.Count = len(idx)
		}
		cells = append(cells, cell)
	}

	return cells
}
