package core

import "time"

// Renderer is the display side of the journal. Implementations must tolerate calls
// from timer goroutines as well as from their own event loop.
type Renderer interface {
	RenderDate(text string)
	RenderQuestion(number int, text string)
	RenderAnsweredState()
	RenderMemoryPage(items []MemoryRecord, pages Pagination)
	RenderCalendar(cells []DayCell, year int, month time.Month)
	RenderSaveToast(visible bool)
	RenderFatal(err error)
}
