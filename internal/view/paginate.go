package view

import "github.com/pfrederiksen/sports-events/internal/event"

// Page is one slice of the filtered events plus the pagination control state.
type Page struct {
	Items      []event.Event
	Number     int
	Size       int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	StartIndex int // 1-based position of the first item, 0 when empty
	EndIndex   int
}

// TotalPages returns ceil(total/size).
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

func clampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns page number `page` of events, clamped into range.
func Paginate(events []event.Event, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(events)
	totalPages := TotalPages(total, size)
	page = clampPage(page, totalPages)

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	p := Page{
		Items:      events[start:end:end],
		Number:     page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if end > start {
		p.StartIndex = start + 1
		p.EndIndex = end
	}
	return p
}
