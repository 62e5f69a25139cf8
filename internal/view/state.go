package view

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pfrederiksen/sports-events/internal/filter"
)

// DefaultPageSize is the number of events per page.
const DefaultPageSize = 12

// Query parameters owned by the view state (filter fields are owned by package filter).
const (
	ParamPage = "page"
	ParamView = "view"
)

// Mode selects one of the two layouts.
type Mode string

const (
	ModeList Mode = "list"
	ModeGrid Mode = "grid"
)

// Modes lists the layouts in toggle order.
func Modes() []Mode {
	return []Mode{ModeList, ModeGrid}
}

// ParseMode maps a data-view value to a Mode. Unknown values report ok=false.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeList:
		return ModeList, true
	case ModeGrid:
		return ModeGrid, true
	default:
		return ModeList, false
	}
}

// Label is the toggle button text.
func (m Mode) Label() string {
	if m == ModeGrid {
		return "Grelha"
	}
	return "Lista"
}

// Icon is the toggle button icon.
func (m Mode) Icon() string {
	if m == ModeGrid {
		return "fa-th"
	}
	return "fa-list"
}

// State is the view state of one page of the event listing.
type State struct {
	Page     int
	PageSize int
	Mode     Mode
	Criteria filter.Criteria
}

// NewState returns the initial state: page 1, list layout, no filters.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{Page: 1, PageSize: pageSize, Mode: ModeList}
}

// WithCriteria applies new filters and returns to page 1.
func (s State) WithCriteria(c filter.Criteria) State {
	s.Criteria = c
	s.Page = 1
	return s
}

// Reset clears the filters and returns to page 1, keeping the layout.
func (s State) Reset() State {
	return s.WithCriteria(filter.Criteria{})
}

// WithMode switches layout, keeping page and filters.
func (s State) WithMode(m Mode) State {
	s.Mode = m
	return s
}

// Next moves one page forward if total events leave room for it.
func (s State) Next(total int) State {
	if s.Page < TotalPages(total, s.PageSize) {
		s.Page++
	}
	return s
}

// Prev moves one page back, stopping at page 1.
func (s State) Prev() State {
	if s.Page > 1 {
		s.Page--
	}
	return s
}

// Clamp forces Page into 1..TotalPages(total), or 1 when there are no events.
func (s State) Clamp(total int) State {
	s.Page = clampPage(s.Page, TotalPages(total, s.PageSize))
	return s
}

// Values encodes the state as query values. Defaults (page 1, list) are omitted.
func (s State) Values() url.Values {
	values := s.Criteria.Values()
	if s.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(s.Page))
	}
	if s.Mode == ModeGrid {
		values.Set(ParamView, string(s.Mode))
	}
	return values
}

// URL returns path with the state encoded in the query string.
func (s State) URL(path string) string {
	encoded := s.Values().Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// ParseState decodes a state from query values.
// A missing or malformed page becomes 1; an unknown view becomes the list layout.
// Filter errors are returned as-is, with the rest of the state still decoded.
func ParseState(values url.Values, pageSize int) (State, error) {
	s := NewState(pageSize)

	if page, err := strconv.Atoi(values.Get(ParamPage)); err == nil && page > 0 {
		s.Page = page
	}
	s.Mode, _ = ParseMode(values.Get(ParamView))

	c, err := filter.FromValues(values)
	if err != nil {
		return s, err
	}
	s.Criteria = c
	return s, nil
}
