package cli

import (
	"sort"
	"strings"
	"time"

	"github.com/pfrederiksen/sports-events/internal/aggregator"
	"github.com/pfrederiksen/sports-events/internal/event"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate   SortOrder = "date"
	SortByLeague SortOrder = "league"
	SortByTitle  SortOrder = "title"
)

// Valid reports whether s is a known sort order.
func (s SortOrder) Valid() bool {
	switch s {
	case SortByDate, SortByLeague, SortByTitle:
		return true
	}
	return false
}

// sortEvents sorts a slice of events based on the specified sort order.
// Ties fall back to date order, which the aggregator already established.
func sortEvents(events []event.Event, sortOrder SortOrder, loc *time.Location) {
	switch sortOrder {
	case SortByDate:
		aggregator.SortByDate(events, loc)
	case SortByLeague:
		aggregator.SortByDate(events, loc)
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].League < events[j].League
		})
	case SortByTitle:
		aggregator.SortByDate(events, loc)
		sort.SliceStable(events, func(i, j int) bool {
			return strings.ToLower(events[i].Title()) < strings.ToLower(events[j].Title())
		})
	}
}
