// Package filter narrows the aggregated event list to the user's selections.
//
// Criteria combine four independent constraints, all of which must hold:
//   - Sport: exact match of the event's sport against the sport's API display name
//   - League: the event's league name contains the league's match text
//   - Date: exact string match against the event's YYYY-MM-DD date
//   - Team: case-insensitive substring of the title, home team or away team
//
// Example usage:
//
//	c, err := filter.FromValues(r.URL.Query())
//	if err != nil {
//	    // unknown sport/league code or malformed date
//	}
//	visible := c.Apply(all)
package filter

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/sports-events/internal/event"
)

// Criteria represents the active filter selections. The zero value matches everything.
type Criteria struct {
	Sport  *event.Sport  `json:"sport,omitempty"`
	League *event.League `json:"league,omitempty"`
	Date   string        `json:"date,omitempty"` // YYYY-MM-DD
	Team   string        `json:"team,omitempty"`
}

// IsEmpty checks if the criteria have any active constraint.
func (c Criteria) IsEmpty() bool {
	return c.Sport == nil &&
		c.League == nil &&
		c.Date == "" &&
		strings.TrimSpace(c.Team) == ""
}

// Matches checks if an event satisfies every active constraint.
// Missing event fields are compared as empty strings.
func (c Criteria) Matches(evt event.Event) bool {
	if c.Sport != nil && evt.Sport != c.Sport.DisplayName() {
		return false
	}

	if c.League != nil && !strings.Contains(evt.League, c.League.MatchText()) {
		return false
	}

	if c.Date != "" && evt.Date != c.Date {
		return false
	}

	if team := strings.ToLower(strings.TrimSpace(c.Team)); team != "" {
		name := strings.ToLower(evt.Name)
		home := strings.ToLower(evt.HomeTeam)
		away := strings.ToLower(evt.AwayTeam)
		if !strings.Contains(name, team) && !strings.Contains(home, team) && !strings.Contains(away, team) {
			return false
		}
	}

	return true
}

// Apply returns the matching events in their original order.
// The result never shares a backing array with events.
func (c Criteria) Apply(events []event.Event) []event.Event {
	filtered := make([]event.Event, 0, len(events))
	for _, evt := range events {
		if c.Matches(evt) {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}

// String returns a human-readable description of the active criteria.
// Format: "Sport: Soccer | League: NBA | Date: 2026-10-20 | Team: united"
func (c Criteria) String() string {
	if c.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if c.Sport != nil {
		parts = append(parts, fmt.Sprintf("Sport: %s", c.Sport.DisplayName()))
	}

	if c.League != nil {
		parts = append(parts, fmt.Sprintf("League: %s", c.League.MatchText()))
	}

	if c.Date != "" {
		parts = append(parts, fmt.Sprintf("Date: %s", c.Date))
	}

	if team := strings.TrimSpace(c.Team); team != "" {
		parts = append(parts, fmt.Sprintf("Team: %s", team))
	}

	return strings.Join(parts, " | ")
}
