package event

import "strings"

// Event represents one fixture as returned by the TheSportsDB events endpoints.
// Missing fields decode as empty strings.
type Event struct {
	Name     string `json:"strEvent"`
	HomeTeam string `json:"strHomeTeam"`
	AwayTeam string `json:"strAwayTeam"`
	Date     string `json:"dateEvent"` // YYYY-MM-DD
	Time     string `json:"strTime,omitempty"`
	Sport    string `json:"strSport"`
	League   string `json:"strLeague"`
	Venue    string `json:"strVenue,omitempty"`
}

// Title returns the event name, falling back to "Home vs Away" when the API left it blank.
func (e Event) Title() string {
	if strings.TrimSpace(e.Name) != "" {
		return e.Name
	}
	return e.HomeTeam + " vs " + e.AwayTeam
}

// Response is the envelope shared by the eventsnextleague and eventsseason endpoints.
// Events is nil when the API answers {"events": null}.
type Response struct {
	Events []Event `json:"events"`
}
