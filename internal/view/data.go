package view

import (
	"github.com/pfrederiksen/sports-events/internal/event"
	"github.com/pfrederiksen/sports-events/internal/filter"
)

// Routes the templates link to.
const (
	EventsPath   = "/events"
	ResetPath    = "/events/reset"
	CalendarPath = "/events.ics"
	ContactPath  = "/contact"
)

// LoadingRefresh is how often, in seconds, the loading page reloads itself.
const LoadingRefresh = 2

// Option is one entry of a select input.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// ModeLink is one layout toggle button.
type ModeLink struct {
	Mode   Mode
	Label  string
	Icon   string
	URL    string
	Active bool
}

// Card is an event prepared for display.
type Card struct {
	Title  string
	Day    string
	Month  string
	Time   string
	Icon   string
	Sport  string
	League string
	Venue  string
}

// NewCard formats an event for either layout.
func NewCard(evt event.Event) Card {
	date := event.FormatDate(evt.Date)
	return Card{
		Title:  evt.Title(),
		Day:    date.Day,
		Month:  date.Month,
		Time:   event.FormatTime(evt.Time),
		Icon:   event.SportIcon(evt.Sport),
		Sport:  evt.Sport,
		League: evt.League,
		Venue:  evt.Venue,
	}
}

// EventsData is everything the events page and its partial need.
type EventsData struct {
	Title    string
	State    State
	Page     Page
	Cards    []Card
	Loading  bool
	Error    string
	Summary  string
	Team     string
	Date     string
	Sports   []Option
	Leagues  []Option
	Modes    []ModeLink
	PrevURL  string
	NextURL  string
	ResetURL string
	ICSURL   string
}

// Empty reports whether the empty-state block replaces the listing.
func (d EventsData) Empty() bool {
	return !d.Loading && d.Page.Total == 0
}

// Refresh is the meta refresh delay in seconds, 0 for none.
func (d EventsData) Refresh() int {
	if d.Loading {
		return LoadingRefresh
	}
	return 0
}

// ListMode reports whether the list layout is active.
func (d EventsData) ListMode() bool {
	return d.State.Mode != ModeGrid
}

// NewEventsData paginates the already filtered events for state.
// The returned State has its page clamped into range.
func NewEventsData(state State, filtered []event.Event) EventsData {
	state = state.Clamp(len(filtered))
	page := Paginate(filtered, state.Page, state.PageSize)

	d := baseEventsData(state)
	d.Page = page
	d.Cards = make([]Card, 0, len(page.Items))
	for _, evt := range page.Items {
		d.Cards = append(d.Cards, NewCard(evt))
	}

	if page.HasPrev {
		d.PrevURL = state.Prev().URL(EventsPath) + "#top"
	}
	if page.HasNext {
		d.NextURL = state.Next(len(filtered)).URL(EventsPath) + "#top"
	}
	return d
}

// NewLoadingData is shown while the initial fetch is still running.
func NewLoadingData(state State) EventsData {
	d := baseEventsData(state)
	d.Loading = true
	return d
}

func baseEventsData(state State) EventsData {
	d := EventsData{
		Title:   "Eventos Desportivos",
		State:   state,
		Team:    state.Criteria.Team,
		Date:    state.Criteria.Date,
		Sports:  sportOptions(state.Criteria),
		Leagues: leagueOptions(state.Criteria),
		ICSURL:  state.URL(CalendarPath),
	}

	if !state.Criteria.IsEmpty() {
		d.Summary = state.Criteria.String()
	}

	reset := NewState(state.PageSize).WithMode(state.Mode)
	d.ResetURL = reset.URL(ResetPath)

	for _, m := range Modes() {
		d.Modes = append(d.Modes, ModeLink{
			Mode:   m,
			Label:  m.Label(),
			Icon:   m.Icon(),
			URL:    state.WithMode(m).URL(EventsPath),
			Active: state.Mode == m,
		})
	}
	return d
}

func sportOptions(c filter.Criteria) []Option {
	selected := c.SportCode()
	opts := []Option{{Value: event.AllCode, Label: "Todos os desportos", Selected: selected == event.AllCode}}
	for _, s := range event.Sports() {
		opts = append(opts, Option{Value: s.Code(), Label: s.Label(), Selected: selected == s.Code()})
	}
	return opts
}

func leagueOptions(c filter.Criteria) []Option {
	selected := c.LeagueCode()
	opts := []Option{{Value: event.AllCode, Label: "Todas as ligas", Selected: selected == event.AllCode}}
	for _, l := range event.DefaultLeagues() {
		opts = append(opts, Option{Value: l.Code(), Label: l.Label(), Selected: selected == l.Code()})
	}
	return opts
}
