package filter

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pfrederiksen/sports-events/internal/event"
)

// Form field names shared by the HTML form, query strings and CLI flags.
const (
	FieldSport  = "sport"
	FieldLeague = "league"
	FieldDate   = "date"
	FieldTeam   = "team"
)

// ErrInvalidDate is returned when the date field is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// FromValues builds Criteria from form values.
//
// "all" or an empty value leaves sport and league unconstrained. Unknown codes are
// reported with errors wrapping event.ErrUnknownSport or event.ErrUnknownLeague.
func FromValues(values url.Values) (Criteria, error) {
	return Parse(values.Get(FieldSport), values.Get(FieldLeague), values.Get(FieldDate), values.Get(FieldTeam))
}

// Parse builds Criteria from the four raw input strings.
func Parse(sport, league, date, team string) (Criteria, error) {
	var c Criteria

	if code := strings.TrimSpace(sport); code != "" && !strings.EqualFold(code, event.AllCode) {
		s, err := event.ParseSport(code)
		if err != nil {
			return Criteria{}, fmt.Errorf("parsing sport: %w", err)
		}
		c.Sport = &s
	}

	if code := strings.TrimSpace(league); code != "" && !strings.EqualFold(code, event.AllCode) {
		l, err := event.ParseLeague(code)
		if err != nil {
			return Criteria{}, fmt.Errorf("parsing league: %w", err)
		}
		c.League = &l
	}

	if d := strings.TrimSpace(date); d != "" {
		if _, err := time.Parse(event.DateLayout, d); err != nil {
			return Criteria{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, d)
		}
		c.Date = d
	}

	c.Team = strings.TrimSpace(team)

	return c, nil
}

// Values encodes the active criteria as form values, omitting inactive ones.
func (c Criteria) Values() url.Values {
	values := url.Values{}
	if c.Sport != nil {
		values.Set(FieldSport, c.Sport.Code())
	}
	if c.League != nil {
		values.Set(FieldLeague, c.League.Code())
	}
	if c.Date != "" {
		values.Set(FieldDate, c.Date)
	}
	if c.Team != "" {
		values.Set(FieldTeam, c.Team)
	}
	return values
}

// SportCode returns the selected sport's code, or "all".
func (c Criteria) SportCode() string {
	if c.Sport == nil {
		return event.AllCode
	}
	return c.Sport.Code()
}

// LeagueCode returns the selected league's code, or "all".
func (c Criteria) LeagueCode() string {
	if c.League == nil {
		return event.AllCode
	}
	return c.League.Code()
}
