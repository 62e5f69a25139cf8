package event

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownSport is returned for sport codes outside the catalog.
	ErrUnknownSport = errors.New("unknown sport")
	// ErrUnknownLeague is returned for league codes outside the catalog.
	ErrUnknownLeague = errors.New("unknown league")
)

// AllCode is the form value meaning "no constraint" for sport and league selectors.
const AllCode = "all"

// Sport is one of the sports the site knows how to query and display.
type Sport int

const (
	Football Sport = iota + 1
	Basketball
	Volleyball
)

// Sports lists every sport in display order.
func Sports() []Sport {
	return []Sport{Football, Basketball, Volleyball}
}

// ParseSport maps a form code ("football", "basketball", "volleyball") to a Sport.
func ParseSport(code string) (Sport, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "football":
		return Football, nil
	case "basketball":
		return Basketball, nil
	case "volleyball":
		return Volleyball, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSport, code)
	}
}

// Code returns the form code for the sport.
func (s Sport) Code() string {
	switch s {
	case Football:
		return "football"
	case Basketball:
		return "basketball"
	case Volleyball:
		return "volleyball"
	default:
		return ""
	}
}

// DisplayName is the value TheSportsDB uses in strSport.
func (s Sport) DisplayName() string {
	switch s {
	case Football:
		return "Soccer"
	case Basketball:
		return "Basketball"
	case Volleyball:
		return "Volleyball"
	default:
		return ""
	}
}

// APIID is the identifier passed to eventsseason.php.
func (s Sport) APIID() string {
	switch s {
	case Football:
		return "4328"
	case Basketball:
		return "4387"
	case Volleyball:
		return "4385"
	default:
		return ""
	}
}

// Label is the Portuguese label shown in the sport selector.
func (s Sport) Label() string {
	switch s {
	case Football:
		return "Futebol"
	case Basketball:
		return "Basquetebol"
	case Volleyball:
		return "Voleibol"
	default:
		return ""
	}
}

func (s Sport) String() string {
	return s.Code()
}

// League is one of the competitions the site aggregates.
type League int

const (
	PremierLeague League = iota + 1
	LigaPortugal
	NBA
	ChampionsLeague
)

// DefaultLeagues returns the leagues fetched on load, in fetch order.
func DefaultLeagues() []League {
	return []League{PremierLeague, LigaPortugal, NBA, ChampionsLeague}
}

// ParseLeague maps a form code ("premier", "liga", "nba", "champions") to a League.
func ParseLeague(code string) (League, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "premier":
		return PremierLeague, nil
	case "liga":
		return LigaPortugal, nil
	case "nba":
		return NBA, nil
	case "champions":
		return ChampionsLeague, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLeague, code)
	}
}

// Code returns the form code for the league.
func (l League) Code() string {
	switch l {
	case PremierLeague:
		return "premier"
	case LigaPortugal:
		return "liga"
	case NBA:
		return "nba"
	case ChampionsLeague:
		return "champions"
	default:
		return ""
	}
}

// APIID is the identifier passed to eventsnextleague.php.
func (l League) APIID() string {
	switch l {
	case PremierLeague:
		return "4328"
	case LigaPortugal:
		return "4344"
	case NBA:
		return "4387"
	case ChampionsLeague:
		return "4480"
	default:
		return ""
	}
}

// MatchText is the fragment an event's strLeague must contain to belong to the league.
// Matching is deliberately loose: "Portuguese Liga" also matches "Portuguese Liga 2".
func (l League) MatchText() string {
	switch l {
	case PremierLeague:
		return "English Premier League"
	case LigaPortugal:
		return "Portuguese Liga"
	case NBA:
		return "NBA"
	case ChampionsLeague:
		return "UEFA Champions League"
	default:
		return ""
	}
}

// Label is the text shown in the league selector.
func (l League) Label() string {
	switch l {
	case PremierLeague:
		return "Premier League"
	case LigaPortugal:
		return "Liga Portugal"
	case NBA:
		return "NBA"
	case ChampionsLeague:
		return "Liga dos Campeões"
	default:
		return ""
	}
}

func (l League) String() string {
	return l.Code()
}
