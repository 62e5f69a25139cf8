package event

import (
	"fmt"
	"time"
)

// TimeToBeDecided is shown when an event has no kick-off time yet.
const TimeToBeDecided = "A definir"

var monthAbbrev = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// DateParts holds the day and month fragments displayed on an event card.
type DateParts struct {
	Day   string
	Month string
}

// FormatDate splits a dateEvent value into a zero-padded day and a Portuguese month abbreviation.
// Unparsable input yields {"NaN", "Invalid Date"} rather than failing.
func FormatDate(dateText string) DateParts {
	t := ParseDate(dateText, time.UTC)
	if t.IsZero() {
		return DateParts{Day: "NaN", Month: "Invalid Date"}
	}
	return DateParts{
		Day:   fmt.Sprintf("%02d", t.Day()),
		Month: monthAbbrev[t.Month()-1],
	}
}

// FormatTime trims a strTime value to HH:MM, or returns TimeToBeDecided when absent.
func FormatTime(timeText string) string {
	if timeText == "" {
		return TimeToBeDecided
	}
	if len(timeText) <= 5 {
		return timeText
	}
	return timeText[:5]
}

// SportIcon returns the Font Awesome icon for a strSport value.
func SportIcon(sportName string) string {
	switch sportName {
	case "Soccer":
		return "fa-futbol"
	case "Basketball":
		return "fa-basketball-ball"
	case "Volleyball":
		return "fa-volleyball-ball"
	default:
		return "fa-calendar"
	}
}
