package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/sports-events/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// NoEventsMessage is printed when the filters leave nothing to show.
const NoEventsMessage = "Nenhum evento encontrado com os filtros aplicados."

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Filters     string        `json:"filters"`
	Page        int           `json:"page"`
	TotalPages  int           `json:"total_pages"`
	Total       int           `json:"total"`
	Events      []event.Event `json:"events"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	out := *result
	if out.Events == nil {
		out.Events = []event.Event{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if verbose {
		fmt.Fprintf(w, "Filters: %s\n\n", result.Filters)
	}

	if result.Total == 0 {
		fmt.Fprintln(w, NoEventsMessage)
		return nil
	}

	for _, evt := range result.Events {
		date := event.FormatDate(evt.Date)
		fmt.Fprintf(w, "%s %s  %-9s  %s (%s)\n", date.Day, date.Month, event.FormatTime(evt.Time), evt.Title(), evt.League)
		if verbose {
			fmt.Fprintf(w, "       Sport: %s\n", evt.Sport)
			if evt.Venue != "" {
				fmt.Fprintf(w, "       Venue: %s\n", evt.Venue)
			}
			fmt.Fprintf(w, "       Date: %s\n", evt.Date)
		}
	}

	fmt.Fprintf(w, "\nPágina %d de %d (%d eventos)\n", result.Page, result.TotalPages, result.Total)
	return nil
}
