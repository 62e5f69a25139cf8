package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/pfrederiksen/sports-events/internal/aggregator"
	"github.com/pfrederiksen/sports-events/internal/calendar"
	"github.com/pfrederiksen/sports-events/internal/event"
	"github.com/pfrederiksen/sports-events/internal/filter"
	"github.com/pfrederiksen/sports-events/internal/logger"
	"github.com/pfrederiksen/sports-events/internal/view"
)

// CalendarFilename is suggested to browsers downloading the iCalendar export.
const CalendarFilename = "eventos.ics"

// EventsResponse is the JSON body of /api/events.
type EventsResponse struct {
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
	Events     []event.Event `json:"events"`
}

// HealthResponse is the JSON body of /healthz.
type HealthResponse struct {
	Status   string     `json:"status"`
	Loaded   bool       `json:"loaded"`
	Events   int        `json:"events"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listing is one request's view state applied to the catalog.
type listing struct {
	state    view.State
	filtered []event.Event
	loaded   bool
	err      error
}

// listingFor decodes the view state from the query string and filters the
// catalog's events that are still upcoming. An invalid filter leaves the
// criteria empty and is reported in err.
func (s *Server) listingFor(r *http.Request) listing {
	state, err := view.ParseState(r.URL.Query(), s.pageSize)
	l := listing{state: state, err: err}

	events, loaded := s.catalog.Snapshot()
	if !loaded {
		return l
	}
	l.loaded = true
	upcoming := aggregator.Upcoming(events, s.now().In(s.location))
	l.filtered = state.Criteria.Apply(upcoming)
	return l
}

func (s *Server) eventsData(l listing) (view.EventsData, int) {
	if !l.loaded {
		return view.NewLoadingData(l.state), http.StatusOK
	}
	data := view.NewEventsData(l.state, l.filtered)
	if l.err != nil {
		data.Error = filterErrorMessage(l.err)
		return data, http.StatusBadRequest
	}
	return data, http.StatusOK
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	data, status := s.eventsData(s.listingFor(r))
	s.writeHTML(w, r, status, func(out io.Writer) error {
		return s.renderer.RenderPage(out, data)
	})
}

func (s *Server) handlePartial(w http.ResponseWriter, r *http.Request) {
	data, status := s.eventsData(s.listingFor(r))
	s.writeHTML(w, r, status, func(out io.Writer) error {
		return s.renderer.RenderEvents(out, data)
	})
}

// handleReset clears the filters, keeping only the layout.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	state, _ := view.ParseState(r.URL.Query(), s.pageSize)
	http.Redirect(w, r, state.Reset().URL(view.EventsPath), http.StatusSeeOther)
}

func (s *Server) handleAPIEvents(w http.ResponseWriter, r *http.Request) {
	l := s.listingFor(r)
	if l.err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: l.err.Error()})
		return
	}
	if !l.loaded {
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "events are still loading"})
		return
	}

	page := view.Paginate(l.filtered, l.state.Page, l.state.PageSize)
	events := page.Items
	if events == nil {
		events = []event.Event{}
	}
	s.writeJSON(w, http.StatusOK, EventsResponse{
		Page:       page.Number,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		Events:     events,
	})
}

// handleCalendar exports every filtered event, ignoring pagination.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	l := s.listingFor(r)
	if l.err != nil {
		http.Error(w, l.err.Error(), http.StatusBadRequest)
		return
	}
	if !l.loaded {
		http.Error(w, "events are still loading", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+CalendarFilename+`"`)
	_, _ = io.WriteString(w, calendar.GenerateICS(l.filtered, s.now()))
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	accordion := view.ParseAccordion(r.URL.Query().Get(view.ParamOpen))
	data := view.NewContactData(s.questions, accordion)
	s.writeHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return s.renderer.RenderContact(out, data)
	})
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxContactBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := ContactFormFromValues(r.PostForm)
	data := view.NewContactData(s.questions, view.ParseAccordion(""))
	status := http.StatusOK

	if problems := ValidateContact(form); len(problems) > 0 {
		data.Form = form
		data.Errors = problems
		status = http.StatusUnprocessableEntity
	} else {
		s.log.Info("Contact message received", logger.Fields{
			"name":           form.Name,
			"email":          form.Email,
			"subject":        form.Subject,
			"message_length": len(form.Message),
			"request_id":     r.Header.Get(HeaderRequestID),
		})
		data.Sent = true
	}

	s.writeHTML(w, r, status, func(out io.Writer) error {
		return s.renderer.RenderContact(out, data)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	loaded, size, loadedAt := s.catalog.Status()
	resp := HealthResponse{Status: "loading", Loaded: loaded, Events: size}
	if loaded {
		resp.Status = "ok"
		resp.LoadedAt = &loadedAt
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// writeHTML renders into a buffer first so a template failure can still become a 500.
func (s *Server) writeHTML(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.log.Error("Error rendering page", logger.Fields{
			"path":       r.URL.Path,
			"request_id": r.Header.Get(HeaderRequestID),
		}, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("Error encoding JSON response", nil, err)
	}
}

// filterErrorMessage turns a filter parse error into the message shown above the listing.
func filterErrorMessage(err error) string {
	switch {
	case errors.Is(err, event.ErrUnknownSport):
		return "Desporto desconhecido. A mostrar todos os eventos."
	case errors.Is(err, event.ErrUnknownLeague):
		return "Liga desconhecida. A mostrar todos os eventos."
	case errors.Is(err, filter.ErrInvalidDate):
		return "Data inválida, use o formato AAAA-MM-DD. A mostrar todos os eventos."
	default:
		return "Filtros inválidos. A mostrar todos os eventos."
	}
}
