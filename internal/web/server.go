package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/pfrederiksen/sports-events/internal/logger"
	"github.com/pfrederiksen/sports-events/internal/metrics"
	"github.com/pfrederiksen/sports-events/internal/view"
)

//go:embed static
var staticFS embed.FS

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Config holds the server dependencies.
type Config struct {
	Catalog  *Catalog
	Renderer *view.Renderer
	PageSize int
	// Location decides which calendar day "today" is. Defaults to time.Local.
	Location *time.Location
	// Now is the clock; defaults to time.Now.
	Now       func() time.Time
	Questions []view.Question
	Metrics   *metrics.Metrics
	Logger    *logger.Logger
}

// Server is the HTTP surface.
type Server struct {
	catalog   *Catalog
	renderer  *view.Renderer
	pageSize  int
	location  *time.Location
	now       func() time.Time
	questions []view.Question
	metrics   *metrics.Metrics
	log       *logger.Logger
}

// NewServer creates a Server. A nil Renderer is replaced by the embedded templates.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("catalog is required")
	}

	s := &Server{
		catalog:   cfg.Catalog,
		renderer:  cfg.Renderer,
		pageSize:  cfg.PageSize,
		location:  cfg.Location,
		now:       cfg.Now,
		questions: cfg.Questions,
		metrics:   cfg.Metrics,
		log:       cfg.Logger,
	}
	if s.renderer == nil {
		r, err := view.NewRenderer()
		if err != nil {
			return nil, err
		}
		s.renderer = r
	}
	if s.pageSize <= 0 {
		s.pageSize = view.DefaultPageSize
	}
	if s.location == nil {
		s.location = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.questions == nil {
		s.questions = DefaultQuestions()
	}
	if s.log == nil {
		s.log = logger.Default()
	}
	return s, nil
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	s.route(mux, "GET /{$}", "events", s.handleEvents)
	s.route(mux, "GET "+view.EventsPath, "events", s.handleEvents)
	s.route(mux, "GET "+view.ResetPath, "reset", s.handleReset)
	s.route(mux, "GET /events/partial", "partial", s.handlePartial)
	s.route(mux, "GET /api/events", "api_events", s.handleAPIEvents)
	s.route(mux, "GET "+view.CalendarPath, "calendar", s.handleCalendar)
	s.route(mux, "GET "+view.ContactPath, "contact", s.handleContact)
	s.route(mux, "POST "+view.ContactPath, "contact_submit", s.handleContactSubmit)
	s.route(mux, "GET /healthz", "healthz", s.handleHealth)

	mux.Handle("GET /metrics", s.metrics.Handler())

	static, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	return Chain(mux, RequestID, AccessLog(s.log), Recovery(s.log))
}

func (s *Server) route(mux *http.ServeMux, pattern, name string, h http.HandlerFunc) {
	mux.Handle(pattern, s.instrument(name, h))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", logger.Fields{"addr": addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("HTTP server shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
