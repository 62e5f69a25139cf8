package web

import (
	"context"
	"sync"
	"time"

	"github.com/pfrederiksen/sports-events/internal/event"
	"github.com/pfrederiksen/sports-events/internal/logger"
	"github.com/pfrederiksen/sports-events/internal/metrics"
)

// Loader produces the full, sorted list of upcoming events.
type Loader interface {
	FetchAll(ctx context.Context) []event.Event
}

// Catalog holds the events fetched at startup.
// It is written once by Load and read concurrently by handlers.
type Catalog struct {
	mu       sync.RWMutex
	events   []event.Event
	loaded   bool
	loadedAt time.Time

	loader  Loader
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewCatalog creates an empty, not yet loaded catalog.
func NewCatalog(loader Loader, m *metrics.Metrics, log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.Default()
	}
	return &Catalog{loader: loader, metrics: m, log: log}
}

// Load runs the loader and stores its result. There is no retry; a failed
// upstream simply leaves the catalog empty but loaded.
func (c *Catalog) Load(ctx context.Context) {
	events := c.loader.FetchAll(ctx)
	if ctx.Err() != nil {
		c.log.Warn("Catalog load interrupted", nil, ctx.Err())
		return
	}
	c.Set(events)
	c.log.Info("Catalog loaded", logger.Fields{"events": len(events)})
}

// Set replaces the catalog contents and marks it loaded.
func (c *Catalog) Set(events []event.Event) {
	c.mu.Lock()
	c.events = events
	c.loaded = true
	c.loadedAt = time.Now()
	c.mu.Unlock()

	c.metrics.SetCatalogSize(len(events))
}

// Snapshot returns the events and whether the initial load has finished.
// Callers must not modify the returned slice.
func (c *Catalog) Snapshot() ([]event.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.events, c.loaded
}

// Status reports the load state for health checks.
func (c *Catalog) Status() (loaded bool, size int, loadedAt time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded, len(c.events), c.loadedAt
}
