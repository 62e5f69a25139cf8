// Package aggregator merges the upcoming fixtures of several leagues into one
// chronologically sorted list.
package aggregator

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfrederiksen/sports-events/internal/event"
	"github.com/pfrederiksen/sports-events/internal/logger"
)

// DefaultConcurrency fetches all four default leagues at once.
const DefaultConcurrency = 4

// LeagueFetcher is the subset of the sportsdb client the aggregator needs.
// Implementations must swallow their own failures and return an empty slice.
type LeagueFetcher interface {
	FetchByLeague(ctx context.Context, league event.League) []event.Event
}

// Config holds aggregator settings
type Config struct {
	// Leagues to fetch, in concatenation order. Defaults to event.DefaultLeagues().
	Leagues []event.League
	// Concurrency caps in-flight league requests; 1 fetches strictly one after another.
	Concurrency int
	// Location decides which calendar day "today" is. Defaults to time.Local.
	Location *time.Location
	// Now is the clock; defaults to time.Now.
	Now    func() time.Time
	Logger *logger.Logger
}

// Aggregator fetches and merges league listings
type Aggregator struct {
	fetcher     LeagueFetcher
	leagues     []event.League
	concurrency int
	location    *time.Location
	now         func() time.Time
	log         *logger.Logger
}

// New creates an Aggregator
func New(fetcher LeagueFetcher, cfg Config) *Aggregator {
	a := &Aggregator{
		fetcher:     fetcher,
		leagues:     cfg.Leagues,
		concurrency: cfg.Concurrency,
		location:    cfg.Location,
		now:         cfg.Now,
		log:         cfg.Logger,
	}
	if len(a.leagues) == 0 {
		a.leagues = event.DefaultLeagues()
	}
	if a.concurrency <= 0 {
		a.concurrency = DefaultConcurrency
	}
	if a.location == nil {
		a.location = time.Local
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.log == nil {
		a.log = logger.Default()
	}
	return a
}

// FetchAll returns every upcoming event of the configured leagues, sorted by date.
//
// Events dated before today are dropped; events dated today are kept. Events appearing
// in more than one league response are kept once per response.
func (a *Aggregator) FetchAll(ctx context.Context) []event.Event {
	start := time.Now()

	// One slot per league keeps the concatenation order independent of completion order
	slots := make([][]event.Event, len(a.leagues))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, league := range a.leagues {
		g.Go(func() error {
			slots[i] = a.fetcher.FetchByLeague(gctx, league)
			return nil
		})
	}
	_ = g.Wait() // fetchers never return errors

	var all []event.Event
	for _, events := range slots {
		all = append(all, events...)
	}

	upcoming := Upcoming(all, a.now().In(a.location))
	SortByDate(upcoming, a.location)

	a.log.Info("Aggregated events", logger.Fields{
		"leagues":     len(a.leagues),
		"fetched":     len(all),
		"upcoming":    len(upcoming),
		"concurrency": a.concurrency,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return upcoming
}

// Upcoming returns the events dated on now's calendar day or later, preserving order.
func Upcoming(events []event.Event, now time.Time) []event.Event {
	upcoming := make([]event.Event, 0, len(events))
	for _, evt := range events {
		if evt.IsUpcoming(now) {
			upcoming = append(upcoming, evt)
		}
	}
	return upcoming
}

// SortByDate orders events by calendar day, keeping the original order within a day.
// Unparsable dates sort last.
func SortByDate(events []event.Event, loc *time.Location) {
	sort.SliceStable(events, func(i, j int) bool {
		return compareByDate(events[i], events[j], loc)
	})
}

// compareByDate reports whether i should come before j
func compareByDate(i, j event.Event, loc *time.Location) bool {
	dateI := event.ParseDate(i.Date, loc)
	dateJ := event.ParseDate(j.Date, loc)

	if !dateI.IsZero() && !dateJ.IsZero() {
		return dateI.Before(dateJ)
	}

	// If only one date is valid, put the valid one first
	return !dateI.IsZero() && dateJ.IsZero()
}
