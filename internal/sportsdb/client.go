package sportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pfrederiksen/sports-events/internal/event"
	"github.com/pfrederiksen/sports-events/internal/logger"
	"github.com/pfrederiksen/sports-events/internal/metrics"
)

const (
	DefaultBaseURL = "https://www.thesportsdb.com/api/v1/json"
	DefaultAPIKey  = "123" // free test key
	DefaultSeason  = "2024-2025"
	UserAgent      = "sports-events/1.0 (github.com/pfrederiksen/sports-events)"

	EndpointNextLeague = "eventsnextleague.php"
	EndpointSeason     = "eventsseason.php"

	maxBodyBytes = 8 << 20
)

// Config holds the client settings. Zero values fall back to the defaults above.
type Config struct {
	BaseURL string
	APIKey  string
	Season  string
	// Timeout bounds each request; zero means no timeout.
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Logger     *logger.Logger
	Metrics    *metrics.Metrics
}

// Client fetches event listings from TheSportsDB
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	season     string
	log        *logger.Logger
	metrics    *metrics.Metrics
}

// New creates a new Client
func New(cfg Config) *Client {
	c := &Client{
		httpClient: cfg.HTTPClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		season:     cfg.Season,
		log:        cfg.Logger,
		metrics:    cfg.Metrics,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.apiKey == "" {
		c.apiKey = DefaultAPIKey
	}
	if c.season == "" {
		c.season = DefaultSeason
	}
	if c.log == nil {
		c.log = logger.Default()
	}
	return c
}

// Season returns the season requested by FetchBySport.
func (c *Client) Season() string {
	return c.season
}

// FetchByLeague returns the next fixtures of a league.
// Failures are logged and yield an empty slice.
func (c *Client) FetchByLeague(ctx context.Context, league event.League) []event.Event {
	params := url.Values{}
	params.Set("id", league.APIID())

	events, err := c.Get(ctx, EndpointNextLeague, params)
	if err != nil {
		c.log.Warn("Error fetching league events", logger.Fields{
			"endpoint": EndpointNextLeague,
			"league":   league.Code(),
			"id":       league.APIID(),
		}, err)
		return []event.Event{}
	}
	return events
}

// FetchBySport returns the configured season's events for a sport.
// Failures are logged and yield an empty slice.
func (c *Client) FetchBySport(ctx context.Context, sport event.Sport) []event.Event {
	params := url.Values{}
	params.Set("id", sport.APIID())
	params.Set("s", c.season)

	events, err := c.Get(ctx, EndpointSeason, params)
	if err != nil {
		c.log.Warn("Error fetching sport events", logger.Fields{
			"endpoint": EndpointSeason,
			"sport":    sport.Code(),
			"season":   c.season,
		}, err)
		return []event.Event{}
	}
	return events
}

// Get issues one GET against an endpoint and decodes the events envelope.
// Unlike the Fetch methods it reports failures to the caller.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (events []event.Event, err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveFetch(endpoint, err, len(events), time.Since(start))
	}()

	reqURL := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.apiKey), endpoint)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result event.Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	if result.Events == nil {
		return []event.Event{}, nil
	}

	c.log.Debug("Fetched events", logger.Fields{
		"endpoint": endpoint,
		"id":       params.Get("id"),
		"count":    len(result.Events),
	})

	return result.Events, nil
}
