package sportsdb

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pfrederiksen/sports-events/internal/event"
	"github.com/pfrederiksen/sports-events/internal/logger"
	"github.com/pfrederiksen/sports-events/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var logs bytes.Buffer
	c := New(Config{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		HTTPClient: server.Client(),
		Logger:     logger.New(logger.LevelDebug, &logs),
	})
	return c, &logs
}

func TestFetchByLeague_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/test-key/eventsnextleague.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if id := r.URL.Query().Get("id"); id != "4344" {
			t.Errorf("expected id=4344, got %s", id)
		}
		if ua := r.Header.Get("User-Agent"); ua != UserAgent {
			t.Errorf("expected User-Agent %q, got %q", UserAgent, ua)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"events": []map[string]interface{}{
				{
					"strEvent":    "Benfica vs Porto",
					"strHomeTeam": "Benfica",
					"strAwayTeam": "Porto",
					"dateEvent":   "2026-11-01",
					"strTime":     "20:30:00",
					"strSport":    "Soccer",
					"strLeague":   "Portuguese Liga",
					"strVenue":    "Estádio da Luz",
				},
			},
		})
	})

	events := c.FetchByLeague(context.Background(), event.LigaPortugal)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	got := events[0]
	if got.HomeTeam != "Benfica" || got.AwayTeam != "Porto" {
		t.Errorf("unexpected teams: %+v", got)
	}
	if got.Date != "2026-11-01" || got.Time != "20:30:00" {
		t.Errorf("unexpected date/time: %s %s", got.Date, got.Time)
	}
	if got.Venue != "Estádio da Luz" {
		t.Errorf("unexpected venue: %s", got.Venue)
	}
}

func TestFetchByLeague_FailuresReturnEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantLog bool
	}{
		{
			name: "malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"events": [{"strEvent": `))
			},
			wantLog: true,
		},
		{
			name: "HTML error page",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html><body>Too many requests</body></html>`))
			},
			wantLog: true,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantLog: true,
		},
		{
			name: "null events",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"events": null}`))
			},
			wantLog: false,
		},
		{
			name: "missing events field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			},
			wantLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, logs := newTestClient(t, tt.handler)

			events := c.FetchByLeague(context.Background(), event.PremierLeague)
			if events == nil {
				t.Fatal("expected empty slice, got nil")
			}
			if len(events) != 0 {
				t.Errorf("expected no events, got %d", len(events))
			}

			warned := strings.Contains(logs.String(), `"level":"WARN"`)
			if warned != tt.wantLog {
				t.Errorf("warn logged = %v, want %v (logs: %s)", warned, tt.wantLog, logs.String())
			}
		})
	}
}

func TestFetchByLeague_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	var logs bytes.Buffer
	c := New(Config{BaseURL: baseURL, Logger: logger.New(logger.LevelInfo, &logs)})

	events := c.FetchByLeague(context.Background(), event.NBA)
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
	if !strings.Contains(logs.String(), "Error fetching league events") {
		t.Errorf("expected failure to be logged, got %q", logs.String())
	}
}

func TestFetchBySport(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-key/eventsseason.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("id") != "4387" {
			t.Errorf("expected id=4387, got %s", q.Get("id"))
		}
		if q.Get("s") != DefaultSeason {
			t.Errorf("expected season %s, got %s", DefaultSeason, q.Get("s"))
		}
		w.Write([]byte(`{"events": [{"strEvent": "Lakers vs Celtics", "strSport": "Basketball"}, {"strEvent": "Bulls vs Knicks", "strSport": "Basketball"}]}`))
	})

	events := c.FetchBySport(context.Background(), event.Basketball)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}

func TestFetchBySport_ServerError(t *testing.T) {
	c, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if events := c.FetchBySport(context.Background(), event.Volleyball); len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
	if !strings.Contains(logs.String(), "unexpected status code: 502") {
		t.Errorf("expected status in log, got %q", logs.String())
	}
}

func TestGet_ReportsErrors(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Get(context.Background(), EndpointNextLeague, nil)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestGet_CanceledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events": []}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Get(ctx, EndpointNextLeague, nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestFetch_RecordsMetrics(t *testing.T) {
	m := metrics.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "4480" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"events": [{"strEvent": "A vs B"}]}`))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL, Metrics: m, Logger: logger.New(logger.LevelError, &bytes.Buffer{})})
	c.FetchByLeague(context.Background(), event.PremierLeague)
	c.FetchByLeague(context.Background(), event.ChampionsLeague)

	count, err := testutil.GatherAndCount(m.Registry(), "sports_events_fetch_total")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count != 2 {
		t.Errorf("expected ok and error series, got %d", count)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(Config{})
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", c.baseURL, DefaultBaseURL)
	}
	if c.apiKey != DefaultAPIKey {
		t.Errorf("apiKey = %s, want %s", c.apiKey, DefaultAPIKey)
	}
	if c.Season() != DefaultSeason {
		t.Errorf("season = %s, want %s", c.Season(), DefaultSeason)
	}
	if c.httpClient.Timeout != 0 {
		t.Errorf("expected no timeout by default, got %v", c.httpClient.Timeout)
	}

	c = New(Config{BaseURL: "https://example.test/api/"})
	if c.baseURL != "https://example.test/api" {
		t.Errorf("expected trailing slash trimmed, got %s", c.baseURL)
	}
}
