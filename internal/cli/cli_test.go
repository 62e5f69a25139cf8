package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// stubSportsDB answers eventsnextleague.php with two NBA games, one Premier League
// game and a 500 for the Champions League.
func stubSportsDB(t *testing.T) *httptest.Server {
	t.Helper()

	day := func(offset int) string {
		return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/eventsnextleague.php") {
			http.NotFound(w, r)
			return
		}
		switch r.URL.Query().Get("id") {
		case "4387":
			fmt.Fprintf(w, `{"events":[
				{"strEvent":"Lakers vs Celtics","strHomeTeam":"Lakers","strAwayTeam":"Celtics","dateEvent":%q,"strTime":"01:30:00","strSport":"Basketball","strLeague":"NBA"},
				{"strEvent":"Bulls vs Heat","strHomeTeam":"Bulls","strAwayTeam":"Heat","dateEvent":%q,"strSport":"Basketball","strLeague":"NBA"}
			]}`, day(2), day(1))
		case "4328":
			fmt.Fprintf(w, `{"events":[
				{"strEvent":"Old Match","strHomeTeam":"Fulham","strAwayTeam":"Brentford","dateEvent":%q,"strSport":"Soccer","strLeague":"English Premier League"},
				{"strEvent":"Manchester United vs Chelsea","strHomeTeam":"Manchester United","strAwayTeam":"Chelsea","dateEvent":%q,"strTime":"15:00:00","strSport":"Soccer","strLeague":"English Premier League"}
			]}`, day(-2), day(3))
		case "4480":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			fmt.Fprint(w, `{"events":null}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	srv := stubSportsDB(t)
	t.Setenv("SPORTSDB_BASE_URL", srv.URL)
	t.Setenv("TZ_NAME", "UTC")
	t.Setenv("LOG_FILE", "")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))

	code = run(context.Background(), cmd)
	return out.String(), errOut.String(), code
}

func TestList_Text(t *testing.T) {
	stdout, stderr, code := runCLI(t, "list")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
	// Sorted by date, past match dropped
	for i, want := range []string{"Bulls vs Heat", "Lakers vs Celtics", "Manchester United vs Chelsea"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
	if strings.Contains(stdout, "Old Match") {
		t.Error("past events should be dropped")
	}
	if !strings.Contains(stdout, "Página 1 de 1 (3 eventos)") {
		t.Errorf("missing page footer:\n%s", stdout)
	}
	if !strings.Contains(stderr, "Error fetching league events") {
		t.Errorf("the failed league should be logged to stderr, got:\n%s", stderr)
	}
}

func TestList_JSONWithFilters(t *testing.T) {
	stdout, stderr, code := runCLI(t, "list", "--sport", "football", "--team", "united", "--format", "json")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}

	var result OutputResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if result.Total != 1 || len(result.Events) != 1 {
		t.Fatalf("total = %d, events = %d", result.Total, len(result.Events))
	}
	if result.Events[0].HomeTeam != "Manchester United" {
		t.Errorf("event = %+v", result.Events[0])
	}
	if result.Filters != "Sport: Soccer | Team: united" {
		t.Errorf("filters = %q", result.Filters)
	}
}

func TestList_Pagination(t *testing.T) {
	stdout, _, code := runCLI(t, "list", "--page-size", "2", "--page", "2")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "Manchester United vs Chelsea") || strings.Contains(stdout, "Bulls vs Heat") {
		t.Errorf("page 2 should only hold the last event:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Página 2 de 2 (3 eventos)") {
		t.Errorf("missing page footer:\n%s", stdout)
	}
}

func TestList_NoEvents(t *testing.T) {
	stdout, _, code := runCLI(t, "list", "--sport", "volleyball")
	if code != ExitNoEvents {
		t.Errorf("exit code = %d, want %d", code, ExitNoEvents)
	}
	if strings.TrimSpace(stdout) != NoEventsMessage {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestList_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown sport", []string{"list", "--sport", "cricket"}, "unknown sport"},
		{"unknown league", []string{"list", "--league", "mls"}, "unknown league"},
		{"bad date", []string{"list", "--date", "20/10/2026"}, "invalid date"},
		{"bad format", []string{"list", "--format", "xml"}, "invalid format"},
		{"bad sort", []string{"list", "--sort", "state"}, "invalid sort order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := runCLI(t, tt.args...)
			if code != ExitError {
				t.Errorf("exit code = %d, want %d", code, ExitError)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.want)
			}
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"serve", "list"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
