package event

import (
	"errors"
	"testing"
)

func TestParseSport(t *testing.T) {
	tests := []struct {
		code    string
		want    Sport
		wantErr bool
	}{
		{"football", Football, false},
		{"Basketball", Basketball, false},
		{" volleyball ", Volleyball, false},
		{"cricket", 0, true},
		{"all", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseSport(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSport) {
					t.Errorf("ParseSport(%q) error = %v, want ErrUnknownSport", tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSport(%q) unexpected error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("ParseSport(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestSportTables(t *testing.T) {
	for _, s := range Sports() {
		if s.DisplayName() == "" || s.APIID() == "" || s.Label() == "" {
			t.Errorf("sport %q has an incomplete table entry", s.Code())
		}
		parsed, err := ParseSport(s.Code())
		if err != nil || parsed != s {
			t.Errorf("ParseSport(%q) did not round-trip", s.Code())
		}
	}

	if Football.DisplayName() != "Soccer" {
		t.Errorf("Football.DisplayName() = %q, want Soccer", Football.DisplayName())
	}
	if Sport(0).Code() != "" {
		t.Error("zero Sport should have no code")
	}
}

func TestParseLeague(t *testing.T) {
	tests := []struct {
		code      string
		want      League
		wantID    string
		wantMatch string
	}{
		{"premier", PremierLeague, "4328", "English Premier League"},
		{"liga", LigaPortugal, "4344", "Portuguese Liga"},
		{"nba", NBA, "4387", "NBA"},
		{"champions", ChampionsLeague, "4480", "UEFA Champions League"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseLeague(tt.code)
			if err != nil {
				t.Fatalf("ParseLeague(%q) unexpected error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("ParseLeague(%q) = %v, want %v", tt.code, got, tt.want)
			}
			if got.APIID() != tt.wantID {
				t.Errorf("APIID() = %q, want %q", got.APIID(), tt.wantID)
			}
			if got.MatchText() != tt.wantMatch {
				t.Errorf("MatchText() = %q, want %q", got.MatchText(), tt.wantMatch)
			}
		})
	}

	if _, err := ParseLeague("laliga"); !errors.Is(err, ErrUnknownLeague) {
		t.Errorf("expected ErrUnknownLeague, got %v", err)
	}
}

func TestDefaultLeagues(t *testing.T) {
	leagues := DefaultLeagues()
	want := []string{"4328", "4344", "4387", "4480"}
	if len(leagues) != len(want) {
		t.Fatalf("expected %d leagues, got %d", len(want), len(leagues))
	}
	for i, l := range leagues {
		if l.APIID() != want[i] {
			t.Errorf("league %d id = %s, want %s", i, l.APIID(), want[i])
		}
	}
}
