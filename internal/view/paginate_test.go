package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pfrederiksen/sports-events/internal/event"
)

func makeEvents(n int) []event.Event {
	events := make([]event.Event, n)
	for i := range events {
		events[i] = event.Event{
			Name:     fmt.Sprintf("Event %02d", i+1),
			HomeTeam: fmt.Sprintf("Home %02d", i+1),
			AwayTeam: fmt.Sprintf("Away %02d", i+1),
			Date:     fmt.Sprintf("2026-11-%02d", i%28+1),
			Time:     "20:00:00",
			Sport:    "Soccer",
			League:   "English Premier League",
		}
	}
	return events
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{14, 12, 2},
		{24, 12, 2},
		{25, 12, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.size))
		})
	}
}

func TestPaginate(t *testing.T) {
	events := makeEvents(14)

	t.Run("first page", func(t *testing.T) {
		p := Paginate(events, 1, 12)
		assert.Len(t, p.Items, 12)
		assert.Equal(t, 1, p.Number)
		assert.Equal(t, 2, p.TotalPages)
		assert.False(t, p.HasPrev)
		assert.True(t, p.HasNext)
		assert.Equal(t, 1, p.StartIndex)
		assert.Equal(t, 12, p.EndIndex)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		p := Paginate(events, 2, 12)
		assert.Len(t, p.Items, 2)
		assert.Equal(t, "Event 13", p.Items[0].Name)
		assert.True(t, p.HasPrev)
		assert.False(t, p.HasNext)
		assert.Equal(t, 13, p.StartIndex)
		assert.Equal(t, 14, p.EndIndex)
	})

	t.Run("out of range page is clamped", func(t *testing.T) {
		assert.Equal(t, 2, Paginate(events, 7, 12).Number)
		assert.Equal(t, 1, Paginate(events, -1, 12).Number)
	})

	t.Run("empty set", func(t *testing.T) {
		p := Paginate(nil, 3, 12)
		assert.Empty(t, p.Items)
		assert.Equal(t, 1, p.Number)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasPrev)
		assert.False(t, p.HasNext)
		assert.Zero(t, p.StartIndex)
	})

	t.Run("items cannot grow into the next page", func(t *testing.T) {
		p := Paginate(events, 1, 12)
		_ = append(p.Items, event.Event{Name: "intruder"})
		assert.Equal(t, "Event 13", events[12].Name)
	})
}

func TestPaginate_CoversEveryEventOnce(t *testing.T) {
	for _, n := range []int{0, 1, 11, 12, 13, 30} {
		events := makeEvents(n)
		seen := 0
		for page := 1; page <= TotalPages(n, 12); page++ {
			p := Paginate(events, page, 12)
			assert.LessOrEqual(t, len(p.Items), 12)
			seen += len(p.Items)
		}
		assert.Equal(t, n, seen, "n=%d", n)
	}
}
