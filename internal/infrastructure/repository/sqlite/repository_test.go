package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dkachur/poker-nights/internal/domain/deal"
	"github.com/dkachur/poker-nights/internal/domain/match"
	"github.com/dkachur/poker-nights/internal/domain/report"
)

// newTestDB opens a migrated in-memory database. The pool is pinned to a
// single connection: every new sqlite connection to :memory: would get
// its own empty database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := Migrate(conn); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	return conn
}

func storedMatch(id string, startedAt time.Time, locationID int64) match.Match {
	return match.Match{
		ID:           id,
		StartedAt:    startedAt,
		EnteredAt:    startedAt.Add(2 * time.Hour),
		LocationID:   locationID,
		BuyIn:        100,
		PlayersCount: 2,
		ChipsCount:   500,
	}
}

func TestMatchRepository_ListAtDate_Window(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()

	if err := NewLocationRepository(conn).Create(ctx, "Garage"); err != nil {
		t.Fatalf("create location: %v", err)
	}

	repo := NewMatchRepository(conn)
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)
	starts := []time.Time{
		day.Add(-time.Millisecond),
		day,
		day.Add(12 * time.Hour),
		day.Add(24 * time.Hour),
	}
	for i, startedAt := range starts {
		m := storedMatch(fmt.Sprintf("m-%d", i), startedAt, 1)
		if err := repo.CreateWithDetails(ctx, m, nil, nil); err != nil {
			t.Fatalf("create match %d: %v", i, err)
		}
	}

	got, err := repo.ListAtDate(ctx, day)
	if err != nil {
		t.Fatalf("list matches at date: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected match count: got=%d want=2 (%+v)", len(got), got)
	}
	if !got[0].StartedAt.Equal(day) {
		t.Fatalf("midnight start must be included, got %s", got[0].StartedAt)
	}
	if !got[1].StartedAt.Equal(day.Add(12 * time.Hour)) {
		t.Fatalf("same-day start must be included, got %s", got[1].StartedAt)
	}
}

func TestReportRepository_CountByLocation_Order(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()

	locations := NewLocationRepository(conn)
	for _, name := range []string{"Kitchen", "Garage"} {
		if err := locations.Create(ctx, name); err != nil {
			t.Fatalf("create location %s: %v", name, err)
		}
	}

	matches := NewMatchRepository(conn)
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)
	fixtures := []struct {
		id         string
		locationID int64
	}{
		{id: "m-1", locationID: 1},
		{id: "m-2", locationID: 2},
		{id: "m-3", locationID: 2},
	}
	for i, s := range fixtures {
		m := storedMatch(s.id, day.Add(time.Duration(i)*time.Hour), s.locationID)
		if err := matches.CreateWithDetails(ctx, m, nil, nil); err != nil {
			t.Fatalf("create match %s: %v", s.id, err)
		}
	}

	got, err := NewReportRepository(conn).CountByLocation(ctx, report.Interval{
		From: day,
		To:   day.Add(24*time.Hour - time.Millisecond),
	})
	if err != nil {
		t.Fatalf("count by location: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected location count: got=%d want=2", len(got))
	}
	if got[0].LocationName != "Garage" || got[0].Matches != 2 {
		t.Fatalf("expected Garage with 2 matches first, got %+v", got[0])
	}
	if got[1].LocationName != "Kitchen" || got[1].Matches != 1 {
		t.Fatalf("expected Kitchen with 1 match second, got %+v", got[1])
	}
}

func TestDealRepository_ListByMatch(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()

	if err := NewLocationRepository(conn).Create(ctx, "Garage"); err != nil {
		t.Fatalf("create location: %v", err)
	}
	players := NewPlayerRepository(conn)
	for _, name := range []string{"Olha", "Dmytro"} {
		if err := players.Create(ctx, name); err != nil {
			t.Fatalf("create player %s: %v", name, err)
		}
	}

	day := time.Date(2026, time.March, 14, 19, 0, 0, 0, time.Local)
	deals := []deal.Deal{
		{ID: "d-1", Num: 1, MinBet: 10, DealerID: 1, MatchID: "m-1", WinnerID: 2, WinningHandRank: deal.Pair},
		{ID: "d-2", Num: 2, MinBet: 20, DealerID: 2, MatchID: "m-1", WinnerID: 2, WinningHandRank: deal.Flush},
		{ID: "d-3", Num: 3, MinBet: 20, DealerID: 1, MatchID: "m-1", WinnerID: 1, WinningHandRank: deal.HighCard},
	}
	if err := NewMatchRepository(conn).CreateWithDetails(ctx, storedMatch("m-1", day, 1), nil, deals); err != nil {
		t.Fatalf("create match with deals: %v", err)
	}

	got, err := NewDealRepository(conn).ListByMatch(ctx, "m-1")
	if err != nil {
		t.Fatalf("list match deals: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unexpected deal count: got=%d want=3", len(got))
	}
	for i, d := range got {
		if d.Num != i+1 {
			t.Fatalf("deals out of order at %d: %+v", i, d)
		}
	}
	if got[1].WinningHandRank != deal.Flush || got[1].MinBet != 20 {
		t.Fatalf("unexpected second deal: %+v", got[1])
	}

	if other, err := NewDealRepository(conn).ListByMatch(ctx, "m-404"); err != nil || len(other) != 0 {
		t.Fatalf("unknown match should list no deals: %v %+v", err, other)
	}
}
