package report

import "context"

// MatchSummary carries the single-row aggregates over matches in range.
// AveragePlayersCount is nil when no match falls inside the interval.
type MatchSummary struct {
	TotalMatches        int64
	TotalMoneyInvested  int64
	AveragePlayersCount *float64
}

// MatchDurations carries max/avg whole-minute durations over matches with
// both timestamps set; nil when no such match exists in range.
type MatchDurations struct {
	LongestMinutes *int64
	AverageMinutes *float64
}

// DealerTally counts deals a player dealt and deals they both dealt and won.
type DealerTally struct {
	PlayerID     int64
	PlayerName   string
	DealsDealt   int64
	SelfDealWins int64
}

// Repository issues the aggregation queries the report is assembled from.
// All grouped results come back sorted descending by their count or sum.
type Repository interface {
	MatchSummary(ctx context.Context, interval Interval) (MatchSummary, error)
	MatchDurations(ctx context.Context, interval Interval) (MatchDurations, error)
	TotalDeals(ctx context.Context, interval Interval) (int64, error)
	CountByLocation(ctx context.Context, interval Interval) ([]LocationCount, error)
	MoneyByPlayer(ctx context.Context, interval Interval) ([]PlayerMoney, error)
	CountByHandRank(ctx context.Context, interval Interval) ([]HandRankCount, error)
	WinsByPlayer(ctx context.Context, interval Interval) ([]PlayerWins, error)
	DealerTallies(ctx context.Context, interval Interval) ([]DealerTally, error)
}
