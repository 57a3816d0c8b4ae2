package report

import (
	"fmt"
	"time"

	"github.com/dkachur/poker-nights/internal/domain/deal"
)

// Interval is a closed date range; both endpoints are included when
// filtering matches by their start timestamp.
type Interval struct {
	From time.Time
	To   time.Time
}

func (i Interval) Validate() error {
	if i.From.IsZero() || i.To.IsZero() {
		return fmt.Errorf("interval endpoints are required")
	}
	if i.To.Before(i.From) {
		return fmt.Errorf("interval end must not precede its start")
	}

	return nil
}

// LocationCount is a match tally for one venue.
type LocationCount struct {
	LocationID   int64  `json:"locationId"`
	LocationName string `json:"locationName"`
	Matches      int64  `json:"matches"`
}

// PlayerMoney sums a player's settlements across the interval.
type PlayerMoney struct {
	PlayerID    int64  `json:"playerId"`
	PlayerName  string `json:"playerName"`
	MoneyEarned int64  `json:"moneyEarned"`
	Profit      int64  `json:"profit"`
}

// HandRankCount is a deal tally for one winning-hand rank.
type HandRankCount struct {
	Rank     deal.HandRank `json:"rank"`
	RankName string        `json:"rankName"`
	Deals    int64         `json:"deals"`
}

// PlayerWins is a deal-win tally for one player.
type PlayerWins struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	Wins       int64  `json:"wins"`
}

// DealerWins reports, for a player who won at least one deal they dealt
// themselves, which share of their dealt deals they also won.
type DealerWins struct {
	PlayerID     int64  `json:"playerId"`
	PlayerName   string `json:"playerName"`
	DealsDealt   int64  `json:"dealsDealt"`
	SelfDealWins int64  `json:"selfDealWins"`
	WinsPercent  int64  `json:"winsPercent"`
}

// Report is the aggregate picture of all matches and deals whose parent
// match started inside the interval. Averages and durations are nil when
// the set they divide by is empty.
type Report struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalMatchesCount   int64  `json:"totalMatchesCount"`
	TotalDealsCount     int64  `json:"totalDealsCount"`
	TotalMoneyInvested  int64  `json:"totalMoneyInvested"`
	AveragePlayersCount *int64 `json:"averagePlayersCount"`

	LongestMatchMinutes *int64 `json:"longestMatchMinutes"`
	AverageMatchMinutes *int64 `json:"averageMatchMinutes"`

	ByLocations    []LocationCount `json:"byLocations"`
	ByIncome       []PlayerMoney   `json:"byIncome"`
	ByProfit       []PlayerMoney   `json:"byProfit"`
	ByCombinations []HandRankCount `json:"byCombinations"`
	ByVictories    []PlayerWins    `json:"byVictories"`
	ByDealerWins   []DealerWins    `json:"byDealerWins"`
}
