package sqlite

import "database/sql"

type matchSummaryRow struct {
	TotalMatches   int64           `db:"total_matches"`
	MoneyInvested  int64           `db:"money_invested"`
	AveragePlayers sql.NullFloat64 `db:"average_players"`
}

type matchDurationsRow struct {
	LongestMinutes sql.NullInt64   `db:"longest_minutes"`
	AverageMinutes sql.NullFloat64 `db:"average_minutes"`
}

type locationCountRow struct {
	LocationID   int64  `db:"location_id"`
	LocationName string `db:"location_name"`
	Matches      int64  `db:"cnt"`
}

type playerMoneyRow struct {
	PlayerID    int64  `db:"player_id"`
	PlayerName  string `db:"player_name"`
	MoneyEarned int64  `db:"money_earned"`
	Profit      int64  `db:"profit"`
}

type handRankCountRow struct {
	Rank  int   `db:"winning_hand_rank"`
	Deals int64 `db:"cnt"`
}

type playerWinsRow struct {
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
	Wins       int64  `db:"cnt"`
}

type dealerTallyRow struct {
	PlayerID     int64  `db:"player_id"`
	PlayerName   string `db:"player_name"`
	DealsDealt   int64  `db:"deals_dealt"`
	SelfDealWins int64  `db:"self_deal_wins"`
}
