package sqlite

import (
	"database/sql"
	"time"

	"github.com/dkachur/poker-nights/internal/domain/match"
)

// Timestamps are stored as epoch milliseconds.
type matchTableModel struct {
	ID           string        `db:"id"`
	StartedAt    int64         `db:"started_at"`
	EndedAt      sql.NullInt64 `db:"ended_at"`
	EnteredAt    int64         `db:"entered_at"`
	LocationID   int64         `db:"location_id"`
	BuyIn        int64         `db:"buy_in"`
	PlayersCount int           `db:"players_count"`
	ChipsCount   int64         `db:"chips_count"`
}

func (m matchTableModel) toEntity() match.Match {
	out := match.Match{
		ID:           m.ID,
		StartedAt:    time.UnixMilli(m.StartedAt),
		EnteredAt:    time.UnixMilli(m.EnteredAt),
		LocationID:   m.LocationID,
		BuyIn:        m.BuyIn,
		PlayersCount: m.PlayersCount,
		ChipsCount:   m.ChipsCount,
	}
	if m.EndedAt.Valid {
		endedAt := time.UnixMilli(m.EndedAt.Int64)
		out.EndedAt = &endedAt
	}

	return out
}

func matchTableModelFrom(m match.Match) matchTableModel {
	out := matchTableModel{
		ID:           m.ID,
		StartedAt:    m.StartedAt.UnixMilli(),
		EnteredAt:    m.EnteredAt.UnixMilli(),
		LocationID:   m.LocationID,
		BuyIn:        m.BuyIn,
		PlayersCount: m.PlayersCount,
		ChipsCount:   m.ChipsCount,
	}
	if m.EndedAt != nil {
		out.EndedAt = sql.NullInt64{Int64: m.EndedAt.UnixMilli(), Valid: true}
	}

	return out
}

type playerMatchTableModel struct {
	PlayerID        int64  `db:"player_id"`
	MatchID         string `db:"match_id"`
	FinalChipsCount int64  `db:"final_chips_count"`
	MoneyEarned     int64  `db:"money_earned"`
	Profit          int64  `db:"profit"`
}

func (m playerMatchTableModel) toEntity() match.PlayerMatch {
	return match.PlayerMatch{
		PlayerID:        m.PlayerID,
		MatchID:         m.MatchID,
		FinalChipsCount: m.FinalChipsCount,
		MoneyEarned:     m.MoneyEarned,
		Profit:          m.Profit,
	}
}

func playerMatchTableModelFrom(pm match.PlayerMatch) playerMatchTableModel {
	return playerMatchTableModel{
		PlayerID:        pm.PlayerID,
		MatchID:         pm.MatchID,
		FinalChipsCount: pm.FinalChipsCount,
		MoneyEarned:     pm.MoneyEarned,
		Profit:          pm.Profit,
	}
}
