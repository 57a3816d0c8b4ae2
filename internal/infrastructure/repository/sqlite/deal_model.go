package sqlite

import (
	"database/sql"

	"github.com/dkachur/poker-nights/internal/domain/deal"
)

type dealTableModel struct {
	ID              string        `db:"id"`
	Num             int           `db:"num"`
	MinBet          int64         `db:"min_bet"`
	DealerID        int64         `db:"dealer_id"`
	MatchID         string        `db:"match_id"`
	WinnerID        int64         `db:"winner_id"`
	SplitWinnerID   sql.NullInt64 `db:"split_winner_id"`
	WinningHand     string        `db:"winning_hand"`
	WinningHandRank int           `db:"winning_hand_rank"`
}

func (m dealTableModel) toEntity() deal.Deal {
	out := deal.Deal{
		ID:              m.ID,
		Num:             m.Num,
		MinBet:          m.MinBet,
		DealerID:        m.DealerID,
		MatchID:         m.MatchID,
		WinnerID:        m.WinnerID,
		WinningHand:     m.WinningHand,
		WinningHandRank: deal.HandRank(m.WinningHandRank),
	}
	if m.SplitWinnerID.Valid {
		splitWinnerID := m.SplitWinnerID.Int64
		out.SplitWinnerID = &splitWinnerID
	}

	return out
}

func dealTableModelFrom(d deal.Deal) dealTableModel {
	out := dealTableModel{
		ID:              d.ID,
		Num:             d.Num,
		MinBet:          d.MinBet,
		DealerID:        d.DealerID,
		MatchID:         d.MatchID,
		WinnerID:        d.WinnerID,
		WinningHand:     d.WinningHand,
		WinningHandRank: int(d.WinningHandRank),
	}
	if d.SplitWinnerID != nil {
		out.SplitWinnerID = sql.NullInt64{Int64: *d.SplitWinnerID, Valid: true}
	}

	return out
}
