package sqlite

import (
	"testing"

	"github.com/dkachur/poker-nights/internal/domain/deal"
)

func TestDealTableModel_SplitWinner(t *testing.T) {
	d := deal.Deal{
		ID:              "d-1",
		Num:             3,
		MinBet:          10,
		DealerID:        1,
		MatchID:         "m-1",
		WinnerID:        2,
		WinningHand:     "K♦ K♣",
		WinningHandRank: deal.Pair,
	}

	t.Run("no split winner", func(t *testing.T) {
		row := dealTableModelFrom(d)
		if row.SplitWinnerID.Valid {
			t.Fatalf("split_winner_id should be null")
		}
		back := row.toEntity()
		if back.SplitWinnerID != nil {
			t.Fatalf("SplitWinnerID should stay nil")
		}
		if back.WinningHandRank != deal.Pair {
			t.Fatalf("unexpected rank: %s", back.WinningHandRank)
		}
	})

	t.Run("split winner survives", func(t *testing.T) {
		split := int64(4)
		withSplit := d
		withSplit.SplitWinnerID = &split

		back := dealTableModelFrom(withSplit).toEntity()
		if back.SplitWinnerID == nil || *back.SplitWinnerID != split {
			t.Fatalf("unexpected split winner: %v", back.SplitWinnerID)
		}
	})
}
