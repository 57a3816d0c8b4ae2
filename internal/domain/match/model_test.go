package match

import (
	"testing"
	"time"
)

func TestPlayerMatch_Settle(t *testing.T) {
	cases := []struct {
		name        string
		finalChips  int64
		buyIn       int64
		chipsCount  int64
		wantEarned  int64
		wantProfit  int64
	}{
		{name: "profit above buy-in", finalChips: 600, buyIn: 100, chipsCount: 500, wantEarned: 120, wantProfit: 20},
		{name: "busted out", finalChips: 0, buyIn: 100, chipsCount: 500, wantEarned: 0, wantProfit: -100},
		{name: "broke even", finalChips: 500, buyIn: 100, chipsCount: 500, wantEarned: 100, wantProfit: 0},
		{name: "fraction rounds down", finalChips: 333, buyIn: 100, chipsCount: 500, wantEarned: 66, wantProfit: -34},
		{name: "free game", finalChips: 700, buyIn: 0, chipsCount: 500, wantEarned: 0, wantProfit: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pm := PlayerMatch{PlayerID: 1, MatchID: "m-1"}
			pm.Settle(tc.finalChips, tc.buyIn, tc.chipsCount)

			if pm.FinalChipsCount != tc.finalChips {
				t.Fatalf("unexpected final chips: got=%d want=%d", pm.FinalChipsCount, tc.finalChips)
			}
			if pm.MoneyEarned != tc.wantEarned {
				t.Fatalf("unexpected money earned: got=%d want=%d", pm.MoneyEarned, tc.wantEarned)
			}
			if pm.Profit != tc.wantProfit {
				t.Fatalf("unexpected profit: got=%d want=%d", pm.Profit, tc.wantProfit)
			}
		})
	}
}

func TestMatch_Validate(t *testing.T) {
	valid := Match{
		ID:           "m-1",
		StartedAt:    time.Date(2026, time.March, 14, 19, 0, 0, 0, time.Local),
		EnteredAt:    time.Now(),
		LocationID:   1,
		BuyIn:        100,
		PlayersCount: 4,
		ChipsCount:   500,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid match rejected: %v", err)
	}

	t.Run("zero buy-in is allowed", func(t *testing.T) {
		m := valid
		m.BuyIn = 0
		if err := m.Validate(); err != nil {
			t.Fatalf("zero buy-in rejected: %v", err)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		mutations := map[string]func(*Match){
			"missing id":       func(m *Match) { m.ID = "" },
			"missing location": func(m *Match) { m.LocationID = 0 },
			"missing start":    func(m *Match) { m.StartedAt = time.Time{} },
			"negative buy-in":  func(m *Match) { m.BuyIn = -1 },
			"zero players":     func(m *Match) { m.PlayersCount = 0 },
			"zero chips":       func(m *Match) { m.ChipsCount = 0 },
		}

		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				m := valid
				mutate(&m)
				if err := m.Validate(); err == nil {
					t.Fatalf("expected validation error")
				}
			})
		}
	})
}
