package match

import (
	"fmt"
	"time"
)

// Match is one sitting of a poker game among a fixed roster of players.
// EndedAt stays nil until the operator records an end time at settlement.
type Match struct {
	ID           string
	StartedAt    time.Time
	EndedAt      *time.Time
	EnteredAt    time.Time
	LocationID   int64
	BuyIn        int64
	PlayersCount int
	ChipsCount   int64
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.LocationID <= 0 {
		return fmt.Errorf("match location id is required")
	}
	if m.StartedAt.IsZero() {
		return fmt.Errorf("match start timestamp is required")
	}
	if m.BuyIn < 0 {
		return fmt.Errorf("match buy-in must be greater or equal to 0")
	}
	if m.PlayersCount <= 0 {
		return fmt.Errorf("match players count must be greater than 0")
	}
	if m.ChipsCount <= 0 {
		return fmt.Errorf("match chips count must be greater than 0")
	}

	return nil
}

// PlayerMatch records one participant's settlement within a match.
type PlayerMatch struct {
	PlayerID        int64
	MatchID         string
	FinalChipsCount int64
	MoneyEarned     int64
	Profit          int64
}

// Settle fills the derived money fields from the final chip count and the
// match chip economics: money earned is the chip stack converted at the
// buy-in/chips exchange rate rounded down, profit is earnings minus buy-in.
func (pm *PlayerMatch) Settle(finalChips, buyIn, chipsCount int64) {
	pm.FinalChipsCount = finalChips
	pm.MoneyEarned = finalChips * buyIn / chipsCount
	pm.Profit = pm.MoneyEarned - buyIn
}
