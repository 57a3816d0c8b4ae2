package deal

import "fmt"

// HandRank is the operator-selected strength category of the winning hand.
// It is entered, not computed from cards.
type HandRank int

const (
	HighCard      HandRank = 1
	Pair          HandRank = 2
	TwoPairs      HandRank = 3
	ThreeOfAKind  HandRank = 4
	Straight      HandRank = 5
	Flush         HandRank = 6
	FullHouse     HandRank = 7
	FourOfAKind   HandRank = 8
	StraightFlush HandRank = 9
	RoyalFlush    HandRank = 10
)

var handRankNames = map[HandRank]string{
	HighCard:      "High card",
	Pair:          "Pair",
	TwoPairs:      "Two pairs",
	ThreeOfAKind:  "Three of a kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full house",
	FourOfAKind:   "Four of a kind",
	StraightFlush: "Straight flush",
	RoyalFlush:    "Royal flush",
}

// AllHandRanks lists the fixed enumeration in ascending strength order.
func AllHandRanks() []HandRank {
	out := make([]HandRank, 0, len(handRankNames))
	for r := HighCard; r <= RoyalFlush; r++ {
		out = append(out, r)
	}
	return out
}

func (r HandRank) Valid() bool {
	_, ok := handRankNames[r]
	return ok
}

func (r HandRank) String() string {
	if name, ok := handRankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("HandRank(%d)", int(r))
}

// Deal is one hand played within a match. Num is 1-based and strictly
// sequential within its match. SplitWinnerID is reserved for split pots
// and is never populated by the entry workflow.
type Deal struct {
	ID              string
	Num             int
	MinBet          int64
	DealerID        int64
	MatchID         string
	WinnerID        int64
	SplitWinnerID   *int64
	WinningHand     string
	WinningHandRank HandRank
}

func (d Deal) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("deal id is required")
	}
	if d.MatchID == "" {
		return fmt.Errorf("deal match id is required")
	}
	if d.Num <= 0 {
		return fmt.Errorf("deal num must be greater than 0")
	}
	if d.DealerID <= 0 {
		return fmt.Errorf("deal dealer id is required")
	}
	if d.WinnerID <= 0 {
		return fmt.Errorf("deal winner id is required")
	}
	if !d.WinningHandRank.Valid() {
		return fmt.Errorf("invalid winning hand rank: %d", d.WinningHandRank)
	}

	return nil
}
