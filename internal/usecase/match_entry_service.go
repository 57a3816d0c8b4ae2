package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dkachur/poker-nights/internal/domain/deal"
	"github.com/dkachur/poker-nights/internal/domain/match"
	idgen "github.com/dkachur/poker-nights/internal/platform/id"
	"github.com/dkachur/poker-nights/internal/platform/logging"
)

// Draft accumulates a match in memory across the entry session. Nothing
// reaches storage until Submit; discarding the draft is a full cancel.
type Draft struct {
	Match         match.Match
	PlayerMatches []match.PlayerMatch
	Deals         []deal.Deal
}

// RosterComplete reports whether all seats have been assigned.
func (d *Draft) RosterComplete() bool {
	return len(d.PlayerMatches) >= d.Match.PlayersCount
}

// AddParticipant seats a player. A player can hold at most one seat.
func (d *Draft) AddParticipant(playerID int64) error {
	if d.RosterComplete() {
		return fmt.Errorf("%w: roster already has %d players", ErrInvalidInput, d.Match.PlayersCount)
	}
	for _, pm := range d.PlayerMatches {
		if pm.PlayerID == playerID {
			return fmt.Errorf("%w: player %d is already seated", ErrDuplicate, playerID)
		}
	}

	d.PlayerMatches = append(d.PlayerMatches, match.PlayerMatch{
		PlayerID: playerID,
		MatchID:  d.Match.ID,
	})

	return nil
}

// SeatedPlayerIDs returns the roster in seating order.
func (d *Draft) SeatedPlayerIDs() []int64 {
	out := make([]int64, 0, len(d.PlayerMatches))
	for _, pm := range d.PlayerMatches {
		out = append(out, pm.PlayerID)
	}
	return out
}

// SetEndTime records the optional end of play.
func (d *Draft) SetEndTime(endedAt time.Time) {
	d.Match.EndedAt = &endedAt
}

// SettleParticipant records a player's final chip count and derives the
// money fields from the match chip economics.
func (d *Draft) SettleParticipant(playerID, finalChips int64) error {
	if finalChips < 0 {
		return fmt.Errorf("%w: final chips count must be greater or equal to 0", ErrInvalidInput)
	}
	for i := range d.PlayerMatches {
		if d.PlayerMatches[i].PlayerID == playerID {
			d.PlayerMatches[i].Settle(finalChips, d.Match.BuyIn, d.Match.ChipsCount)
			return nil
		}
	}

	return fmt.Errorf("%w: player %d is not seated in this match", ErrNotFound, playerID)
}

// DealInput is one hand as captured at the prompt.
type DealInput struct {
	DealerID    int64
	WinnerID    int64
	MinBet      int64
	Rank        deal.HandRank
	WinningHand string
}

// MatchEntryService drives the commit-at-end match capture workflow.
type MatchEntryService struct {
	matchRepo match.Repository
	ids       idgen.Generator
	now       func() time.Time
	logger    *logging.Logger
}

func NewMatchEntryService(matchRepo match.Repository, ids idgen.Generator, logger *logging.Logger) *MatchEntryService {
	return &MatchEntryService{
		matchRepo: matchRepo,
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}
}

// NewDraft opens an entry session with a freshly generated match id.
func (s *MatchEntryService) NewDraft(locationID int64, startedAt time.Time, buyIn int64, playersCount int, chipsCount int64) (*Draft, error) {
	matchID, err := s.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate match id: %w", err)
	}

	m := match.Match{
		ID:           matchID,
		StartedAt:    startedAt,
		EnteredAt:    s.now(),
		LocationID:   locationID,
		BuyIn:        buyIn,
		PlayersCount: playersCount,
		ChipsCount:   chipsCount,
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &Draft{Match: m}, nil
}

// MatchesAtDate lists matches already recorded on the given calendar
// date, for the non-blocking same-day warning.
func (s *MatchEntryService) MatchesAtDate(ctx context.Context, date time.Time) ([]match.Match, error) {
	items, err := s.matchRepo.ListAtDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list matches at date: %w", err)
	}

	return items, nil
}

// AddDeal appends the next hand to the draft. Numbers are assigned
// sequentially starting at 1.
func (s *MatchEntryService) AddDeal(d *Draft, input DealInput) (deal.Deal, error) {
	dealID, err := s.ids.NewID()
	if err != nil {
		return deal.Deal{}, fmt.Errorf("generate deal id: %w", err)
	}

	dl := deal.Deal{
		ID:              dealID,
		Num:             len(d.Deals) + 1,
		MinBet:          input.MinBet,
		DealerID:        input.DealerID,
		MatchID:         d.Match.ID,
		WinnerID:        input.WinnerID,
		WinningHand:     input.WinningHand,
		WinningHandRank: input.Rank,
	}
	if err := dl.Validate(); err != nil {
		return deal.Deal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	d.Deals = append(d.Deals, dl)

	return dl, nil
}

// Submit persists the confirmed draft as a single batch. A draft with no
// deals is rejected without touching storage.
func (s *MatchEntryService) Submit(ctx context.Context, d *Draft) error {
	if len(d.Deals) == 0 {
		return fmt.Errorf("%w: a match needs at least one deal", ErrInvalidInput)
	}
	if len(d.PlayerMatches) != d.Match.PlayersCount {
		return fmt.Errorf("%w: roster has %d of %d players", ErrInvalidInput, len(d.PlayerMatches), d.Match.PlayersCount)
	}
	if err := d.Match.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.CreateWithDetails(ctx, d.Match, d.PlayerMatches, d.Deals); err != nil {
		return fmt.Errorf("create match with details: %w", err)
	}
	s.logger.Info("match recorded",
		"match_id", d.Match.ID,
		"players", len(d.PlayerMatches),
		"deals", len(d.Deals),
	)

	return nil
}
