package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkachur/poker-nights/internal/domain/player"
	"github.com/dkachur/poker-nights/internal/platform/logging"
)

type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

// Add registers a new player. Name uniqueness is enforced here by a
// lookup before the insert, not by a storage constraint.
func (s *PlayerService) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("find player by name: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: player %q", ErrDuplicate, name)
	}

	if err := s.playerRepo.Create(ctx, name); err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	s.logger.Info("player added", "name", name)

	return nil
}
