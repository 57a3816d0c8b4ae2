package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dkachur/poker-nights/internal/domain/player"
	"github.com/dkachur/poker-nights/internal/platform/logging"
)

type stubPlayerRepo struct {
	players []player.Player
	created []string
}

func (r *stubPlayerRepo) List(ctx context.Context) ([]player.Player, error) {
	return r.players, nil
}

func (r *stubPlayerRepo) FindByName(ctx context.Context, name string) (player.Player, bool, error) {
	for _, p := range r.players {
		if p.Name == name {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *stubPlayerRepo) Create(ctx context.Context, name string) error {
	r.created = append(r.created, name)
	return nil
}

func TestPlayerService_Add(t *testing.T) {
	t.Run("trims and creates", func(t *testing.T) {
		repo := &stubPlayerRepo{}
		svc := NewPlayerService(repo, logging.NewNop())

		if err := svc.Add(context.Background(), "  Dmytro "); err != nil {
			t.Fatalf("add player: %v", err)
		}
		if len(repo.created) != 1 || repo.created[0] != "Dmytro" {
			t.Fatalf("unexpected created names: %v", repo.created)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		repo := &stubPlayerRepo{}
		svc := NewPlayerService(repo, logging.NewNop())

		if err := svc.Add(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if len(repo.created) != 0 {
			t.Fatalf("nothing should be created")
		}
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		repo := &stubPlayerRepo{players: []player.Player{{ID: 1, Name: "Olha"}}}
		svc := NewPlayerService(repo, logging.NewNop())

		if err := svc.Add(context.Background(), "Olha"); !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
		if len(repo.created) != 0 {
			t.Fatalf("nothing should be created")
		}
	})
}
