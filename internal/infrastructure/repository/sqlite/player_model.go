package sqlite

import "github.com/dkachur/poker-nights/internal/domain/player"

type playerTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (m playerTableModel) toEntity() player.Player {
	return player.Player{
		ID:   m.ID,
		Name: m.Name,
	}
}

func playerTableModelFrom(p player.Player) playerTableModel {
	return playerTableModel{
		ID:   p.ID,
		Name: p.Name,
	}
}
