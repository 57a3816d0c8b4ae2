package sqlite

import (
	"testing"

	"github.com/dkachur/poker-nights/internal/domain/player"
)

func TestPlayerTableModel_RoundTrip(t *testing.T) {
	p := player.Player{ID: 7, Name: "Olha"}

	back := playerTableModelFrom(p).toEntity()
	if back != p {
		t.Fatalf("round trip changed the player: got=%+v want=%+v", back, p)
	}
}
