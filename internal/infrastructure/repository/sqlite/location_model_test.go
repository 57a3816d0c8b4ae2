package sqlite

import (
	"testing"

	"github.com/dkachur/poker-nights/internal/domain/location"
)

func TestLocationTableModel_RoundTrip(t *testing.T) {
	l := location.Location{ID: 2, Name: "Garage"}

	back := locationTableModelFrom(l).toEntity()
	if back != l {
		t.Fatalf("round trip changed the location: got=%+v want=%+v", back, l)
	}
}
