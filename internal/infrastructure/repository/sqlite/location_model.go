package sqlite

import "github.com/dkachur/poker-nights/internal/domain/location"

type locationTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (m locationTableModel) toEntity() location.Location {
	return location.Location{
		ID:   m.ID,
		Name: m.Name,
	}
}

func locationTableModelFrom(l location.Location) locationTableModel {
	return locationTableModel{
		ID:   l.ID,
		Name: l.Name,
	}
}
