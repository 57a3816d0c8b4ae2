package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dkachur/poker-nights/internal/domain/location"
	qb "github.com/dkachur/poker-nights/internal/platform/querybuilder"
)

type LocationRepository struct {
	db *sqlx.DB
}

var locationSelectColumns = []string{
	"id",
	"name",
}

func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) List(ctx context.Context) ([]location.Location, error) {
	query, args, err := qb.Select(locationSelectColumns...).From("locations").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select locations query: %w", err)
	}

	var rows []locationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select locations: %w", err)
	}

	out := make([]location.Location, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}

	return out, nil
}

func (r *LocationRepository) Create(ctx context.Context, name string) error {
	query, args, err := qb.InsertInto("locations").
		Columns("name").
		Values(name).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert location query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert location: %w", err)
	}

	return nil
}
