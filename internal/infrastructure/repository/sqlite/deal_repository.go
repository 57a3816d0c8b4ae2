package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dkachur/poker-nights/internal/domain/deal"
	qb "github.com/dkachur/poker-nights/internal/platform/querybuilder"
)

type DealRepository struct {
	db *sqlx.DB
}

var dealSelectColumns = []string{
	"id",
	"num",
	"min_bet",
	"dealer_id",
	"match_id",
	"winner_id",
	"split_winner_id",
	"winning_hand",
	"winning_hand_rank",
}

func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) ListByMatch(ctx context.Context, matchID string) ([]deal.Deal, error) {
	query, args, err := qb.Select(dealSelectColumns...).From("deals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("num").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match deals query: %w", err)
	}

	var rows []dealTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match deals: %w", err)
	}

	out := make([]deal.Deal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}

	return out, nil
}
