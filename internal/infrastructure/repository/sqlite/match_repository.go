package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dkachur/poker-nights/internal/domain/deal"
	"github.com/dkachur/poker-nights/internal/domain/match"
	qb "github.com/dkachur/poker-nights/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"id",
	"started_at",
	"ended_at",
	"entered_at",
	"location_id",
	"buy_in",
	"players_count",
	"chips_count",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		OrderBy("started_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}

	return out, nil
}

func (r *MatchRepository) ListAtDate(ctx context.Context, date time.Time) ([]match.Match, error) {
	from := date.UnixMilli()
	to := from + 24*time.Hour.Milliseconds()

	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Expr("started_at >= ? AND started_at < ?", from, to)).
		OrderBy("started_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches at date query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches at date: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}

	return out, nil
}

// CreateWithDetails inserts the match, its participant rows and its deal
// rows in referential order inside one transaction, so an aborted batch
// never leaves an orphaned match behind.
func (r *MatchRepository) CreateWithDetails(ctx context.Context, m match.Match, playerMatches []match.PlayerMatch, deals []deal.Deal) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create match tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := qb.InsertModel("matches", matchTableModelFrom(m))
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match %s: %w", m.ID, err)
	}

	for _, pm := range playerMatches {
		query, args, err := qb.InsertModel("players_matches", playerMatchTableModelFrom(pm))
		if err != nil {
			return fmt.Errorf("build insert player match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert player match player=%d match=%s: %w", pm.PlayerID, pm.MatchID, err)
		}
	}

	for _, d := range deals {
		query, args, err := qb.InsertModel("deals", dealTableModelFrom(d))
		if err != nil {
			return fmt.Errorf("build insert deal query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert deal #%d match=%s: %w", d.Num, d.MatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create match tx: %w", err)
	}

	return nil
}
