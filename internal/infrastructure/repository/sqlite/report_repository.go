package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dkachur/poker-nights/internal/domain/deal"
	"github.com/dkachur/poker-nights/internal/domain/report"
	qb "github.com/dkachur/poker-nights/internal/platform/querybuilder"
)

// ReportRepository runs the aggregation queries behind a report. Every
// query filters by the parent match's start timestamp falling inside the
// closed interval.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func intervalBounds(interval report.Interval) (int64, int64) {
	return interval.From.UnixMilli(), interval.To.UnixMilli()
}

func (r *ReportRepository) MatchSummary(ctx context.Context, interval report.Interval) (report.MatchSummary, error) {
	from, to := intervalBounds(interval)

	query, args, err := qb.Select(
		"COUNT(1) AS total_matches",
		"COALESCE(SUM(buy_in * players_count), 0) AS money_invested",
		"AVG(players_count) AS average_players",
	).From("matches").
		Where(qb.Expr("started_at BETWEEN ? AND ?", from, to)).
		ToSQL()
	if err != nil {
		return report.MatchSummary{}, fmt.Errorf("build match summary query: %w", err)
	}

	var row matchSummaryRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return report.MatchSummary{}, fmt.Errorf("select match summary: %w", err)
	}

	out := report.MatchSummary{
		TotalMatches:       row.TotalMatches,
		TotalMoneyInvested: row.MoneyInvested,
	}
	if row.AveragePlayers.Valid {
		avg := row.AveragePlayers.Float64
		out.AveragePlayersCount = &avg
	}

	return out, nil
}

func (r *ReportRepository) MatchDurations(ctx context.Context, interval report.Interval) (report.MatchDurations, error) {
	from, to := intervalBounds(interval)

	query, args, err := qb.Select(
		"MAX((ended_at - started_at) / 60000) AS longest_minutes",
		"AVG((ended_at - started_at) / 60000) AS average_minutes",
	).From("matches").
		Where(
			qb.Expr("ended_at IS NOT NULL"),
			qb.Expr("started_at BETWEEN ? AND ?", from, to),
		).
		ToSQL()
	if err != nil {
		return report.MatchDurations{}, fmt.Errorf("build match durations query: %w", err)
	}

	var row matchDurationsRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return report.MatchDurations{}, fmt.Errorf("select match durations: %w", err)
	}

	out := report.MatchDurations{}
	if row.LongestMinutes.Valid {
		longest := row.LongestMinutes.Int64
		out.LongestMinutes = &longest
	}
	if row.AverageMinutes.Valid {
		average := row.AverageMinutes.Float64
		out.AverageMinutes = &average
	}

	return out, nil
}

func (r *ReportRepository) TotalDeals(ctx context.Context, interval report.Interval) (int64, error) {
	from, to := intervalBounds(interval)

	query, args, err := qb.Select("COUNT(1)").
		From("deals JOIN matches ON matches.id = deals.match_id").
		Where(qb.Expr("matches.started_at BETWEEN ? AND ?", from, to)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build total deals query: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("select total deals: %w", err)
	}

	return total, nil
}

func (r *ReportRepository) CountByLocation(ctx context.Context, interval report.Interval) ([]report.LocationCount, error) {
	from, to := intervalBounds(interval)

	query, args, err := qb.Select(
		"matches.location_id AS location_id",
		"locations.name AS location_name",
		"COUNT(1) AS cnt",
	).From("matches JOIN locations ON locations.id = matches.location_id").
		Where(qb.Expr("matches.started_at BETWEEN ? AND ?", from, to)).
		GroupBy("matches.location_id", "locations.name").
		OrderBy("cnt DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build matches by location query: %w", err)
	}

	var rows []locationCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by location: %w", err)
	}

	out := make([]report.LocationCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.LocationCount{
			LocationID:   row.LocationID,
			LocationName: row.LocationName,
			Matches:      row.Matches,
		})
	}

	return out, nil
}

func (r *ReportRepository) MoneyByPlayer(ctx context.Context, interval report.Interval) ([]report.PlayerMoney, error) {
	from, to := intervalBounds(interval)

	query, args, err := qb.Select(
		"players.id AS player_id",
		"players.name AS player_name",
		"COALESCE(SUM(pm.money_earned), 0) AS money_earned",
		"COALESCE(SUM(pm.profit), 0) AS profit",
	).From("players_matches pm" +
		" JOIN matches ON matches.id = pm.match_id" +
		" JOIN players ON players.id = pm.player_id").
		Where(qb.Expr("matches.started_at BETWEEN ? AND ?", from, to)).
		GroupBy("players.id", "players.name").
		OrderBy("money_earned DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build money by player query: %w", err)
	}

	var rows []playerMoneyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select money by player: %w", err)
	}

	out := make([]report.PlayerMoney, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.PlayerMoney{
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			MoneyEarned: row.MoneyEarned,
			Profit:      row.Profit,
		})
	}

	return out, nil
}

func (r *ReportRepository) CountByHandRank(ctx context.Context, interval report.Interval) ([]report.HandRankCount, error) {
	from, to := intervalBounds(interval)

	query, args, err := qb.Select(
		"deals.winning_hand_rank AS winning_hand_rank",
		"COUNT(1) AS cnt",
	).From("deals JOIN matches ON matches.id = deals.match_id").
		Where(qb.Expr("matches.started_at BETWEEN ? AND ?", from, to)).
		GroupBy("deals.winning_hand_rank").
		OrderBy("cnt DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build deals by hand rank query: %w", err)
	}

	var rows []handRankCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select deals by hand rank: %w", err)
	}

	out := make([]report.HandRankCount, 0, len(rows))
	for _, row := range rows {
		rank := deal.HandRank(row.Rank)
		out = append(out, report.HandRankCount{
			Rank:     rank,
			RankName: rank.String(),
			Deals:    row.Deals,
		})
	}

	return out, nil
}

func (r *ReportRepository) WinsByPlayer(ctx context.Context, interval report.Interval) ([]report.PlayerWins, error) {
	from, to := intervalBounds(interval)

	query, args, err := qb.Select(
		"players.id AS player_id",
		"players.name AS player_name",
		"COUNT(1) AS cnt",
	).From("deals" +
		" JOIN matches ON matches.id = deals.match_id" +
		" JOIN players ON players.id = deals.winner_id").
		Where(qb.Expr("matches.started_at BETWEEN ? AND ?", from, to)).
		GroupBy("players.id", "players.name").
		OrderBy("cnt DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build wins by player query: %w", err)
	}

	var rows []playerWinsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select wins by player: %w", err)
	}

	out := make([]report.PlayerWins, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.PlayerWins{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Wins:       row.Wins,
		})
	}

	return out, nil
}

func (r *ReportRepository) DealerTallies(ctx context.Context, interval report.Interval) ([]report.DealerTally, error) {
	from, to := intervalBounds(interval)

	query, args, err := qb.Select(
		"players.id AS player_id",
		"players.name AS player_name",
		"COUNT(1) AS deals_dealt",
		"COALESCE(SUM(CASE WHEN deals.winner_id = deals.dealer_id THEN 1 ELSE 0 END), 0) AS self_deal_wins",
	).From("deals" +
		" JOIN matches ON matches.id = deals.match_id" +
		" JOIN players ON players.id = deals.dealer_id").
		Where(qb.Expr("matches.started_at BETWEEN ? AND ?", from, to)).
		GroupBy("players.id", "players.name").
		OrderBy("self_deal_wins DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build dealer tallies query: %w", err)
	}

	var rows []dealerTallyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select dealer tallies: %w", err)
	}

	out := make([]report.DealerTally, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.DealerTally{
			PlayerID:     row.PlayerID,
			PlayerName:   row.PlayerName,
			DealsDealt:   row.DealsDealt,
			SelfDealWins: row.SelfDealWins,
		})
	}

	return out, nil
}
