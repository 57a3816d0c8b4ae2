package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dkachur/poker-nights/internal/domain/report"
	"github.com/dkachur/poker-nights/internal/platform/logging"
)

type ReportService struct {
	reportRepo report.Repository
	logger     *logging.Logger
}

func NewReportService(reportRepo report.Repository, logger *logging.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Build assembles the aggregate report over the closed interval
// [from, to]. Averages stay nil when the set they are computed over is
// empty, so an empty range reads as "no data" instead of a bogus number.
func (s *ReportService) Build(ctx context.Context, from, to time.Time) (report.Report, error) {
	interval := report.Interval{From: from, To: to}
	if err := interval.Validate(); err != nil {
		return report.Report{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	summary, err := s.reportRepo.MatchSummary(ctx, interval)
	if err != nil {
		return report.Report{}, fmt.Errorf("match summary: %w", err)
	}

	durations, err := s.reportRepo.MatchDurations(ctx, interval)
	if err != nil {
		return report.Report{}, fmt.Errorf("match durations: %w", err)
	}

	totalDeals, err := s.reportRepo.TotalDeals(ctx, interval)
	if err != nil {
		return report.Report{}, fmt.Errorf("total deals: %w", err)
	}

	byLocations, err := s.reportRepo.CountByLocation(ctx, interval)
	if err != nil {
		return report.Report{}, fmt.Errorf("count by location: %w", err)
	}

	moneyByPlayer, err := s.reportRepo.MoneyByPlayer(ctx, interval)
	if err != nil {
		return report.Report{}, fmt.Errorf("money by player: %w", err)
	}

	byCombinations, err := s.reportRepo.CountByHandRank(ctx, interval)
	if err != nil {
		return report.Report{}, fmt.Errorf("count by hand rank: %w", err)
	}

	byVictories, err := s.reportRepo.WinsByPlayer(ctx, interval)
	if err != nil {
		return report.Report{}, fmt.Errorf("wins by player: %w", err)
	}

	tallies, err := s.reportRepo.DealerTallies(ctx, interval)
	if err != nil {
		return report.Report{}, fmt.Errorf("dealer tallies: %w", err)
	}

	out := report.Report{
		From:               from,
		To:                 to,
		TotalMatchesCount:  summary.TotalMatches,
		TotalDealsCount:    totalDeals,
		TotalMoneyInvested: summary.TotalMoneyInvested,
		ByLocations:        byLocations,
		ByIncome:           moneyByPlayer,
		ByProfit:           profitRanking(moneyByPlayer),
		ByCombinations:     byCombinations,
		ByVictories:        byVictories,
		ByDealerWins:       dealerWins(tallies),
	}
	if summary.AveragePlayersCount != nil {
		out.AveragePlayersCount = roundToInt(*summary.AveragePlayersCount)
	}
	out.LongestMatchMinutes = durations.LongestMinutes
	if durations.AverageMinutes != nil {
		out.AverageMatchMinutes = roundToInt(*durations.AverageMinutes)
	}

	s.logger.Debug("report built",
		"matches", out.TotalMatchesCount,
		"deals", out.TotalDealsCount,
	)

	return out, nil
}

// profitRanking reorders the income ranking by summed profit descending.
func profitRanking(byIncome []report.PlayerMoney) []report.PlayerMoney {
	out := append([]report.PlayerMoney(nil), byIncome...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Profit > out[j].Profit
	})
	return out
}

// dealerWins keeps only players with at least one self-deal win and
// computes which share of their dealt deals they also won.
func dealerWins(tallies []report.DealerTally) []report.DealerWins {
	out := make([]report.DealerWins, 0, len(tallies))
	for _, t := range tallies {
		if t.SelfDealWins == 0 || t.DealsDealt == 0 {
			continue
		}
		out = append(out, report.DealerWins{
			PlayerID:     t.PlayerID,
			PlayerName:   t.PlayerName,
			DealsDealt:   t.DealsDealt,
			SelfDealWins: t.SelfDealWins,
			WinsPercent:  int64(math.Round(float64(t.SelfDealWins) / float64(t.DealsDealt) * 100)),
		})
	}
	return out
}

func roundToInt(v float64) *int64 {
	rounded := int64(math.Round(v))
	return &rounded
}
