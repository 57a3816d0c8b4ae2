// Package app builds the object graph: database, repositories, services
// and the interactive front-end.
package app

import (
	"fmt"

	"github.com/dkachur/poker-nights/internal/config"
	"github.com/dkachur/poker-nights/internal/infrastructure/repository/sqlite"
	"github.com/dkachur/poker-nights/internal/interfaces/cli"
	"github.com/dkachur/poker-nights/internal/interfaces/htmlreport"
	idgen "github.com/dkachur/poker-nights/internal/platform/id"
	"github.com/dkachur/poker-nights/internal/platform/logging"
	"github.com/dkachur/poker-nights/internal/usecase"
)

// App owns the database handle for the lifetime of the CLI session.
type App struct {
	CLI *cli.CLI

	close func() error
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := sqlite.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	playerRepo := sqlite.NewPlayerRepository(db)
	locationRepo := sqlite.NewLocationRepository(db)
	matchRepo := sqlite.NewMatchRepository(db)
	reportRepo := sqlite.NewReportRepository(db)

	playerSvc := usecase.NewPlayerService(playerRepo, logger)
	locationSvc := usecase.NewLocationService(locationRepo, logger)
	entrySvc := usecase.NewMatchEntryService(matchRepo, idgen.NewUUIDGenerator(), logger)
	reportSvc := usecase.NewReportService(reportRepo, logger)

	renderer, err := htmlreport.NewRenderer(cfg.Currency)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("build report renderer: %w", err)
	}

	front := cli.New(
		playerSvc,
		locationSvc,
		entrySvc,
		reportSvc,
		renderer,
		cli.Options{
			ReportHTMLPath: cfg.ReportHTMLPath,
			ReportJSONPath: cfg.ReportJSONPath,
			OpenReport:     cfg.OpenReport,
			Currency:       cfg.Currency,
		},
		logger,
	)

	return &App{
		CLI:   front,
		close: db.Close,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.close == nil {
		return nil
	}
	return a.close()
}
