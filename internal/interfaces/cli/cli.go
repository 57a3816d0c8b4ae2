// Package cli is the interactive front-end: a menu loop dispatching to
// the entry and reporting scenes.
package cli

import (
	"context"
	"errors"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/dkachur/poker-nights/internal/interfaces/htmlreport"
	"github.com/dkachur/poker-nights/internal/platform/logging"
	"github.com/dkachur/poker-nights/internal/usecase"
)

const (
	actionAddPlayer   = "Add a new player"
	actionAddLocation = "Add a new location"
	actionAddMatch    = "Add a new match"
	actionShowReport  = "Show report"
	actionExit        = "Exit"
)

type Options struct {
	ReportHTMLPath string
	ReportJSONPath string
	OpenReport     bool
	Currency       string
}

type CLI struct {
	players   *usecase.PlayerService
	locations *usecase.LocationService
	entry     *usecase.MatchEntryService
	reports   *usecase.ReportService
	renderer  *htmlreport.Renderer
	opts      Options
	logger    *logging.Logger
}

func New(
	players *usecase.PlayerService,
	locations *usecase.LocationService,
	entry *usecase.MatchEntryService,
	reports *usecase.ReportService,
	renderer *htmlreport.Renderer,
	opts Options,
	logger *logging.Logger,
) *CLI {
	return &CLI{
		players:   players,
		locations: locations,
		entry:     entry,
		reports:   reports,
		renderer:  renderer,
		opts:      opts,
		logger:    logger,
	}
}

// Run shows the banner and loops over the home menu until the operator
// exits. Scene failures are reported and the loop continues.
func (c *CLI) Run(ctx context.Context) error {
	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Poker ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Nights", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(banner)
	}
	pterm.Println()

	actions := []string{
		actionAddPlayer,
		actionAddLocation,
		actionAddMatch,
		actionShowReport,
		actionExit,
	}

	for {
		idx, err := selectOption("What do you want to do?", actions, 0)
		if err != nil {
			return err
		}

		var sceneErr error
		switch actions[idx] {
		case actionAddPlayer:
			sceneErr = c.runAddPlayer(ctx)
		case actionAddLocation:
			sceneErr = c.runAddLocation(ctx)
		case actionAddMatch:
			sceneErr = c.runAddMatch(ctx)
		case actionShowReport:
			sceneErr = c.runShowReport(ctx)
		case actionExit:
			return nil
		}

		if sceneErr != nil {
			pterm.Error.Printfln("Action failed: %v", sceneErr)
			c.logger.Error("scene failed", "error", sceneErr)
		}
	}
}

func (c *CLI) runAddPlayer(ctx context.Context) error {
	name, err := promptText("Player name:")
	if err != nil {
		return err
	}

	if err := c.players.Add(ctx, name); err != nil {
		if errors.Is(err, usecase.ErrDuplicate) {
			pterm.Warning.Printfln("Player %q already exists!", name)
			return nil
		}
		if errors.Is(err, usecase.ErrInvalidInput) {
			pterm.Warning.Println("Player name cannot be empty!")
			return nil
		}
		return err
	}

	pterm.Success.Printfln("Player %q added!", name)
	return nil
}

func (c *CLI) runAddLocation(ctx context.Context) error {
	name, err := promptText("Location name:")
	if err != nil {
		return err
	}

	if err := c.locations.Add(ctx, name); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			pterm.Warning.Println("Location name cannot be empty!")
			return nil
		}
		return err
	}

	pterm.Success.Printfln("Location %q added!", name)
	return nil
}
