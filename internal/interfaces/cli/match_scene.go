package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/dkachur/poker-nights/internal/domain/deal"
	"github.com/dkachur/poker-nights/internal/domain/player"
	"github.com/dkachur/poker-nights/internal/usecase"
)

const (
	defaultBuyIn      = "100"
	defaultChipsCount = "500"
	defaultMinBet     = 10
)

// runAddMatch walks the whole entry session: match facts, roster, deals,
// settlement, preview, confirmation. Everything lives in the draft until
// the operator confirms; declining at any gate discards it all.
func (c *CLI) runAddMatch(ctx context.Context) error {
	locations, err := c.locations.List(ctx)
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		pterm.Warning.Println("No locations yet, add one first!")
		return nil
	}

	allPlayers, err := c.players.List(ctx)
	if err != nil {
		return err
	}
	if len(allPlayers) == 0 {
		pterm.Warning.Println("No players yet, add some first!")
		return nil
	}

	locationLabels := make([]string, 0, len(locations))
	for _, l := range locations {
		locationLabels = append(locationLabels, fmt.Sprintf("%s (#%d)", l.Name, l.ID))
	}
	locationIdx, err := selectOption("Okay, new match! Select a location where it took place:", locationLabels, 0)
	if err != nil {
		return err
	}
	chosenLocation := locations[locationIdx]

	date, err := promptDate("Date (DD.MM.YYYY):")
	if err != nil {
		return err
	}
	startHour, startMinute, hasStartTime, err := promptOptionalTime("Start time (HH:mm) or empty if unknown:")
	if err != nil {
		return err
	}

	playersCount, err := promptInt64("Number of players:", "", func(v int64) error {
		if v <= 0 {
			return fmt.Errorf("players count should be greater than 0")
		}
		if v > int64(len(allPlayers)) {
			return fmt.Errorf("only %d players are registered", len(allPlayers))
		}
		return nil
	})
	if err != nil {
		return err
	}

	buyIn, err := promptInt64(fmt.Sprintf("Buy-in amount in %s:", c.opts.Currency), defaultBuyIn, func(v int64) error {
		if v < 0 {
			return fmt.Errorf("buy-in amount should be greater or equal to 0")
		}
		return nil
	})
	if err != nil {
		return err
	}

	chipsCount, err := promptInt64("Number of chips, bought for given buy-in:", defaultChipsCount, func(v int64) error {
		if v <= 0 {
			return fmt.Errorf("chips count should be greater than 0")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := c.warnAboutSameDayMatches(ctx, date); err != nil {
		return err
	}

	startedAt := date
	if hasStartTime {
		startedAt = time.Date(date.Year(), date.Month(), date.Day(), startHour, startMinute, 0, 0, time.Local)
	}

	draft, err := c.entry.NewDraft(chosenLocation.ID, startedAt, buyIn, int(playersCount), chipsCount)
	if err != nil {
		return err
	}

	playersByID := make(map[int64]player.Player, len(allPlayers))
	for _, p := range allPlayers {
		playersByID[p.ID] = p
	}

	if err := c.captureRoster(draft, allPlayers); err != nil {
		return err
	}
	if err := c.captureDeals(draft, playersByID); err != nil {
		return err
	}
	if len(draft.Deals) == 0 {
		pterm.Warning.Println("No deals added! Match adding cancelled")
		return nil
	}

	endHour, endMinute, hasEndTime, err := promptOptionalTime("End time (HH:mm) or empty if unknown:")
	if err != nil {
		return err
	}
	if hasEndTime {
		draft.SetEndTime(time.Date(date.Year(), date.Month(), date.Day(), endHour, endMinute, 0, 0, time.Local))
	}

	for _, playerID := range draft.SeatedPlayerIDs() {
		name := playersByID[playerID].Name
		finalChips, err := promptInt64(fmt.Sprintf("Enter final chips count for player %s:", name), "", func(v int64) error {
			if v < 0 {
				return fmt.Errorf("final chips count should be greater or equal to 0")
			}
			return nil
		})
		if err != nil {
			return err
		}
		if err := draft.SettleParticipant(playerID, finalChips); err != nil {
			return err
		}
	}

	c.printPreview(draft, chosenLocation.Name, playersByID)

	confirmed, err := promptConfirm("Do you want to add this match?", true)
	if err != nil {
		return err
	}
	if !confirmed {
		pterm.Warning.Println("Match discarded, nothing was saved")
		return nil
	}

	if err := c.entry.Submit(ctx, draft); err != nil {
		return err
	}

	pterm.Success.Printfln("Match %q added successfully!", draft.Match.ID)
	return nil
}

func (c *CLI) warnAboutSameDayMatches(ctx context.Context, date time.Time) error {
	dayMatches, err := c.entry.MatchesAtDate(ctx, date)
	if err != nil {
		return err
	}
	if len(dayMatches) == 0 {
		return nil
	}

	pterm.Warning.Printfln("There are %d matches present on given date:", len(dayMatches))
	for _, m := range dayMatches {
		pterm.Printfln("  %s, %d buy-in, %d players",
			m.StartedAt.Format(timeLayout), m.BuyIn, m.PlayersCount)
	}

	return nil
}

// captureRoster seats playersCount distinct players; a player already
// chosen disappears from the next selection list.
func (c *CLI) captureRoster(draft *usecase.Draft, allPlayers []player.Player) error {
	seated := make(map[int64]bool, draft.Match.PlayersCount)

	for seat := 1; !draft.RosterComplete(); seat++ {
		available := make([]player.Player, 0, len(allPlayers))
		labels := make([]string, 0, len(allPlayers))
		for _, p := range allPlayers {
			if seated[p.ID] {
				continue
			}
			available = append(available, p)
			labels = append(labels, fmt.Sprintf("%s (#%d)", p.Name, p.ID))
		}

		idx, err := selectOption(fmt.Sprintf("Select player #%d:", seat), labels, 0)
		if err != nil {
			return err
		}

		chosen := available[idx]
		if err := draft.AddParticipant(chosen.ID); err != nil {
			return err
		}
		seated[chosen.ID] = true
		pterm.Success.Printfln("Player #%d added: %s", seat, chosen.Name)
	}

	return nil
}

// captureDeals loops hands until the operator declines. The minimum bet
// defaults to the previous deal's value, carried as a plain local.
func (c *CLI) captureDeals(draft *usecase.Draft, playersByID map[int64]player.Player) error {
	roster := draft.SeatedPlayerIDs()
	rosterLabels := make([]string, 0, len(roster))
	for _, playerID := range roster {
		rosterLabels = append(rosterLabels, fmt.Sprintf("%s (#%d)", playersByID[playerID].Name, playerID))
	}

	ranks := deal.AllHandRanks()
	rankLabels := make([]string, 0, len(ranks))
	for _, r := range ranks {
		rankLabels = append(rankLabels, r.String())
	}

	lastMinBet := int64(defaultMinBet)
	for {
		again, err := promptConfirm("Do you want to add another deal?", true)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}

		dealNum := len(draft.Deals) + 1
		pterm.Println()
		pterm.Info.Printfln("Deal #%d", dealNum)

		dealerIdx, err := selectOption("Select dealer:", rosterLabels, (dealNum-1)%len(roster))
		if err != nil {
			return err
		}

		minBet, err := promptInt64("Minimum bet (big blind):", fmt.Sprintf("%d", lastMinBet), func(v int64) error {
			if v <= 0 {
				return fmt.Errorf("minimum bet should be greater than 0")
			}
			return nil
		})
		if err != nil {
			return err
		}
		lastMinBet = minBet

		winnerIdx, err := selectOption("Select winner:", rosterLabels, 0)
		if err != nil {
			return err
		}

		rankIdx, err := selectOption("Select winning hand rank:", rankLabels, 0)
		if err != nil {
			return err
		}

		winningHand, err := promptText("Enter winning hand additional data, if present:")
		if err != nil {
			return err
		}

		if _, err := c.entry.AddDeal(draft, usecase.DealInput{
			DealerID:    roster[dealerIdx],
			WinnerID:    roster[winnerIdx],
			MinBet:      minBet,
			Rank:        ranks[rankIdx],
			WinningHand: winningHand,
		}); err != nil {
			return err
		}

		pterm.Success.Printfln("Deal #%d added!", dealNum)
		pterm.Println()
	}
}

func (c *CLI) printPreview(draft *usecase.Draft, locationName string, playersByID map[int64]player.Player) {
	m := draft.Match

	pterm.Println()
	pterm.Info.Println("Match preview:")
	pterm.Printfln("  Location: %s", locationName)
	pterm.Printfln("  Date: %s", m.StartedAt.Format(dateLayout))
	pterm.Printfln("  Time: %s", m.StartedAt.Format(timeLayout))
	if m.EndedAt != nil {
		pterm.Printfln("  Ended: %s", m.EndedAt.Format(timeLayout))
	}
	pterm.Printfln("  Players count: %d", m.PlayersCount)
	pterm.Printfln("  Buy-in: %d %s", m.BuyIn, c.opts.Currency)
	pterm.Printfln("  Chips count: %d", m.ChipsCount)

	pterm.Println("  Players:")
	for _, pm := range draft.PlayerMatches {
		pterm.Printfln("    %s (#%d), %d chips, %d %s earned, %+d profit",
			playersByID[pm.PlayerID].Name, pm.PlayerID,
			pm.FinalChipsCount, pm.MoneyEarned, c.opts.Currency, pm.Profit)
	}

	pterm.Println("  Deals:")
	for _, d := range draft.Deals {
		pterm.Printfln("    #%d / dealer %s / winner %s / %s",
			d.Num,
			playersByID[d.DealerID].Name,
			playersByID[d.WinnerID].Name,
			d.WinningHandRank)
	}
	pterm.Println()
}
