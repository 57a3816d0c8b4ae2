package cli

import (
	"context"
	"os"
	"time"

	"github.com/pterm/pterm"
)

// runShowReport builds the aggregate report over an inclusive date range
// and writes the rendered documents next to the configured paths.
func (c *CLI) runShowReport(ctx context.Context) error {
	from, err := promptDate("Report start date (DD.MM.YYYY):")
	if err != nil {
		return err
	}
	to, err := promptDate("Report end date (DD.MM.YYYY):")
	if err != nil {
		return err
	}

	// from is midnight already; to must cover the whole final day.
	toEnd := to.Add(24*time.Hour - time.Millisecond)

	rep, err := c.reports.Build(ctx, from, toEnd)
	if err != nil {
		return err
	}

	html, err := c.renderer.RenderHTML(rep)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.opts.ReportHTMLPath, html, 0o644); err != nil {
		return err
	}
	pterm.Success.Printfln("Report saved to %s", c.opts.ReportHTMLPath)

	if c.opts.ReportJSONPath != "" {
		raw, err := c.renderer.RenderJSON(rep)
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.opts.ReportJSONPath, raw, 0o644); err != nil {
			return err
		}
		pterm.Success.Printfln("Report data saved to %s", c.opts.ReportJSONPath)
	}

	if c.opts.OpenReport {
		if err := openInViewer(c.opts.ReportHTMLPath); err != nil {
			pterm.Warning.Printfln("Could not open the report automatically: %v", err)
		}
	}

	return nil
}
