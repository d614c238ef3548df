// Package main provides the entry point for the mossline CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mossline/mossline/internal/calendar"
	"github.com/mossline/mossline/internal/config"
	"github.com/mossline/mossline/internal/git"
	"github.com/mossline/mossline/internal/history"
	"github.com/mossline/mossline/internal/output"
)

// runFill executes fill mode: random-density commits across a date range.
func runFill(cmd *cobra.Command, printer *output.Printer, cfg config.Config, dryRun bool) error {
	rnd := cfg.Rand()
	runner := &history.FillRunner{
		Writer:   history.NewWriter(history.GitCommitter{}, cfg.ActivityFile),
		Stamper:  calendar.NewStamper(rnd),
		Rand:     rnd,
		Range:    calendar.NewDayRange(cfg.Start, cfg.End),
		Min:      cfg.MinPerDay,
		Max:      cfg.MaxPerDay,
		Template: cfg.MessageTemplate,
		Progress: func(totals history.FillTotals) {
			printer.Stderr("  %d days done, %d commits\n", totals.Days, totals.Commits)
		},
	}

	if dryRun {
		totals := runner.Plan()
		return printer.Success(map[string]any{
			"message": fmt.Sprintf("dry run: would create %d commits across %d days", totals.Commits, totals.Days),
			"mode":    modeFill,
			"dry_run": true,
			"days":    totals.Days,
			"commits": totals.Commits,
		})
	}

	ctx := cmd.Context()
	created, err := git.EnsureRepo(ctx)
	if err != nil {
		printer.Error(err)
		return err
	}
	if created {
		printer.Stderr("initialized empty repository\n")
	}

	totals, err := runner.Run(ctx)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"mode":    modeFill,
			"start":   cfg.Start.Format(calendar.DateLayout),
			"end":     cfg.End.Format(calendar.DateLayout),
			"days":    totals.Days,
			"commits": totals.Commits,
			"file":    cfg.ActivityFile,
		})
	}

	printer.KeyValue("Mode", modeFill)
	printer.KeyValue("Range", cfg.Start.Format(calendar.DateLayout)+" .. "+cfg.End.Format(calendar.DateLayout))
	printer.KeyValue("Days", fmt.Sprintf("%d", totals.Days))
	printer.KeyValue("Commits", fmt.Sprintf("%d", totals.Commits))
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("created %d commits across %d days", totals.Commits, totals.Days),
	})
}
