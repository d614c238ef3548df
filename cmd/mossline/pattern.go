// Package main provides the entry point for the mossline CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mossline/mossline/internal/calendar"
	"github.com/mossline/mossline/internal/config"
	"github.com/mossline/mossline/internal/git"
	"github.com/mossline/mossline/internal/history"
	"github.com/mossline/mossline/internal/output"
	"github.com/mossline/mossline/internal/pattern"
)

// runPattern executes pattern mode: paint a named glyph grid onto the
// calendar starting at the configured Sunday.
func runPattern(cmd *cobra.Command, printer *output.Printer, cfg config.Config, name string, dryRun bool) error {
	grid, err := pattern.Lookup(name)
	if err != nil {
		printer.Error(err)
		return err
	}

	rnd := cfg.Rand()
	runner := &history.PatternRunner{
		Writer:   history.NewWriter(history.GitCommitter{}, cfg.ActivityFile),
		Stamper:  calendar.NewStamper(rnd),
		Grid:     grid,
		Start:    cfg.PatternStart,
		PerCell:  cfg.PerCell,
		Template: cfg.MessageTemplate,
	}

	lastDay := calendar.DateOnly(cfg.PatternStart).AddDate(0, 0, (grid.Width()-1)*7+pattern.GridRows-1)

	if dryRun {
		planned := runner.Plan()
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"mode":      modePattern,
				"dry_run":   true,
				"pattern":   strings.ToLower(name),
				"weeks":     grid.Width(),
				"lit_cells": grid.Lit(),
				"per_cell":  cfg.PerCell,
				"commits":   planned,
				"start":     cfg.PatternStart.Format(calendar.DateLayout),
				"end":       lastDay.Format(calendar.DateLayout),
			})
		}

		printer.Println(renderGrid(printer, grid))
		printer.KeyValue("Pattern", strings.ToLower(name))
		printer.KeyValue("Span", cfg.PatternStart.Format(calendar.DateLayout)+" .. "+lastDay.Format(calendar.DateLayout))
		printer.KeyValue("Lit cells", fmt.Sprintf("%d", grid.Lit()))
		return printer.Success(map[string]any{
			"message": fmt.Sprintf("dry run: would create %d commits (%d lit cells x %d)",
				planned, grid.Lit(), cfg.PerCell),
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

	total, err := runner.Run(ctx)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"mode":      modePattern,
			"pattern":   strings.ToLower(name),
			"weeks":     grid.Width(),
			"lit_cells": grid.Lit(),
			"per_cell":  cfg.PerCell,
			"commits":   total,
			"start":     cfg.PatternStart.Format(calendar.DateLayout),
			"end":       lastDay.Format(calendar.DateLayout),
			"file":      cfg.ActivityFile,
		})
	}

	printer.Println(renderGrid(printer, grid))
	printer.KeyValue("Pattern", strings.ToLower(name))
	printer.KeyValue("Span", cfg.PatternStart.Format(calendar.DateLayout)+" .. "+lastDay.Format(calendar.DateLayout))
	printer.KeyValue("Commits", fmt.Sprintf("%d", total))
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("created %d commits (%d lit cells x %d)", total, grid.Lit(), cfg.PerCell),
	})
}

// renderGrid draws the grid the way the calendar will show it: one line
// per weekday, one column per week, lit cells highlighted on a TTY.
func renderGrid(printer *output.Printer, grid pattern.Grid) string {
	styles := printer.Styles()
	var rendered strings.Builder
	for weekday := range pattern.GridRows {
		if weekday > 0 {
			rendered.WriteByte('\n')
		}
		for week := range grid.Width() {
			if grid.IsLit(week, weekday) {
				rendered.WriteString(styles.Lit.Render("#"))
			} else {
				rendered.WriteString(styles.Blank.Render("."))
			}
		}
	}
	return rendered.String()
}
