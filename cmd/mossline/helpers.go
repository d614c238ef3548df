// Package main provides the entry point for the mossline CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mossline/mossline/internal/calendar"
	"github.com/mossline/mossline/internal/config"
	"github.com/mossline/mossline/internal/output"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// parseDate parses a YYYY-MM-DD flag value into a date, reporting the
// offending flag on failure.
func parseDate(flagName, value string) (time.Time, error) {
	parsed, err := time.Parse(calendar.DateLayout, value)
	if err != nil {
		return time.Time{}, output.NewUserError(
			"invalid --" + flagName + " value " + value + " (want YYYY-MM-DD)")
	}
	return parsed, nil
}

// configFromFlags builds the run configuration from parsed flags.
func configFromFlags(flags *runFlags) (config.Config, error) {
	cfg := config.Default()

	start, err := parseDate("start", flags.start)
	if err != nil {
		return config.Config{}, err
	}
	end, err := parseDate("end", flags.end)
	if err != nil {
		return config.Config{}, err
	}
	patternStart, err := parseDate("pattern-start", flags.patternStart)
	if err != nil {
		return config.Config{}, err
	}

	cfg.Start = start
	cfg.End = end
	cfg.MinPerDay = flags.min
	cfg.MaxPerDay = flags.max
	cfg.ActivityFile = flags.file
	cfg.MessageTemplate = flags.message
	cfg.PatternStart = patternStart
	cfg.PerCell = flags.perCell
	cfg.Seed = flags.seed
	return cfg, nil
}
