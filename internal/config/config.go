// Package config holds the static run configuration for mossline.
//
// Every option is an in-process value with a compiled-in default, exposed
// on the CLI as a flag. There is no config file and no environment
// override mechanism.
package config

import (
	"time"

	"github.com/mossline/mossline/internal/calendar"
	"github.com/mossline/mossline/internal/output"
)

// Config is the full option set read at startup.
type Config struct {
	// Fill mode: inclusive date range and commits-per-day bounds.
	Start     time.Time
	End       time.Time
	MinPerDay int
	MaxPerDay int

	// Shared: tracked file that receives one line per commit, and the
	// commit message template with {n} and {date} placeholders.
	ActivityFile    string
	MessageTemplate string

	// Pattern mode: date of the grid's top-left cell (should be a
	// Sunday) and commits per lit cell.
	PatternStart time.Time
	PerCell      int

	// Seed for the randomness source; zero means time-seeded.
	Seed uint64
}

// Default returns the built-in configuration: fill the past year with a
// light random density, and start patterns on the Sunday a year back so
// the default grid is weekday-aligned.
func Default() Config {
	today := calendar.DateOnly(time.Now())
	return Config{
		Start:           today.AddDate(-1, 0, 0),
		End:             today,
		MinPerDay:       0,
		MaxPerDay:       3,
		ActivityFile:    "activity.log",
		MessageTemplate: "activity: {date} #{n}",
		PatternStart:    alignedSundayAYearBack(today),
		PerCell:         2,
	}
}

// alignedSundayAYearBack returns the Sunday on or before today minus 52
// weeks, so a 7-row grid starting there maps row 0 to Sundays.
func alignedSundayAYearBack(today time.Time) time.Time {
	start := today.AddDate(0, 0, -52*7)
	return start.AddDate(0, 0, -int(start.Weekday()))
}

// Validate checks the configuration invariants, returning a user error on
// the first violation.
func (c Config) Validate() error {
	if err := calendar.NewDayRange(c.Start, c.End).Validate(); err != nil {
		return err
	}
	if c.MinPerDay < 0 {
		return output.NewUserError("min commits per day must not be negative")
	}
	if c.MinPerDay > c.MaxPerDay {
		return output.NewUserError("min commits per day must not exceed max")
	}
	if c.PerCell < 1 {
		return output.NewUserError("commits per lit cell must be at least 1")
	}
	if c.ActivityFile == "" {
		return output.NewUserError("activity file path must not be empty")
	}
	if c.MessageTemplate == "" {
		return output.NewUserError("commit message template must not be empty")
	}
	return nil
}

// Rand returns the randomness source for this run: deterministic when a
// seed is set, system-seeded otherwise.
func (c Config) Rand() calendar.Rand {
	if c.Seed != 0 {
		return calendar.SeededSource(c.Seed)
	}
	return calendar.SystemSource()
}
