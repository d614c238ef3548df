// Package main provides the entry point for the mossline CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mossline/mossline/internal/calendar"
	"github.com/mossline/mossline/internal/config"
	"github.com/mossline/mossline/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Generation modes selected by --mode.
const (
	modeFill    = "fill"
	modePattern = "pattern"
)

// defaultPattern is drawn when pattern mode gets no positional name.
const defaultPattern = "HI"

// runFlags holds the command-line flags for a run. Every field mirrors one
// option of the static configuration.
type runFlags struct {
	mode         string
	start        string
	end          string
	min          int
	max          int
	file         string
	message      string
	patternStart string
	perCell      int
	seed         uint64
	dryRun       bool
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the mossline CLI.
func newRootCmd() *cobra.Command {
	flags := &runFlags{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "mossline [pattern]",
		Short: "Grow synthetic commit history over a contribution calendar",
		Long: `Mossline backdates commits so a repository's contribution calendar
appears populated.

Fill mode walks an inclusive date range and creates a random number of
commits per day. Pattern mode paints a named glyph onto the calendar,
one grid column per week, with a fixed number of commits per lit cell.

Every commit appends one line to a tracked activity file, so the diff is
never empty, and overrides both the author and the committer timestamp
to a random working-hours time on the target day.

Examples:
  mossline                                  # Fill the past year
  mossline --start 2025-01-01 --end 2025-06-30 --min 1 --max 4
  mossline --mode pattern                   # Paint the default "HI"
  mossline --mode pattern heart --per-cell 3
  mossline --mode pattern ok --dry-run      # Preview without committing
  mossline --json --seed 42                 # Reproducible run, JSON totals`,
		Args:          cobra.MaximumNArgs(1),
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, flags)
		},
	}

	// Persistent --json flag, mirrored by every output path.
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	cmd.Flags().StringVar(&flags.mode, "mode", modeFill, "Generation mode: fill or pattern")
	cmd.Flags().StringVar(&flags.start, "start", defaults.Start.Format(calendar.DateLayout), "Fill range start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&flags.end, "end", defaults.End.Format(calendar.DateLayout), "Fill range end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().IntVar(&flags.min, "min", defaults.MinPerDay, "Minimum commits per day in fill mode")
	cmd.Flags().IntVar(&flags.max, "max", defaults.MaxPerDay, "Maximum commits per day in fill mode")
	cmd.Flags().StringVar(&flags.file, "file", defaults.ActivityFile, "Tracked activity file that receives one line per commit")
	cmd.Flags().StringVar(&flags.message, "message", defaults.MessageTemplate, "Commit message template with {n} and {date} placeholders")
	cmd.Flags().StringVar(&flags.patternStart, "pattern-start", defaults.PatternStart.Format(calendar.DateLayout), "Date of the pattern's top-left cell (a Sunday)")
	cmd.Flags().IntVar(&flags.perCell, "per-cell", defaults.PerCell, "Commits per lit pattern cell")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for deterministic runs (0 = random)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report what would be committed without touching git")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	return cmd
}

// runRoot validates the configuration and dispatches to the selected mode.
func runRoot(cmd *cobra.Command, args []string, flags *runFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	cfg, err := configFromFlags(flags)
	if err != nil {
		printer.Error(err)
		return err
	}
	if err := cfg.Validate(); err != nil {
		printer.Error(err)
		return err
	}

	switch flags.mode {
	case modeFill:
		return runFill(cmd, printer, cfg, flags.dryRun)
	case modePattern:
		name := defaultPattern
		if len(args) > 0 {
			name = args[0]
		}
		return runPattern(cmd, printer, cfg, name, flags.dryRun)
	default:
		err := output.NewUserError("unknown mode: " + flags.mode + " (valid modes: fill, pattern)")
		printer.Error(err)
		return err
	}
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}
