package history

import (
	"context"
	"time"

	"github.com/mossline/mossline/internal/calendar"
	"github.com/mossline/mossline/internal/pattern"
)

// PatternRunner paints a compiled glyph grid onto the contribution
// calendar: columns are weeks, rows are weekdays, and every lit cell
// receives exactly PerCell commits dated Start + (7*week + weekday) days.
//
// Start must fall on the weekday of row 0 (Sunday) for the pattern to
// render upright; that alignment is the caller's to satisfy.
type PatternRunner struct {
	Writer   *Writer
	Stamper  *calendar.Stamper
	Grid     pattern.Grid
	Start    time.Time
	PerCell  int
	Template string
}

// Run iterates weeks left to right, weekdays top to bottom, committing
// sequentially. Returns the number of commits created up to the first
// failure, if any.
func (r *PatternRunner) Run(ctx context.Context) (int, error) {
	start := calendar.DateOnly(r.Start)
	total := 0
	for week := 0; week < r.Grid.Width(); week++ {
		for weekday := 0; weekday < pattern.GridRows; weekday++ {
			if !r.Grid.IsLit(week, weekday) {
				continue
			}
			day := start.AddDate(0, 0, week*7+weekday)
			for n := 1; n <= r.PerCell; n++ {
				timestamp := r.Stamper.At(day)
				message := RenderMessage(r.Template, n, day)
				if err := r.Writer.Commit(ctx, timestamp, message); err != nil {
					return total, err
				}
				total++
			}
		}
	}
	return total, nil
}

// Plan returns the number of commits a run would create.
func (r *PatternRunner) Plan() int {
	return r.Grid.Lit() * r.PerCell
}
