package history

import (
	"context"

	"github.com/mossline/mossline/internal/calendar"
)

// progressEvery is how many days pass between running-total reports.
const progressEvery = 7

// FillTotals is the observable output of a fill run.
type FillTotals struct {
	Days    int `json:"days"`
	Commits int `json:"commits"`
}

// FillRunner spreads commits across a date range: for each day it draws a
// uniform count in [Min,Max] and writes that many commits, each with a
// fresh working-hours timestamp. A zero draw leaves the day empty.
type FillRunner struct {
	Writer   *Writer
	Stamper  *calendar.Stamper
	Rand     calendar.Rand
	Range    calendar.DayRange
	Min, Max int
	Template string

	// Progress, when set, receives running totals every few days.
	Progress func(totals FillTotals)
}

// Run walks the range day by day, committing sequentially. Returns the
// totals accumulated up to the first failure, if any.
func (r *FillRunner) Run(ctx context.Context) (FillTotals, error) {
	var totals FillTotals
	for day := range r.Range.Days() {
		count := r.drawCount()
		for n := 1; n <= count; n++ {
			timestamp := r.Stamper.At(day)
			message := RenderMessage(r.Template, n, day)
			if err := r.Writer.Commit(ctx, timestamp, message); err != nil {
				return totals, err
			}
			totals.Commits++
		}
		totals.Days++

		if r.Progress != nil && totals.Days%progressEvery == 0 {
			r.Progress(totals)
		}
	}
	return totals, nil
}

// Plan simulates a run without touching git or the activity file, drawing
// per-day counts from the same randomness source.
func (r *FillRunner) Plan() FillTotals {
	var totals FillTotals
	for range r.Range.Days() {
		totals.Commits += r.drawCount()
		totals.Days++
	}
	return totals
}

// drawCount picks the number of commits for one day, uniform in [Min,Max].
func (r *FillRunner) drawCount() int {
	return r.Min + r.Rand.IntN(r.Max-r.Min+1)
}
