package calendar

import (
	"iter"
	"time"

	"github.com/mossline/mossline/internal/output"
)

// DateLayout is the wire format for calendar dates on the CLI and in
// commit message templates.
const DateLayout = "2006-01-02"

// DayRange is an inclusive range of calendar dates.
type DayRange struct {
	Start time.Time
	End   time.Time
}

// NewDayRange builds a range from two dates, truncating both to date-only
// granularity. The range is inclusive on both ends.
func NewDayRange(start, end time.Time) DayRange {
	return DayRange{Start: DateOnly(start), End: DateOnly(end)}
}

// Validate checks the range invariant: Start must not be after End.
func (r DayRange) Validate() error {
	if r.Start.After(r.End) {
		return output.NewUserError("invalid date range: start " +
			r.Start.Format(DateLayout) + " is after end " + r.End.Format(DateLayout))
	}
	return nil
}

// Days returns a lazy sequence of every date in the range, in order,
// advancing by exactly one calendar day. The sequence is finite and
// restartable; an invalid range yields nothing.
func (r DayRange) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for day := r.Start; !day.After(r.End); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}

// Len returns the number of days in the range, zero if invalid.
func (r DayRange) Len() int {
	if r.Start.After(r.End) {
		return 0
	}
	count := 0
	for range r.Days() {
		count++
	}
	return count
}

// DateOnly strips the time-of-day from t, keeping its location.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
