package calendar

import (
	"math/rand/v2"
	"time"
)

// StampLayout is the timestamp format handed to git as an explicit date
// override. ISO-8601 without a zone: git resolves it in local time, which
// matches how the calendar displays attribute activity.
const StampLayout = "2006-01-02T15:04:05"

// Commit times are drawn from a plausible working-hours window.
const (
	earliestHour = 9
	latestHour   = 21
)

// Rand is the randomness source for timestamp and density draws.
// *math/rand/v2.Rand satisfies it; tests inject fixed sequences.
type Rand interface {
	IntN(n int) int
}

// SeededSource returns a deterministic Rand for the given seed.
func SeededSource(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// SystemSource returns the process-wide auto-seeded Rand.
func SystemSource() Rand {
	return systemSource{}
}

// systemSource draws from the process-wide auto-seeded generator.
type systemSource struct{}

func (systemSource) IntN(n int) int { return rand.IntN(n) }

// Stamper turns calendar dates into randomized commit timestamps.
type Stamper struct {
	rnd Rand
}

// NewStamper creates a Stamper drawing from rnd, or from the system
// source when rnd is nil.
func NewStamper(rnd Rand) *Stamper {
	if rnd == nil {
		rnd = systemSource{}
	}
	return &Stamper{rnd: rnd}
}

// At combines the given date with a fresh random time of day, hour in
// [9,21] and minute/second in [0,59], formatted per StampLayout.
func (s *Stamper) At(day time.Time) string {
	hour := earliestHour + s.rnd.IntN(latestHour-earliestHour+1)
	minute := s.rnd.IntN(60)
	second := s.rnd.IntN(60)

	year, month, dayOfMonth := day.Date()
	stamp := time.Date(year, month, dayOfMonth, hour, minute, second, 0, day.Location())
	return stamp.Format(StampLayout)
}
