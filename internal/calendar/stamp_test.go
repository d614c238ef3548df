package calendar

import (
	"strings"
	"testing"
	"time"
)

// scriptedRand returns a fixed sequence of draws, cycling when exhausted.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	if v >= n {
		v = n - 1
	}
	return v
}

func TestStamper_At_Deterministic(t *testing.T) {
	tests := []struct {
		name  string
		draws []int // hour offset, minute, second
		want  string
	}{
		{
			name:  "all zero draws pin to 09:00:00",
			draws: []int{0, 0, 0},
			want:  "2025-01-01T09:00:00",
		},
		{
			name:  "max draws pin to 21:59:59",
			draws: []int{12, 59, 59},
			want:  "2025-01-01T21:59:59",
		},
		{
			name:  "mid draws",
			draws: []int{3, 15, 42},
			want:  "2025-01-01T12:15:42",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			stamper := NewStamper(&scriptedRand{values: testCase.draws})
			got := stamper.At(date(2025, time.January, 1))
			if got != testCase.want {
				t.Errorf("At() = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestStamper_At_BoundsWithSystemSource(t *testing.T) {
	stamper := NewStamper(nil)
	day := date(2025, time.July, 15)

	for range 200 {
		got := stamper.At(day)

		if !strings.HasPrefix(got, "2025-07-15T") {
			t.Fatalf("At() = %q, want date prefix 2025-07-15T", got)
		}

		stamp, err := time.Parse(StampLayout, got)
		if err != nil {
			t.Fatalf("At() produced unparseable stamp %q: %v", got, err)
		}
		if stamp.Hour() < earliestHour || stamp.Hour() > latestHour {
			t.Errorf("At() hour = %d, want within [%d,%d]", stamp.Hour(), earliestHour, latestHour)
		}
	}
}

func TestSeededSource_Reproducible(t *testing.T) {
	first := NewStamper(SeededSource(42))
	second := NewStamper(SeededSource(42))
	day := date(2025, time.March, 3)

	for i := range 20 {
		a, b := first.At(day), second.At(day)
		if a != b {
			t.Fatalf("draw %d: seeded stampers diverged: %q vs %q", i, a, b)
		}
	}
}
