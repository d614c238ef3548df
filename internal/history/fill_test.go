package history

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mossline/mossline/internal/calendar"
)

func day(yearDay int) time.Time {
	return time.Date(2025, time.January, yearDay, 0, 0, 0, 0, time.UTC)
}

func newFillRunner(t *testing.T, committer Committer, min, max int, start, end time.Time, draws []int) (*FillRunner, string) {
	t.Helper()
	path := activityPath(t)
	rnd := &fakeRand{values: draws}
	return &FillRunner{
		Writer:   NewWriter(committer, path),
		Stamper:  calendar.NewStamper(rnd),
		Rand:     rnd,
		Range:    calendar.NewDayRange(start, end),
		Min:      min,
		Max:      max,
		Template: "activity: {date} #{n}",
	}, path
}

func TestFillRunner_FixedDensity(t *testing.T) {
	committer := &recordingCommitter{}
	runner, _ := newFillRunner(t, committer, 2, 2, day(1), day(5), []int{0})

	totals, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// min=max=2 over 5 days: exactly 2 commits per day.
	if totals.Days != 5 {
		t.Errorf("Days = %d, want 5", totals.Days)
	}
	if totals.Commits != 10 {
		t.Errorf("Commits = %d, want 10", totals.Commits)
	}
	if len(committer.commits) != 10 {
		t.Fatalf("recorded commits = %d, want 10", len(committer.commits))
	}

	// Per-day index restarts at 1 and each commit carries its day's date.
	for i, commit := range committer.commits {
		wantDate := day(1 + i/2).Format(calendar.DateLayout)
		wantN := "#" + string(rune('1'+i%2))
		if !strings.Contains(commit.Message, wantDate) {
			t.Errorf("commit %d message = %q, want date %s", i, commit.Message, wantDate)
		}
		if !strings.Contains(commit.Message, wantN) {
			t.Errorf("commit %d message = %q, want index %s", i, commit.Message, wantN)
		}
		if !strings.HasPrefix(commit.Timestamp, wantDate+"T") {
			t.Errorf("commit %d timestamp = %q, want prefix %sT", i, commit.Timestamp, wantDate)
		}
	}
}

func TestFillRunner_ZeroDensity(t *testing.T) {
	committer := &recordingCommitter{}
	runner, path := newFillRunner(t, committer, 0, 0, day(1), day(10), []int{0})

	totals, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if totals.Days != 10 {
		t.Errorf("Days = %d, want 10", totals.Days)
	}
	if totals.Commits != 0 {
		t.Errorf("Commits = %d, want 0", totals.Commits)
	}
	if len(committer.commits) != 0 {
		t.Errorf("recorded commits = %d, want 0", len(committer.commits))
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("activity file should be untouched when every day draws zero")
	}
}

func TestFillRunner_UniformDraws(t *testing.T) {
	committer := &recordingCommitter{}
	// Density draw then 3 stamp draws per commit: script the density
	// draws only through a dedicated Rand, leaving the stamper its own.
	path := activityPath(t)
	densityRand := &fakeRand{values: []int{2, 0, 3}} // counts 3, 1, 4 with min=1
	runner := &FillRunner{
		Writer:   NewWriter(committer, path),
		Stamper:  calendar.NewStamper(&fakeRand{values: []int{0}}),
		Rand:     densityRand,
		Range:    calendar.NewDayRange(day(1), day(3)),
		Min:      1,
		Max:      4,
		Template: "activity: {date} #{n}",
	}

	totals, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if totals.Commits != 8 {
		t.Errorf("Commits = %d, want 3+1+4 = 8", totals.Commits)
	}
}

func TestFillRunner_SingleDayTwoCommits(t *testing.T) {
	committer := &recordingCommitter{}
	runner, path := newFillRunner(t, committer, 2, 2, day(1), day(1), []int{0})

	totals, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if totals.Commits != 2 {
		t.Errorf("Commits = %d, want 2", totals.Commits)
	}
	for _, commit := range committer.commits {
		if !strings.HasPrefix(commit.Timestamp, "2025-01-01T") {
			t.Errorf("timestamp = %q, want it dated 2025-01-01", commit.Timestamp)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read activity file: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("activity file gained %d lines, want 2", got)
	}
}

func TestFillRunner_ProgressReporting(t *testing.T) {
	committer := &recordingCommitter{}
	runner, _ := newFillRunner(t, committer, 1, 1, day(1), day(21), []int{0})

	var reports []FillTotals
	runner.Progress = func(totals FillTotals) {
		reports = append(reports, totals)
	}

	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// 21 days with reports every 7: after days 7, 14, 21.
	if len(reports) != 3 {
		t.Fatalf("got %d progress reports, want 3", len(reports))
	}
	for i, report := range reports {
		wantDays := (i + 1) * 7
		if report.Days != wantDays || report.Commits != wantDays {
			t.Errorf("report %d = %+v, want days=commits=%d", i, report, wantDays)
		}
	}
}

func TestFillRunner_FailureAborts(t *testing.T) {
	committer := &recordingCommitter{failAfter: 3}
	runner, _ := newFillRunner(t, committer, 2, 2, day(1), day(5), []int{0})

	totals, err := runner.Run(context.Background())
	if err == nil {
		t.Fatal("Run() should propagate the commit failure")
	}
	if totals.Commits != 3 {
		t.Errorf("Commits = %d, want 3 (progress up to the failure)", totals.Commits)
	}
	if len(committer.commits) != 3 {
		t.Errorf("recorded commits = %d, want 3", len(committer.commits))
	}
}

func TestFillRunner_Plan(t *testing.T) {
	runner, path := newFillRunner(t, &recordingCommitter{}, 3, 3, day(1), day(4), []int{0})

	totals := runner.Plan()
	if totals.Days != 4 || totals.Commits != 12 {
		t.Errorf("Plan() = %+v, want days=4 commits=12", totals)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Plan() must not touch the activity file")
	}
}
