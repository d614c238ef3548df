package history

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mossline/mossline/internal/calendar"
	"github.com/mossline/mossline/internal/git"
	"github.com/mossline/mossline/internal/output"
)

// Committer is the version-control seam the drivers write through.
// Satisfied by GitCommitter in production; tests substitute a recorder.
type Committer interface {
	Stage(ctx context.Context, path string) error
	CommitAt(ctx context.Context, message, timestamp string) error
}

// GitCommitter adapts the git package to the Committer interface.
type GitCommitter struct{}

// Stage adds the path to the index.
func (GitCommitter) Stage(ctx context.Context, path string) error {
	return git.Stage(ctx, path)
}

// CommitAt creates a commit with both timestamps overridden.
func (GitCommitter) CommitAt(ctx context.Context, message, timestamp string) error {
	return git.CommitAt(ctx, message, timestamp)
}

// Writer creates one synthetic commit at a time: a line appended to the
// activity file guarantees a non-empty diff, then the file is staged and
// committed with the overridden timestamp.
type Writer struct {
	committer Committer
	path      string
}

// NewWriter creates a Writer that appends to the tracked file at path.
func NewWriter(committer Committer, path string) *Writer {
	return &Writer{committer: committer, path: path}
}

// Commit performs the append-stage-commit sequence as one logical unit.
// Failures propagate to the caller; nothing is retried or rolled back.
func (w *Writer) Commit(ctx context.Context, timestamp, message string) error {
	if err := w.appendLine(timestamp, message); err != nil {
		return err
	}
	if err := w.committer.Stage(ctx, w.path); err != nil {
		return err
	}
	return w.committer.CommitAt(ctx, message, timestamp)
}

// appendLine adds one activity line derived from the timestamp and message.
func (w *Writer) appendLine(timestamp, message string) error {
	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to open activity file "+w.path, err)
	}

	_, writeErr := fmt.Fprintf(file, "%s %s\n", timestamp, message)
	closeErr := file.Close()
	if writeErr != nil {
		return output.NewSystemErrorWithCause("failed to append to activity file "+w.path, writeErr)
	}
	if closeErr != nil {
		return output.NewSystemErrorWithCause("failed to close activity file "+w.path, closeErr)
	}
	return nil
}

// RenderMessage substitutes the {n} and {date} placeholders in a commit
// message template.
func RenderMessage(template string, n int, date time.Time) string {
	message := strings.ReplaceAll(template, "{n}", strconv.Itoa(n))
	return strings.ReplaceAll(message, "{date}", date.Format(calendar.DateLayout))
}
