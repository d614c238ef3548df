package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/mossline/mossline/internal/output"
)

// Run executes a git command with the given arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func Run(args ...string) (string, error) {
	return RunContext(context.Background(), args...)
}

// RunContext executes a git command with the given context and arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunContext(ctx context.Context, args ...string) (string, error) {
	return RunWithEnv(ctx, nil, args...)
}

// RunWithEnv executes a git command with extra environment entries appended
// to the inherited environment. Used for commit date overrides, where
// GIT_COMMITTER_DATE has no command-line equivalent.
func RunWithEnv(ctx context.Context, extraEnv []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check if git is not found
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		// Git command failed - include stderr in message
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo checks if the current directory is inside a git repository.
func IsRepo() bool {
	_, err := Run("rev-parse", "--git-dir")
	return err == nil
}

// RepoRoot returns the root directory of the current git repository.
// Returns an error if not in a git repository.
func RepoRoot() (string, error) {
	root, err := Run("rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("not in a git repository", err)
	}
	return root, nil
}

// EnsureRepo makes sure the current directory is a git working tree,
// initializing one if needed. Returns true if a repository was created.
func EnsureRepo(ctx context.Context) (bool, error) {
	if IsRepo() {
		return false, nil
	}
	if _, err := RunContext(ctx, "init"); err != nil {
		return false, output.NewSystemErrorWithCause("failed to initialize repository", err)
	}
	return true, nil
}

// Stage adds the given path to the index.
func Stage(ctx context.Context, path string) error {
	if _, err := RunContext(ctx, "add", "--", path); err != nil {
		return output.NewSystemErrorWithCause("failed to stage "+path, err)
	}
	return nil
}

// CommitAt creates a commit with both the author and the committer timestamp
// overridden to the given value. The two fields must match: calendar
// displays attribute activity by committer date, while git log defaults to
// author date.
func CommitAt(ctx context.Context, message, timestamp string) error {
	env := []string{
		"GIT_AUTHOR_DATE=" + timestamp,
		"GIT_COMMITTER_DATE=" + timestamp,
	}
	_, err := RunWithEnv(ctx, env, "commit", "-m", message, "--date", timestamp)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to create commit at "+timestamp, err)
	}
	return nil
}
