package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mossline/mossline/internal/output"
)

// chdirTempRepo creates a temp directory, makes it the working directory,
// and configures a git identity there. Skips the test if git is missing.
func chdirTempRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current dir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}

	if _, err := Run("init"); err != nil {
		t.Fatalf("git init failed: %v", err)
	}
	if _, err := Run("config", "user.email", "test@example.com"); err != nil {
		t.Fatalf("git config failed: %v", err)
	}
	if _, err := Run("config", "user.name", "Test User"); err != nil {
		t.Fatalf("git config failed: %v", err)
	}
	return dir
}

func TestRun(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	tests := []struct {
		name          string
		args          []string
		wantErr       bool
		wantErrMsg    string
		checkExitCode int
	}{
		{
			name:    "git version succeeds",
			args:    []string{"version"},
			wantErr: false,
		},
		{
			name:          "invalid git command",
			args:          []string{"invalid-command-that-does-not-exist"},
			wantErr:       true,
			wantErrMsg:    "git command failed",
			checkExitCode: output.ExitSystemError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			out, runErr := Run(testCase.args...)
			if testCase.wantErr {
				if runErr == nil {
					t.Errorf("Run() expected error, got nil")
					return
				}
				var exitErr *output.ExitError
				if !errors.As(runErr, &exitErr) {
					t.Errorf("Run() error should be *output.ExitError, got %T", runErr)
					return
				}
				if testCase.checkExitCode != 0 && exitErr.Code != testCase.checkExitCode {
					t.Errorf("Run() exit code = %d, want %d", exitErr.Code, testCase.checkExitCode)
				}
				if testCase.wantErrMsg != "" && !strings.Contains(runErr.Error(), testCase.wantErrMsg) {
					t.Errorf("Run() error = %q, want it to contain %q", runErr.Error(), testCase.wantErrMsg)
				}
			} else {
				if runErr != nil {
					t.Errorf("Run() unexpected error: %v", runErr)
					return
				}
				if out == "" {
					t.Error("Run() expected non-empty output for 'git version'")
				}
			}
		})
	}
}

func TestEnsureRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current dir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}

	created, err := EnsureRepo(context.Background())
	if err != nil {
		t.Fatalf("EnsureRepo() error = %v", err)
	}
	if !created {
		t.Error("EnsureRepo() should report creating a repository in an empty dir")
	}
	if !IsRepo() {
		t.Error("IsRepo() should be true after EnsureRepo()")
	}

	created, err = EnsureRepo(context.Background())
	if err != nil {
		t.Fatalf("EnsureRepo() second call error = %v", err)
	}
	if created {
		t.Error("EnsureRepo() should not re-initialize an existing repository")
	}
}

func TestStageAndCommitAt(t *testing.T) {
	dir := chdirTempRepo(t)
	ctx := context.Background()

	path := filepath.Join(dir, "activity.log")
	if err := os.WriteFile(path, []byte("first line\n"), 0o644); err != nil {
		t.Fatalf("failed to write activity file: %v", err)
	}

	if err := Stage(ctx, "activity.log"); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}

	const timestamp = "2025-01-01T12:30:45"
	if err := CommitAt(ctx, "test commit", timestamp); err != nil {
		t.Fatalf("CommitAt() error = %v", err)
	}

	// Author and committer dates must both carry the override.
	authorDate, err := Run("log", "-1", "--format=%aI")
	if err != nil {
		t.Fatalf("git log failed: %v", err)
	}
	committerDate, err := Run("log", "-1", "--format=%cI")
	if err != nil {
		t.Fatalf("git log failed: %v", err)
	}

	if !strings.HasPrefix(authorDate, timestamp) {
		t.Errorf("author date = %q, want prefix %q", authorDate, timestamp)
	}
	if !strings.HasPrefix(committerDate, timestamp) {
		t.Errorf("committer date = %q, want prefix %q", committerDate, timestamp)
	}

	subject, err := Run("log", "-1", "--format=%s")
	if err != nil {
		t.Fatalf("git log failed: %v", err)
	}
	if subject != "test commit" {
		t.Errorf("commit subject = %q, want %q", subject, "test commit")
	}
}

func TestCommitAt_NothingStaged(t *testing.T) {
	chdirTempRepo(t)

	err := CommitAt(context.Background(), "empty", "2025-01-01T12:00:00")
	if err == nil {
		t.Fatal("CommitAt() with nothing staged should fail")
	}
	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != output.ExitSystemError {
		t.Errorf("CommitAt() should return a system error, got %v", err)
	}
}
