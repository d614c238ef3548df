// Package output provides structured output handling for the mossline CLI.
//
// This package handles both human-readable and JSON output formats so that
// runs work equally well for humans watching a terminal and for scripts
// consuming totals.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches
// format based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	// For final totals
//	printer.Success(map[string]any{"message": "history written", "commits": 42})
//
//	// For error output
//	printer.Error(err)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"commits": 42, "days": 30, ...}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad flags, unknown pattern, invalid range)
//	output.ExitSystemError // 2: System error (git failed, I/O error)
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("unknown pattern: X")
//	output.NewSystemError("git command failed")
//
// These errors carry exit codes used for both JSON error output and the
// process exit code.
package output
