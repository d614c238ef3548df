// Package history drives synthetic commit creation.
//
// The Writer performs one atomic unit of history: append a line to the
// tracked activity file, stage it, and commit with an overridden
// author/committer timestamp. FillRunner and PatternRunner feed the Writer
// from a date range with random density, or from a compiled glyph grid
// with a fixed count per lit cell.
//
// Execution is strictly sequential: each commit fully completes before the
// next begins, and any failure aborts the run. Git access goes through the
// Committer interface so the drivers are testable without a repository.
package history
