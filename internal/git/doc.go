// Package git shells out to the git binary for the mossline CLI.
//
// All operations act on the current working directory. The package exposes
// the small surface mossline needs to manufacture history: ensure a working
// tree exists, stage the activity file, and create commits whose author and
// committer timestamps are both overridden to a synthetic value.
//
// Failures from the git binary are folded into *output.ExitError system
// errors carrying git's stderr, so they map to a non-zero exit code at the
// top level. No operation is retried.
package git
