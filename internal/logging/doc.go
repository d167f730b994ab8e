// Package logging constructs the slog logger used for CLI diagnostics.
//
// The matching core is pure and never logs; only the command layer emits
// structured records, to stderr, so debug output never contaminates the
// preset name printed on stdout.
package logging
