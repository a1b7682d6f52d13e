// Package logging assembles the structured slog loggers used by the CLI.
//
// It owns the console and JSON handlers, level parsing, and output routing.
// Logs default to stderr so they never interleave with prediction output on
// stdout. Context helpers stamp every line with the invocation's request ID.
package logging
