// Package history keeps an optional SQLite journal of successful predictions.
//
// The journal is opt-in; a Store is only opened when history is enabled in the
// configuration. Records are append-only and listed newest first.
package history
