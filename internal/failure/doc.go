// Package failure defines the error markers shared by the normalizer, the
// model loader, and the inference driver.
//
// Wrap tags an error with one marker plus stage/operation context so callers
// can classify failures with errors.Is while keeping the full chain for
// diagnostics. The CLI relies on these markers to pick user-facing messages.
package failure
