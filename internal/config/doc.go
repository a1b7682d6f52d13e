// Package config loads, normalizes, and validates moviegenre configuration.
//
// It supplies defaults that reproduce the classic invocation (artifact in the
// working directory, history off, quiet logging), expands user paths
// including tilde shortcuts, reads TOML files, and honours environment
// fallbacks such as MOVIEGENRE_MODEL_PATH.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
