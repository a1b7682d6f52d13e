// Package model loads and validates the trained genre classification
// artifact.
//
// An artifact is a JSON document with exactly four top-level keys (pipeline,
// threshold, genres, score). The pipeline is a TF-IDF vectorizer followed by
// a one-vs-rest logistic classifier whose outputs line up positionally with
// the genre labels. Load enforces that alignment, the threshold range, and
// the key set before anything is scored.
package model
