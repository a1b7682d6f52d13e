// Package genre drives a single prediction: it validates the title and
// description, normalizes them, loads the trained artifact, scores the text,
// and selects every genre whose probability clears the artifact threshold.
//
// Selected genres are ordered by descending probability; equal probabilities
// fall back to descending genre label. The artifact is loaded per call and
// dropped when Predict returns.
package genre
