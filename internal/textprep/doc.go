// Package textprep turns raw movie titles and plot descriptions into the
// canonical token strings the genre model was trained on.
//
// Normalization lowercases the text, keeps only runs of the letters a–z,
// drops English stopwords, and Porter-stems what remains. The output must
// match the training-time normalization exactly, so every rule here is a
// compatibility contract with existing artifacts rather than a tuning knob.
package textprep
