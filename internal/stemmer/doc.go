// Package stemmer implements the Porter suffix-stripping stemmer in the
// variant the genre model's vocabulary was built with.
//
// The rules follow Porter's published algorithm plus the NLTK extensions:
// an irregular-form lookup, untouched two-letter words, the four-letter
// "ies"/"ied" cases, the stricter step 1c y→i condition, and the extra step 2
// rules. Any change here silently invalidates trained artifacts.
package stemmer
