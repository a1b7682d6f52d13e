package textprep

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"moviegenre/internal/failure"
	"moviegenre/internal/stemmer"
)

// Prepare normalizes a single title/description pair. The result is empty
// when the pair contains no usable English words.
func Prepare(title, description string) string {
	text := cases.Lower(language.Und).String(title + " " + description)
	tokens := Tokenize(text)

	stems := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if IsStopword(token) {
			continue
		}
		stems = append(stems, stemmer.Stem(token))
	}
	return strings.Join(stems, " ")
}

// PrepareBatch normalizes parallel slices of titles and descriptions, keeping
// their order.
func PrepareBatch(titles, descriptions []string) ([]string, error) {
	if len(titles) != len(descriptions) {
		return nil, failure.Wrap(failure.ErrValidation, "textprep", "prepare batch",
			fmt.Sprintf("got %d titles and %d descriptions", len(titles), len(descriptions)), nil)
	}
	out := make([]string, len(titles))
	for i := range titles {
		out[i] = Prepare(titles[i], descriptions[i])
	}
	return out, nil
}

// Tokenize returns the maximal runs of the letters a–z in text. Every other
// byte, including uppercase and non-ASCII letters, separates tokens; callers
// lowercase first.
func Tokenize(text string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// AllEmpty reports whether every normalized string is empty, the condition
// under which nothing can be classified.
func AllEmpty(normalized []string) bool {
	for _, text := range normalized {
		if text != "" {
			return false
		}
	}
	return true
}
