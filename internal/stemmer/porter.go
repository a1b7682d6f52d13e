package stemmer

import "strings"

// irregularForms maps words the suffix rules handle poorly to a fixed stem.
var irregularForms = map[string]string{
	"sky":      "sky",
	"skies":    "sky",
	"dying":    "die",
	"lying":    "lie",
	"tying":    "tie",
	"news":     "news",
	"innings":  "inning",
	"inning":   "inning",
	"outings":  "outing",
	"outing":   "outing",
	"cannings": "canning",
	"canning":  "canning",
	"howe":     "howe",
	"proceed":  "proceed",
	"exceed":   "exceed",
	"succeed":  "succeed",
}

// Stem reduces a lowercase ASCII word to its Porter stem. Words of two
// letters or fewer are returned unchanged.
func Stem(word string) string {
	word = strings.ToLower(word)
	if stem, ok := irregularForms[word]; ok {
		return stem
	}
	if len(word) <= 2 {
		return word
	}
	word = step1a(word)
	word = step1b(word)
	word = step1c(word)
	word = step2(word)
	word = step3(word)
	word = step4(word)
	word = step5a(word)
	word = step5b(word)
	return word
}

// rule replaces suffix with replacement when cond accepts the remaining stem.
// A nil cond always accepts. The suffix "*d" matches a trailing double
// consonant.
type rule struct {
	suffix      string
	replacement string
	cond        func(stem string) bool
}

// applyRules applies the first rule whose suffix matches. When the matching
// rule's condition fails, no later rule is tried.
func applyRules(word string, rules []rule) string {
	for _, r := range rules {
		if r.suffix == "*d" {
			if !endsDoubleConsonant(word) {
				continue
			}
			stem := word[:len(word)-2]
			if r.cond == nil || r.cond(stem) {
				return stem + r.replacement
			}
			return word
		}
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		stem := word[:len(word)-len(r.suffix)]
		if r.cond == nil || r.cond(stem) {
			return stem + r.replacement
		}
		return word
	}
	return word
}

func isConsonant(word string, i int) bool {
	switch word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(word, i-1)
	}
	return true
}

// measure counts the VC sequences of word, the m in [C](VC)^m[V].
func measure(word string) int {
	m := 0
	prevVowel := false
	for i := 0; i < len(word); i++ {
		consonant := isConsonant(word, i)
		if consonant && prevVowel {
			m++
		}
		prevVowel = !consonant
	}
	return m
}

func positiveMeasure(stem string) bool {
	return measure(stem) > 0
}

func measureAboveOne(stem string) bool {
	return measure(stem) > 1
}

func containsVowel(word string) bool {
	for i := 0; i < len(word); i++ {
		if !isConsonant(word, i) {
			return true
		}
	}
	return false
}

func endsDoubleConsonant(word string) bool {
	n := len(word)
	return n >= 2 && word[n-1] == word[n-2] && isConsonant(word, n-1)
}

// endsCVC reports the *o condition. Two-letter words ending vowel-consonant
// also qualify.
func endsCVC(word string) bool {
	n := len(word)
	if n >= 3 &&
		isConsonant(word, n-3) &&
		!isConsonant(word, n-2) &&
		isConsonant(word, n-1) {
		switch word[n-1] {
		case 'w', 'x', 'y':
		default:
			return true
		}
	}
	return n == 2 && !isConsonant(word, 0) && isConsonant(word, 1)
}

func step1a(word string) string {
	if len(word) == 4 && strings.HasSuffix(word, "ies") {
		return word[:1] + "ie"
	}
	return applyRules(word, []rule{
		{"sses", "ss", nil},
		{"ies", "i", nil},
		{"ss", "ss", nil},
		{"s", "", nil},
	})
}

func step1b(word string) string {
	if strings.HasSuffix(word, "ied") {
		if len(word) == 4 {
			return word[:1] + "ie"
		}
		return word[:len(word)-3] + "i"
	}

	if strings.HasSuffix(word, "eed") {
		stem := word[:len(word)-3]
		if measure(stem) > 0 {
			return stem + "ee"
		}
		return word
	}

	var stem string
	matched := false
	for _, suffix := range []string{"ed", "ing"} {
		if strings.HasSuffix(word, suffix) {
			candidate := word[:len(word)-len(suffix)]
			if containsVowel(candidate) {
				stem = candidate
				matched = true
				break
			}
		}
	}
	if !matched {
		return word
	}

	last := stem[len(stem)-1:]
	return applyRules(stem, []rule{
		{"at", "ate", nil},
		{"bl", "ble", nil},
		{"iz", "ize", nil},
		{"*d", last, func(string) bool {
			return last != "l" && last != "s" && last != "z"
		}},
		{"", "e", func(s string) bool {
			return measure(s) == 1 && endsCVC(s)
		}},
	})
}

func step1c(word string) string {
	return applyRules(word, []rule{
		{"y", "i", func(stem string) bool {
			return len(stem) > 1 && isConsonant(stem, len(stem)-1)
		}},
	})
}

func step2(word string) string {
	if strings.HasSuffix(word, "alli") && positiveMeasure(word[:len(word)-4]) {
		return step2(word[:len(word)-4] + "al")
	}

	return applyRules(word, []rule{
		{"ational", "ate", positiveMeasure},
		{"tional", "tion", positiveMeasure},
		{"enci", "ence", positiveMeasure},
		{"anci", "ance", positiveMeasure},
		{"izer", "ize", positiveMeasure},
		{"bli", "ble", positiveMeasure},
		{"alli", "al", positiveMeasure},
		{"entli", "ent", positiveMeasure},
		{"eli", "e", positiveMeasure},
		{"ousli", "ous", positiveMeasure},
		{"ization", "ize", positiveMeasure},
		{"ation", "ate", positiveMeasure},
		{"ator", "ate", positiveMeasure},
		{"alism", "al", positiveMeasure},
		{"iveness", "ive", positiveMeasure},
		{"fulness", "ful", positiveMeasure},
		{"ousness", "ous", positiveMeasure},
		{"aliti", "al", positiveMeasure},
		{"iviti", "ive", positiveMeasure},
		{"biliti", "ble", positiveMeasure},
		{"fulli", "ful", positiveMeasure},
		// The l of logi stays with the stem so geo/theo stems qualify.
		{"logi", "log", func(string) bool {
			return positiveMeasure(word[:len(word)-3])
		}},
	})
}

func step3(word string) string {
	return applyRules(word, []rule{
		{"icate", "ic", positiveMeasure},
		{"ative", "", positiveMeasure},
		{"alize", "al", positiveMeasure},
		{"iciti", "ic", positiveMeasure},
		{"ical", "ic", positiveMeasure},
		{"ful", "", positiveMeasure},
		{"ness", "", positiveMeasure},
	})
}

func step4(word string) string {
	return applyRules(word, []rule{
		{"al", "", measureAboveOne},
		{"ance", "", measureAboveOne},
		{"ence", "", measureAboveOne},
		{"er", "", measureAboveOne},
		{"ic", "", measureAboveOne},
		{"able", "", measureAboveOne},
		{"ible", "", measureAboveOne},
		{"ant", "", measureAboveOne},
		{"ement", "", measureAboveOne},
		{"ment", "", measureAboveOne},
		{"ent", "", measureAboveOne},
		{"ion", "", func(stem string) bool {
			if measure(stem) <= 1 {
				return false
			}
			last := stem[len(stem)-1]
			return last == 's' || last == 't'
		}},
		{"ou", "", measureAboveOne},
		{"ism", "", measureAboveOne},
		{"ate", "", measureAboveOne},
		{"iti", "", measureAboveOne},
		{"ous", "", measureAboveOne},
		{"ive", "", measureAboveOne},
		{"ize", "", measureAboveOne},
	})
}

func step5a(word string) string {
	if !strings.HasSuffix(word, "e") {
		return word
	}
	stem := word[:len(word)-1]
	m := measure(stem)
	if m > 1 {
		return stem
	}
	if m == 1 && !endsCVC(stem) {
		return stem
	}
	return word
}

func step5b(word string) string {
	return applyRules(word, []rule{
		{"ll", "l", func(string) bool {
			return measure(word[:len(word)-1]) > 1
		}},
	})
}
