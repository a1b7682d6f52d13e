package stemmer

import "testing"

func TestStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"ties", "tie"},
		{"caress", "caress"},
		{"cats", "cat"},
		{"feed", "feed"},
		{"agreed", "agre"},
		{"plastered", "plaster"},
		{"bled", "bled"},
		{"motoring", "motor"},
		{"sing", "sing"},
		{"hopping", "hop"},
		{"tanned", "tan"},
		{"falling", "fall"},
		{"hissing", "hiss"},
		{"fizzed", "fizz"},
		{"failing", "fail"},
		{"filing", "file"},
		{"running", "run"},
		{"happy", "happi"},
		{"story", "stori"},
		{"relational", "relat"},
		{"conditional", "condit"},
		{"generalization", "gener"},
		{"hopeful", "hope"},
		{"goodness", "good"},
		{"triplicate", "triplic"},
		{"formalize", "formal"},
		{"electrical", "electr"},
		{"adjustment", "adjust"},
		{"replacement", "replac"},
		{"cement", "cement"},
		{"movie", "movi"},
		{"toys", "toy"},
		{"studios", "studio"},
		{"made", "made"},
		{"life", "life"},
		{"beatiful", "beati"},
		{"mysterious", "mysteri"},
		{"inhabitants", "inhabit"},
		{"arrive", "arriv"},
		{"humans", "human"},
		{"blue", "blue"},
	}
	for _, tc := range tests {
		if got := Stem(tc.word); got != tc.want {
			t.Errorf("Stem(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestStemIrregularForms(t *testing.T) {
	for word, want := range map[string]string{
		"sky":     "sky",
		"skies":   "sky",
		"dying":   "die",
		"lying":   "lie",
		"news":    "news",
		"innings": "inning",
		"succeed": "succeed",
	} {
		if got := Stem(word); got != want {
			t.Errorf("Stem(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestStemShortWordsUnchanged(t *testing.T) {
	for _, word := range []string{"a", "as", "is", "ly"} {
		if got := Stem(word); got != word {
			t.Errorf("Stem(%q) = %q, want unchanged", word, got)
		}
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"tr", 0},
		{"ee", 0},
		{"tree", 0},
		{"by", 0},
		{"trouble", 1},
		{"oats", 1},
		{"trees", 1},
		{"ivy", 1},
		{"troubles", 2},
		{"private", 2},
		{"oaten", 2},
		{"orrery", 2},
	}
	for _, tc := range tests {
		if got := measure(tc.word); got != tc.want {
			t.Errorf("measure(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestStemDeterministic(t *testing.T) {
	for _, word := range []string{"generalization", "mysterious", "running"} {
		first := Stem(word)
		for i := 0; i < 3; i++ {
			if got := Stem(word); got != first {
				t.Fatalf("Stem(%q) changed between calls: %q then %q", word, first, got)
			}
		}
	}
}
