package model

import (
	"fmt"
	"math"
	"strings"
)

// Feature is one non-zero entry of a sparse document vector.
type Feature struct {
	Index int
	Value float64
}

// TFIDF maps normalized text onto the weighted term space fitted at training
// time.
type TFIDF struct {
	Vocabulary     map[string]int `json:"vocabulary"`
	IDF            []float64      `json:"idf"`
	NgramMin       int            `json:"ngram_min,omitempty"`
	NgramMax       int            `json:"ngram_max,omitempty"`
	MinTokenLength int            `json:"min_token_length,omitempty"`
	SublinearTF    bool           `json:"sublinear_tf"`
	Norm           string         `json:"norm"`
}

func (v *TFIDF) applyDefaults() {
	if v.NgramMin <= 0 {
		v.NgramMin = 1
	}
	if v.NgramMax <= 0 {
		v.NgramMax = v.NgramMin
	}
	if v.MinTokenLength <= 0 {
		v.MinTokenLength = 2
	}
	v.Norm = strings.ToLower(strings.TrimSpace(v.Norm))
}

func (v *TFIDF) validate() error {
	if len(v.Vocabulary) == 0 {
		return fmt.Errorf("vectorizer vocabulary is empty")
	}
	if v.NgramMax < v.NgramMin {
		return fmt.Errorf("vectorizer ngram_max %d is below ngram_min %d", v.NgramMax, v.NgramMin)
	}
	for term, index := range v.Vocabulary {
		if index < 0 || index >= len(v.IDF) {
			return fmt.Errorf("vectorizer term %q has index %d outside idf length %d", term, index, len(v.IDF))
		}
	}
	switch v.Norm {
	case "l1", "l2", "", "none":
	default:
		return fmt.Errorf("vectorizer norm %q is not supported", v.Norm)
	}
	return nil
}

// Features reports the dimensionality of the vectors Transform produces.
func (v *TFIDF) Features() int {
	return len(v.IDF)
}

// Transform converts one normalized document into a sparse TF-IDF vector.
// Terms outside the vocabulary are ignored. Features are ordered by first
// occurrence in the document.
func (v *TFIDF) Transform(text string) []Feature {
	counts := make(map[int]float64)
	var order []int
	for _, term := range v.terms(text) {
		index, ok := v.Vocabulary[term]
		if !ok {
			continue
		}
		if _, seen := counts[index]; !seen {
			order = append(order, index)
		}
		counts[index]++
	}

	features := make([]Feature, 0, len(order))
	for _, index := range order {
		tf := counts[index]
		if v.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		features = append(features, Feature{Index: index, Value: tf * v.IDF[index]})
	}
	normalize(features, v.Norm)
	return features
}

func (v *TFIDF) terms(text string) []string {
	var tokens []string
	for _, token := range strings.Fields(text) {
		if len(token) >= v.MinTokenLength {
			tokens = append(tokens, token)
		}
	}
	if v.NgramMax == 1 && v.NgramMin == 1 {
		return tokens
	}

	var terms []string
	for n := v.NgramMin; n <= v.NgramMax && n <= len(tokens); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

func normalize(features []Feature, norm string) {
	var total float64
	switch norm {
	case "l2":
		for _, f := range features {
			total += f.Value * f.Value
		}
		total = math.Sqrt(total)
	case "l1":
		for _, f := range features {
			total += math.Abs(f.Value)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range features {
		features[i].Value /= total
	}
}
