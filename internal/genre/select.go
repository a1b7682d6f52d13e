package genre

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Score pairs a genre label with its predicted probability.
type Score struct {
	Genre       string  `json:"genre"`
	Probability float64 `json:"probability"`
}

// Rank pairs probs with genres positionally and orders them by descending
// probability, breaking ties by descending genre label.
func Rank(probs []float64, genres []string) ([]Score, error) {
	if len(probs) != len(genres) {
		return nil, fmt.Errorf("got %d probabilities for %d genres", len(probs), len(genres))
	}
	scores := make([]Score, len(probs))
	for i, p := range probs {
		scores[i] = Score{Genre: genres[i], Probability: p}
	}
	slices.SortStableFunc(scores, compareScores)
	return scores, nil
}

// Select returns the genres whose probability is strictly greater than
// threshold, in Rank order.
func Select(probs []float64, genres []string, threshold float64) ([]string, error) {
	scores, err := Rank(probs, genres)
	if err != nil {
		return nil, err
	}
	selected := make([]string, 0, len(scores))
	for _, s := range scores {
		if s.Probability > threshold {
			selected = append(selected, s.Genre)
		}
	}
	return selected, nil
}

// JoinGenres renders selected genres the way results report them.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ", ")
}

func compareScores(a, b Score) int {
	if c := cmp.Compare(b.Probability, a.Probability); c != 0 {
		return c
	}
	return strings.Compare(b.Genre, a.Genre)
}
