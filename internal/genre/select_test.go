package genre_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"moviegenre/internal/genre"
)

func TestSelectOrdersByDescendingProbability(t *testing.T) {
	probs := []float64{0.2, 0.9, 0.6, 0.75}
	genres := []string{"Action", "Drama", "Comedy", "Sci-Fi"}

	got, err := genre.Select(probs, genres, 0.5)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Drama", "Sci-Fi", "Comedy"}, got); diff != "" {
		t.Fatalf("Select mismatch (-want +got):\n%s", diff)
	}
	if joined := genre.JoinGenres(got); joined != "Drama, Sci-Fi, Comedy" {
		t.Fatalf("JoinGenres = %q", joined)
	}
}

func TestSelectThresholdIsStrict(t *testing.T) {
	got, err := genre.Select([]float64{0.5, 0.5000001}, []string{"Drama", "Horror"}, 0.5)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Horror"}, got); diff != "" {
		t.Fatalf("Select mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectNothingAboveThreshold(t *testing.T) {
	got, err := genre.Select([]float64{0.1, 0.2}, []string{"Drama", "Horror"}, 0.5)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no genres, got %v", got)
	}
	if joined := genre.JoinGenres(got); joined != "" {
		t.Fatalf("expected empty join, got %q", joined)
	}
}

func TestRankBreaksTiesByDescendingLabel(t *testing.T) {
	scores, err := genre.Rank([]float64{0.7, 0.7, 0.9, 0.7}, []string{"Comedy", "Western", "Drama", "Action"})
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	want := []genre.Score{
		{Genre: "Drama", Probability: 0.9},
		{Genre: "Western", Probability: 0.7},
		{Genre: "Comedy", Probability: 0.7},
		{Genre: "Action", Probability: 0.7},
	}
	if diff := cmp.Diff(want, scores); diff != "" {
		t.Fatalf("Rank mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectIsSubsequenceOfRank(t *testing.T) {
	probs := []float64{0.55, 0.05, 0.95, 0.4, 0.8}
	genres := []string{"A", "B", "C", "D", "E"}

	scores, err := genre.Rank(probs, genres)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	for _, threshold := range []float64{0, 0.3, 0.5, 0.9, 1} {
		selected, err := genre.Select(probs, genres, threshold)
		if err != nil {
			t.Fatalf("Select returned error: %v", err)
		}
		var want []string
		for _, s := range scores {
			if s.Probability > threshold {
				want = append(want, s.Genre)
			}
		}
		if diff := cmp.Diff(want, selected, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("threshold %v mismatch (-want +got):\n%s", threshold, diff)
		}
	}
}

func TestRankRejectsMisalignedInput(t *testing.T) {
	if _, err := genre.Rank([]float64{0.1}, []string{"A", "B"}); err == nil {
		t.Fatal("expected error for misaligned input")
	}
	if _, err := genre.Select([]float64{0.1, 0.2}, []string{"A"}, 0.5); err == nil {
		t.Fatal("expected error for misaligned input")
	}
}
