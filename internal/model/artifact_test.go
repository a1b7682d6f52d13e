package model_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"moviegenre/internal/failure"
	"moviegenre/internal/model"
	"moviegenre/internal/testsupport"
	"moviegenre/internal/textprep"
)

func samplePipelineJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(testsupport.SampleArtifact().Pipeline)
	if err != nil {
		t.Fatalf("marshal pipeline: %v", err)
	}
	return string(data)
}

// rawArtifact assembles a document from key/value pairs in the given order.
func rawArtifact(pairs ...[2]string) string {
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, `"`+pair[0]+`": `+pair[1])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func TestLoadSampleArtifact(t *testing.T) {
	path := testsupport.WriteArtifact(t, t.TempDir(), model.DefaultPath, nil)

	artifact, err := model.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"pipeline", "threshold", "genres", "score"}, artifact.Keys); diff != "" {
		t.Fatalf("unexpected key order (-want +got):\n%s", diff)
	}
	if !artifact.HasCanonicalKeys() {
		t.Fatal("expected canonical keys")
	}
	if diff := cmp.Diff(testsupport.SampleGenres, artifact.Genres); diff != "" {
		t.Fatalf("unexpected genres (-want +got):\n%s", diff)
	}
	if artifact.Threshold != 0.5 {
		t.Fatalf("unexpected threshold %v", artifact.Threshold)
	}
	if artifact.Score != 0.61 {
		t.Fatalf("unexpected score %v", artifact.Score)
	}
	if artifact.Path != path {
		t.Fatalf("unexpected path %q", artifact.Path)
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	_, err := model.Load(context.Background(), filepath.Join(t.TempDir(), model.DefaultPath))
	if err == nil {
		t.Fatal("expected error for missing artifact")
	}
	if !errors.Is(err, model.ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
	if !errors.Is(err, failure.ErrNotFound) {
		t.Fatalf("expected not found marker, got %v", err)
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	_, err := model.Load(context.Background(), t.TempDir())
	if !errors.Is(err, model.ErrMalformedArtifact) {
		t.Fatalf("expected ErrMalformedArtifact, got %v", err)
	}
}

func TestDecodeRecordsKeyOrder(t *testing.T) {
	doc := rawArtifact(
		[2]string{"genres", `["Animation", "Comedy", "Family", "Sci-Fi"]`},
		[2]string{"score", "0.5"},
		[2]string{"threshold", "0.4"},
		[2]string{"pipeline", samplePipelineJSON(t)},
	)
	artifact, err := model.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"genres", "score", "threshold", "pipeline"}, artifact.Keys); diff != "" {
		t.Fatalf("unexpected key order (-want +got):\n%s", diff)
	}
	if artifact.HasCanonicalKeys() {
		t.Fatal("expected non-canonical key order to be reported")
	}
}

func TestDecodeRejectsMalformedArtifacts(t *testing.T) {
	pipeline := samplePipelineJSON(t)
	genres := `["Animation", "Comedy", "Family", "Sci-Fi"]`

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "not an object",
			doc:  `["pipeline"]`,
			want: "JSON object",
		},
		{
			name: "missing score",
			doc:  rawArtifact([2]string{"pipeline", pipeline}, [2]string{"threshold", "0.5"}, [2]string{"genres", genres}),
			want: `missing key "score"`,
		},
		{
			name: "unexpected key",
			doc: rawArtifact([2]string{"pipeline", pipeline}, [2]string{"threshold", "0.5"},
				[2]string{"genres", genres}, [2]string{"score", "0.5"}, [2]string{"notes", `"x"`}),
			want: "unexpected keys notes",
		},
		{
			name: "duplicate key",
			doc: rawArtifact([2]string{"pipeline", pipeline}, [2]string{"threshold", "0.5"},
				[2]string{"threshold", "0.6"}, [2]string{"genres", genres}, [2]string{"score", "0.5"}),
			want: `duplicate key "threshold"`,
		},
		{
			name: "threshold above one",
			doc: rawArtifact([2]string{"pipeline", pipeline}, [2]string{"threshold", "1.5"},
				[2]string{"genres", genres}, [2]string{"score", "0.5"}),
			want: "outside [0,1]",
		},
		{
			name: "genres misaligned",
			doc: rawArtifact([2]string{"pipeline", pipeline}, [2]string{"threshold", "0.5"},
				[2]string{"genres", `["Animation", "Comedy"]`}, [2]string{"score", "0.5"}),
			want: "pipeline scores 4 genres but artifact lists 2",
		},
		{
			name: "blank genre",
			doc: rawArtifact([2]string{"pipeline", pipeline}, [2]string{"threshold", "0.5"},
				[2]string{"genres", `["Animation", " ", "Family", "Sci-Fi"]`}, [2]string{"score", "0.5"}),
			want: "genre 1 is blank",
		},
		{
			name: "vocabulary index out of range",
			doc: rawArtifact(
				[2]string{"pipeline", `{"vectorizer": {"vocabulary": {"toy": 3}, "idf": [1], "norm": "l2"},
					"classifier": {"coef": [[1]], "intercept": [0], "multilabel": true}}`},
				[2]string{"threshold", "0.5"}, [2]string{"genres", `["Animation"]`}, [2]string{"score", "0.5"}),
			want: "outside idf length",
		},
		{
			name: "coefficient width mismatch",
			doc: rawArtifact(
				[2]string{"pipeline", `{"vectorizer": {"vocabulary": {"toy": 0}, "idf": [1], "norm": "l2"},
					"classifier": {"coef": [[1, 2]], "intercept": [0], "multilabel": true}}`},
				[2]string{"threshold", "0.5"}, [2]string{"genres", `["Animation"]`}, [2]string{"score", "0.5"}),
			want: "has 2 weights",
		},
		{
			name: "missing classifier",
			doc: rawArtifact(
				[2]string{"pipeline", `{"vectorizer": {"vocabulary": {"toy": 0}, "idf": [1]}}`},
				[2]string{"threshold", "0.5"}, [2]string{"genres", `["Animation"]`}, [2]string{"score", "0.5"}),
			want: "pipeline.classifier is missing",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.Decode(strings.NewReader(tc.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, model.ErrMalformedArtifact) {
				t.Fatalf("expected ErrMalformedArtifact, got %v", err)
			}
			if !errors.Is(err, failure.ErrConfiguration) {
				t.Fatalf("expected configuration marker, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in error %q", tc.want, err.Error())
			}
		})
	}
}

func TestPredictProbaAlignsWithGenres(t *testing.T) {
	artifact := testsupport.SampleArtifact()
	inputs := []string{
		textprep.Prepare("Toy Story", "Movie made in 1995 by the Pixar studios about the life of toys"),
		"zzz unknown words",
		"",
	}
	rows, err := artifact.Pipeline.PredictProba(inputs)
	if err != nil {
		t.Fatalf("PredictProba returned error: %v", err)
	}
	if len(rows) != len(inputs) {
		t.Fatalf("expected %d rows, got %d", len(inputs), len(rows))
	}
	for i, row := range rows {
		if len(row) != len(artifact.Genres) {
			t.Fatalf("row %d has %d probabilities, want %d", i, len(row), len(artifact.Genres))
		}
		for _, p := range row {
			if p < 0 || p > 1 {
				t.Fatalf("row %d probability %v outside [0,1]", i, p)
			}
		}
	}
}

func TestPredictProbaScoresToyStory(t *testing.T) {
	artifact := testsupport.SampleArtifact()
	rows, err := artifact.Pipeline.PredictProba([]string{"toy stori movi made pixar studio life toy"})
	if err != nil {
		t.Fatalf("PredictProba returned error: %v", err)
	}
	want := []float64{0.9641, 0.5334, 0.8211, 0.1192}
	for i, p := range rows[0] {
		if math.Abs(p-want[i]) > 1e-3 {
			t.Fatalf("genre %s probability %v, want ≈%v", artifact.Genres[i], p, want[i])
		}
	}
}

func TestPredictProbaRejectsEmptyBatch(t *testing.T) {
	if _, err := testsupport.SampleArtifact().Pipeline.PredictProba(nil); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retuned.joblib")
	artifact := testsupport.SampleArtifact()
	artifact.Threshold = 0.3

	if err := model.Save(context.Background(), path, artifact); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := model.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Threshold != 0.3 {
		t.Fatalf("expected threshold 0.3, got %v", loaded.Threshold)
	}
	if !loaded.HasCanonicalKeys() {
		t.Fatalf("expected canonical keys, got %v", loaded.Keys)
	}
}

func TestSaveRejectsInvalidThreshold(t *testing.T) {
	artifact := testsupport.SampleArtifact()
	artifact.Threshold = -0.1
	err := model.Save(context.Background(), filepath.Join(t.TempDir(), "bad.joblib"), artifact)
	if !errors.Is(err, model.ErrMalformedArtifact) {
		t.Fatalf("expected ErrMalformedArtifact, got %v", err)
	}
}
