package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"moviegenre/internal/model"
)

// SampleGenres is the label order of SampleArtifact.
var SampleGenres = []string{"Animation", "Comedy", "Family", "Sci-Fi"}

// SampleArtifact returns a small trained-looking artifact. For the Toy Story
// fixture it scores Animation ≈ 0.96, Family ≈ 0.82, Comedy ≈ 0.53, and
// Sci-Fi ≈ 0.12; for Avatar only Sci-Fi passes the 0.5 threshold.
func SampleArtifact() *model.Artifact {
	pipeline := &model.LinearPipeline{
		Vectorizer: &model.TFIDF{
			Vocabulary: map[string]int{
				"toy":    0,
				"stori":  1,
				"pixar":  2,
				"planet": 3,
				"blue":   4,
				"movi":   5,
			},
			IDF:            []float64{1, 1, 1, 1, 1, 1},
			NgramMin:       1,
			NgramMax:       1,
			MinTokenLength: 2,
			Norm:           "l2",
		},
		Classifier: &model.OneVsRest{
			Coef: [][]float64{
				{4, 2, 4, 0, 0, 0},
				{1, 1, 0, 0, 0, 0},
				{3, 0, 2, 0, 0, 0},
				{0, 0, 0, 4, 3, 0},
			},
			Intercept:  []float64{-2, -1, -1.5, -2},
			Multilabel: true,
		},
	}
	genres := make([]string, len(SampleGenres))
	copy(genres, SampleGenres)
	return &model.Artifact{
		Pipeline:  pipeline,
		Threshold: 0.5,
		Genres:    genres,
		Score:     0.61,
		Keys:      append([]string(nil), model.ExpectedKeys...),
	}
}

// WriteArtifact encodes artifact into dir/name and returns the path. A nil
// artifact writes SampleArtifact.
func WriteArtifact(t testing.TB, dir, name string, artifact *model.Artifact) string {
	t.Helper()

	if artifact == nil {
		artifact = SampleArtifact()
	}
	pipeline, ok := artifact.Pipeline.(*model.LinearPipeline)
	if !ok {
		t.Fatalf("artifact pipeline %T is not a linear pipeline", artifact.Pipeline)
	}
	data, err := model.Encode(pipeline, artifact.Threshold, artifact.Genres, artifact.Score)
	if err != nil {
		t.Fatalf("encode artifact: %v", err)
	}
	return WriteRaw(t, dir, name, string(data))
}

// WriteRaw writes content verbatim to dir/name and returns the path.
func WriteRaw(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
