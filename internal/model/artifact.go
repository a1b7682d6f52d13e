package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"moviegenre/internal/failure"
)

const (
	// DefaultPath is where the CLI looks for the trained artifact.
	DefaultPath = "movie_genre_classifier.joblib"
	// DefaultBenchmarkPath is the reference artifact new models must match.
	DefaultBenchmarkPath = "movie_genre_classifier_benchmark.joblib"

	lockRetryDelay = 50 * time.Millisecond
)

var (
	ErrArtifactNotFound  = errors.New("model artifact not found")
	ErrMalformedArtifact = errors.New("malformed model artifact")
)

// ExpectedKeys lists the artifact's top-level keys in canonical order.
var ExpectedKeys = []string{"pipeline", "threshold", "genres", "score"}

// Artifact is the trained bundle consumed at inference time.
type Artifact struct {
	Pipeline  Pipeline
	Threshold float64
	Genres    []string
	Score     float64

	// Keys records the top-level keys in the order they appeared on disk.
	Keys []string
	Path string
}

// HasCanonicalKeys reports whether the artifact's keys appeared exactly as
// ExpectedKeys, order included.
func (a *Artifact) HasCanonicalKeys() bool {
	return slices.Equal(a.Keys, ExpectedKeys)
}

// Load reads the artifact at path while holding a shared lock on it, so a
// concurrent Save cannot be observed half-written.
func Load(ctx context.Context, path string) (*Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, failure.Wrap(failure.ErrNotFound, "model", "load", path, ErrArtifactNotFound)
		}
		return nil, failure.Wrap(failure.ErrConfiguration, "model", "stat", path, err)
	}
	if info.IsDir() {
		return nil, malformed(fmt.Sprintf("%s is a directory", path), nil)
	}

	lock := flock.New(path, flock.SetFlag(os.O_RDONLY))
	locked, err := lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock model artifact %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("lock model artifact %s: lock not acquired", path)
	}
	defer func() { _ = lock.Unlock() }()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer file.Close()

	artifact, err := Decode(file)
	if err != nil {
		return nil, err
	}
	artifact.Path = path
	return artifact, nil
}

// Decode parses an artifact document. All four keys must be present and no
// others are allowed; their order is recorded but not enforced.
func Decode(r io.Reader) (*Artifact, error) {
	fields, keys, err := readObject(json.NewDecoder(r))
	if err != nil {
		return nil, malformed("read document", err)
	}
	if err := checkKeys(fields); err != nil {
		return nil, err
	}

	var pipeline LinearPipeline
	if err := json.Unmarshal(fields["pipeline"], &pipeline); err != nil {
		return nil, malformed("decode pipeline", err)
	}
	artifact := &Artifact{Pipeline: &pipeline, Keys: keys}
	if err := json.Unmarshal(fields["threshold"], &artifact.Threshold); err != nil {
		return nil, malformed("decode threshold", err)
	}
	if err := json.Unmarshal(fields["genres"], &artifact.Genres); err != nil {
		return nil, malformed("decode genres", err)
	}
	if err := json.Unmarshal(fields["score"], &artifact.Score); err != nil {
		return nil, malformed("decode score", err)
	}

	if err := pipeline.validate(); err != nil {
		return nil, malformed("validate pipeline", err)
	}
	if err := artifact.validate(); err != nil {
		return nil, err
	}
	return artifact, nil
}

func (a *Artifact) validate() error {
	if !(a.Threshold >= 0 && a.Threshold <= 1) {
		return malformed(fmt.Sprintf("threshold %v outside [0,1]", a.Threshold), nil)
	}
	if math.IsNaN(a.Score) || math.IsInf(a.Score, 0) {
		return malformed("score is not finite", nil)
	}
	if len(a.Genres) == 0 {
		return malformed("genres is empty", nil)
	}
	for i, genre := range a.Genres {
		if strings.TrimSpace(genre) == "" {
			return malformed(fmt.Sprintf("genre %d is blank", i), nil)
		}
	}
	if outputs := a.Pipeline.Outputs(); outputs != len(a.Genres) {
		return malformed(fmt.Sprintf("pipeline scores %d genres but artifact lists %d", outputs, len(a.Genres)), nil)
	}
	return nil
}

// Save writes artifact to path in canonical key order under an exclusive
// lock. Only LinearPipeline artifacts can be written.
func Save(ctx context.Context, path string, artifact *Artifact) error {
	pipeline, ok := artifact.Pipeline.(*LinearPipeline)
	if !ok {
		return failure.Wrap(failure.ErrConfiguration, "model", "save",
			fmt.Sprintf("pipeline type %T cannot be serialized", artifact.Pipeline), nil)
	}
	if err := pipeline.validate(); err != nil {
		return malformed("validate pipeline", err)
	}
	if err := artifact.validate(); err != nil {
		return err
	}

	data, err := Encode(pipeline, artifact.Threshold, artifact.Genres, artifact.Score)
	if err != nil {
		return err
	}

	lock := flock.New(path)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock model artifact %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("lock model artifact %s: lock not acquired", path)
	}
	defer func() { _ = lock.Unlock() }()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model artifact: %w", err)
	}
	return nil
}

// Encode renders an artifact document with keys in canonical order.
func Encode(pipeline *LinearPipeline, threshold float64, genres []string, score float64) ([]byte, error) {
	doc := struct {
		Pipeline  *LinearPipeline `json:"pipeline"`
		Threshold float64         `json:"threshold"`
		Genres    []string        `json:"genres"`
		Score     float64         `json:"score"`
	}{pipeline, threshold, genres, score}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode model artifact: %w", err)
	}
	return buf.Bytes(), nil
}

func readObject(dec *json.Decoder) (map[string]json.RawMessage, []string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errors.New("artifact must be a JSON object")
	}

	fields := make(map[string]json.RawMessage, len(ExpectedKeys))
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, fmt.Errorf("key %q: %w", key, err)
		}
		if _, dup := fields[key]; dup {
			return nil, nil, fmt.Errorf("duplicate key %q", key)
		}
		fields[key] = raw
		keys = append(keys, key)
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return fields, keys, nil
}

func checkKeys(fields map[string]json.RawMessage) error {
	for _, key := range ExpectedKeys {
		if _, ok := fields[key]; !ok {
			return malformed(fmt.Sprintf("missing key %q", key), nil)
		}
	}
	if len(fields) != len(ExpectedKeys) {
		extra := make([]string, 0, len(fields))
		for key := range fields {
			if !slices.Contains(ExpectedKeys, key) {
				extra = append(extra, key)
			}
		}
		slices.Sort(extra)
		return malformed(fmt.Sprintf("unexpected keys %s", strings.Join(extra, ", ")), nil)
	}
	return nil
}

func malformed(message string, err error) error {
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrMalformedArtifact, err)
	} else {
		err = ErrMalformedArtifact
	}
	return failure.Wrap(failure.ErrConfiguration, "model", "decode", message, err)
}
