package genre

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"moviegenre/internal/failure"
	"moviegenre/internal/logging"
	"moviegenre/internal/model"
	"moviegenre/internal/textprep"
)

var (
	ErrMissingInput      = errors.New("title and description are required")
	ErrEmptyInput        = errors.New("title and description must not be empty")
	ErrUnrecognizedInput = errors.New("title and description contain no English words")
)

// Result is the record reported for one prediction.
type Result struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
}

// Prediction is a Result plus the intermediate values that produced it.
type Prediction struct {
	Result

	Normalized string
	Genres     []string
	Scores     []Score
	Threshold  float64
	ModelScore float64
}

// LoaderFunc loads the artifact stored at path.
type LoaderFunc func(ctx context.Context, path string) (*model.Artifact, error)

// Predictor runs predictions against the artifact at a fixed path.
type Predictor struct {
	modelPath string
	load      LoaderFunc
	logger    *slog.Logger
}

// Option customizes a Predictor.
type Option func(*Predictor)

// WithLoader replaces model.Load.
func WithLoader(fn LoaderFunc) Option {
	return func(p *Predictor) {
		if fn != nil {
			p.load = fn
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Predictor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPredictor returns a Predictor reading the artifact at modelPath.
func NewPredictor(modelPath string, opts ...Option) *Predictor {
	p := &Predictor{
		modelPath: modelPath,
		load:      model.Load,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ModelPath returns the artifact location the predictor reads.
func (p *Predictor) ModelPath() string {
	return p.modelPath
}

// Validate rejects blank titles or descriptions.
func Validate(title, description string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return failure.Wrap(failure.ErrValidation, "genre", "validate", "", ErrEmptyInput)
	}
	return nil
}

// Predict validates and normalizes the input, then scores it with a freshly
// loaded artifact. Input without English words fails before the artifact is
// touched.
func (p *Predictor) Predict(ctx context.Context, title, description string) (*Prediction, error) {
	logger := logging.WithContext(ctx, p.logger).With(logging.FieldComponent, "genre")

	if err := Validate(title, description); err != nil {
		return nil, err
	}

	normalized := textprep.Prepare(title, description)
	if textprep.AllEmpty([]string{normalized}) {
		return nil, failure.Wrap(failure.ErrValidation, "genre", "normalize", "", ErrUnrecognizedInput)
	}
	logger.Debug("input normalized", "normalized", normalized)

	artifact, err := p.load(ctx, p.modelPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("artifact loaded",
		"path", p.modelPath,
		"genres", len(artifact.Genres),
		"threshold", artifact.Threshold,
		"score", artifact.Score,
	)

	rows, err := artifact.Pipeline.PredictProba([]string{normalized})
	if err != nil {
		return nil, failure.Wrap(failure.ErrInference, "genre", "predict", "", err)
	}
	if len(rows) == 0 {
		return nil, failure.Wrap(failure.ErrInference, "genre", "predict", "pipeline returned no rows", nil)
	}

	scores, err := Rank(rows[0], artifact.Genres)
	if err != nil {
		return nil, failure.Wrap(failure.ErrInference, "genre", "rank", "", err)
	}
	selected, err := Select(rows[0], artifact.Genres, artifact.Threshold)
	if err != nil {
		return nil, failure.Wrap(failure.ErrInference, "genre", "select", "", err)
	}
	logger.Info("prediction complete", "selected", len(selected), "top", topGenre(scores))

	return &Prediction{
		Result: Result{
			Title:       title,
			Description: description,
			Genre:       JoinGenres(selected),
		},
		Normalized: normalized,
		Genres:     selected,
		Scores:     scores,
		Threshold:  artifact.Threshold,
		ModelScore: artifact.Score,
	}, nil
}

func topGenre(scores []Score) string {
	if len(scores) == 0 {
		return ""
	}
	return scores[0].Genre
}
