package model

import (
	"errors"
	"fmt"
)

// Pipeline maps normalized documents to one probability vector each.
type Pipeline interface {
	PredictProba(texts []string) ([][]float64, error)
	// Outputs is the length of every probability vector.
	Outputs() int
}

// LinearPipeline is a TF-IDF vectorizer followed by a one-vs-rest logistic
// classifier.
type LinearPipeline struct {
	Vectorizer *TFIDF     `json:"vectorizer"`
	Classifier *OneVsRest `json:"classifier"`
}

func (p *LinearPipeline) validate() error {
	if p.Vectorizer == nil {
		return errors.New("pipeline.vectorizer is missing")
	}
	if p.Classifier == nil {
		return errors.New("pipeline.classifier is missing")
	}
	p.Vectorizer.applyDefaults()
	if err := p.Vectorizer.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := p.Classifier.validate(p.Vectorizer.Features()); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}

// PredictProba returns one row of per-genre probabilities per input text.
func (p *LinearPipeline) PredictProba(texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, errors.New("predict: no documents")
	}
	rows := make([][]float64, len(texts))
	for i, text := range texts {
		rows[i] = p.Classifier.Probabilities(p.Vectorizer.Transform(text))
	}
	return rows, nil
}

// Outputs reports the number of genres the classifier scores.
func (p *LinearPipeline) Outputs() int {
	return p.Classifier.Outputs()
}

// Features reports the vocabulary dimensionality.
func (p *LinearPipeline) Features() int {
	return p.Vectorizer.Features()
}
