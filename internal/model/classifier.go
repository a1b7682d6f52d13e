package model

import (
	"fmt"
	"math"
)

// OneVsRest holds one binary logistic model per genre.
type OneVsRest struct {
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
	// Multilabel keeps each sigmoid independent. When false, each row is
	// rescaled to sum to one.
	Multilabel bool `json:"multilabel"`
}

func (c *OneVsRest) validate(features int) error {
	if len(c.Coef) == 0 {
		return fmt.Errorf("classifier has no estimators")
	}
	if len(c.Intercept) != len(c.Coef) {
		return fmt.Errorf("classifier has %d intercepts for %d estimators", len(c.Intercept), len(c.Coef))
	}
	for i, row := range c.Coef {
		if len(row) != features {
			return fmt.Errorf("classifier estimator %d has %d weights, vectorizer produces %d features", i, len(row), features)
		}
	}
	return nil
}

// Outputs reports the number of probabilities produced per document.
func (c *OneVsRest) Outputs() int {
	return len(c.Coef)
}

// Probabilities scores one sparse document.
func (c *OneVsRest) Probabilities(x []Feature) []float64 {
	probs := make([]float64, len(c.Coef))
	var sum float64
	for k, weights := range c.Coef {
		z := c.Intercept[k]
		for _, f := range x {
			z += weights[f.Index] * f.Value
		}
		probs[k] = sigmoid(z)
		sum += probs[k]
	}
	if !c.Multilabel && sum > 0 {
		for k := range probs {
			probs[k] /= sum
		}
	}
	return probs
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
