package main

import (
	"errors"
	"fmt"

	"moviegenre/internal/genre"
)

const (
	msgMissingInput      = "Please provide both the title and the description of the movie."
	msgEmptyInput        = "Title and description must not be empty."
	msgUnrecognizedInput = "Title and description must contain letters from the English alphabet..."
	msgRetrainArtifact   = "Download the model or retrain the classifier, then pass its location with --model."
)

var errHistoryDisabled = errors.New("prediction history is disabled; set history.enabled = true in the configuration")

// missingArtifactError reports an absent artifact with remediation text.
type missingArtifactError struct {
	path string
	err  error
}

func (e *missingArtifactError) Error() string {
	return fmt.Sprintf("Model specification %q not found.\n%s", e.path, msgRetrainArtifact)
}

func (e *missingArtifactError) Unwrap() error {
	return e.err
}

// userMessage renders err as the text printed before exiting.
func userMessage(err error) string {
	var missing *missingArtifactError
	switch {
	case errors.Is(err, genre.ErrMissingInput):
		return msgMissingInput
	case errors.Is(err, genre.ErrEmptyInput):
		return msgEmptyInput
	case errors.Is(err, genre.ErrUnrecognizedInput):
		return msgUnrecognizedInput
	case errors.As(err, &missing):
		return missing.Error()
	default:
		return err.Error()
	}
}
