package main

import (
	"errors"

	"github.com/spf13/cobra"

	"moviegenre/internal/failure"
	"moviegenre/internal/genre"
	"moviegenre/internal/history"
	"moviegenre/internal/logging"
	"moviegenre/internal/model"
)

type predictInput struct {
	title          string
	description    string
	titleSet       bool
	descriptionSet bool
}

func runPredict(cmd *cobra.Command, ctx *commandContext, input predictInput) error {
	if !input.titleSet || !input.descriptionSet {
		return failure.Wrap(failure.ErrValidation, "cli", "parse flags", "", genre.ErrMissingInput)
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	reqCtx := ctx.requestContext(cmd)
	logger := logging.WithContext(reqCtx, ctx.loggerFor()).With(logging.FieldComponent, "cli")

	predictor := genre.NewPredictor(cfg.Model.Path, genre.WithLogger(ctx.loggerFor()))
	prediction, err := predictor.Predict(reqCtx, input.title, input.description)
	if err != nil {
		logger.Debug("prediction failed", logging.FieldErrorKind, failure.Kind(err), "error", err)
		if errors.Is(err, model.ErrArtifactNotFound) {
			return &missingArtifactError{path: displayPath(cfg.Model.Path), err: err}
		}
		return err
	}

	if err := writeResultJSON(cmd.OutOrStdout(), prediction.Result); err != nil {
		return err
	}

	if !cfg.History.Enabled {
		return nil
	}
	requestID, _ := logging.RequestIDFromContext(reqCtx)
	err = ctx.withHistory(reqCtx, func(store *history.Store) error {
		_, err := store.Record(reqCtx, history.Entry{
			RequestID:   requestID,
			Title:       prediction.Title,
			Description: prediction.Description,
			Normalized:  prediction.Normalized,
			Genre:       prediction.Genre,
			Threshold:   prediction.Threshold,
			ModelScore:  prediction.ModelScore,
			ModelPath:   cfg.Model.Path,
		})
		return err
	})
	if err != nil {
		// The result is already on stdout; a journal failure must not turn it
		// into a failed run.
		logger.Warn("record prediction history failed", logging.FieldErrorKind, failure.Kind(err), "error", err)
	}
	return nil
}
