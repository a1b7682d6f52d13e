package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"moviegenre/internal/config"
	"moviegenre/internal/fileutil"
	"moviegenre/internal/logging"
	"moviegenre/internal/model"
)

var errCheckFailed = errors.New("model check failed")

func newModelCommand(ctx *commandContext) *cobra.Command {
	modelCmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect and verify the model artifact",
	}

	modelCmd.AddCommand(newModelInspectCommand(ctx))
	modelCmd.AddCommand(newModelCheckCommand(ctx))
	modelCmd.AddCommand(newModelSetThresholdCommand(ctx))

	return modelCmd
}

// resolveArtifactPath prefers an explicit --path, then the configured model path.
func (c *commandContext) resolveArtifactPath(flagValue string) (string, error) {
	if trimmed := strings.TrimSpace(flagValue); trimmed != "" {
		return config.ExpandPath(trimmed)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Model.Path, nil
}

func (c *commandContext) loadArtifact(cmd *cobra.Command, path string) (*model.Artifact, error) {
	artifact, err := model.Load(cmd.Context(), path)
	if errors.Is(err, model.ErrArtifactNotFound) {
		return nil, &missingArtifactError{path: displayPath(path), err: err}
	}
	return artifact, err
}

func newModelInspectCommand(ctx *commandContext) *cobra.Command {
	var pathFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the artifact's threshold, score and genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.resolveArtifactPath(pathFlag)
			if err != nil {
				return err
			}
			artifact, err := ctx.loadArtifact(cmd, path)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, artifactSummary(artifact))
			}

			summary := [][]string{
				{"Path", displayPath(artifact.Path)},
				{"Threshold", formatFloat(artifact.Threshold)},
				{"Score", formatFloat(artifact.Score)},
				{"Genres", strconv.Itoa(len(artifact.Genres))},
				{"Canonical keys", yesNo(artifact.HasCanonicalKeys())},
			}
			if linear, ok := artifact.Pipeline.(*model.LinearPipeline); ok {
				summary = append(summary,
					[]string{"Features", strconv.Itoa(linear.Features())},
					[]string{"N-gram range", fmt.Sprintf("%d-%d", linear.Vectorizer.NgramMin, linear.Vectorizer.NgramMax)},
					[]string{"Normalization", linear.Vectorizer.Norm},
					[]string{"Multilabel", yesNo(linear.Classifier.Multilabel)},
				)
			}

			genreRows := make([][]string, 0, len(artifact.Genres))
			for i, g := range artifact.Genres {
				genreRows = append(genreRows, []string{strconv.Itoa(i), g})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable("Artifact", []string{"Field", "Value"}, summary, nil))
			fmt.Fprintln(out, renderTable("Genres", []string{"#", "Genre"}, genreRows, []columnAlignment{alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Artifact path (defaults to model.path)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of tables")
	return cmd
}

type modelSummary struct {
	Path          string   `json:"path"`
	Threshold     float64  `json:"threshold"`
	Score         float64  `json:"score"`
	Genres        []string `json:"genres"`
	CanonicalKeys bool     `json:"canonical_keys"`
	Keys          []string `json:"keys"`
}

func artifactSummary(artifact *model.Artifact) modelSummary {
	return modelSummary{
		Path:          artifact.Path,
		Threshold:     artifact.Threshold,
		Score:         artifact.Score,
		Genres:        artifact.Genres,
		CanonicalKeys: artifact.HasCanonicalKeys(),
		Keys:          artifact.Keys,
	}
}

func newModelCheckCommand(ctx *commandContext) *cobra.Command {
	var pathFlag string
	var benchmarkFlag string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the artifact's layout and compare its score with a benchmark",
		Long: "Check loads the artifact, confirms its keys appear as pipeline, threshold, genres, score,\n" +
			"that the pipeline scores exactly one probability per genre, and that its score is at least\n" +
			"the benchmark artifact's score. A missing benchmark is reported but does not fail the check.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.resolveArtifactPath(pathFlag)
			if err != nil {
				return err
			}
			benchmarkPath := strings.TrimSpace(benchmarkFlag)
			if benchmarkPath == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				benchmarkPath = cfg.Model.BenchmarkPath
			} else if benchmarkPath, err = config.ExpandPath(benchmarkPath); err != nil {
				return err
			}

			artifact, err := ctx.loadArtifact(cmd, path)
			if err != nil {
				return err
			}
			results := checkArtifact(cmd, artifact, benchmarkPath)

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			failed := false
			for _, r := range results {
				fmt.Fprintln(out, renderStatusLine(r.label, r.kind, r.message, colorize))
				if r.kind == statusError {
					failed = true
				}
			}
			logging.WithContext(cmd.Context(), ctx.loggerFor()).Info("model check complete",
				logging.FieldComponent, "cli",
				"path", path,
				"failed", failed,
			)
			if failed {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Artifact path (defaults to model.path)")
	cmd.Flags().StringVarP(&benchmarkFlag, "benchmark", "b", "", "Benchmark artifact path (defaults to model.benchmark_path)")
	return cmd
}

func checkArtifact(cmd *cobra.Command, artifact *model.Artifact, benchmarkPath string) []checkResult {
	results := make([]checkResult, 0, 4)

	if artifact.HasCanonicalKeys() {
		results = append(results, checkResult{"Keys", statusOK, strings.Join(artifact.Keys, ", ")})
	} else {
		results = append(results, checkResult{"Keys", statusError,
			fmt.Sprintf("got %s, want %s", strings.Join(artifact.Keys, ", "), strings.Join(model.ExpectedKeys, ", "))})
	}

	rows, err := artifact.Pipeline.PredictProba([]string{""})
	switch {
	case err != nil:
		results = append(results, checkResult{"Alignment", statusError, err.Error()})
	case len(rows) != 1:
		results = append(results, checkResult{"Alignment", statusError,
			fmt.Sprintf("pipeline produced %d rows for one document", len(rows))})
	case len(rows[0]) != len(artifact.Genres):
		results = append(results, checkResult{"Alignment", statusError,
			fmt.Sprintf("pipeline produced %d probabilities for %d genres", len(rows[0]), len(artifact.Genres))})
	default:
		results = append(results, checkResult{"Alignment", statusOK, fmt.Sprintf("%d genres", len(artifact.Genres))})
	}

	results = append(results, checkResult{"Threshold", statusInfo, formatFloat(artifact.Threshold)})

	benchmark, err := model.Load(cmd.Context(), benchmarkPath)
	switch {
	case errors.Is(err, model.ErrArtifactNotFound):
		results = append(results, checkResult{"Benchmark", statusWarn,
			fmt.Sprintf("%s not found; score %s not compared", displayPath(benchmarkPath), formatFloat(artifact.Score))})
	case err != nil:
		results = append(results, checkResult{"Benchmark", statusError, err.Error()})
	case artifact.Score >= benchmark.Score:
		results = append(results, checkResult{"Benchmark", statusOK,
			fmt.Sprintf("score %s >= benchmark %s", formatFloat(artifact.Score), formatFloat(benchmark.Score))})
	default:
		results = append(results, checkResult{"Benchmark", statusError,
			fmt.Sprintf("score %s < benchmark %s", formatFloat(artifact.Score), formatFloat(benchmark.Score))})
	}
	return results
}

func newModelSetThresholdCommand(ctx *commandContext) *cobra.Command {
	var pathFlag string
	var backup bool

	cmd := &cobra.Command{
		Use:   "set-threshold <value>",
		Short: "Rewrite the artifact with a new decision threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("parse threshold %q: %w", args[0], err)
			}
			path, err := ctx.resolveArtifactPath(pathFlag)
			if err != nil {
				return err
			}
			artifact, err := ctx.loadArtifact(cmd, path)
			if err != nil {
				return err
			}
			previous := artifact.Threshold
			artifact.Threshold = threshold

			out := cmd.OutOrStdout()
			if backup {
				backupPath, err := fileutil.Backup(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved previous artifact to %s\n", displayPath(backupPath))
			}
			if err := model.Save(cmd.Context(), path, artifact); err != nil {
				return err
			}
			fmt.Fprintf(out, "Threshold for %s changed from %s to %s\n",
				displayPath(path), formatFloat(previous), formatFloat(threshold))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Artifact path (defaults to model.path)")
	cmd.Flags().BoolVar(&backup, "backup", false, "Copy the current artifact to <path>.bak before rewriting it")
	return cmd
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
