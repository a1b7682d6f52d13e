package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"moviegenre/internal/genre"
	"moviegenre/internal/textprep"
)

func newNormalizeCommand() *cobra.Command {
	var titles []string
	var descriptions []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the normalized form of title/description pairs",
		Long: "Normalize lowercases each title/description pair, keeps English-alphabet words,\n" +
			"drops stopwords and stems the rest, printing one line per pair in flag order.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(titles) == 0 || len(descriptions) == 0 {
				return genre.ErrMissingInput
			}
			normalized, err := textprep.PrepareBatch(titles, descriptions)
			if err != nil {
				return err
			}
			if textprep.AllEmpty(normalized) {
				return genre.ErrUnrecognizedInput
			}
			if asJSON {
				return writeJSON(cmd, normalized)
			}
			out := cmd.OutOrStdout()
			for _, line := range normalized {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&titles, "title", "t", nil, "Movie title (repeatable, paired with --description)")
	cmd.Flags().StringArrayVarP(&descriptions, "description", "d", nil, "Movie description (repeatable, paired with --title)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit a JSON array")
	return cmd
}
