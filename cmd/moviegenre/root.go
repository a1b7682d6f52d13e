package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var modelFlag string
	var input predictInput

	ctx := newCommandContext(&configFlag, &modelFlag)

	rootCmd := &cobra.Command{
		Use:   "moviegenre",
		Short: "Predict movie genres from a title and description",
		Example: `  moviegenre --title "Toy Story" \
    --description "Movie made in 1995 by the Pixar studios about the life of toys"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input.titleSet = cmd.Flags().Changed("title")
			input.descriptionSet = cmd.Flags().Changed("description")
			return runPredict(cmd, ctx, input)
		},
	}

	rootCmd.Flags().StringVarP(&input.title, "title", "t", "", "Movie title")
	rootCmd.Flags().StringVarP(&input.description, "description", "d", "", "Movie plot description")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model artifact path (overrides model.path)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newNormalizeCommand())
	rootCmd.AddCommand(newModelCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}
