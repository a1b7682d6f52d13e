package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"moviegenre/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent predictions from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.History.Limit
			}
			return ctx.withHistory(cmd.Context(), func(store *history.Store) error {
				entries, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					if entries == nil {
						entries = []history.Entry{}
					}
					return writeJSON(cmd, entries)
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No predictions recorded")
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						e.CreatedAt.Local().Format(time.DateTime),
						e.Title,
						displayGenre(e.Genre),
						strconv.FormatFloat(e.Threshold, 'f', -1, 64),
					})
				}
				fmt.Fprintln(out, renderTable("", []string{"When", "Title", "Genre", "Threshold"}, rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum entries to show (defaults to history.limit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")

	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every journaled prediction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd.Context(), func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d predictions\n", removed)
				return nil
			})
		},
	}
}

func displayGenre(genre string) string {
	if genre == "" {
		return "(none)"
	}
	return genre
}
