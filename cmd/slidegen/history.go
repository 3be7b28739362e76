// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidegen/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := store.Open(stateDir(cmd))
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.Recent(limit)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(w, "no runs recorded")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(w, "%4d  %s  %-8s  %3d slides  %s -> %s\n",
				r.ID, r.CreatedAt.Format(time.RFC3339), r.Format,
				r.Slides, r.Source, r.Output)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().String("state-dir", ".slidegen", "directory for the history database")

	rootCmd.AddCommand(historyCmd)
}
