// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidegen/internal/document"
	"github.com/pdiddy/slidegen/internal/scan"
	"github.com/pdiddy/slidegen/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <readme>",
	Short: "Report which target sections a document contains",
	Long: `Inspect scans the document for every configured section and prints
the line range and line count of each one found, without writing a
deck. Useful for checking why a slide is missing from the output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.Load(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "document: %s (%d lines)\n", args[0], doc.Len())
		fmt.Fprintf(w, "title:    %q\n", doc.Title())
		fmt.Fprintf(w, "subtitle: %q\n", doc.Subtitle())

		for _, rule := range configuredSections() {
			var (
				sec scan.Section
				ok  bool
			)
			switch rule.Kind {
			case types.KindCode, types.KindDiagram:
				sec, ok = scan.FencedBlock(doc.Lines(), rule.Heading)
			default:
				sec, ok = scan.BulletList(doc.Lines(), rule.Heading)
			}

			if !ok {
				fmt.Fprintf(w, "section %q (%s): absent\n", rule.Heading, rule.Kind)
				continue
			}
			fmt.Fprintf(w, "section %q (%s): lines %d-%d, %d collected\n",
				rule.Heading, rule.Kind, sec.Start+1, sec.End, len(sec.Lines))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
