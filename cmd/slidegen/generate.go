// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidegen/internal/deck"
	"github.com/pdiddy/slidegen/internal/document"
	"github.com/pdiddy/slidegen/internal/render"
	"github.com/pdiddy/slidegen/internal/store"
	"github.com/pdiddy/slidegen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <readme>",
	Short: "Generate a slide deck from a README",
	Long: `Generate runs the full pipeline on one document: the opening title
slide, a content slide per extracted bullet section, a diagram or code
slide per extracted fenced block, the deck plan slides, and the closing
slide. Sections absent from the document produce no slide.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "artifact path (default: derived from the source filename)")
	generateCmd.Flags().String("format", "deckfile", "output format: deckfile, marp, or html")
	generateCmd.Flags().String("plan", "deckplan.yaml", "deck plan file with authored slides (missing file: no extra slides)")
	generateCmd.Flags().String("title", "", "opening slide title (default: the document's h1 heading)")
	generateCmd.Flags().String("subtitle", "", "opening slide subtitle")
	generateCmd.Flags().String("closing-title", "", "closing slide title (empty: no closing slide)")
	generateCmd.Flags().String("closing-subtitle", "", "closing slide subtitle")
	generateCmd.Flags().String("theme", "", "marp/html theme")
	generateCmd.Flags().Bool("no-history", false, "do not record this run in the history database")
	generateCmd.Flags().String("state-dir", ".slidegen", "directory for the history database")

	viper.BindPFlag("render.format", generateCmd.Flags().Lookup("format"))
	viper.BindPFlag("render.theme", generateCmd.Flags().Lookup("theme"))

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	srcPath := args[0]

	doc, err := document.Load(srcPath)
	if err != nil {
		return err
	}

	planPath, _ := cmd.Flags().GetString("plan")
	plan, err := deck.LoadPlan(planPath)
	if err != nil {
		return err
	}

	cfg := deckConfig(cmd)
	format := types.RenderFormat(viper.GetString("render.format"))
	theme := viper.GetString("render.theme")

	pageTitle := cfg.Title
	if pageTitle == "" {
		pageTitle = doc.Title()
	}
	renderer, err := newRenderer(format, srcPath, theme, pageTitle)
	if err != nil {
		return err
	}

	sum := deck.Build(doc, cfg, plan, renderer)

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = defaultOutput(srcPath, format)
	}
	if err := renderer.Save(outPath); err != nil {
		return err
	}

	recordHistory(cmd, srcPath, outPath, format, sum)

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s %s (%d slides: %d extracted, %d planned)\n",
		green("✓"), outPath, sum.Slides, sum.Extracted, sum.Planned)
	return nil
}

// deckRenderer is a deck.Renderer that can persist itself.
type deckRenderer interface {
	deck.Renderer
	Save(path string) error
}

func newRenderer(format types.RenderFormat, srcPath, theme, title string) (deckRenderer, error) {
	switch format {
	case types.FormatDeckfile:
		return render.NewDeckfile(srcPath), nil
	case types.FormatMarp:
		return render.NewMarp(theme), nil
	case types.FormatHTML:
		return render.NewHTML(title), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want deckfile, marp, or html)", format)
	}
}

func deckConfig(cmd *cobra.Command) types.DeckConfig {
	title, _ := cmd.Flags().GetString("title")
	subtitle, _ := cmd.Flags().GetString("subtitle")
	closingTitle, _ := cmd.Flags().GetString("closing-title")
	closingSubtitle, _ := cmd.Flags().GetString("closing-subtitle")

	return types.DeckConfig{
		Title:           title,
		Subtitle:        subtitle,
		ClosingTitle:    closingTitle,
		ClosingSubtitle: closingSubtitle,
		Sections:        configuredSections(),
	}
}

// configuredSections returns the section rules from the config file,
// falling back to the built-in feature/workflow pair.
func configuredSections() []types.SectionRule {
	var sections []types.SectionRule
	if err := viper.UnmarshalKey("deck.sections", &sections); err == nil && len(sections) > 0 {
		return sections
	}
	return types.DefaultSections()
}

func defaultOutput(srcPath string, format types.RenderFormat) string {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	switch format {
	case types.FormatMarp:
		return base + ".marp.md"
	case types.FormatHTML:
		return base + ".html"
	default:
		return base + ".deck.yaml"
	}
}

// recordHistory stores the run; failures warn and never fail generation.
func recordHistory(cmd *cobra.Command, srcPath, outPath string, format types.RenderFormat, sum deck.BuildSummary) {
	if skip, _ := cmd.Flags().GetBool("no-history"); skip {
		return
	}

	s, err := store.Open(stateDir(cmd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer s.Close()

	sum256, err := store.Checksum(srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history checksum: %v\n", err)
		return
	}

	run := store.Run{
		Source: srcPath,
		SHA256: sum256,
		Slides: sum.Slides,
		Format: string(format),
		Output: outPath,
	}
	if err := s.Record(run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
	}
}
