// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render implements the deck.Renderer interface for each output
// format: a YAML deckfile, Marp-flavored markdown, and a single-file
// HTML preview. Renderers accumulate slides in the order the builder
// emits them and write the artifact in one pass at the end.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/slidegen/pkg/types"
)

// deckWriter is the piece of a renderer save needs.
type deckWriter interface {
	WriteTo(w io.Writer) error
}

// slideList accumulates slides in arrival order. The concrete renderers
// embed it to satisfy deck.Renderer.
type slideList struct {
	slides []types.Slide
}

func (l *slideList) AddTitleSlide(title, subtitle string) {
	l.slides = append(l.slides, types.Slide{
		Kind:     types.SlideTitle,
		Title:    title,
		Subtitle: subtitle,
	})
}

func (l *slideList) AddContentSlide(title string, items []types.OutlineItem) {
	l.slides = append(l.slides, types.Slide{
		Kind:  types.SlideContent,
		Title: title,
		Items: items,
	})
}

func (l *slideList) AddCodeSlide(title string, lines []string) {
	l.slides = append(l.slides, types.Slide{
		Kind:  types.SlideCode,
		Title: title,
		Lines: lines,
	})
}

func (l *slideList) AddDiagramSlide(title string, lines []string) {
	l.slides = append(l.slides, types.Slide{
		Kind:  types.SlideDiagram,
		Title: title,
		Lines: lines,
	})
}

// Slides returns the accumulated slides in order.
func (l *slideList) Slides() []types.Slide { return l.slides }

// save writes wr's output to path, creating parent directories.
func save(wr deckWriter, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := wr.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
