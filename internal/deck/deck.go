// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck drives a Renderer through the slide sequence for one
// document: opening title slide, one slide per extracted section, the
// authored plan slides, and the closing slide. Slide order is
// significant and not reconstructible afterwards, so the builder is
// the only caller of the renderer and runs synchronously.
package deck

import (
	"strings"

	"github.com/pdiddy/slidegen/internal/document"
	"github.com/pdiddy/slidegen/internal/outline"
	"github.com/pdiddy/slidegen/internal/scan"
	"github.com/pdiddy/slidegen/pkg/types"
)

// Renderer receives slide content in document order. Implementations
// own layout, fonts, and colors; the builder guarantees ordering,
// level assignment, and verbatim code/diagram text.
type Renderer interface {
	AddTitleSlide(title, subtitle string)
	AddContentSlide(title string, items []types.OutlineItem)
	AddCodeSlide(title string, lines []string)
	AddDiagramSlide(title string, lines []string)
}

// BuildSummary counts what one build emitted.
type BuildSummary struct {
	Slides    int // total slides, title and closing included
	Extracted int // slides built from document sections
	Planned   int // slides taken from the deck plan
}

// Build assembles the deck for doc. Sections configured in cfg that are
// absent from the document are skipped silently; absence is an expected
// state, not a diagnostic.
func Build(doc *document.Document, cfg types.DeckConfig, plan Plan, r Renderer) BuildSummary {
	var sum BuildSummary

	title := cfg.Title
	if title == "" {
		title = doc.Title()
	}
	subtitle := cfg.Subtitle
	if subtitle == "" {
		subtitle = doc.Subtitle()
	}
	r.AddTitleSlide(title, subtitle)
	sum.Slides++

	for _, rule := range cfg.Sections {
		sec, ok := extract(doc.Lines(), rule)
		if !ok {
			continue
		}
		slideTitle := rule.Title
		if slideTitle == "" {
			slideTitle = strings.TrimSpace(strings.TrimLeft(rule.Heading, "# "))
		}
		switch rule.Kind {
		case types.KindCode:
			r.AddCodeSlide(slideTitle, sec.Lines)
		case types.KindDiagram:
			r.AddDiagramSlide(slideTitle, sec.Lines)
		default:
			r.AddContentSlide(slideTitle, outline.ClassifyAll(sec.Lines))
		}
		sum.Slides++
		sum.Extracted++
	}

	for _, ps := range plan.Slides {
		switch ps.Kind {
		case types.SlideTitle:
			r.AddTitleSlide(ps.Title, ps.Subtitle)
		case types.SlideCode:
			r.AddCodeSlide(ps.Title, ps.Lines)
		case types.SlideDiagram:
			r.AddDiagramSlide(ps.Title, ps.Lines)
		default:
			// Authored content lines go through the same classifier as
			// extracted bullets; blank spacer lines become level-0
			// empty items and render as paragraph breaks.
			r.AddContentSlide(ps.Title, outline.ClassifyAll(ps.Lines))
		}
		sum.Slides++
		sum.Planned++
	}

	if cfg.ClosingTitle != "" {
		r.AddTitleSlide(cfg.ClosingTitle, cfg.ClosingSubtitle)
		sum.Slides++
	}

	return sum
}

// extract dispatches to the extraction strategy tied to the section
// kind. Bullet sections match their heading exactly; code and diagram
// sections match by containment and capture a fenced block. The two
// policies are distinct on purpose and must not be unified.
func extract(lines []string, rule types.SectionRule) (scan.Section, bool) {
	switch rule.Kind {
	case types.KindCode, types.KindDiagram:
		return scan.FencedBlock(lines, rule.Heading)
	default:
		return scan.BulletList(lines, rule.Heading)
	}
}
