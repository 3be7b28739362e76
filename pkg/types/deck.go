// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types shared across slidegen stages:
// slide content produced by the deck builder and the configuration
// consumed by extraction and rendering.
package types

// SlideKind identifies the visual layout a slide uses.
type SlideKind string

const (
	SlideTitle   SlideKind = "title"
	SlideContent SlideKind = "content"
	SlideCode    SlideKind = "code"
	SlideDiagram SlideKind = "diagram"
)

// OutlineItem is one classified content line: its bullet nesting level
// (0 = top) and the text with the bullet marker stripped. Items are
// created once per line and never mutated afterwards.
type OutlineItem struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Slide is one rendered deck entry. Content slides carry Items; code
// and diagram slides carry raw Lines exactly as they appeared in the
// source document, blank lines and indentation included.
type Slide struct {
	Kind     SlideKind     `json:"kind" yaml:"kind"`
	Title    string        `json:"title" yaml:"title"`
	Subtitle string        `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Items    []OutlineItem `json:"items,omitempty" yaml:"items,omitempty"`
	Lines    []string      `json:"lines,omitempty" yaml:"lines,omitempty"`
}
