// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"strings"
)

// Marp renders the deck as Marp-flavored markdown: a frontmatter theme
// block, one slide per `---` separator, and fenced blocks for code and
// diagram slides with their lines kept verbatim.
type Marp struct {
	slideList
	theme string
}

// NewMarp returns a Marp renderer using the given theme; empty means
// "default".
func NewMarp(theme string) *Marp {
	if theme == "" {
		theme = "default"
	}
	return &Marp{theme: theme}
}

// WriteTo writes the Marp document.
func (m *Marp) WriteTo(w io.Writer) error {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("marp: true\n")
	fmt.Fprintf(&b, "theme: %s\n", m.theme)
	b.WriteString("---\n")

	for i, s := range m.slides {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		b.WriteString("\n")
		// Marp bodies are plain markdown; reuse the per-slide assembly
		// the HTML preview feeds to goldmark.
		b.WriteString(slideMarkdown(s))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing marp output: %w", err)
	}
	return nil
}

// Save writes the Marp document to path.
func (m *Marp) Save(path string) error { return save(m, path) }
