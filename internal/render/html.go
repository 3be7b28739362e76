// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/pdiddy/slidegen/pkg/types"
)

// HTML renders the deck as a single self-contained preview page. Each
// slide body is assembled as markdown and converted with goldmark, so
// the preview shows the same nesting the deckfile carries.
type HTML struct {
	slideList
	title string
}

// NewHTML returns an HTML preview renderer. title fills the page
// <title>; empty is allowed.
func NewHTML(title string) *HTML {
	return &HTML{title: title}
}

var pageTemplate = template.Must(template.New("deck").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; background: #e8e8e8; }
section.slide { background: #fff; max-width: 60em; margin: 2em auto; padding: 2em 3em; box-shadow: 0 1px 4px rgba(0,0,0,.3); }
section.slide pre { background: #282c34; color: #abb2bf; padding: 1em; overflow-x: auto; }
section.slide.title { background: #1f4e78; color: #fff; text-align: center; }
</style>
</head>
<body>
{{range .Slides}}<section class="slide{{if .IsTitle}} title{{end}}">
{{.Body}}</section>
{{end}}</body>
</html>
`))

type htmlSlide struct {
	IsTitle bool
	Body    template.HTML
}

// WriteTo writes the preview page.
func (h *HTML) WriteTo(w io.Writer) error {
	md := goldmark.New()

	rendered := make([]htmlSlide, 0, len(h.slides))
	for _, s := range h.slides {
		var buf bytes.Buffer
		if err := md.Convert([]byte(slideMarkdown(s)), &buf); err != nil {
			return fmt.Errorf("rendering slide %q: %w", s.Title, err)
		}
		rendered = append(rendered, htmlSlide{
			IsTitle: s.Kind == types.SlideTitle,
			Body:    template.HTML(buf.String()),
		})
	}

	data := struct {
		Title  string
		Slides []htmlSlide
	}{Title: h.title, Slides: rendered}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("writing html output: %w", err)
	}
	return nil
}

// Save writes the preview page to path.
func (h *HTML) Save(path string) error { return save(h, path) }

// slideMarkdown rebuilds one slide as markdown for goldmark. Code and
// diagram lines go inside a fence so whitespace survives conversion.
func slideMarkdown(s types.Slide) string {
	var b strings.Builder
	switch s.Kind {
	case types.SlideTitle:
		fmt.Fprintf(&b, "# %s\n", s.Title)
		if s.Subtitle != "" {
			fmt.Fprintf(&b, "\n%s\n", s.Subtitle)
		}
	case types.SlideContent:
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		for _, item := range s.Items {
			if item.Text == "" {
				b.WriteString("\n")
				continue
			}
			fmt.Fprintf(&b, "%s- %s\n", strings.Repeat("  ", item.Level), item.Text)
		}
	default:
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		b.WriteString("```\n")
		for _, line := range s.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	}
	return b.String()
}
