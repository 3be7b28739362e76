// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document loads the source markdown into an immutable line
// sequence. The file is read once at startup; every downstream scan is
// a pure pass over the materialized lines.
package document

import (
	"fmt"
	"os"
	"strings"
)

// Document is the full source text as an ordered sequence of lines.
type Document struct {
	path  string
	lines []string
}

// Load reads the file at path and splits it into lines. A missing or
// unreadable file is fatal for the pipeline; the error propagates.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	return &Document{
		path:  path,
		lines: strings.Split(string(data), "\n"),
	}, nil
}

// FromLines wraps an already-split line sequence, mainly for tests and
// in-memory callers.
func FromLines(lines []string) *Document {
	return &Document{lines: lines}
}

// Path returns the source file path, empty for in-memory documents.
func (d *Document) Path() string { return d.path }

// Lines returns the backing line slice. Callers must not modify it.
func (d *Document) Lines() []string { return d.lines }

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// Title returns the text of the first h1 heading, or "" when the
// document has none.
func (d *Document) Title() string {
	i := d.titleIndex()
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(d.lines[i]), "# "))
}

// Subtitle returns the first non-empty, non-heading line after the h1
// heading, or "" when there is none before the next heading.
func (d *Document) Subtitle() string {
	i := d.titleIndex()
	if i < 0 {
		return ""
	}
	for _, line := range d.lines[i+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			return ""
		}
		return trimmed
	}
	return ""
}

func (d *Document) titleIndex() int {
	for i, line := range d.lines {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") {
			return i
		}
	}
	return -1
}
