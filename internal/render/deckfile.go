// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidegen/pkg/types"
)

// Deckfile serializes the slide sequence as a single YAML document,
// the machine-readable form downstream renderers consume.
type Deckfile struct {
	slideList
	source string
}

// NewDeckfile returns a deckfile renderer. source annotates the output
// with the document it was generated from; empty is allowed.
func NewDeckfile(source string) *Deckfile {
	return &Deckfile{source: source}
}

// WriteTo writes the YAML deckfile.
func (d *Deckfile) WriteTo(w io.Writer) error {
	doc := struct {
		Source      string        `yaml:"source,omitempty"`
		GeneratedAt string        `yaml:"generated_at"`
		Slides      []types.Slide `yaml:"slides"`
	}{
		Source:      d.source,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Slides:      d.slides,
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding deckfile: %w", err)
	}
	return enc.Close()
}

// Save writes the deckfile to path.
func (d *Deckfile) Save(path string) error { return save(d, path) }
