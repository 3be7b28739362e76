package types

// SectionKind selects the extraction strategy and slide layout for one
// configured section. Bullet sections are located by exact heading
// equality and produce content slides; code and diagram sections are
// located by substring containment and capture a fenced block verbatim.
type SectionKind string

const (
	KindBullets SectionKind = "bullets"
	KindCode    SectionKind = "code"
	KindDiagram SectionKind = "diagram"
)

// SectionRule names one document section the builder should turn into
// a slide. Heading is matched literally (see SectionKind for the
// matching policy); Title overrides the slide title, defaulting to the
// heading text with its marker stripped.
type SectionRule struct {
	Heading string      `json:"heading" yaml:"heading"`
	Kind    SectionKind `json:"kind" yaml:"kind"`
	Title   string      `json:"title,omitempty" yaml:"title,omitempty"`
}

// DeckConfig holds settings for the deck building stage.
type DeckConfig struct {
	// Title and Subtitle fill the opening slide. Empty values fall back
	// to the document's leading h1 heading and the first line after it.
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	// ClosingTitle and ClosingSubtitle fill the final slide. An empty
	// ClosingTitle suppresses the closing slide entirely.
	ClosingTitle    string `json:"closing_title,omitempty" yaml:"closing_title,omitempty"`
	ClosingSubtitle string `json:"closing_subtitle,omitempty" yaml:"closing_subtitle,omitempty"`

	// Sections lists the document sections to extract, in output order.
	Sections []SectionRule `json:"sections" yaml:"sections"`
}

// RenderFormat selects the deck output format.
type RenderFormat string

const (
	FormatDeckfile RenderFormat = "deckfile"
	FormatMarp     RenderFormat = "marp"
	FormatHTML     RenderFormat = "html"
)

// RenderConfig holds settings for the rendering stage.
type RenderConfig struct {
	// Format selects the output writer: deckfile, marp, or html.
	Format RenderFormat `json:"format" yaml:"format"`

	// Output is the artifact path. Empty derives a path from the
	// source filename and the format's extension.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Theme names the Marp/HTML theme (default "default").
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// HistoryConfig holds settings for the generation history store.
type HistoryConfig struct {
	// Enabled controls whether generate records a history row.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// StateDir is the directory holding the history database
	// (default ".slidegen").
	StateDir string `json:"state_dir" yaml:"state_dir"`
}

// DefaultSections reproduces the section set the generator was built
// around: a feature bullet list and a workflow diagram fence.
func DefaultSections() []SectionRule {
	return []SectionRule{
		{Heading: "## 주요 기능", Kind: KindBullets, Title: "주요 기능"},
		{Heading: "전체 워크플로우", Kind: KindDiagram, Title: "전체 워크플로우"},
	}
}
