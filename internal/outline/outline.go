// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline classifies one content line into a bullet nesting
// level. Classification is a literal prefix check against a fixed
// three-tier rule table, not a general indentation parser: lines
// indented deeper than the level-2 pattern match no rule and come back
// as unmarked level-0 text, unchanged.
package outline

import (
	"strings"

	"github.com/pdiddy/slidegen/pkg/types"
)

// rule maps a literal line prefix to an outline level and the number of
// prefix characters to strip.
type rule struct {
	prefix string
	level  int
	strip  int
}

// rules is evaluated top to bottom; the first match wins. Deepest
// prefix first, so "    - " is never mistaken for its shorter forms.
var rules = []rule{
	{prefix: "    - ", level: 2, strip: 6},
	{prefix: "  - ", level: 1, strip: 4},
	{prefix: "- ", level: 0, strip: 2},
}

// Classify maps a raw content line to its outline item. Every line
// classifies successfully: unrecognized lines (blank lines included)
// are level 0 with the text untouched.
func Classify(line string) types.OutlineItem {
	for _, r := range rules {
		if strings.HasPrefix(line, r.prefix) {
			return types.OutlineItem{Level: r.level, Text: line[r.strip:]}
		}
	}
	return types.OutlineItem{Level: 0, Text: line}
}

// ClassifyAll classifies each line in order.
func ClassifyAll(lines []string) []types.OutlineItem {
	items := make([]types.OutlineItem, len(lines))
	for i, line := range lines {
		items[i] = Classify(line)
	}
	return items
}
