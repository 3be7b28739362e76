// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan locates named sections in a line-oriented markdown
// document. Two extraction strategies exist and stay deliberately
// separate: bullet lists are found by exact heading equality, fenced
// blocks by heading substring containment. Each call is a single pass
// over the lines with only local state, so extractions are independent
// and repeatable.
package scan

import "strings"

// fenceMarker is the only fence delimiter recognized. Info strings
// ("```yaml") do not open or close a fence.
const fenceMarker = "```"

// headingPrefix terminates bullet-list collection at the next section.
const headingPrefix = "##"

// bulletPrefix qualifies a line for bullet-list collection.
const bulletPrefix = "- "

// Section is a region of the document located by a heading. Start and
// End are line indices (End exclusive) covering the collected content;
// Start < End whenever the section was found with content.
type Section struct {
	Name  string
	Start int
	End   int
	Lines []string
}

// scanState tracks the position of a bullet-list scan relative to its
// target section.
type scanState int

const (
	before scanState = iota
	collecting
)

// BulletList extracts the bullet lines of the section whose heading
// line, after trimming, exactly equals heading. Collection stops at the
// next line starting with "##". Within the section only lines whose
// trimmed form starts with "- " are kept (trimmed); blank and other
// lines are dropped. Only the first matching heading is honored.
//
// The second return value reports whether the section exists: a missing
// heading and a heading with zero qualifying lines both return false,
// and callers must skip the section rather than emit an empty slide.
func BulletList(lines []string, heading string) (Section, bool) {
	sec := Section{Name: heading}
	state := before

loop:
	for i, line := range lines {
		switch state {
		case before:
			if strings.TrimSpace(line) == heading {
				state = collecting
				sec.Start = i + 1
				sec.End = i + 1
			}
		case collecting:
			if strings.HasPrefix(line, headingPrefix) {
				break loop
			}
			if strings.HasPrefix(strings.TrimSpace(line), bulletPrefix) {
				sec.Lines = append(sec.Lines, strings.TrimSpace(line))
			}
			sec.End = i + 1
		}
	}

	if len(sec.Lines) == 0 {
		return Section{}, false
	}
	return sec, true
}

// FencedBlock extracts the first fenced block after the first line
// containing heading as a substring. Lines between the opening and
// closing fence are returned verbatim, blank lines and indentation
// preserved. The closing fence ends the scan immediately; a missing
// closing fence returns everything collected up to end of input.
//
// A missing heading, a missing opening fence, or an empty fence all
// report false, and callers must skip the block.
func FencedBlock(lines []string, heading string) (Section, bool) {
	sec := Section{Name: heading}
	inSection := false
	inFence := false

loop:
	for i, line := range lines {
		switch {
		case !inSection:
			if strings.Contains(line, heading) {
				inSection = true
			}
		case strings.TrimSpace(line) == fenceMarker:
			if inFence {
				break loop
			}
			inFence = true
			sec.Start = i + 1
			sec.End = i + 1
		case inFence:
			sec.Lines = append(sec.Lines, line)
			sec.End = i + 1
		}
	}

	if len(sec.Lines) == 0 {
		return Section{}, false
	}
	return sec, true
}
