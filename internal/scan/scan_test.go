// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"reflect"
	"testing"
)

func TestBulletList(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		heading string
		want    []string
		wantOK  bool
	}{
		{
			name:    "collects bullets and drops blanks",
			lines:   []string{"## 주요 기능", "- Feature A", "", "- Feature B", "## Next"},
			heading: "## 주요 기능",
			want:    []string{"- Feature A", "- Feature B"},
			wantOK:  true,
		},
		{
			name:    "stops at next heading",
			lines:   []string{"## Features", "- a", "## Usage", "- not mine"},
			heading: "## Features",
			want:    []string{"- a"},
			wantOK:  true,
		},
		{
			name:    "heading match is exact after trim",
			lines:   []string{"  ## Features  ", "- a"},
			heading: "## Features",
			want:    []string{"- a"},
			wantOK:  true,
		},
		{
			name:    "substring heading does not match",
			lines:   []string{"## Features and more", "- a"},
			heading: "## Features",
			wantOK:  false,
		},
		{
			name:    "absent heading",
			lines:   []string{"## Other", "- a"},
			heading: "## Features",
			wantOK:  false,
		},
		{
			name:    "heading with zero bullets is absent",
			lines:   []string{"## Features", "plain prose", "", "## Next"},
			heading: "## Features",
			wantOK:  false,
		},
		{
			name:    "indented bullets are trimmed on collection",
			lines:   []string{"## Features", "  - nested", "- flat"},
			heading: "## Features",
			want:    []string{"- nested", "- flat"},
			wantOK:  true,
		},
		{
			name:    "non-bullet lines inside section are skipped",
			lines:   []string{"## Features", "intro", "- a", "note", "- b"},
			heading: "## Features",
			want:    []string{"- a", "- b"},
			wantOK:  true,
		},
		{
			name:    "only first occurrence is honored",
			lines:   []string{"## Features", "- first", "## Break", "## Features", "- second"},
			heading: "## Features",
			want:    []string{"- first"},
			wantOK:  true,
		},
		{
			name:    "indented next heading does not terminate",
			lines:   []string{"## Features", "- a", "  ## not a boundary", "- b", "## End"},
			heading: "## Features",
			want:    []string{"- a", "- b"},
			wantOK:  true,
		},
		{
			name:    "section runs to end of document",
			lines:   []string{"## Features", "- a", "- b"},
			heading: "## Features",
			want:    []string{"- a", "- b"},
			wantOK:  true,
		},
		{
			name:    "empty input",
			lines:   nil,
			heading: "## Features",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, ok := BulletList(tt.lines, tt.heading)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(sec.Lines, tt.want) {
				t.Errorf("Lines = %q, want %q", sec.Lines, tt.want)
			}
			if sec.Start >= sec.End {
				t.Errorf("Start %d not before End %d", sec.Start, sec.End)
			}
		})
	}
}

func TestFencedBlock(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		heading string
		want    []string
		wantOK  bool
	}{
		{
			name:    "captures fence contents",
			lines:   []string{"## 전체 워크플로우", "intro text", "```", "box1", "box2", "```", "## Other"},
			heading: "전체 워크플로우",
			want:    []string{"box1", "box2"},
			wantOK:  true,
		},
		{
			name:    "heading match is containment",
			lines:   []string{"### 1.2 전체 워크플로우 개요", "```", "x", "```"},
			heading: "전체 워크플로우",
			want:    []string{"x"},
			wantOK:  true,
		},
		{
			name:    "blank lines and indentation kept verbatim",
			lines:   []string{"## Flow", "```", "  a -> b", "", "\tc", "```"},
			heading: "Flow",
			want:    []string{"  a -> b", "", "\tc"},
			wantOK:  true,
		},
		{
			name:    "unterminated fence collects to end of input",
			lines:   []string{"## Flow", "```", "a", "b"},
			heading: "Flow",
			want:    []string{"a", "b"},
			wantOK:  true,
		},
		{
			name:    "info string does not open a fence",
			lines:   []string{"## Flow", "```yaml", "a", "```"},
			heading: "Flow",
			wantOK:  false,
		},
		{
			name:    "heading absent",
			lines:   []string{"## Other", "```", "a", "```"},
			heading: "Flow",
			wantOK:  false,
		},
		{
			name:    "no fence after heading",
			lines:   []string{"## Flow", "just prose"},
			heading: "Flow",
			wantOK:  false,
		},
		{
			name:    "empty fence is absent",
			lines:   []string{"## Flow", "```", "```"},
			heading: "Flow",
			wantOK:  false,
		},
		{
			name:    "second fence terminates immediately",
			lines:   []string{"## Flow", "```", "a", "```", "```", "later", "```"},
			heading: "Flow",
			want:    []string{"a"},
			wantOK:  true,
		},
		{
			name:    "fence marker trimmed before comparison",
			lines:   []string{"## Flow", "  ```  ", "a", "```"},
			heading: "Flow",
			want:    []string{"a"},
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, ok := FencedBlock(tt.lines, tt.heading)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(sec.Lines, tt.want) {
				t.Errorf("Lines = %q, want %q", sec.Lines, tt.want)
			}
			if sec.Start >= sec.End {
				t.Errorf("Start %d not before End %d", sec.Start, sec.End)
			}
		})
	}
}

// Repeated extraction over the same lines must yield identical results;
// the scans keep no state between calls.
func TestExtractionIdempotent(t *testing.T) {
	lines := []string{
		"# Title",
		"## 주요 기능",
		"- a",
		"  - b",
		"## 전체 워크플로우",
		"```",
		"flow",
		"```",
	}

	first, ok1 := BulletList(lines, "## 주요 기능")
	second, ok2 := BulletList(lines, "## 주요 기능")
	if !ok1 || !ok2 || !reflect.DeepEqual(first, second) {
		t.Errorf("BulletList not idempotent: %+v vs %+v", first, second)
	}

	f1, ok1 := FencedBlock(lines, "전체 워크플로우")
	f2, ok2 := FencedBlock(lines, "전체 워크플로우")
	if !ok1 || !ok2 || !reflect.DeepEqual(f1, f2) {
		t.Errorf("FencedBlock not idempotent: %+v vs %+v", f1, f2)
	}
}
