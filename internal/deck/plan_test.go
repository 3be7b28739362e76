// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/slidegen/pkg/types"
)

func writePlan(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "deckplan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlan(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantCount int
		wantErr   bool
	}{
		{
			name: "valid plan",
			yaml: `slides:
  - kind: content
    title: "기술 세부사항"
    lines:
      - "지원 요소:"
      - "  - HEX8"
  - kind: code
    title: "예제"
    lines:
      - "KooRemapper map a.k b.k c.k"
`,
			wantCount: 2,
		},
		{
			name:      "empty slides",
			yaml:      "slides: []\n",
			wantCount: 0,
		},
		{
			name:    "invalid yaml",
			yaml:    ":::bad\n",
			wantErr: true,
		},
		{
			name: "unknown kind",
			yaml: `slides:
  - kind: carousel
    title: nope
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePlan(t, t.TempDir(), tt.yaml)
			plan, err := LoadPlan(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(plan.Slides) != tt.wantCount {
				t.Errorf("got %d slides, want %d", len(plan.Slides), tt.wantCount)
			}
		})
	}
}

func TestLoadPlanMissingFileIsEmpty(t *testing.T) {
	plan, err := LoadPlan(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing plan should not error, got %v", err)
	}
	if len(plan.Slides) != 0 {
		t.Errorf("got %d slides, want 0", len(plan.Slides))
	}
}

func TestLoadPlanDefaultsKindToContent(t *testing.T) {
	path := writePlan(t, t.TempDir(), "slides:\n  - title: untyped\n    lines: [\"- a\"]\n")
	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Slides[0].Kind != types.SlideContent {
		t.Errorf("kind = %q, want content", plan.Slides[0].Kind)
	}
}
