// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidegen/pkg/types"
)

// PlanSlide is one authored slide from a deck plan file. Content slides
// list their lines literally, using the same dash conventions as the
// source document.
type PlanSlide struct {
	Kind     types.SlideKind `yaml:"kind"`
	Title    string          `yaml:"title"`
	Subtitle string          `yaml:"subtitle,omitempty"`
	Lines    []string        `yaml:"lines,omitempty"`
}

// Plan is an ordered list of authored slides appended after the
// extracted sections.
type Plan struct {
	Slides []PlanSlide `yaml:"slides"`
}

// validPlanKinds is the set of accepted slide kinds in a plan file.
var validPlanKinds = map[types.SlideKind]bool{
	types.SlideTitle:   true,
	types.SlideContent: true,
	types.SlideCode:    true,
	types.SlideDiagram: true,
}

// LoadPlan reads a deck plan YAML file. A missing file is not an error:
// it yields an empty plan, the same way a missing document section
// yields no slide. A malformed file or an unknown slide kind is an
// error.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Plan{}, nil
		}
		return Plan{}, fmt.Errorf("reading deck plan: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, fmt.Errorf("parsing deck plan: %w", err)
	}

	for i, s := range plan.Slides {
		if s.Kind == "" {
			plan.Slides[i].Kind = types.SlideContent
			continue
		}
		if !validPlanKinds[s.Kind] {
			return Plan{}, fmt.Errorf("deck plan slide %d: invalid kind %q", i, s.Kind)
		}
	}
	return plan, nil
}
