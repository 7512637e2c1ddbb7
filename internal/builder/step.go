package builder

import (
	"errors"
	"fmt"
	"strings"
)

// Step is one construction step of a HouseBuilder.
type Step string

const (
	StepBasement  Step = "basement"
	StepStructure Step = "structure"
	StepRoof      Step = "roof"
	StepInterior  Step = "interior"
)

// Steps lists every step in construction order.
var Steps = []Step{StepBasement, StepStructure, StepRoof, StepInterior}

// ErrUnknownStep is returned for step names that do not exist.
var ErrUnknownStep = errors.New("unknown build step")

// ParseSteps parses a comma separated list such as "basement,roof".
// Order and duplicates are preserved; blank entries are skipped.
func ParseSteps(s string) ([]Step, error) {
	var steps []Step
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		step := Step(name)
		if !step.valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStep, part)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (s Step) valid() bool {
	for _, known := range Steps {
		if s == known {
			return true
		}
	}
	return false
}

// Apply runs steps against b in the given order. Every step is checked
// before the first one runs, so an unknown step leaves the house untouched.
func Apply(b HouseBuilder, steps ...Step) error {
	if isNil(b) {
		return ErrNilBuilder
	}
	for _, step := range steps {
		if !step.valid() {
			return fmt.Errorf("%w: %q", ErrUnknownStep, string(step))
		}
	}
	for _, step := range steps {
		switch step {
		case StepBasement:
			b.BuildBasement()
		case StepStructure:
			b.BuildStructure()
		case StepRoof:
			b.BuildRoof()
		case StepInterior:
			b.BuildInterior()
		}
	}
	return nil
}
