package builder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilBuilder is returned when a nil builder is handed to the director.
	ErrNilBuilder = errors.New("builder: house builder is required")
	// ErrNoBuilder is returned when the director builds before SetBuilder.
	ErrNoBuilder = errors.New("builder: director has no builder")
	// ErrUnknownPlan is returned for plans the director does not know.
	ErrUnknownPlan = errors.New("unknown build plan")
)

// Plan names a fixed sequence of steps the Director knows.
type Plan string

const (
	PlanMinimal Plan = "minimal"
	PlanFull    Plan = "full"
)

// Plans lists every plan.
var Plans = []Plan{PlanMinimal, PlanFull}

var planSteps = map[Plan][]Step{
	PlanMinimal: {StepBasement, StepStructure},
	PlanFull:    {StepBasement, StepStructure, StepRoof, StepInterior},
}

// ParsePlan maps a case-insensitive name to a Plan.
func ParsePlan(s string) (Plan, error) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := planSteps[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlan, s)
	}
	return p, nil
}

// StepsOf returns a copy of the steps p runs.
func (p Plan) StepsOf() []Step {
	return append([]Step(nil), planSteps[p]...)
}

// Director sequences builder steps into named configurations. It refers to
// the builder; the caller keeps ownership.
type Director struct {
	builder HouseBuilder
}

func NewDirector() *Director {
	return &Director{}
}

// SetBuilder replaces the builder the director works on.
func (d *Director) SetBuilder(b HouseBuilder) error {
	if isNil(b) {
		return ErrNilBuilder
	}
	d.builder = b
	return nil
}

// BuildMinimalViableHouse builds the basement and then the structure.
func (d *Director) BuildMinimalViableHouse() error {
	return d.Build(PlanMinimal)
}

// BuildFullFeaturedHouse builds basement, structure, roof and interior.
func (d *Director) BuildFullFeaturedHouse() error {
	return d.Build(PlanFull)
}

// Build runs the steps of plan p against the current builder.
func (d *Director) Build(p Plan) error {
	if d.builder == nil {
		return ErrNoBuilder
	}
	steps := p.StepsOf()
	if len(steps) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownPlan, string(p))
	}
	return Apply(d.builder, steps...)
}
