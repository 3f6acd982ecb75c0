// Package curve converts between normalized automation values (0-1) and
// physical parameter values (Hz, dB, ms, ...) for the three curve families
// vendors use: linear, logarithmic, and stepped/enumerated.
package curve

import (
	"errors"
	"fmt"
)

// Kind identifies a curve family on the wire and in seed data.
type Kind string

const (
	KindLinear      Kind = "linear"
	KindLogarithmic Kind = "logarithmic"
	KindStepped     Kind = "stepped"
)

// ErrInvalidCurve is wrapped by all curve validation failures.
var ErrInvalidCurve = errors.New("invalid curve")

// Curve is the mapping between a parameter's normalized and physical ranges.
// Exactly three implementations exist: Linear, Logarithmic and Stepped.
type Curve interface {
	Kind() Kind
	Validate() error
}

// Linear maps normalized 0-1 evenly onto [Min, Max].
type Linear struct {
	Min float64
	Max float64
}

func (l Linear) Kind() Kind { return KindLinear }

func (l Linear) Validate() error {
	if l.Min >= l.Max {
		return fmt.Errorf("%w: linear range min %g must be below max %g", ErrInvalidCurve, l.Min, l.Max)
	}
	return nil
}

// Logarithmic maps normalized 0-1 onto [Min, Max] with equal ratios per
// step. Min must be positive; frequencies, ratios and time constants only.
type Logarithmic struct {
	Min float64
	Max float64
}

func (l Logarithmic) Kind() Kind { return KindLogarithmic }

func (l Logarithmic) Validate() error {
	if l.Min <= 0 {
		return fmt.Errorf("%w: logarithmic range min %g must be positive", ErrInvalidCurve, l.Min)
	}
	if l.Min >= l.Max {
		return fmt.Errorf("%w: logarithmic range min %g must be below max %g", ErrInvalidCurve, l.Min, l.Max)
	}
	return nil
}

// Step is one discrete position of a stepped parameter. Physical is opaque
// vendor text ("bell", "3000"); it is only parsed numerically when a value
// has to be snapped between two plugins' step tables.
type Step struct {
	Normalized float64
	Physical   string
}

// Stepped maps an ordered breakpoint table of discrete values.
type Stepped struct {
	Steps []Step
}

func (s Stepped) Kind() Kind { return KindStepped }

func (s Stepped) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: stepped curve needs at least one step", ErrInvalidCurve)
	}
	prev := -1.0
	for i, step := range s.Steps {
		if step.Normalized < 0 || step.Normalized > 1 {
			return fmt.Errorf("%w: step %d normalized value %g outside [0,1]", ErrInvalidCurve, i, step.Normalized)
		}
		if step.Normalized <= prev {
			return fmt.Errorf("%w: step %d normalized value %g not strictly increasing", ErrInvalidCurve, i, step.Normalized)
		}
		prev = step.Normalized
	}
	return nil
}
