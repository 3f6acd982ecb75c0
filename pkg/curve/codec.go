package curve

import (
	"errors"
	"math"
)

// ErrNoStepMatch is returned when a symbolic value neither matches a step
// verbatim nor carries a numeric interpretation to snap with.
var ErrNoStepMatch = errors.New("no matching step")

// ToPhysical converts a normalized automation value to its physical value.
// The normalized input is clamped to [0,1] first; the function never fails.
func ToPhysical(c Curve, normalized float64) Value {
	normalized = clamp01(normalized)

	switch cv := c.(type) {
	case Linear:
		return Number(cv.Min + normalized*(cv.Max-cv.Min))
	case Logarithmic:
		return Number(cv.Min * math.Pow(cv.Max/cv.Min, normalized))
	case Stepped:
		return Symbol(nearestStep(cv.Steps, normalized).Physical)
	}
	return Number(normalized)
}

// ToNormalized converts a physical value back to normalized form. Out of
// range values are clamped, not rejected: plugin ranges commonly differ
// slightly between vendors.
//
// For stepped curves the lookup is exact string equality first, then a snap
// to the numerically closest step; exact reports which path was taken. For
// continuous curves exact is always true. An error is only possible for a
// stepped curve fed a symbol with no numeric interpretation, or a
// continuous curve fed such a symbol.
func ToNormalized(c Curve, v Value) (normalized float64, exact bool, err error) {
	switch cv := c.(type) {
	case Linear:
		f, ok := v.Numeric()
		if !ok {
			return 0, false, ErrNoStepMatch
		}
		return clamp01((f - cv.Min) / (cv.Max - cv.Min)), true, nil
	case Logarithmic:
		f, ok := v.Numeric()
		if !ok {
			return 0, false, ErrNoStepMatch
		}
		if f <= 0 {
			return 0, true, nil
		}
		return clamp01(math.Log(f/cv.Min) / math.Log(cv.Max/cv.Min)), true, nil
	case Stepped:
		return stepToNormalized(cv.Steps, v)
	}
	f, ok := v.Numeric()
	if !ok {
		return 0, false, ErrNoStepMatch
	}
	return clamp01(f), true, nil
}

// nearestStep picks the step whose normalized position is closest to n,
// ties resolving to the lower index.
func nearestStep(steps []Step, n float64) Step {
	best := steps[0]
	bestDist := math.Abs(steps[0].Normalized - n)
	for _, s := range steps[1:] {
		d := math.Abs(s.Normalized - n)
		if d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

func stepToNormalized(steps []Step, v Value) (float64, bool, error) {
	for _, s := range steps {
		if s.Physical == v.String() {
			return s.Normalized, true, nil
		}
	}

	// No verbatim match: snap to the numerically closest step. This is the
	// continuous-into-discrete path, e.g. translating a free frequency into
	// a plugin with fixed frequency choices.
	f, ok := v.Numeric()
	if !ok {
		return 0, false, ErrNoStepMatch
	}
	bestIdx := -1
	bestDist := math.Inf(1)
	for i, s := range steps {
		sf, ok := Symbol(s.Physical).Numeric()
		if !ok {
			continue
		}
		d := math.Abs(sf - f)
		if d < bestDist {
			bestIdx = i
			bestDist = d
		}
	}
	if bestIdx < 0 {
		return 0, false, ErrNoStepMatch
	}
	return steps[bestIdx].Normalized, false, nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
