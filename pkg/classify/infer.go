package classify

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/pluginradar/paramswap/pkg/curve"
	"github.com/pluginradar/paramswap/pkg/semantic"
)

// inferUnit guesses the physical unit from the host's unit label, falling
// back to range heuristics. Returns "" when nothing applies.
func inferUnit(label string, min, max float64) semantic.Unit {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "hz") || strings.Contains(l, "hertz"):
		return semantic.UnitHz
	case strings.Contains(l, "db") || strings.Contains(l, "decibel"):
		return semantic.UnitDB
	case strings.Contains(l, "ms") || strings.Contains(l, "millisec"):
		return semantic.UnitMS
	case strings.Contains(l, "%") || strings.Contains(l, "percent"):
		return semantic.UnitPercent
	case l == "s" || strings.Contains(l, "sec"):
		return semantic.UnitS
	}

	switch {
	case min >= 20 && max >= 5000:
		return semantic.UnitHz
	case min < 0 && min >= -100 && max <= 30:
		return semantic.UnitDB
	case min >= 0 && max <= 1:
		return semantic.UnitPercent
	case min >= 0 && max <= 100:
		return semantic.UnitPercent
	}
	return ""
}

// inferKind guesses the curve family from step count, unit and range.
func inferKind(d Descriptor, unit semantic.Unit) curve.Kind {
	if d.NumSteps > 0 && d.NumSteps <= 20 {
		return curve.KindStepped
	}
	switch {
	case unit == semantic.UnitHz, d.Min >= 20 && d.Max >= 5000:
		return curve.KindLogarithmic
	case unit == semantic.UnitMS && d.Min > 0 && d.Max > 10*d.Min:
		return curve.KindLogarithmic
	case d.Min >= 1 && d.Max >= 10 && d.Max <= 100:
		// Ratio-style range.
		return curve.KindLogarithmic
	}
	return curve.KindLinear
}

// minSamplesForFit is how many probed points a regression needs before it
// can overrule the heuristic kind.
const minSamplesForFit = 4

// kindFromSamples decides between linear and logarithmic by fitting the
// probed curve points both ways and comparing fit quality. Physical values
// must be positive for the logarithmic fit to be considered at all.
func kindFromSamples(samples []Sample) (curve.Kind, bool) {
	if len(samples) < minSamplesForFit {
		return "", false
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	logOK := true
	for i, s := range samples {
		xs[i] = s.Normalized
		ys[i] = s.Physical
		if s.Physical <= 0 {
			logOK = false
		}
	}

	linR2 := fitR2(xs, ys)
	if !logOK {
		if linR2 > 0 {
			return curve.KindLinear, true
		}
		return "", false
	}

	logYs := make([]float64, len(ys))
	for i, y := range ys {
		logYs[i] = math.Log(y)
	}
	logR2 := fitR2(xs, logYs)

	if logR2 > linR2 {
		return curve.KindLogarithmic, true
	}
	return curve.KindLinear, true
}

func fitR2(xs, ys []float64) float64 {
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return 0
	}
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	if math.IsNaN(r2) {
		return 0
	}
	return r2
}
