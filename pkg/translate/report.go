package translate

import "github.com/pluginradar/paramswap/pkg/curve"

// Outcome is the per-parameter result of a translation.
type Outcome string

const (
	// OutcomeTranslated: the value carried over exactly (within curve math).
	OutcomeTranslated Outcome = "translated"
	// OutcomeQuantized: the value was snapped to the nearest discrete step.
	OutcomeQuantized Outcome = "quantized"
	// OutcomeDefaulted: the target had no usable source value and keeps its
	// mapped default.
	OutcomeDefaulted Outcome = "defaulted"
	// OutcomeDropped: the value could not be carried at all (no target map,
	// unit mismatch, band overflow, or a vendor-only control).
	OutcomeDropped Outcome = "dropped"
)

// Entry is one line of the translation report. Source and Target are nil
// when no value existed on that side.
type Entry struct {
	Semantic string
	Param    string // target rawParamId, or the source setting for overflow drops
	Source   *curve.Value
	Target   *curve.Value
	Outcome  Outcome
}

// Report is the engine's account of one swap: what transferred faithfully,
// what was snapped, what fell back to defaults, and what was lost. A
// partially successful swap is always more useful than a rejected one;
// silence about data loss would be the real bug, so every incompleteness
// shows up here instead of as an error.
type Report struct {
	Entries []Entry

	// mappedTargets is the confidence denominator: target parameters that
	// carry a semantic role and sit within the band policy. Vendor-only
	// controls were never translatable by design and are excluded.
	mappedTargets int
}

// Count returns the number of entries with the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == o {
			n++
		}
	}
	return n
}

// CarriedOver returns "N of M settings carried over": translated plus
// quantized entries against the mapped target parameter count.
func (r *Report) CarriedOver() (carried, total int) {
	return r.Count(OutcomeTranslated) + r.Count(OutcomeQuantized), r.mappedTargets
}

// ConfidencePercent is the fraction of mapped target parameters that
// translated faithfully, as 0-100. Quantized values are carried but lossy,
// so they do not count toward confidence.
func (r *Report) ConfidencePercent() int {
	if r.mappedTargets == 0 {
		return 0
	}
	return r.Count(OutcomeTranslated) * 100 / r.mappedTargets
}
