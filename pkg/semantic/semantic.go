// Package semantic defines the shared vocabulary of parameter roles that
// joins two plugins' parameter spaces: vendor-independent identifiers like
// comp_threshold or eq_band_1_freq, each with a canonical unit, typical
// range and curve, and a tie-break priority.
package semantic

import "github.com/pluginradar/paramswap/pkg/curve"

// Unit is the canonical physical unit of a semantic role.
type Unit string

const (
	UnitHz      Unit = "hz"
	UnitDB      Unit = "db"
	UnitRatio   Unit = "ratio"
	UnitMS      Unit = "ms"
	UnitS       Unit = "s"
	UnitPercent Unit = "percent"
	UnitStepped Unit = "stepped"
	UnitBoolean Unit = "boolean"
)

// Category groups semantics by effect type.
type Category string

const (
	CategoryEQ           Category = "eq"
	CategoryCompressor   Category = "compressor"
	CategoryLimiter      Category = "limiter"
	CategoryReverb       Category = "reverb"
	CategoryDelay        Category = "delay"
	CategorySaturation   Category = "saturation"
	CategoryChannelStrip Category = "channel-strip"
	CategoryGeneral      Category = "general"
)

// Semantic is one role in the registry. (Category, ID) is globally unique.
// Priority ranks specificity when a vendor parameter plausibly maps to more
// than one role: 1 is most specific, 3 least.
type Semantic struct {
	Category       Category
	ID             string
	Unit           Unit
	TypicalMin     float64
	TypicalMax     float64
	TypicalDefault float64
	TypicalCurve   curve.Kind
	Priority       int
}
