// Package classify builds inferred parameter maps from a plugin's
// parameter listing: names, unit labels, physical ranges, step counts and
// sampled curve points. It pattern-matches names to semantic roles, infers
// units and value curves, and scores how trustworthy the resulting map is.
// Inferred maps feed the same store as hand-curated ones, flagged with
// Source = inferred and a confidence reflecting match quality.
package classify

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pluginradar/paramswap/pkg/curve"
	"github.com/pluginradar/paramswap/pkg/parammap"
	"github.com/pluginradar/paramswap/pkg/semantic"
)

// Sample is one probed point of a parameter's normalized-to-physical
// mapping.
type Sample struct {
	Normalized float64 `json:"normalized"`
	Physical   float64 `json:"physical"`
}

// Descriptor is the raw metadata for one vendor parameter, as reported by
// a plugin host. Default is the normalized default value.
type Descriptor struct {
	Name         string   `json:"name"`
	Label        string   `json:"label,omitempty"`
	Min          float64  `json:"minValue"`
	Max          float64  `json:"maxValue"`
	Default      float64  `json:"defaultValue"`
	NumSteps     int      `json:"numSteps,omitempty"`
	CurveSamples []Sample `json:"curveSamples,omitempty"`
}

// Result carries the inferred map plus per-parameter match bookkeeping.
type Result struct {
	Map          *parammap.Map
	MatchedCount int
	TotalCount   int
	Unmatched    []string // parameter names with no semantic match
}

// Classify infers a parameter map for a plugin from its descriptors.
// pluginID may be empty for plugins not yet in the catalog; a generated ID
// keeps the map storable.
func Classify(pluginID, pluginName, manufacturer string, descs []Descriptor) (*Result, error) {
	if pluginID == "" {
		pluginID = uuid.NewString()
	}

	m := &parammap.Map{
		PluginID:     pluginID,
		PluginName:   pluginName,
		Manufacturer: manufacturer,
		Source:       parammap.SourceInferred,
	}
	res := &Result{Map: m, TotalCount: len(descs)}

	maxBand := 0
	unitConfirmed := 0

	for _, d := range descs {
		match, matched := matchName(d.Name)
		if matched {
			res.MatchedCount++
			if match.band > maxBand {
				maxBand = match.band
			}
			if match.semantic == "comp_mix" || match.semantic == "dry_wet_mix" {
				m.CompHasParallelMix = true
			}
			if match.semantic == "comp_lookahead" {
				m.CompHasLookahead = true
			}
		} else {
			res.Unmatched = append(res.Unmatched, d.Name)
		}

		unit := match.unit
		inferred := inferUnit(d.Label, d.Min, d.Max)
		if unit == "" {
			unit = inferred
		}
		if matched && d.Label != "" && inferred != "" {
			unitConfirmed++
		}

		kind := match.kind
		if kind == "" {
			kind = inferKind(d, unit)
		}
		if kind != curve.KindStepped {
			if refined, ok := kindFromSamples(d.CurveSamples); ok {
				kind = refined
			}
		}

		c := buildCurve(kind, d)
		def := parammap.Definition{
			RawParamID: d.Name,
			Semantic:   match.semantic,
			Unit:       unit,
			Curve:      c,
			Default:    curve.ToPhysical(c, d.Default),
		}
		m.Parameters = append(m.Parameters, def)
	}

	m.EQBandCount = maxBand
	m.Category = inferCategory(m.Parameters)
	if m.EQBandCount > 0 {
		m.EQBandParameterPattern = bandPattern(m.Parameters)
	}
	m.Confidence = confidence(m, res, unitConfirmed)

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("inferred map invalid: %w", err)
	}
	return res, nil
}

// buildCurve constructs a valid curve for the inferred kind, falling back
// to linear when a logarithmic range would be unrepresentable.
func buildCurve(kind curve.Kind, d Descriptor) curve.Curve {
	min, max := d.Min, d.Max
	if min >= max {
		min, max = 0, 1
	}

	switch kind {
	case curve.KindLogarithmic:
		if min > 0 {
			return curve.Logarithmic{Min: min, Max: max}
		}
		return curve.Linear{Min: min, Max: max}
	case curve.KindStepped:
		n := d.NumSteps
		if n < 2 {
			n = 2
		}
		steps := make([]curve.Step, n)
		for i := 0; i < n; i++ {
			steps[i] = curve.Step{
				Normalized: float64(i) / float64(n-1),
				Physical:   fmt.Sprintf("%d", i),
			}
		}
		return curve.Stepped{Steps: steps}
	}
	return curve.Linear{Min: min, Max: max}
}

// inferCategory decides the plugin category from matched semantic counts.
// The rules form an explicit ordered list; the first that applies wins.
func inferCategory(defs []parammap.Definition) semantic.Category {
	eq, comp := 0, 0
	for _, d := range defs {
		if _, _, ok := semantic.SplitBand(d.Semantic); ok {
			eq++
		} else if strings.HasPrefix(d.Semantic, "comp_") {
			comp++
		}
	}
	switch {
	case eq > comp && eq >= 3:
		return semantic.CategoryEQ
	case comp > eq && comp >= 2:
		return semantic.CategoryCompressor
	case eq > 0:
		return semantic.CategoryEQ
	case comp > 0:
		return semantic.CategoryCompressor
	}
	return semantic.CategoryGeneral
}

// bandPattern reports the raw name of the first band-1 frequency
// parameter, as a hint for curators reviewing the inferred map.
func bandPattern(defs []parammap.Definition) string {
	for _, d := range defs {
		if d.Semantic == semantic.BandID(1, "freq") {
			return d.RawParamID
		}
	}
	return ""
}

// confidence scores an inferred map 0-100: match ratio dominates, unit
// confirmation and category completeness add smaller bonuses.
func confidence(m *parammap.Map, res *Result, unitConfirmed int) int {
	if res.TotalCount == 0 {
		return 0
	}
	score := float64(res.MatchedCount) / float64(res.TotalCount) * 70

	if res.MatchedCount > 0 {
		score += float64(unitConfirmed) / float64(res.MatchedCount) * 20
	}

	if m.Category == semantic.CategoryEQ && m.EQBandCount > 0 {
		score += 5
	}
	if m.Category == semantic.CategoryCompressor {
		essential := map[string]bool{}
		for _, d := range m.Parameters {
			essential[d.Semantic] = true
		}
		if essential["comp_threshold"] && essential["comp_ratio"] &&
			essential["comp_attack"] && essential["comp_release"] {
			score += 10
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
