// Package parammap holds per-plugin parameter maps: the curated records
// that tie a vendor's raw automation IDs to semantic roles, value curves
// and physical ranges. Maps are produced by curation (by hand, by the
// classifier, or by scraping) and are read-only during translation.
package parammap

import (
	"fmt"

	"github.com/pluginradar/paramswap/pkg/curve"
	"github.com/pluginradar/paramswap/pkg/semantic"
)

// Source records how a map was produced; inferred and scraped maps carry
// lower confidence than hand-verified ones.
type Source string

const (
	SourceManual   Source = "manual"
	SourceInferred Source = "inferred"
	SourceScraped  Source = "scraped"
)

// Definition maps one vendor parameter to its semantic role and value
// encoding. Semantic is empty for vendor-specific controls with no shared
// meaning; the engine leaves those at their defaults.
type Definition struct {
	RawParamID string
	Semantic   string
	Unit       semantic.Unit
	Curve      curve.Curve
	Default    curve.Value
}

// Validate checks the definition invariants.
func (d Definition) Validate() error {
	if d.RawParamID == "" {
		return fmt.Errorf("parameter definition missing rawParamId")
	}
	if d.Curve == nil {
		return fmt.Errorf("parameter %q: missing curve", d.RawParamID)
	}
	if err := d.Curve.Validate(); err != nil {
		return fmt.Errorf("parameter %q: %w", d.RawParamID, err)
	}
	return nil
}

// Map is the full curated record for one plugin. At most one map exists
// per plugin; PluginID is the key into the external catalog.
type Map struct {
	PluginID     string
	PluginName   string
	Manufacturer string
	Category     semantic.Category

	Parameters []Definition

	// Structural hints used by translation policy and display.
	EQBandCount            int
	EQBandParameterPattern string
	CompHasAutoMakeup      bool
	CompHasParallelMix     bool
	CompHasLookahead       bool

	Confidence int // 0-100, reliability of the mapping itself
	Source     Source
}

// DuplicateParameterError reports two definitions sharing a rawParamId
// within one plugin map.
type DuplicateParameterError struct {
	PluginID   string
	RawParamID string
}

func (e *DuplicateParameterError) Error() string {
	return fmt.Sprintf("plugin %s: duplicate parameter %q", e.PluginID, e.RawParamID)
}

// Validate checks the map and all of its definitions.
func (m *Map) Validate() error {
	if m.PluginID == "" {
		return fmt.Errorf("map missing pluginId")
	}
	if m.Confidence < 0 || m.Confidence > 100 {
		return fmt.Errorf("plugin %s: confidence %d outside 0-100", m.PluginID, m.Confidence)
	}
	switch m.Source {
	case SourceManual, SourceInferred, SourceScraped:
	default:
		return fmt.Errorf("plugin %s: unknown source %q", m.PluginID, m.Source)
	}
	seen := make(map[string]bool, len(m.Parameters))
	for _, d := range m.Parameters {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("plugin %s: %w", m.PluginID, err)
		}
		if seen[d.RawParamID] {
			return &DuplicateParameterError{PluginID: m.PluginID, RawParamID: d.RawParamID}
		}
		seen[d.RawParamID] = true
	}
	return nil
}

// BySemantic returns the first definition mapped to the given semantic ID.
func (m *Map) BySemantic(id string) (Definition, bool) {
	if id == "" {
		return Definition{}, false
	}
	for _, d := range m.Parameters {
		if d.Semantic == id {
			return d, true
		}
	}
	return Definition{}, false
}

// ByRawID returns the definition for a vendor parameter ID.
func (m *Map) ByRawID(rawID string) (Definition, bool) {
	for _, d := range m.Parameters {
		if d.RawParamID == rawID {
			return d, true
		}
	}
	return Definition{}, false
}

// MappedCount returns how many definitions carry a semantic role.
func (m *Map) MappedCount() int {
	n := 0
	for _, d := range m.Parameters {
		if d.Semantic != "" {
			n++
		}
	}
	return n
}
