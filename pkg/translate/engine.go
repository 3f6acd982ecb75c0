// Package translate implements the parameter semantic translation engine:
// given a chain slot tuned for one plugin and the parameter map of another,
// it derives the closest achievable settings for the replacement plugin and
// reports, parameter by parameter, how faithfully the musical intent
// carried over.
//
// The engine is a pure function of its inputs: it holds no state between
// calls and treats the slot and maps as immutable snapshots. Fetching maps
// from the store happens at the call site. Diagnostics go through the
// debug package's default logger, which is disabled unless a tool turns
// it on.
package translate

import (
	"github.com/pluginradar/paramswap/pkg/chain"
	"github.com/pluginradar/paramswap/pkg/curve"
	"github.com/pluginradar/paramswap/pkg/debug"
	"github.com/pluginradar/paramswap/pkg/parammap"
	"github.com/pluginradar/paramswap/pkg/semantic"
)

// Engine translates chain slots between plugins' parameter spaces.
type Engine struct {
	registry *semantic.Registry
}

// New creates an engine over the given semantic registry.
func New(registry *semantic.Registry) *Engine {
	return &Engine{registry: registry}
}

// sourceValue is one resolved source parameter: its physical value and the
// unit it was recorded in.
type sourceValue struct {
	value curve.Value
	unit  semantic.Unit
}

// Translate produces the settings for target that best preserve the tuned
// settings of source, plus the report of what carried over.
//
// sourceMap and targetMap may be nil. A nil sourceMap means the source
// settings' stored display values stand in for physical values (chains
// persist semantics independently of maps). A nil targetMap is the
// fail-safe path: the new slot carries no settings, leaving the plugin at
// its own factory defaults, and everything is reported dropped.
//
// The only error is an invalid source slot; every interpretable input
// downgrades to defaulted or dropped outcomes instead of failing.
func (e *Engine) Translate(source chain.Slot, sourceMap *parammap.Map, target chain.Identity, targetMap *parammap.Map) (chain.Slot, *Report, error) {
	if err := source.Validate(); err != nil {
		return chain.Slot{}, nil, err
	}

	out := chain.Slot{
		Position:     source.Position,
		PluginName:   target.PluginName,
		Manufacturer: target.Manufacturer,
		Format:       target.Format,
		UID:          target.UID,
		Bypassed:     source.Bypassed,
	}

	values, order := e.resolveSource(source, sourceMap)
	report := &Report{}

	if targetMap == nil {
		// Never fabricate values for an unmapped plugin.
		debug.Warn("no parameter map for %s; leaving factory defaults", target.PluginName)
		for _, sem := range order {
			sv := values[sem]
			report.Entries = append(report.Entries, Entry{
				Semantic: sem,
				Source:   ref(sv.value),
				Outcome:  OutcomeDropped,
			})
		}
		return out, report, nil
	}

	bandLimit := 0
	if targetMap.EQBandCount > 0 {
		bandLimit = targetMap.EQBandCount
	}

	for _, def := range targetMap.Parameters {
		entry, setting := e.translateOne(def, values, bandLimit)
		debug.Debug("%s -> %s: %s", entry.Semantic, def.RawParamID, entry.Outcome)
		report.Entries = append(report.Entries, entry)
		out.Settings = append(out.Settings, setting)
		if def.Semantic != "" && !bandOverflow(def.Semantic, bandLimit) {
			report.mappedTargets++
		}
	}

	// Source bands beyond the target's band capacity are lost outright;
	// report them so the user sees exactly what did not transfer.
	if bandLimit > 0 {
		for _, sem := range order {
			if band, _, ok := semantic.SplitBand(sem); ok && band > bandLimit {
				sv := values[sem]
				report.Entries = append(report.Entries, Entry{
					Semantic: sem,
					Source:   ref(sv.value),
					Outcome:  OutcomeDropped,
				})
			}
		}
	}

	return out, report, nil
}

// resolveSource builds the semantic -> physical value table from the
// source slot. When the source map defines a parameter, the physical value
// is computed through its curve; otherwise the setting's stored display
// value is taken as-is, best effort. The first setting per semantic wins.
func (e *Engine) resolveSource(source chain.Slot, sourceMap *parammap.Map) (map[string]sourceValue, []string) {
	values := make(map[string]sourceValue)
	var order []string

	for _, set := range source.Settings {
		if set.Semantic == "" {
			continue
		}
		if _, dup := values[set.Semantic]; dup {
			continue
		}
		sv := sourceValue{unit: set.Unit}
		if sourceMap != nil {
			if def, ok := sourceMap.BySemantic(set.Semantic); ok {
				sv.value = curve.ToPhysical(def.Curve, set.Normalized)
				if def.Unit != "" {
					sv.unit = def.Unit
				}
				values[set.Semantic] = sv
				order = append(order, set.Semantic)
				continue
			}
		}
		sv.value = curve.Symbol(set.Value)
		values[set.Semantic] = sv
		order = append(order, set.Semantic)
	}
	return values, order
}

// translateOne resolves a single target parameter definition against the
// source value table.
func (e *Engine) translateOne(def parammap.Definition, values map[string]sourceValue, bandLimit int) (Entry, chain.Setting) {
	entry := Entry{Semantic: def.Semantic, Param: def.RawParamID}

	defaulted := func(outcome Outcome) (Entry, chain.Setting) {
		entry.Outcome = outcome
		entry.Target = ref(def.Default)
		n, _, err := curve.ToNormalized(def.Curve, def.Default)
		if err != nil {
			n = 0
		}
		return entry, chain.Setting{
			Name:       def.RawParamID,
			Value:      chain.FormatValue(def.Default, def.Unit),
			Normalized: n,
			Semantic:   def.Semantic,
			Unit:       def.Unit,
		}
	}

	// Vendor-only control with no shared meaning.
	if def.Semantic == "" {
		return defaulted(OutcomeDropped)
	}

	// Bands past the target's capacity are outside the translation policy.
	if bandOverflow(def.Semantic, bandLimit) {
		return defaulted(OutcomeDropped)
	}

	sv, ok := values[def.Semantic]
	if !ok {
		return defaulted(OutcomeDefaulted)
	}
	entry.Source = ref(sv.value)

	// Semantically identical units only; unit conversion is out of scope,
	// so a mismatch drops the value rather than guessing. Missing units are
	// backfilled from the registry's canonical unit for the role.
	srcUnit, dstUnit := sv.unit, def.Unit
	if sem, known := e.registry.LookupAny(def.Semantic); known {
		if srcUnit == "" {
			srcUnit = sem.Unit
		}
		if dstUnit == "" {
			dstUnit = sem.Unit
		}
	}
	if srcUnit != "" && dstUnit != "" && srcUnit != dstUnit {
		return defaulted(OutcomeDropped)
	}

	n, exact, err := curve.ToNormalized(def.Curve, sv.value)
	if err != nil {
		return defaulted(OutcomeDefaulted)
	}

	phys := curve.ToPhysical(def.Curve, n)
	entry.Target = ref(phys)
	if exact {
		entry.Outcome = OutcomeTranslated
	} else {
		entry.Outcome = OutcomeQuantized
	}
	return entry, chain.Setting{
		Name:       def.RawParamID,
		Value:      chain.FormatValue(phys, def.Unit),
		Normalized: n,
		Semantic:   def.Semantic,
		Unit:       def.Unit,
	}
}

func bandOverflow(sem string, bandLimit int) bool {
	if bandLimit <= 0 {
		return false
	}
	band, _, ok := semantic.SplitBand(sem)
	return ok && band > bandLimit
}

func ref(v curve.Value) *curve.Value {
	return &v
}
