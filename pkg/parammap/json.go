package parammap

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pluginradar/paramswap/pkg/curve"
	"github.com/pluginradar/paramswap/pkg/semantic"
)

// Wire format for curated map files. mappingCurve is the discriminator;
// minValue/maxValue apply to continuous curves and steps to stepped ones.
// defaultValue is a number for continuous parameters and a string for
// stepped ones.

type wireMap struct {
	PluginID               string           `json:"pluginId"`
	PluginName             string           `json:"pluginName"`
	Manufacturer           string           `json:"manufacturer,omitempty"`
	Category               string           `json:"category"`
	Parameters             []wireDefinition `json:"parameters"`
	EQBandCount            int              `json:"eqBandCount,omitempty"`
	EQBandParameterPattern string           `json:"eqBandParameterPattern,omitempty"`
	CompHasAutoMakeup      bool             `json:"compHasAutoMakeup,omitempty"`
	CompHasParallelMix     bool             `json:"compHasParallelMix,omitempty"`
	CompHasLookahead       bool             `json:"compHasLookahead,omitempty"`
	Confidence             int              `json:"confidence"`
	Source                 string           `json:"source"`
}

type wireDefinition struct {
	RawParamID   string          `json:"rawParamId"`
	Semantic     string          `json:"semantic,omitempty"`
	PhysicalUnit string          `json:"physicalUnit,omitempty"`
	MappingCurve string          `json:"mappingCurve"`
	MinValue     float64         `json:"minValue,omitempty"`
	MaxValue     float64         `json:"maxValue,omitempty"`
	DefaultValue json.RawMessage `json:"defaultValue,omitempty"`
	Steps        []wireStep      `json:"steps,omitempty"`
}

type wireStep struct {
	NormalizedValue float64 `json:"normalizedValue"`
	PhysicalValue   string  `json:"physicalValue"`
}

// MarshalJSON encodes the map in the curation wire format.
func (m *Map) MarshalJSON() ([]byte, error) {
	w := wireMap{
		PluginID:               m.PluginID,
		PluginName:             m.PluginName,
		Manufacturer:           m.Manufacturer,
		Category:               string(m.Category),
		EQBandCount:            m.EQBandCount,
		EQBandParameterPattern: m.EQBandParameterPattern,
		CompHasAutoMakeup:      m.CompHasAutoMakeup,
		CompHasParallelMix:     m.CompHasParallelMix,
		CompHasLookahead:       m.CompHasLookahead,
		Confidence:             m.Confidence,
		Source:                 string(m.Source),
	}
	for _, d := range m.Parameters {
		wd := wireDefinition{
			RawParamID:   d.RawParamID,
			Semantic:     d.Semantic,
			PhysicalUnit: string(d.Unit),
		}
		switch c := d.Curve.(type) {
		case curve.Linear:
			wd.MappingCurve = string(curve.KindLinear)
			wd.MinValue = c.Min
			wd.MaxValue = c.Max
		case curve.Logarithmic:
			wd.MappingCurve = string(curve.KindLogarithmic)
			wd.MinValue = c.Min
			wd.MaxValue = c.Max
		case curve.Stepped:
			wd.MappingCurve = string(curve.KindStepped)
			for _, s := range c.Steps {
				wd.Steps = append(wd.Steps, wireStep{s.Normalized, s.Physical})
			}
		default:
			return nil, fmt.Errorf("parameter %q: unknown curve type %T", d.RawParamID, d.Curve)
		}
		def, err := marshalDefault(d.Default)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", d.RawParamID, err)
		}
		wd.DefaultValue = def
		w.Parameters = append(w.Parameters, wd)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the curation wire format. The result is not yet
// validated; DecodeMap does both.
func (m *Map) UnmarshalJSON(data []byte) error {
	var w wireMap
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*m = Map{
		PluginID:               w.PluginID,
		PluginName:             w.PluginName,
		Manufacturer:           w.Manufacturer,
		Category:               semantic.Category(w.Category),
		EQBandCount:            w.EQBandCount,
		EQBandParameterPattern: w.EQBandParameterPattern,
		CompHasAutoMakeup:      w.CompHasAutoMakeup,
		CompHasParallelMix:     w.CompHasParallelMix,
		CompHasLookahead:       w.CompHasLookahead,
		Confidence:             w.Confidence,
		Source:                 Source(w.Source),
	}
	for _, wd := range w.Parameters {
		d := Definition{
			RawParamID: wd.RawParamID,
			Semantic:   wd.Semantic,
			Unit:       semantic.Unit(wd.PhysicalUnit),
		}
		switch curve.Kind(wd.MappingCurve) {
		case curve.KindLinear:
			d.Curve = curve.Linear{Min: wd.MinValue, Max: wd.MaxValue}
		case curve.KindLogarithmic:
			d.Curve = curve.Logarithmic{Min: wd.MinValue, Max: wd.MaxValue}
		case curve.KindStepped:
			var st curve.Stepped
			for _, s := range wd.Steps {
				st.Steps = append(st.Steps, curve.Step{Normalized: s.NormalizedValue, Physical: s.PhysicalValue})
			}
			d.Curve = st
		default:
			return fmt.Errorf("parameter %q: unknown mappingCurve %q", wd.RawParamID, wd.MappingCurve)
		}
		def, err := unmarshalDefault(wd.DefaultValue, d.Curve.Kind())
		if err != nil {
			return fmt.Errorf("parameter %q: %w", wd.RawParamID, err)
		}
		d.Default = def
		m.Parameters = append(m.Parameters, d)
	}
	return nil
}

func marshalDefault(v curve.Value) (json.RawMessage, error) {
	if v.IsSymbol() {
		return json.Marshal(v.String())
	}
	f, _ := v.Numeric()
	return json.Marshal(f)
}

func unmarshalDefault(raw json.RawMessage, kind curve.Kind) (curve.Value, error) {
	if len(raw) == 0 {
		if kind == curve.KindStepped {
			return curve.Symbol(""), nil
		}
		return curve.Number(0), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return curve.Symbol(s), nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return curve.Value{}, fmt.Errorf("defaultValue %s is neither number nor string", raw)
	}
	if kind == curve.KindStepped {
		// Stepped defaults are symbolic on the wire even when numeric text.
		return curve.Symbol(string(raw)), nil
	}
	return curve.Number(f), nil
}

// DecodeMap reads and validates one map document.
func DecodeMap(r io.Reader) (*Map, error) {
	var m Map
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// EncodeMap writes one map document.
func EncodeMap(w io.Writer, m *Map) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
