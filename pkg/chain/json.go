package chain

import (
	"encoding/json"
	"io"

	"github.com/pluginradar/paramswap/pkg/semantic"
)

// Wire format for slot documents, matching the persisted chain schema.

type wireSlot struct {
	Position     int           `json:"position"`
	PluginName   string        `json:"pluginName"`
	Manufacturer string        `json:"manufacturer,omitempty"`
	Format       string        `json:"format,omitempty"`
	UID          string        `json:"uid,omitempty"`
	Bypassed     bool          `json:"bypassed,omitempty"`
	Parameters   []wireSetting `json:"parameters"`
}

type wireSetting struct {
	Name            string  `json:"name"`
	Value           string  `json:"value"`
	NormalizedValue float64 `json:"normalizedValue"`
	Semantic        string  `json:"semantic,omitempty"`
	Unit            string  `json:"unit,omitempty"`
}

// MarshalJSON encodes the slot in the chain document format.
func (s *Slot) MarshalJSON() ([]byte, error) {
	w := wireSlot{
		Position:     s.Position,
		PluginName:   s.PluginName,
		Manufacturer: s.Manufacturer,
		Format:       s.Format,
		UID:          s.UID,
		Bypassed:     s.Bypassed,
	}
	for _, set := range s.Settings {
		w.Parameters = append(w.Parameters, wireSetting{
			Name:            set.Name,
			Value:           set.Value,
			NormalizedValue: set.Normalized,
			Semantic:        set.Semantic,
			Unit:            string(set.Unit),
		})
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the chain document format without validating;
// DecodeSlot does both.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var w wireSlot
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = Slot{
		Position:     w.Position,
		PluginName:   w.PluginName,
		Manufacturer: w.Manufacturer,
		Format:       w.Format,
		UID:          w.UID,
		Bypassed:     w.Bypassed,
	}
	for _, set := range w.Parameters {
		s.Settings = append(s.Settings, Setting{
			Name:       set.Name,
			Value:      set.Value,
			Normalized: set.NormalizedValue,
			Semantic:   set.Semantic,
			Unit:       semantic.Unit(set.Unit),
		})
	}
	return nil
}

// DecodeSlot reads and validates one slot document.
func DecodeSlot(r io.Reader) (*Slot, error) {
	var s Slot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// EncodeSlot writes one slot document.
func EncodeSlot(w io.Writer, s *Slot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
