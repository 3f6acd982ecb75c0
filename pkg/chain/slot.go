// Package chain models one plugin instance inside a processing chain: its
// identity, position, bypass state and the ordered parameter settings the
// user tuned. Chain persistence itself lives outside this module; slots are
// the value snapshots the translation engine consumes and produces.
package chain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pluginradar/paramswap/pkg/semantic"
)

// Setting is one tuned parameter. Value keeps the raw display string the
// chain was saved with ("547 Hz", "bell"); Normalized is the 0-1 automation
// value; Semantic is empty when the parameter has no shared meaning.
type Setting struct {
	Name       string
	Value      string
	Normalized float64
	Semantic   string
	Unit       semantic.Unit
}

// Identity names a concrete plugin build: what the slot hosts.
type Identity struct {
	PluginName   string
	Manufacturer string
	Format       string
	UID          string
}

// NewIdentity builds an Identity, generating a UID when the catalog did
// not provide one.
func NewIdentity(pluginName, manufacturer, format, uid string) Identity {
	if uid == "" {
		uid = uuid.NewString()
	}
	return Identity{
		PluginName:   pluginName,
		Manufacturer: manufacturer,
		Format:       format,
		UID:          uid,
	}
}

// Slot is one plugin instance at one position in a chain. Position defines
// processing order and is unique within a chain.
type Slot struct {
	Position     int
	PluginName   string
	Manufacturer string
	Format       string
	UID          string
	Bypassed     bool
	Settings     []Setting
}

// Identity returns the slot's plugin identity.
func (s *Slot) Identity() Identity {
	return Identity{
		PluginName:   s.PluginName,
		Manufacturer: s.Manufacturer,
		Format:       s.Format,
		UID:          s.UID,
	}
}

// InvalidSlotError reports slot data that violates the model invariants.
// It signals a bug in the calling layer, never recoverable locally.
type InvalidSlotError struct {
	Setting string
	Reason  string
}

func (e *InvalidSlotError) Error() string {
	if e.Setting == "" {
		return fmt.Sprintf("invalid chain slot: %s", e.Reason)
	}
	return fmt.Sprintf("invalid chain slot: setting %q: %s", e.Setting, e.Reason)
}

// Validate checks the slot invariants: every normalized value in [0,1].
func (s *Slot) Validate() error {
	for _, set := range s.Settings {
		if set.Normalized < 0 || set.Normalized > 1 {
			return &InvalidSlotError{
				Setting: set.Name,
				Reason:  fmt.Sprintf("normalized value %g outside [0,1]", set.Normalized),
			}
		}
	}
	return nil
}
