package classify

import (
	"encoding/json"
	"fmt"
	"io"
)

// Listing is a plugin parameter listing document, the input to the
// classifier as exported by a plugin host scan.
type Listing struct {
	PluginID     string       `json:"pluginId,omitempty"`
	PluginName   string       `json:"pluginName"`
	Manufacturer string       `json:"manufacturer,omitempty"`
	Parameters   []Descriptor `json:"parameters"`
}

// DecodeListing reads one listing document.
func DecodeListing(r io.Reader) (*Listing, error) {
	var l Listing
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, err
	}
	if l.PluginName == "" {
		return nil, fmt.Errorf("listing missing pluginName")
	}
	return &l, nil
}

// ClassifyListing runs Classify over a decoded listing.
func ClassifyListing(l *Listing) (*Result, error) {
	return Classify(l.PluginID, l.PluginName, l.Manufacturer, l.Parameters)
}
