package semantic

import (
	"fmt"
	"strconv"
	"strings"
)

const bandPrefix = "eq_band_"

// SplitBand parses an EQ band semantic ID of the form eq_band_N_suffix.
// Non-band IDs return ok=false.
func SplitBand(id string) (band int, suffix string, ok bool) {
	rest, found := strings.CutPrefix(id, bandPrefix)
	if !found {
		return 0, "", false
	}
	numStr, suffix, found := strings.Cut(rest, "_")
	if !found || suffix == "" {
		return 0, "", false
	}
	band, err := strconv.Atoi(numStr)
	if err != nil || band < 1 {
		return 0, "", false
	}
	return band, suffix, true
}

// BandID builds the EQ band semantic ID for band n and a suffix such as
// "freq" or "gain".
func BandID(band int, suffix string) string {
	return fmt.Sprintf("%s%d_%s", bandPrefix, band, suffix)
}
