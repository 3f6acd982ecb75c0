package chain

import (
	"fmt"

	"github.com/pluginradar/paramswap/pkg/curve"
	"github.com/pluginradar/paramswap/pkg/semantic"
)

// FormatValue renders a physical value as the display string stored in a
// setting. Symbolic values pass through verbatim; numbers are formatted
// per unit.
func FormatValue(v curve.Value, u semantic.Unit) string {
	if v.IsSymbol() {
		return v.String()
	}
	f, _ := v.Numeric()

	switch u {
	case semantic.UnitHz:
		if f >= 1000 {
			return fmt.Sprintf("%.2f kHz", f/1000)
		}
		return fmt.Sprintf("%.1f Hz", f)
	case semantic.UnitDB:
		return fmt.Sprintf("%.1f dB", f)
	case semantic.UnitMS:
		if f >= 1000 {
			return fmt.Sprintf("%.2f s", f/1000)
		}
		return fmt.Sprintf("%.1f ms", f)
	case semantic.UnitS:
		return fmt.Sprintf("%.2f s", f)
	case semantic.UnitPercent:
		return fmt.Sprintf("%.0f%%", f)
	case semantic.UnitRatio:
		return fmt.Sprintf("%.1f:1", f)
	case semantic.UnitBoolean:
		if f > 0.5 {
			return "On"
		}
		return "Off"
	}
	return v.String()
}
