package semantic

import "github.com/pluginradar/paramswap/pkg/curve"

// MaxEQBands is the highest band number the registry declares semantics
// for. Kirchhoff-EQ ships 32 bands; anything above this is outside the
// shared vocabulary and stays vendor-specific.
const MaxEQBands = 32

// seedTable declares every semantic role in priority-relevant order.
// Declaration order is a documented tie-break (see Registry.Prioritize),
// so entries are appended, never reordered.
func seedTable() []Semantic {
	var t []Semantic

	// EQ. Band semantics are the join key for the band-truncation policy;
	// freq and gain carry the musical intent, so they rank above q/type.
	for band := 1; band <= MaxEQBands; band++ {
		t = append(t,
			Semantic{CategoryEQ, BandID(band, "freq"), UnitHz, 10, 30000, 1000, curve.KindLogarithmic, 1},
			Semantic{CategoryEQ, BandID(band, "gain"), UnitDB, -30, 30, 0, curve.KindLinear, 1},
			Semantic{CategoryEQ, BandID(band, "q"), UnitRatio, 0.1, 40, 0.71, curve.KindLogarithmic, 2},
			Semantic{CategoryEQ, BandID(band, "type"), UnitStepped, 0, 0, 0, curve.KindStepped, 2},
			Semantic{CategoryEQ, BandID(band, "enabled"), UnitBoolean, 0, 1, 1, curve.KindStepped, 3},
		)
	}
	t = append(t,
		Semantic{CategoryEQ, "eq_hp_freq", UnitHz, 10, 400, 20, curve.KindLogarithmic, 2},
		Semantic{CategoryEQ, "eq_lp_freq", UnitHz, 1000, 30000, 20000, curve.KindLogarithmic, 2},
		Semantic{CategoryEQ, "eq_output_gain", UnitDB, -24, 24, 0, curve.KindLinear, 3},
	)

	// Compressor.
	t = append(t,
		Semantic{CategoryCompressor, "comp_threshold", UnitDB, -60, 0, -18, curve.KindLinear, 1},
		Semantic{CategoryCompressor, "comp_ratio", UnitRatio, 1, 100, 4, curve.KindLogarithmic, 1},
		Semantic{CategoryCompressor, "comp_attack", UnitMS, 0.01, 500, 10, curve.KindLogarithmic, 1},
		Semantic{CategoryCompressor, "comp_release", UnitMS, 1, 5000, 100, curve.KindLogarithmic, 1},
		Semantic{CategoryCompressor, "comp_knee", UnitDB, 0, 24, 6, curve.KindLinear, 2},
		Semantic{CategoryCompressor, "comp_makeup", UnitDB, 0, 24, 0, curve.KindLinear, 2},
		Semantic{CategoryCompressor, "comp_mix", UnitPercent, 0, 100, 100, curve.KindLinear, 2},
		Semantic{CategoryCompressor, "comp_lookahead", UnitMS, 0, 20, 0, curve.KindLinear, 3},
	)

	// Limiter.
	t = append(t,
		Semantic{CategoryLimiter, "limit_ceiling", UnitDB, -30, 0, -0.3, curve.KindLinear, 1},
		Semantic{CategoryLimiter, "limit_threshold", UnitDB, -30, 0, -6, curve.KindLinear, 1},
		Semantic{CategoryLimiter, "limit_release", UnitMS, 1, 2000, 50, curve.KindLogarithmic, 2},
		Semantic{CategoryLimiter, "limit_lookahead", UnitMS, 0, 20, 1, curve.KindLinear, 3},
	)

	// Reverb.
	t = append(t,
		Semantic{CategoryReverb, "reverb_decay", UnitS, 0.1, 30, 2, curve.KindLogarithmic, 1},
		Semantic{CategoryReverb, "reverb_mix", UnitPercent, 0, 100, 30, curve.KindLinear, 1},
		Semantic{CategoryReverb, "reverb_predelay", UnitMS, 0, 500, 20, curve.KindLinear, 2},
		Semantic{CategoryReverb, "reverb_size", UnitPercent, 0, 100, 50, curve.KindLinear, 2},
		Semantic{CategoryReverb, "reverb_damping", UnitPercent, 0, 100, 50, curve.KindLinear, 3},
	)

	// Delay.
	t = append(t,
		Semantic{CategoryDelay, "delay_time", UnitMS, 1, 4000, 350, curve.KindLogarithmic, 1},
		Semantic{CategoryDelay, "delay_feedback", UnitPercent, 0, 100, 35, curve.KindLinear, 1},
		Semantic{CategoryDelay, "delay_mix", UnitPercent, 0, 100, 25, curve.KindLinear, 2},
		Semantic{CategoryDelay, "delay_sync", UnitBoolean, 0, 1, 0, curve.KindStepped, 3},
	)

	// Saturation.
	t = append(t,
		Semantic{CategorySaturation, "sat_drive", UnitPercent, 0, 100, 25, curve.KindLinear, 1},
		Semantic{CategorySaturation, "sat_mix", UnitPercent, 0, 100, 100, curve.KindLinear, 2},
		Semantic{CategorySaturation, "sat_tone", UnitHz, 200, 20000, 5000, curve.KindLogarithmic, 3},
		Semantic{CategorySaturation, "sat_type", UnitStepped, 0, 0, 0, curve.KindStepped, 3},
	)

	// Channel strip. Dynamics and EQ sections reuse the comp_/eq_ roles;
	// only the gate section has strip-specific roles.
	t = append(t,
		Semantic{CategoryChannelStrip, "cs_gate_threshold", UnitDB, -80, 0, -50, curve.KindLinear, 1},
		Semantic{CategoryChannelStrip, "cs_gate_range", UnitDB, 0, 80, 60, curve.KindLinear, 2},
		Semantic{CategoryChannelStrip, "cs_gate_release", UnitMS, 5, 4000, 100, curve.KindLogarithmic, 2},
	)

	// General roles shared by every category.
	t = append(t,
		Semantic{CategoryGeneral, "input_gain", UnitDB, -24, 24, 0, curve.KindLinear, 2},
		Semantic{CategoryGeneral, "output_gain", UnitDB, -24, 24, 0, curve.KindLinear, 2},
		Semantic{CategoryGeneral, "dry_wet_mix", UnitPercent, 0, 100, 100, curve.KindLinear, 2},
		Semantic{CategoryGeneral, "bypass", UnitBoolean, 0, 1, 0, curve.KindStepped, 3},
	)

	return t
}
