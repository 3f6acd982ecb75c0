package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluginradar/paramswap/pkg/curve"
)

func TestLookup(t *testing.T) {
	r := NewRegistry()

	t.Run("known", func(t *testing.T) {
		s, ok := r.Lookup(CategoryCompressor, "comp_threshold")
		require.True(t, ok)
		assert.Equal(t, UnitDB, s.Unit)
		assert.Equal(t, curve.KindLinear, s.TypicalCurve)
		assert.Equal(t, 1, s.Priority)
	})

	t.Run("wrong category", func(t *testing.T) {
		_, ok := r.Lookup(CategoryEQ, "comp_threshold")
		assert.False(t, ok)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := r.Lookup(CategoryEQ, "eq_tilt")
		assert.False(t, ok)
	})

	t.Run("any category", func(t *testing.T) {
		s, ok := r.LookupAny("reverb_decay")
		require.True(t, ok)
		assert.Equal(t, CategoryReverb, s.Category)
		assert.Equal(t, UnitS, s.Unit)
	})
}

func TestBandSemanticsSeeded(t *testing.T) {
	r := NewRegistry()

	for _, band := range []int{1, 3, MaxEQBands} {
		for _, suffix := range []string{"freq", "gain", "q", "type", "enabled"} {
			_, ok := r.Lookup(CategoryEQ, BandID(band, suffix))
			assert.True(t, ok, "band %d %s", band, suffix)
		}
	}

	_, ok := r.Lookup(CategoryEQ, BandID(MaxEQBands+1, "freq"))
	assert.False(t, ok)
}

func TestPrioritize(t *testing.T) {
	r := NewRegistry()

	thresh, _ := r.Lookup(CategoryCompressor, "comp_threshold")
	knee, _ := r.Lookup(CategoryCompressor, "comp_knee")
	makeup, _ := r.Lookup(CategoryCompressor, "comp_makeup")
	outGain, _ := r.Lookup(CategoryGeneral, "output_gain")

	t.Run("lower priority number wins", func(t *testing.T) {
		got, ok := r.Prioritize([]Semantic{knee, thresh})
		require.True(t, ok)
		assert.Equal(t, "comp_threshold", got.ID)
	})

	t.Run("tie broken by declaration order", func(t *testing.T) {
		// knee, makeup and output_gain all carry priority 2; knee is
		// declared first in the seed table.
		got, ok := r.Prioritize([]Semantic{outGain, makeup, knee})
		require.True(t, ok)
		assert.Equal(t, "comp_knee", got.ID)

		// Stable across argument order.
		got, _ = r.Prioritize([]Semantic{knee, outGain, makeup})
		assert.Equal(t, "comp_knee", got.ID)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := r.Prioritize(nil)
		assert.False(t, ok)
	})
}

func TestSplitBand(t *testing.T) {
	tests := []struct {
		id     string
		band   int
		suffix string
		ok     bool
	}{
		{"eq_band_1_freq", 1, "freq", true},
		{"eq_band_24_gain", 24, "gain", true},
		{"eq_band_3_q", 3, "q", true},
		{"comp_threshold", 0, "", false},
		{"eq_band__freq", 0, "", false},
		{"eq_band_0_freq", 0, "", false},
		{"eq_band_2", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			band, suffix, ok := SplitBand(tt.id)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.band, band)
				assert.Equal(t, tt.suffix, suffix)
			}
		})
	}
}

func TestSeedTableUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range seedTable() {
		key := string(s.Category) + "/" + s.ID
		assert.False(t, seen[key], "duplicate semantic %s", key)
		seen[key] = true
		assert.GreaterOrEqual(t, s.Priority, 1)
		assert.LessOrEqual(t, s.Priority, 3)
	}
}
