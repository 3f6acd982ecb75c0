package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		valid bool
	}{
		{"linear ok", Linear{Min: -60, Max: 0}, true},
		{"linear inverted", Linear{Min: 10, Max: 10}, false},
		{"log ok", Logarithmic{Min: 10, Max: 30000}, true},
		{"log zero min", Logarithmic{Min: 0, Max: 30000}, false},
		{"log negative min", Logarithmic{Min: -1, Max: 1}, false},
		{"log inverted", Logarithmic{Min: 100, Max: 10}, false},
		{"stepped ok", Stepped{Steps: []Step{{0, "bell"}, {0.5, "shelf"}, {1, "notch"}}}, true},
		{"stepped empty", Stepped{}, false},
		{"stepped duplicate position", Stepped{Steps: []Step{{0.5, "a"}, {0.5, "b"}}}, false},
		{"stepped descending", Stepped{Steps: []Step{{0.7, "a"}, {0.2, "b"}}}, false},
		{"stepped out of range", Stepped{Steps: []Step{{-0.1, "a"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.curve.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidCurve)
			}
		})
	}
}

func TestToPhysicalLinear(t *testing.T) {
	c := Linear{Min: -60, Max: 0}

	tests := []struct {
		normalized float64
		want       float64
	}{
		{0, -60},
		{0.5, -30},
		{1, 0},
		{-0.5, -60}, // clamped
		{1.5, 0},    // clamped
	}

	for _, tt := range tests {
		got, ok := ToPhysical(c, tt.normalized).Numeric()
		require.True(t, ok)
		assert.InDelta(t, tt.want, got, 1e-9, "normalized %v", tt.normalized)
	}
}

func TestToPhysicalLogarithmic(t *testing.T) {
	c := Logarithmic{Min: 10, Max: 30000}

	// Pro-Q 3 style band frequency at center position.
	got, ok := ToPhysical(c, 0.5).Numeric()
	require.True(t, ok)
	assert.InDelta(t, 547.7, got, 0.1)

	lo, _ := ToPhysical(c, 0).Numeric()
	hi, _ := ToPhysical(c, 1).Numeric()
	assert.InDelta(t, 10, lo, 1e-9)
	assert.InDelta(t, 30000, hi, 1e-6)
}

func TestToPhysicalStepped(t *testing.T) {
	c := Stepped{Steps: []Step{{0, "low shelf"}, {0.5, "bell"}, {1, "high shelf"}}}

	tests := []struct {
		normalized float64
		want       string
	}{
		{0, "low shelf"},
		{0.2, "low shelf"},
		{0.25, "low shelf"}, // tie resolves to lower index
		{0.3, "bell"},
		{0.5, "bell"},
		{0.9, "high shelf"},
		{1, "high shelf"},
	}

	for _, tt := range tests {
		got := ToPhysical(c, tt.normalized)
		assert.True(t, got.IsSymbol())
		assert.Equal(t, tt.want, got.String(), "normalized %v", tt.normalized)
	}
}

func TestRoundTrip(t *testing.T) {
	curves := []Curve{
		Linear{Min: -60, Max: 0},
		Linear{Min: 0, Max: 100},
		Linear{Min: -1, Max: 1},
		Logarithmic{Min: 10, Max: 30000},
		Logarithmic{Min: 0.1, Max: 500},
		Logarithmic{Min: 1, Max: 100},
	}

	for _, c := range curves {
		for n := 0.0; n <= 1.0; n += 0.01 {
			phys := ToPhysical(c, n)
			back, exact, err := ToNormalized(c, phys)
			require.NoError(t, err)
			require.True(t, exact)
			assert.InDelta(t, n, back, 1e-9, "curve %v normalized %v", c, n)
		}
	}
}

func TestToNormalizedClamps(t *testing.T) {
	lin := Linear{Min: 0, Max: 100}
	log := Logarithmic{Min: 10, Max: 30000}

	n, _, err := ToNormalized(lin, Number(250))
	require.NoError(t, err)
	assert.Equal(t, 1.0, n)

	n, _, err = ToNormalized(lin, Number(-10))
	require.NoError(t, err)
	assert.Equal(t, 0.0, n)

	n, _, err = ToNormalized(log, Number(5))
	require.NoError(t, err)
	assert.Equal(t, 0.0, n)

	// Non-positive values have no logarithmic position; pin to the floor.
	n, _, err = ToNormalized(log, Number(-20))
	require.NoError(t, err)
	assert.Equal(t, 0.0, n)
}

func TestSteppedReverseLookup(t *testing.T) {
	c := Stepped{Steps: []Step{{0.4, "3000"}, {0.6, "5000"}}}

	t.Run("exact match", func(t *testing.T) {
		n, exact, err := ToNormalized(c, Symbol("5000"))
		require.NoError(t, err)
		assert.True(t, exact)
		assert.Equal(t, 0.6, n)
	})

	t.Run("numeric snap is deterministic", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			n, exact, err := ToNormalized(c, Number(3800))
			require.NoError(t, err)
			assert.False(t, exact)
			assert.Equal(t, 0.4, n) // 3800 is closer to 3000 than to 5000
		}
	})

	t.Run("symbol with numeric prefix snaps", func(t *testing.T) {
		n, exact, err := ToNormalized(c, Symbol("4.9 kHz"))
		require.NoError(t, err)
		assert.False(t, exact)
		assert.Equal(t, 0.4, n) // prefix parses as 4.9, nowhere near 5000
	})

	t.Run("unmatchable symbol fails", func(t *testing.T) {
		shapes := Stepped{Steps: []Step{{0, "bell"}, {1, "notch"}}}
		_, _, err := ToNormalized(shapes, Symbol("shelf"))
		assert.ErrorIs(t, err, ErrNoStepMatch)
	})
}

func TestValueNumeric(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"3000", 3000, true},
		{"3000 Hz", 3000, true},
		{"-12.5 dB", -12.5, true},
		{"Band 3", 3, true},
		{"bell", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Symbol(tt.in).Numeric()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
