package parammap

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluginradar/paramswap/pkg/curve"
	"github.com/pluginradar/paramswap/pkg/semantic"
)

func testMap() *Map {
	return &Map{
		PluginID:   "fabfilter-pro-q-3",
		PluginName: "Pro-Q 3",
		Category:   semantic.CategoryEQ,
		Parameters: []Definition{
			{
				RawParamID: "Band 1 Frequency",
				Semantic:   "eq_band_1_freq",
				Unit:       semantic.UnitHz,
				Curve:      curve.Logarithmic{Min: 10, Max: 30000},
				Default:    curve.Number(1000),
			},
			{
				RawParamID: "Band 1 Gain",
				Semantic:   "eq_band_1_gain",
				Unit:       semantic.UnitDB,
				Curve:      curve.Linear{Min: -30, Max: 30},
				Default:    curve.Number(0),
			},
			{
				RawParamID: "Band 1 Shape",
				Semantic:   "eq_band_1_type",
				Unit:       semantic.UnitStepped,
				Curve: curve.Stepped{Steps: []curve.Step{
					{Normalized: 0, Physical: "low shelf"},
					{Normalized: 0.5, Physical: "bell"},
					{Normalized: 1, Physical: "high shelf"},
				}},
				Default: curve.Symbol("bell"),
			},
		},
		EQBandCount: 24,
		Confidence:  95,
		Source:      SourceManual,
	}
}

func TestMapValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, testMap().Validate())
	})

	t.Run("duplicate raw id", func(t *testing.T) {
		m := testMap()
		m.Parameters = append(m.Parameters, m.Parameters[0])
		var dup *DuplicateParameterError
		err := m.Validate()
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "Band 1 Frequency", dup.RawParamID)
	})

	t.Run("invalid curve", func(t *testing.T) {
		m := testMap()
		m.Parameters[0].Curve = curve.Logarithmic{Min: 0, Max: 30000}
		assert.ErrorIs(t, m.Validate(), curve.ErrInvalidCurve)
	})

	t.Run("confidence range", func(t *testing.T) {
		m := testMap()
		m.Confidence = 130
		assert.Error(t, m.Validate())
	})

	t.Run("unknown source", func(t *testing.T) {
		m := testMap()
		m.Source = "guessed"
		assert.Error(t, m.Validate())
	})
}

func TestMapLookups(t *testing.T) {
	m := testMap()

	d, ok := m.BySemantic("eq_band_1_gain")
	require.True(t, ok)
	assert.Equal(t, "Band 1 Gain", d.RawParamID)

	_, ok = m.BySemantic("comp_threshold")
	assert.False(t, ok)

	_, ok = m.BySemantic("")
	assert.False(t, ok)

	d, ok = m.ByRawID("Band 1 Shape")
	require.True(t, ok)
	assert.Equal(t, "eq_band_1_type", d.Semantic)

	assert.Equal(t, 3, m.MappedCount())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	t.Run("absent is nil, not error", func(t *testing.T) {
		m, err := s.Get(ctx, "unknown-plugin")
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("upsert and get", func(t *testing.T) {
		require.NoError(t, s.Upsert(testMap()))
		m, err := s.Get(ctx, "fabfilter-pro-q-3")
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "Pro-Q 3", m.PluginName)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("upsert rejects invalid", func(t *testing.T) {
		bad := testMap()
		bad.Parameters = append(bad.Parameters, bad.Parameters[1])
		var dup *DuplicateParameterError
		assert.ErrorAs(t, s.Upsert(bad), &dup)
	})
}

func TestJSONRoundTrip(t *testing.T) {
	m := testMap()

	var buf bytes.Buffer
	require.NoError(t, EncodeMap(&buf, m))

	got, err := DecodeMap(&buf)
	require.NoError(t, err)

	assert.Equal(t, m.PluginID, got.PluginID)
	assert.Equal(t, m.Category, got.Category)
	assert.Equal(t, m.EQBandCount, got.EQBandCount)
	assert.Equal(t, m.Source, got.Source)
	require.Len(t, got.Parameters, len(m.Parameters))

	freq := got.Parameters[0]
	assert.Equal(t, curve.Logarithmic{Min: 10, Max: 30000}, freq.Curve)
	f, ok := freq.Default.Numeric()
	require.True(t, ok)
	assert.Equal(t, 1000.0, f)

	shape := got.Parameters[2]
	assert.Equal(t, curve.KindStepped, shape.Curve.Kind())
	assert.True(t, shape.Default.IsSymbol())
	assert.Equal(t, "bell", shape.Default.String())
}

func TestDecodeMapRejectsInvalid(t *testing.T) {
	t.Run("bad curve kind", func(t *testing.T) {
		doc := `{"pluginId":"x","category":"eq","confidence":50,"source":"manual",
			"parameters":[{"rawParamId":"a","mappingCurve":"exponential","minValue":0,"maxValue":1}]}`
		_, err := DecodeMap(strings.NewReader(doc))
		assert.ErrorContains(t, err, "mappingCurve")
	})

	t.Run("log curve over zero", func(t *testing.T) {
		doc := `{"pluginId":"x","category":"eq","confidence":50,"source":"manual",
			"parameters":[{"rawParamId":"a","semantic":"eq_band_1_freq","physicalUnit":"hz",
			"mappingCurve":"logarithmic","minValue":0,"maxValue":30000,"defaultValue":1000}]}`
		_, err := DecodeMap(strings.NewReader(doc))
		assert.ErrorIs(t, err, curve.ErrInvalidCurve)
	})
}
