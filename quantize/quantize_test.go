package quantize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mixedPositions is a geodetic input spanning non-trivial lon/lat/height
// ranges, used to check quantization and delta coding together with the
// edge classifier and encoder tests.
var mixedPositions = []float64{
	0, 0, 0,
	1, 1, 1,
	0, 1, 4,
	2, 3, 4,
	8, 9, 10,
	12, 13, 14,
}

func TestQuantize_MixedLonLatHeight(t *testing.T) {
	r := Quantize(mixedPositions, nil)

	require.Equal(t, []int16{0, 2730, 0, 5461, 21844, 32767}, r.U)
	require.Equal(t, []int16{0, 2520, 2520, 7561, 22684, 32767}, r.V)
	require.Equal(t, []int16{0, 2340, 9362, 9362, 23405, 32767}, r.H)
	require.Equal(t, 0.0, r.MinHeight)
	require.Equal(t, 14.0, r.MaxHeight)
}

func TestQuantize_CollapsedAxis(t *testing.T) {
	positions := []float64{5, 5, 0, 5, 5, 10}
	r := Quantize(positions, nil)
	require.Equal(t, []int16{0, 0}, r.U)
	require.Equal(t, []int16{0, 0}, r.V)
}

func TestQuantize_ExplicitBounds(t *testing.T) {
	positions := []float64{0, 0, 0, 10, 10, 10}
	r := Quantize(positions, &Bounds{MinLon: 0, MinLat: 0, MaxLon: 20, MaxLat: 20})
	require.Equal(t, int16(0), r.U[0])
	// 10/20*32767 = 16383.5 -> truncated to 16383
	require.Equal(t, int16(16383), r.U[1])
}

func TestQuantize_SpanFullRange(t *testing.T) {
	positions := []float64{-10, -5, 0, 10, 5, 100}
	r := Quantize(positions, nil)
	require.Equal(t, int16(0), r.U[0])
	require.Equal(t, int16(32767), r.U[1])
	require.Equal(t, int16(0), r.V[0])
	require.Equal(t, int16(32767), r.V[1])
}
