package normals

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilecoder/qmtile/ellipsoid"
	"github.com/tilecoder/qmtile/geodetic"
)

// octDecode is the test-local inverse of OctEncode, used only to check that
// encoding round-trips within tolerance (decoding is out of scope for the
// production API).
func octDecode(b [2]byte) [3]float64 {
	p := float64(b[0])/255*2 - 1
	q := float64(b[1])/255*2 - 1

	z := 1 - math.Abs(p) - math.Abs(q)
	x, y := p, q
	if z < 0 {
		x = (1 - math.Abs(q)) * sign1(p)
		y = (1 - math.Abs(p)) * sign1(q)
	}

	l := math.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return [3]float64{0, 0, 0}
	}

	return [3]float64{x / l, y / l, z / l}
}

func TestCompute_SingleTriangle(t *testing.T) {
	positions := [][3]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	indices := []uint32{0, 1, 2}

	got := Compute(positions, indices)
	require.Len(t, got, 3)

	for _, n := range got {
		require.InDelta(t, 0.0, n[0], 1e-9)
		require.InDelta(t, 0.0, n[1], 1e-9)
		require.InDelta(t, 1.0, math.Abs(n[2]), 1e-9)
	}
}

func TestCompute_OctEncodeRoundTrip(t *testing.T) {
	positions := []float64{
		0, 0, 0,
		1, 1, 1,
		0, 1, 4,
		2, 3, 4,
		8, 9, 10,
		12, 13, 14,
	}
	cartesian := geodetic.ToECEF(positions, ellipsoid.WGS84)
	indices := []uint32{0, 1, 2, 1, 2, 3, 2, 3, 4, 3, 4, 5}

	want := Compute(cartesian, indices)

	encoded := make([][2]byte, len(want))
	for i, n := range want {
		encoded[i] = OctEncode(n)
	}

	for i, n := range want {
		// Zero-length normals (unreachable vertices) don't survive oct
		// round-trip meaningfully; every vertex here is touched.
		decoded := octDecode(encoded[i])
		require.InDelta(t, n[0], decoded[0], 0.01)
		require.InDelta(t, n[1], decoded[1], 0.01)
		require.InDelta(t, n[2], decoded[2], 0.01)
	}
}

func TestOctEncode_AxisAligned(t *testing.T) {
	cases := [][3]float64{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	}
	for _, n := range cases {
		enc := OctEncode(n)
		dec := octDecode(enc)
		require.InDelta(t, n[0], dec[0], 0.02)
		require.InDelta(t, n[1], dec[1], 0.02)
		require.InDelta(t, n[2], dec[2], 0.02)
	}
}
