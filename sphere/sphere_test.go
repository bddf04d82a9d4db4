package sphere

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilecoder/qmtile/format"
)

func cubeCorners() [][3]float64 {
	var pts [][3]float64
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				pts = append(pts, [3]float64{x, y, z})
			}
		}
	}

	return pts
}

func TestCompute_UnitCube(t *testing.T) {
	pts := cubeCorners()

	for _, method := range []format.SphereMethod{
		format.SphereMethodBoundingBox,
		format.SphereMethodNaive,
		format.SphereMethodRitter,
		format.SphereMethodAuto,
	} {
		center, radius := Compute(pts, method)
		require.InDelta(t, 0.0, center[0], 1e-9, method)
		require.InDelta(t, 0.0, center[1], 1e-9, method)
		require.InDelta(t, 0.0, center[2], 1e-9, method)
		require.InDelta(t, math.Sqrt(3), radius, 1e-9, method)
	}
}

// Property 3: containment for every point and every method.
func TestCompute_Containment(t *testing.T) {
	pts := [][3]float64{
		{1, 2, 3}, {4, -1, 2}, {-3, 5, 1}, {0, 0, 0}, {10, 10, 10}, {-5, -5, -5},
	}

	for _, method := range []format.SphereMethod{
		format.SphereMethodBoundingBox,
		format.SphereMethodNaive,
		format.SphereMethodRitter,
		format.SphereMethodAuto,
	} {
		center, radius := Compute(pts, method)
		for _, p := range pts {
			d := norm(sub(p, center))
			require.LessOrEqual(t, d, radius*(1+1e-6), "method=%v point=%v", method, p)
		}
	}
}

func TestCompute_AutoPicksSmallerNaive(t *testing.T) {
	// On the cube corners naive's radius (sqrt 3) is smaller than ritter's,
	// so auto must return naive's center/radius values bit-for-bit.
	pts := cubeCorners()
	naiveCenter, naiveRadius := Compute(pts, format.SphereMethodNaive)
	autoCenter, autoRadius := Compute(pts, format.SphereMethodAuto)
	require.Equal(t, naiveCenter, autoCenter)
	require.Equal(t, naiveRadius, autoRadius)
}
