// Package occlusion computes the horizon-occlusion point: a single ECEF
// point whose visibility implies visibility of every point in the mesh,
// used by renderers for horizon culling.
//
// https://cesiumjs.org/2013/05/09/Computing-the-horizon-occlusion-point/
package occlusion

import (
	"math"

	"github.com/tilecoder/qmtile/ellipsoid"
)

// Point computes the horizon occlusion point in ECEF for points given the
// bounding-sphere center (also ECEF) and ellipsoid e.
//
// points is never mutated: all scaling is performed on a local copy.
func Point(points [][3]float64, center [3]float64, e ellipsoid.Ellipsoid) [3]float64 {
	scale := [3]float64{e.A, e.A, e.B}

	scaled := make([][3]float64, len(points))
	for i, p := range points {
		scaled[i] = [3]float64{p[0] / scale[0], p[1] / scale[1], p[2] / scale[2]}
	}

	scaledCenter := [3]float64{center[0] / scale[0], center[1] / scale[1], center[2] / scale[2]}
	centerNorm := math.Sqrt(scaledCenter[0]*scaledCenter[0] + scaledCenter[1]*scaledCenter[1] + scaledCenter[2]*scaledCenter[2])
	direction := [3]float64{scaledCenter[0] / centerNorm, scaledCenter[1] / centerNorm, scaledCenter[2] / centerNorm}

	var maxMagnitude float64
	for _, p := range scaled {
		m := magnitude(p, direction)
		if m > maxMagnitude {
			maxMagnitude = m
		}
	}

	result := [3]float64{
		direction[0] * maxMagnitude * scale[0],
		direction[1] * maxMagnitude * scale[1],
		direction[2] * maxMagnitude * scale[2],
	}

	return result
}

// magnitude computes the per-point horizon-occlusion magnitude for p given
// the unit direction d, both in ellipsoid-normalized space.
func magnitude(p, d [3]float64) float64 {
	magnitudeSquared := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
	mag := math.Sqrt(magnitudeSquared)

	u := [3]float64{p[0] / mag, p[1] / mag, p[2] / mag}

	if magnitudeSquared < 1 {
		magnitudeSquared = 1
	}
	if mag < 1 {
		mag = 1
	}

	cosAlpha := u[0]*d[0] + u[1]*d[1] + u[2]*d[2]
	crossX := u[1]*d[2] - u[2]*d[1]
	crossY := u[2]*d[0] - u[0]*d[2]
	crossZ := u[0]*d[1] - u[1]*d[0]
	sinAlpha := math.Sqrt(crossX*crossX + crossY*crossY + crossZ*crossZ)

	cosBeta := 1 / mag
	sinBeta := math.Sqrt(magnitudeSquared-1) * cosBeta

	return 1 / (cosAlpha*cosBeta - sinAlpha*sinBeta)
}
