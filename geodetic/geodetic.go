// Package geodetic converts geodetic positions (longitude, latitude,
// ellipsoidal height) into earth-centered, earth-fixed (ECEF) Cartesian
// coordinates on a configurable biaxial ellipsoid.
//
// Ported from the geodetic-to-ECEF formula used by
// quantized-mesh-encoder/quantized-mesh-tile, itself derived from
// gr-air-modes' mlat.py. No geoid correction is applied.
package geodetic

import (
	"math"

	"github.com/tilecoder/qmtile/ellipsoid"
)

// ToECEF converts geodetic positions to ECEF Cartesian coordinates on e.
//
// positions is a flat slice of (longitude degrees, latitude degrees, height
// meters) triples; its length must be a multiple of 3. The returned slice has
// one [3]float64 per input vertex, in the same order. All arithmetic is
// double precision; per-vertex projection has no dependency on neighboring
// vertices.
func ToECEF(positions []float64, e ellipsoid.Ellipsoid) [][3]float64 {
	n := len(positions) / 3
	out := make([][3]float64, n)

	for i := 0; i < n; i++ {
		lon := positions[i*3+0] * math.Pi / 180
		lat := positions[i*3+1] * math.Pi / 180
		alt := positions[i*3+2]

		sinLat := math.Sin(lat)
		nphi := e.A / math.Sqrt(1-e.E2*sinLat*sinLat)

		x := (nphi + alt) * math.Cos(lat) * math.Cos(lon)
		y := (nphi + alt) * math.Cos(lat) * math.Sin(lon)
		z := (nphi*(1-e.E2) + alt) * sinLat

		out[i] = [3]float64{x, y, z}
	}

	return out
}
