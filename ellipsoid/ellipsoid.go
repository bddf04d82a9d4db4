// Package ellipsoid describes the biaxial reference ellipsoid used to
// project geodetic positions into earth-centered, earth-fixed (ECEF)
// coordinates.
package ellipsoid

import "math"

// Ellipsoid holds a biaxial ellipsoid's semi-major axis a and semi-minor
// axis b, plus its derived first eccentricity squared e2 = 1 - b^2/a^2.
//
// Ellipsoid is immutable after construction and safe to share by value or by
// reference across concurrent callers.
type Ellipsoid struct {
	A  float64
	B  float64
	E2 float64
}

// WGS84 is the default reference ellipsoid.
var WGS84 = New(6378137.0, 6356752.3142451793)

// New constructs an Ellipsoid and derives its eccentricity squared.
func New(a, b float64) Ellipsoid {
	return Ellipsoid{
		A:  a,
		B:  b,
		E2: 1 - (b*b)/(a*a),
	}
}

// Valid reports whether both semi-axes are positive and finite.
func (e Ellipsoid) Valid() bool {
	return e.A > 0 && e.B > 0 && !math.IsNaN(e.A) && !math.IsNaN(e.B) &&
		!math.IsInf(e.A, 0) && !math.IsInf(e.B, 0)
}
