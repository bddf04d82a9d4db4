// Package sphere computes a bounding sphere (center, radius) over a set of
// ECEF points using one of four strategies: an axis-aligned bounding box,
// a naive sphere, Ritter's two-pass approximate minimum bounding sphere, or
// an automatic choice between the latter two.
package sphere

import (
	"math"

	"github.com/tilecoder/qmtile/format"
)

// Compute returns (center, radius) for points using method. An empty points
// slice returns a zero-valued sphere.
func Compute(points [][3]float64, method format.SphereMethod) ([3]float64, float64) {
	if len(points) == 0 {
		return [3]float64{}, 0
	}

	switch method {
	case format.SphereMethodBoundingBox:
		return boundingBox(points)
	case format.SphereMethodNaive:
		return naive(points)
	case format.SphereMethodRitter:
		return ritter(points)
	default:
		return auto(points)
	}
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func add(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scale(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}

func norm(a [3]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

func aabb(points [][3]float64) (min, max [3]float64) {
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}

	return min, max
}

func boundingBox(points [][3]float64) ([3]float64, float64) {
	min, max := aabb(points)
	center := scale(add(min, max), 0.5)
	radius := norm(sub(max, center))

	return center, radius
}

func naive(points [][3]float64) ([3]float64, float64) {
	min, max := aabb(points)
	center := scale(add(min, max), 0.5)

	var radius float64
	for _, p := range points {
		d := norm(sub(p, center))
		if d > radius {
			radius = d
		}
	}

	return center, radius
}

// ritter implements Ritter's algorithm: find the six points with extremal
// x/y/z, pick the pair with the largest separation for the initial sphere,
// then grow the sphere to contain every remaining point.
func ritter(points [][3]float64) ([3]float64, float64) {
	minIdx := [3]int{0, 0, 0}
	maxIdx := [3]int{0, 0, 0}

	for i, p := range points {
		for k := 0; k < 3; k++ {
			if p[k] < points[minIdx[k]][k] {
				minIdx[k] = i
			}
			if p[k] > points[maxIdx[k]][k] {
				maxIdx[k] = i
			}
		}
	}

	bestDist := -1.0
	var minPt, maxPt [3]float64
	for k := 0; k < 3; k++ {
		a := points[minIdx[k]]
		b := points[maxIdx[k]]
		d := norm(sub(b, a))
		if d > bestDist {
			bestDist = d
			minPt, maxPt = a, b
		}
	}

	center := scale(add(minPt, maxPt), 0.5)
	radius := bestDist / 2

	for _, p := range points {
		d := norm(sub(p, center))
		if d > radius {
			newRadius := (radius + d) / 2
			center = add(center, scale(sub(p, center), (d-newRadius)/d))
			radius = newRadius
		}
	}

	return center, radius
}

// auto runs naive and ritter and returns the sphere with the smaller radius,
// preferring naive on a tie.
func auto(points [][3]float64) ([3]float64, float64) {
	naiveCenter, naiveRadius := naive(points)
	ritterCenter, ritterRadius := ritter(points)

	if ritterRadius < naiveRadius {
		return ritterCenter, ritterRadius
	}

	return naiveCenter, naiveRadius
}
