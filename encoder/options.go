// Package encoder assembles the Quantized Mesh byte stream: it orchestrates
// projection, bounding metadata, quantization, index compression, edge
// extraction, and extension framing behind a single Encode entry point.
package encoder

import (
	"github.com/tilecoder/qmtile/ellipsoid"
	"github.com/tilecoder/qmtile/format"
	"github.com/tilecoder/qmtile/internal/options"
	"github.com/tilecoder/qmtile/quantize"
)

// Mesh is the caller's input: geodetic (lon, lat, height) position triples
// and triangle vertex indices, both flat arrays.
type Mesh struct {
	Positions []float64
	Indices   []uint32
}

// Options holds the resolved configuration for one Encode call. Zero value
// is not directly usable; construct via the package defaults plus Option
// functions.
type Options struct {
	bounds       *quantize.Bounds
	sphereMethod format.SphereMethod
	ellipsoid    ellipsoid.Ellipsoid
	extensions   []Extension
	strict       bool
}

func defaultOptions() *Options {
	return &Options{
		sphereMethod: format.SphereMethodAuto,
		ellipsoid:    ellipsoid.WGS84,
	}
}

// Option configures an Options value: each Option is a closure applied in
// argument order.
type Option = options.Option[*Options]

// WithBounds fixes the planar (min_lon, min_lat, max_lon, max_lat) extent
// used to quantize the u/v channels. Without this option the extent is
// derived from the mesh's own positions.
func WithBounds(minLon, minLat, maxLon, maxLat float64) Option {
	return options.NoError(func(o *Options) {
		o.bounds = &quantize.Bounds{
			MinLon: minLon,
			MinLat: minLat,
			MaxLon: maxLon,
			MaxLat: maxLat,
		}
	})
}

// WithSphereMethod selects the bounding-sphere construction strategy.
// Default is format.SphereMethodAuto.
func WithSphereMethod(method format.SphereMethod) Option {
	return options.NoError(func(o *Options) {
		o.sphereMethod = method
	})
}

// WithEllipsoid overrides the reference ellipsoid. Default is
// ellipsoid.WGS84.
func WithEllipsoid(e ellipsoid.Ellipsoid) Option {
	return options.NoError(func(o *Options) {
		o.ellipsoid = e
	})
}

// WithExtension appends an extension block to be written after the edge
// index lists, in call order. Extension ids must be unique within one
// Encode call.
func WithExtension(ext Extension) Option {
	return options.NoError(func(o *Options) {
		o.extensions = append(o.extensions, ext)
	})
}

// WithStrict enables strict numeric validation: a degenerate (zero-radius)
// bounding sphere becomes an error instead of being silently emitted.
func WithStrict(strict bool) Option {
	return options.NoError(func(o *Options) {
		o.strict = strict
	})
}
