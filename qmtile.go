// Package qmtile encodes 3D triangle terrain meshes into the Quantized Mesh
// binary tile format consumed by virtual-globe renderers: a fixed header,
// quantized per-vertex data, high-water-mark compressed triangle indices,
// tile-edge vertex lists, and optional extension blocks.
//
// # Basic usage
//
//	mesh := qmtile.Mesh{
//	    Positions: []float64{ /* lon, lat, height triples */ },
//	    Indices:   []uint32{ /* triangle vertex indices */ },
//	}
//
//	var buf bytes.Buffer
//	if err := qmtile.Encode(&buf, mesh); err != nil {
//	    // handle error
//	}
//
// Attaching the vertex-normals extension:
//
//	err := qmtile.Encode(&buf, mesh, qmtile.WithExtension(qmtile.VertexNormalsExtension{}))
//
// # Package structure
//
// This package re-exports the encoder package's public surface for the
// common case. For extension authoring or direct access to the individual
// projection/quantization/compression stages, use the ellipsoid, geodetic,
// sphere, occlusion, quantize, zigzag, hwm, edge, normals, section, and
// encoder packages directly.
package qmtile

import (
	"io"

	"github.com/tilecoder/qmtile/ellipsoid"
	"github.com/tilecoder/qmtile/encoder"
	"github.com/tilecoder/qmtile/format"
)

// Ellipsoid describes the biaxial reference ellipsoid used to project
// geodetic positions into ECEF. WGS84 is the package default.
type Ellipsoid = ellipsoid.Ellipsoid

// WGS84 is the default reference ellipsoid.
var WGS84 = ellipsoid.WGS84

// SphereMethod selects the bounding-sphere construction strategy.
type SphereMethod = format.SphereMethod

// Bounding-sphere method constants, mirroring format.SphereMethod.
const (
	SphereMethodAuto        = format.SphereMethodAuto
	SphereMethodBoundingBox = format.SphereMethodBoundingBox
	SphereMethodNaive       = format.SphereMethodNaive
	SphereMethodRitter      = format.SphereMethodRitter
)

// Mesh is the input to Encode: geodetic (lon, lat, height) position triples
// and triangle vertex indices, both flat arrays.
type Mesh = encoder.Mesh

// Option configures an Encode call.
type Option = encoder.Option

// Extension produces one optional Quantized Mesh extension block.
type Extension = encoder.Extension

// ExtensionContext carries the encoder's already-computed intermediates to
// extensions.
type ExtensionContext = encoder.ExtensionContext

// VertexNormalsExtension attaches per-vertex oct-encoded area-weighted
// normals (extension id 1).
type VertexNormalsExtension = encoder.VertexNormalsExtension

// WaterMaskExtension attaches a precomputed water-mask payload (extension
// id 2). See encoder.WaterMaskExtension for payload-shape requirements.
type WaterMaskExtension = encoder.WaterMaskExtension

// MetadataExtension attaches a precomputed UTF-8 JSON payload (extension id
// 4).
type MetadataExtension = encoder.MetadataExtension

// WithBounds fixes the planar quantization extent.
func WithBounds(minLon, minLat, maxLon, maxLat float64) Option {
	return encoder.WithBounds(minLon, minLat, maxLon, maxLat)
}

// WithSphereMethod selects the bounding-sphere construction strategy.
func WithSphereMethod(method SphereMethod) Option {
	return encoder.WithSphereMethod(method)
}

// WithEllipsoid overrides the reference ellipsoid.
func WithEllipsoid(e Ellipsoid) Option {
	return encoder.WithEllipsoid(e)
}

// WithExtension appends an extension block.
func WithExtension(ext Extension) Option {
	return encoder.WithExtension(ext)
}

// WithStrict enables strict numeric validation.
func WithStrict(strict bool) Option {
	return encoder.WithStrict(strict)
}

// Encode writes mesh to w in the Quantized Mesh binary tile format.
func Encode(w io.Writer, mesh Mesh, opts ...Option) error {
	return encoder.Encode(w, mesh, opts...)
}
