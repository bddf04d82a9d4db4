package encoder

import (
	"fmt"
	"unicode/utf8"

	"github.com/tilecoder/qmtile/ellipsoid"
	"github.com/tilecoder/qmtile/errs"
	"github.com/tilecoder/qmtile/format"
	"github.com/tilecoder/qmtile/normals"
)

// Extension produces one optional Quantized Mesh extension block. Encode
// receives an ExtensionContext so extensions can reuse intermediates the
// core pipeline has already computed (notably the projected ECEF
// positions) instead of re-deriving them.
type Extension interface {
	ID() uint8
	Encode(ctx *ExtensionContext) ([]byte, error)
}

// ExtensionContext carries the encoder's already-computed intermediates to
// extensions, so an Extension never needs to re-project or re-derive them.
type ExtensionContext struct {
	Positions          []float64
	CartesianPositions [][3]float64
	Indices            []uint32
	Ellipsoid          ellipsoid.Ellipsoid
	VertexCount        int
}

// VertexNormalsExtension computes area-weighted per-vertex normals from the
// mesh's ECEF positions and triangle indices, then oct-encodes them to two
// bytes each (extension id 1).
type VertexNormalsExtension struct{}

// ID implements Extension.
func (VertexNormalsExtension) ID() uint8 { return uint8(format.ExtensionVertexNormals) }

// Encode implements Extension.
func (VertexNormalsExtension) Encode(ctx *ExtensionContext) ([]byte, error) {
	n := normals.Compute(ctx.CartesianPositions, ctx.Indices)
	if len(n) != ctx.VertexCount {
		return nil, fmt.Errorf("vertex normals: got %d normals for %d vertices: %w", len(n), ctx.VertexCount, errs.ErrInvalidExtension)
	}

	payload := make([]byte, 2*ctx.VertexCount)
	for i, v := range n {
		enc := normals.OctEncode(v)
		payload[2*i] = enc[0]
		payload[2*i+1] = enc[1]
	}

	return payload, nil
}

// WaterMaskExtension wraps a precomputed water-mask payload (extension id
// 2). The payload must be either a 1-byte uniform mask or a 256x256 raster;
// WaterMaskExtension only validates and frames it, per the format's
// Non-goal of raster generation.
type WaterMaskExtension struct {
	Payload []byte
}

// ID implements Extension.
func (WaterMaskExtension) ID() uint8 { return uint8(format.ExtensionWaterMask) }

// Encode implements Extension.
func (e WaterMaskExtension) Encode(*ExtensionContext) ([]byte, error) {
	if len(e.Payload) != 1 && len(e.Payload) != 256*256 {
		return nil, fmt.Errorf("water mask: payload length %d, want 1 or 65536: %w", len(e.Payload), errs.ErrInvalidExtension)
	}

	return e.Payload, nil
}

// MetadataExtension wraps a precomputed minified JSON payload (extension id
// 4). MetadataExtension only validates the bytes are valid UTF-8 and frames
// them, per the format's Non-goal of metadata schema enforcement.
type MetadataExtension struct {
	Payload []byte
}

// ID implements Extension.
func (MetadataExtension) ID() uint8 { return uint8(format.ExtensionMetadata) }

// Encode implements Extension.
func (e MetadataExtension) Encode(*ExtensionContext) ([]byte, error) {
	if !utf8.Valid(e.Payload) {
		return nil, fmt.Errorf("metadata: payload is not valid UTF-8: %w", errs.ErrInvalidExtension)
	}

	return e.Payload, nil
}
