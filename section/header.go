// Package section defines the fixed-size Quantized Mesh header: the 88-byte
// block of AABB center, height range, bounding sphere, and horizon-occlusion
// point that always starts the output stream, modeled on the
// offset-documented fixed headers other blob formats use.
package section

import (
	"math"

	"github.com/tilecoder/qmtile/endian"
	"github.com/tilecoder/qmtile/format"
)

// Header is the 88-byte Quantized Mesh header: three ECEF AABB-center
// doubles, a minimum/maximum height float pair, an ECEF bounding-sphere
// center and radius, and an ECEF horizon-occlusion point, all little-endian.
type Header struct {
	CenterX, CenterY, CenterZ       float64 // byte offset 0-23
	MinimumHeight, MaximumHeight    float32 // byte offset 24-31
	BSCenterX, BSCenterY, BSCenterZ float64 // byte offset 32-55
	BSRadius                        float64 // byte offset 56-63
	HopX, HopY, HopZ                float64 // byte offset 64-87
}

// Size is the fixed byte size of Header on the wire.
const Size = format.HeaderSize

// Bytes serializes Header into its 88-byte little-endian wire form.
func (h Header) Bytes() []byte {
	e := endian.GetLittleEndianEngine()
	b := make([]byte, 0, Size)

	b = e.AppendUint64(b, math.Float64bits(h.CenterX))
	b = e.AppendUint64(b, math.Float64bits(h.CenterY))
	b = e.AppendUint64(b, math.Float64bits(h.CenterZ))

	b = e.AppendUint32(b, math.Float32bits(h.MinimumHeight))
	b = e.AppendUint32(b, math.Float32bits(h.MaximumHeight))

	b = e.AppendUint64(b, math.Float64bits(h.BSCenterX))
	b = e.AppendUint64(b, math.Float64bits(h.BSCenterY))
	b = e.AppendUint64(b, math.Float64bits(h.BSCenterZ))
	b = e.AppendUint64(b, math.Float64bits(h.BSRadius))

	b = e.AppendUint64(b, math.Float64bits(h.HopX))
	b = e.AppendUint64(b, math.Float64bits(h.HopY))
	b = e.AppendUint64(b, math.Float64bits(h.HopZ))

	return b
}
