package encoder

import (
	"fmt"
	"io"
	"math"

	"github.com/tilecoder/qmtile/edge"
	"github.com/tilecoder/qmtile/endian"
	"github.com/tilecoder/qmtile/errs"
	"github.com/tilecoder/qmtile/format"
	"github.com/tilecoder/qmtile/geodetic"
	"github.com/tilecoder/qmtile/hwm"
	"github.com/tilecoder/qmtile/internal/options"
	"github.com/tilecoder/qmtile/internal/pool"
	"github.com/tilecoder/qmtile/occlusion"
	"github.com/tilecoder/qmtile/quantize"
	"github.com/tilecoder/qmtile/section"
	"github.com/tilecoder/qmtile/sphere"
	"github.com/tilecoder/qmtile/zigzag"
)

var le = endian.GetLittleEndianEngine()

// Encode writes mesh to w in the Quantized Mesh binary tile format: header,
// quantized vertex data, high-water-mark compressed triangle indices, edge
// vertex-index lists, then any extensions in call order.
//
// Mesh, bounds, ellipsoid and extension-id validation happens before the
// first byte is staged; extension payloads are validated as they are staged.
// Nothing reaches w unless every step succeeds, and once the staged buffer is
// flushed to w there is no rollback on an I/O error.
func Encode(w io.Writer, mesh Mesh, opts ...Option) error {
	o := defaultOptions()
	if err := options.Apply(o, opts...); err != nil {
		return err
	}

	if err := validateMesh(mesh); err != nil {
		return err
	}

	if err := validateBounds(o.bounds); err != nil {
		return err
	}

	if !o.ellipsoid.Valid() {
		return fmt.Errorf("ellipsoid semi-axes must be positive and finite: %w", errs.ErrNumericFailure)
	}

	if err := validateExtensions(o.extensions); err != nil {
		return err
	}

	vertexCount := len(mesh.Positions) / 3

	cartesian := geodetic.ToECEF(mesh.Positions, o.ellipsoid)
	if err := checkFinite(cartesian); err != nil {
		return err
	}

	center, radius := sphere.Compute(cartesian, o.sphereMethod)
	if radius == 0 && o.strict {
		return fmt.Errorf("bounding sphere has zero radius: %w", errs.ErrNumericFailure)
	}

	hop := occlusion.Point(cartesian, center, o.ellipsoid)
	aabbCenter := aabbMidpoint(cartesian)

	quantized := quantize.Quantize(mesh.Positions, o.bounds)
	edges := edge.Classify(quantized.U, quantized.V)

	header := section.Header{
		CenterX: aabbCenter[0], CenterY: aabbCenter[1], CenterZ: aabbCenter[2],
		MinimumHeight: float32(quantized.MinHeight), MaximumHeight: float32(quantized.MaxHeight),
		BSCenterX: center[0], BSCenterY: center[1], BSCenterZ: center[2], BSRadius: radius,
		HopX: hop[0], HopY: hop[1], HopZ: hop[2],
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.MustWrite(header.Bytes())
	writeVertexData(buf, vertexCount, quantized)

	wide := vertexCount > format.MaxIndex16VertexCount
	padTo(buf, indexAlignment(wide))

	if err := writeTriangleIndices(buf, mesh.Indices, wide); err != nil {
		return err
	}
	writeEdgeIndices(buf, edges, wide)

	ctx := &ExtensionContext{
		Positions:          mesh.Positions,
		CartesianPositions: cartesian,
		Indices:            mesh.Indices,
		Ellipsoid:          o.ellipsoid,
		VertexCount:        vertexCount,
	}
	if err := writeExtensions(buf, o.extensions, ctx); err != nil {
		return err
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing tile: %w: %w", errs.ErrIO, err)
	}

	return nil
}

func validateMesh(mesh Mesh) error {
	if len(mesh.Positions) == 0 || len(mesh.Positions)%3 != 0 {
		return fmt.Errorf("positions length must be a non-zero multiple of 3, got %d: %w", len(mesh.Positions), errs.ErrInvalidInput)
	}
	if len(mesh.Indices)%3 != 0 {
		return fmt.Errorf("indices length must be a multiple of 3, got %d: %w", len(mesh.Indices), errs.ErrInvalidInput)
	}

	n := uint32(len(mesh.Positions) / 3) //nolint:gosec
	for _, idx := range mesh.Indices {
		if idx >= n {
			return fmt.Errorf("index %d out of range for %d vertices: %w", idx, n, errs.ErrInvalidInput)
		}
	}

	return nil
}

// validateBounds rejects caller-supplied planar bounds that are degenerate
// on a non-height axis (max <= min); quantize.Quantize only special-cases
// max == min (collapsing the axis to 0), so max < min would otherwise
// silently flip the u/v channels.
func validateBounds(bounds *quantize.Bounds) error {
	if bounds == nil {
		return nil
	}
	if bounds.MaxLon <= bounds.MinLon {
		return fmt.Errorf("bounds: max_lon %v <= min_lon %v: %w", bounds.MaxLon, bounds.MinLon, errs.ErrInvalidInput)
	}
	if bounds.MaxLat <= bounds.MinLat {
		return fmt.Errorf("bounds: max_lat %v <= min_lat %v: %w", bounds.MaxLat, bounds.MinLat, errs.ErrInvalidInput)
	}

	return nil
}

func validateExtensions(exts []Extension) error {
	seen := make(map[uint8]bool, len(exts))
	for _, ext := range exts {
		id := ext.ID()
		if seen[id] {
			return fmt.Errorf("duplicate extension id %d: %w", id, errs.ErrInvalidExtension)
		}
		seen[id] = true
	}

	return nil
}

func checkFinite(points [][3]float64) error {
	for _, p := range points {
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("projection produced a non-finite coordinate: %w", errs.ErrNumericFailure)
			}
		}
	}

	return nil
}

func aabbMidpoint(points [][3]float64) [3]float64 {
	min, max := points[0], points[0]
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

	return [3]float64{(min[0] + max[0]) / 2, (min[1] + max[1]) / 2, (min[2] + max[2]) / 2}
}

// writeVertexData appends the u32 vertex count followed by the three
// zig-zag delta-coded u/v/h channels, each n entries long: the zig-zag of
// the channel's first value, then the zig-zag of each successive delta.
func writeVertexData(buf *pool.ByteBuffer, n int, q quantize.Result) {
	buf.B = le.AppendUint32(buf.B, uint32(n)) //nolint:gosec

	writeChannel(buf, q.U)
	writeChannel(buf, q.V)
	writeChannel(buf, q.H)
}

func writeChannel(buf *pool.ByteBuffer, channel []int16) {
	var prev int16

	for i, v := range channel {
		var delta int16
		if i == 0 {
			delta = v
		} else {
			delta = v - prev
		}
		prev = v

		buf.B = le.AppendUint16(buf.B, zigzag.Encode(delta))
	}
}

// indexAlignment returns the byte alignment the index-data block must start
// on: 4 for 32-bit indices, 2 for 16-bit.
func indexAlignment(wide bool) int {
	if wide {
		return 4
	}

	return 2
}

func padTo(buf *pool.ByteBuffer, alignment int) {
	remainder := buf.Len() % alignment
	if remainder == 0 {
		return
	}

	pad := make([]byte, alignment-remainder)
	buf.MustWrite(pad)
}

func writeTriangleIndices(buf *pool.ByteBuffer, indices []uint32, wide bool) error {
	buf.B = le.AppendUint32(buf.B, uint32(len(indices)/3))

	encoded := hwm.Encode(indices)

	return writeIndexWidth(buf, encoded, wide)
}

func writeEdgeIndices(buf *pool.ByteBuffer, edges edge.Sets, wide bool) {
	writeEdgeList(buf, edges.West, wide)
	writeEdgeList(buf, edges.South, wide)
	writeEdgeList(buf, edges.East, wide)
	writeEdgeList(buf, edges.North, wide)
}

func writeEdgeList(buf *pool.ByteBuffer, indices []uint32, wide bool) {
	buf.B = le.AppendUint32(buf.B, uint32(len(indices)))

	_ = writeIndexWidth(buf, indices, wide)
}

// writeIndexWidth writes values as either 16- or 32-bit little-endian
// unsigned integers. Only returns an error for a value that overflows
// uint16 when wide is false, which cannot happen for indices of a validated
// mesh: validateMesh keeps every index below N, and wide is false only when
// N <= format.MaxIndex16VertexCount.
func writeIndexWidth(buf *pool.ByteBuffer, values []uint32, wide bool) error {
	if wide {
		for _, v := range values {
			buf.B = le.AppendUint32(buf.B, v)
		}

		return nil
	}

	for _, v := range values {
		if v > math.MaxUint16 {
			return fmt.Errorf("index %d exceeds 16-bit width: %w", v, errs.ErrInvalidInput)
		}
		buf.B = le.AppendUint16(buf.B, uint16(v))
	}

	return nil
}

func writeExtensions(buf *pool.ByteBuffer, exts []Extension, ctx *ExtensionContext) error {
	for _, ext := range exts {
		payload, err := ext.Encode(ctx)
		if err != nil {
			return err
		}

		buf.B = append(buf.B, ext.ID())
		buf.B = le.AppendUint32(buf.B, uint32(len(payload))) //nolint:gosec
		buf.B = append(buf.B, payload...)
	}

	return nil
}
