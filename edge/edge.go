// Package edge classifies quantized vertices by which of the four tile
// edges they lie on, for the west/south/east/north vertex index lists the
// Quantized Mesh format stores alongside the triangle indices.
package edge

import "github.com/tilecoder/qmtile/format"

// Sets holds the four edge vertex-index lists, each in ascending vertex-index
// order. A corner vertex appears in both edges it qualifies for.
type Sets struct {
	West, South, East, North []uint32
}

// Classify scans quantized u, v channels once and returns the four edge
// vertex-index lists. A vertex is on the west edge iff u == 0, east iff
// u == format.QuantizedRange, south iff v == 0, north iff v == format.QuantizedRange.
func Classify(u, v []int16) Sets {
	var s Sets

	for i := 0; i < len(u); i++ {
		idx := uint32(i) //nolint:gosec
		if u[i] == 0 {
			s.West = append(s.West, idx)
		}
		if u[i] == format.QuantizedRange {
			s.East = append(s.East, idx)
		}
		if v[i] == 0 {
			s.South = append(s.South, idx)
		}
		if v[i] == format.QuantizedRange {
			s.North = append(s.North, idx)
		}
	}

	return s
}
