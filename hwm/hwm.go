// Package hwm implements high-water-mark compression of triangle index
// arrays: each emitted value is the gap between a running maximum and the
// index it replaces, which tends toward small numbers for well-ordered
// meshes (each new vertex index usually immediately follows the last one
// seen).
package hwm

// Encode compresses indices into high-water-mark deltas. State: highest,
// initially 0. For each index i in order: emit highest - i; if i == highest,
// highest += 1. Output length always equals len(indices).
func Encode(indices []uint32) []uint32 {
	out := make([]uint32, len(indices))

	var highest uint32
	for i, idx := range indices {
		out[i] = highest - idx
		if idx == highest {
			highest++
		}
	}

	return out
}

// Decode reverses Encode: it is not used by the production encoder (decoding
// is out of scope for the wire format) but exists for round-trip tests.
func Decode(deltas []uint32) []uint32 {
	out := make([]uint32, len(deltas))

	var highest uint32
	for i, d := range deltas {
		idx := highest - d
		out[i] = idx
		if d == 0 {
			highest++
		}
	}

	return out
}
