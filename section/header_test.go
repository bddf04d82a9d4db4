package section

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeader_Bytes_Size(t *testing.T) {
	h := Header{}
	require.Len(t, h.Bytes(), Size)
	require.Equal(t, 88, Size)
}

func TestHeader_Bytes_FieldOrder(t *testing.T) {
	h := Header{
		CenterX: 1, CenterY: 2, CenterZ: 3,
		MinimumHeight: 4, MaximumHeight: 5,
		BSCenterX: 6, BSCenterY: 7, BSCenterZ: 8, BSRadius: 9,
		HopX: 10, HopY: 11, HopZ: 12,
	}
	b := h.Bytes()

	require.InDelta(t, 1.0, math.Float64frombits(binary.LittleEndian.Uint64(b[0:8])), 0)
	require.InDelta(t, 2.0, math.Float64frombits(binary.LittleEndian.Uint64(b[8:16])), 0)
	require.InDelta(t, 3.0, math.Float64frombits(binary.LittleEndian.Uint64(b[16:24])), 0)
	require.InDelta(t, float64(float32(4)), float64(math.Float32frombits(binary.LittleEndian.Uint32(b[24:28]))), 0)
	require.InDelta(t, float64(float32(5)), float64(math.Float32frombits(binary.LittleEndian.Uint32(b[28:32]))), 0)
	require.InDelta(t, 6.0, math.Float64frombits(binary.LittleEndian.Uint64(b[32:40])), 0)
	require.InDelta(t, 9.0, math.Float64frombits(binary.LittleEndian.Uint64(b[56:64])), 0)
	require.InDelta(t, 12.0, math.Float64frombits(binary.LittleEndian.Uint64(b[80:88])), 0)
}
