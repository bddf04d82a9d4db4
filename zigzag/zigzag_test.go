package zigzag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	cases := map[int16]uint16{
		-1: 1,
		-2: 3,
		0:  0,
		1:  2,
		2:  4,
	}
	for in, want := range cases {
		require.Equal(t, want, Encode(in), "input %d", in)
	}
}

func TestRoundTrip(t *testing.T) {
	for i := -1000; i <= 1000; i++ {
		v := int16(i)
		require.Equal(t, v, Decode(Encode(v)))
	}
}
