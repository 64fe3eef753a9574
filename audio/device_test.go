package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatBufferTo16BitLE(t *testing.T) {
	t.Parallel()

	out := floatBufferTo16BitLE([]float32{0, 1, -1, 2}, nil)
	require.Len(t, out, 8)

	values := make([]int16, 4)
	for i := range values {
		values[i] = int16(binary.LittleEndian.Uint16(out[i*2:]))
	}
	require.Equal(t, []int16{0, math.MaxInt16, -math.MaxInt16, math.MaxInt16}, values)

	// the destination buffer is reused
	reused := floatBufferTo16BitLE([]float32{0}, out[:0])
	require.Len(t, reused, 2)
	require.Equal(t, &out[0], &reused[0])
}
