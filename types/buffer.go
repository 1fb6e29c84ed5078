package types

import (
	"fmt"
)

// Buffer holds the three channels of a color. Their meaning depends on the
// Space the buffer belongs to.
type Buffer [3]float64

// Matrix is a row major 3x3 coefficient table.
type Matrix [3][3]float64

func BufferFromSlice(v []float64) (ans Buffer, err error) {
	if len(v) != 3 {
		return ans, fmt.Errorf("%w: got %d", ErrInvalidBufferLength, len(v))
	}
	copy(ans[:], v)
	return
}

func (b Buffer) String() string {
	return fmt.Sprintf("[%g %g %g]", b[0], b[1], b[2])
}
