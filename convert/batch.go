package convert

import (
	"fmt"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// Below this many colors ConvertSlice does not bother spawning goroutines.
const parallel_threshold = 512

// ConvertSlice converts every color in in from space from to space to,
// writing the results to the same index in out. out may be the same slice
// as in. num_procs is the maximum number of goroutines to use, zero means
// one per CPU.
func ConvertSlice(in, out []types.Buffer, from, to types.Space, num_procs int) (err error) {
	if len(out) < len(in) {
		return fmt.Errorf("output slice of length %d too short for %d colors: %w", len(out), len(in), types.ErrInvalidBufferLength)
	}
	fh, err := NativeHub(from)
	if err != nil {
		return err
	}
	th, err := NativeHub(to)
	if err != nil {
		return err
	}
	var f func(start, limit int)
	switch {
	case from == to:
		copy(out, in)
		return nil
	case DirectPipeline(from, to) != nil:
		p := DirectPipeline(from, to)
		f = func(start, limit int) {
			for i := start; i < limit; i++ {
				p.Transform(&in[i], &out[i])
			}
		}
	default:
		a, b := toHub[from], fromHub[to]
		f = func(start, limit int) {
			for i := start; i < limit; i++ {
				a.Transform(&in[i], &out[i])
				Bridge(&out[i], fh, th)
				b.Transform(&out[i], &out[i])
			}
		}
	}
	if len(in) < parallel_threshold || num_procs == 1 {
		f(0, len(in))
		return nil
	}
	return parallel.Run_in_parallel_over_range(num_procs, f, 0, len(in))
}
