package colors

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// IsEqual reports whether a and b are the same color to within tolerance
// per channel, comparing in the space of a. Alpha is ignored.
func IsEqual(a, b Color, tolerance float64) bool {
	bv := operand(&b, a.Space)
	for i := range 3 {
		if !(math.Abs(a.Values[i]-bv[i]) <= tolerance) {
			return false
		}
	}
	return true
}

// Distance returns the Euclidean distance between a and b in Oklab.
func Distance(a, b Color) float64 {
	av, bv := operand(&a, types.OKLAB), operand(&b, types.OKLAB)
	dl, da, db := av[0]-bv[0], av[1]-bv[1], av[2]-bv[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE2000 returns the CIEDE2000 color difference between a and b, on the
// usual scale where 1 is a just noticeable difference. Both colors are
// taken through sRGB without clipping.
func DeltaE2000(a, b Color) float64 {
	// go-colorful works with L in [0, 1]
	return a.Colorful().DistanceCIEDE2000(b.Colorful()) * 100
}
