package colorconv

import (
	"math"

	"github.com/kovidgoyal/colors/types"
)

// ToLinear removes the sRGB transfer function from a single channel.
func ToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ToGamma applies the sRGB transfer function to a single linear channel.
// Negative input is treated as zero.
func ToGamma(l float64) float64 {
	if l < 0 {
		l = 0
	}
	if l <= 0.0031308 {
		return 12.92 * l
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

func RGBToLRGB(in, out *types.Buffer) {
	out[0], out[1], out[2] = ToLinear(in[0]), ToLinear(in[1]), ToLinear(in[2])
}

func LRGBToRGB(in, out *types.Buffer) {
	out[0], out[1], out[2] = ToGamma(in[0]), ToGamma(in[1]), ToGamma(in[2])
}
