package colorconv

import (
	"math"

	"github.com/kovidgoyal/colors/types"
)

// Standard reference whites (CIE XYZ) normalized so Y = 1.0
var (
	WhiteD50 = types.Buffer{0.96422, 1.00000, 0.82521}
	WhiteD65 = types.Buffer{0.95047, 1.00000, 1.08883}
)

const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

func ff(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func finv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// XYZ50ToLab converts XYZ relative to D50 (Y=1) into CIELAB with L in [0, 100].
func XYZ50ToLab(in, out *types.Buffer) {
	fx := ff(in[0] / WhiteD50[0])
	fy := ff(in[1] / WhiteD50[1])
	fz := ff(in[2] / WhiteD50[2])
	out[0] = 116*fy - 16
	out[1] = 500 * (fx - fy)
	out[2] = 200 * (fy - fz)
}

func LabToXYZ50(in, out *types.Buffer) {
	fy := (in[0] + 16) / 116
	fx := fy + in[1]/500
	fz := fy - in[2]/200
	out[0] = finv(fx) * WhiteD50[0]
	out[1] = finv(fy) * WhiteD50[1]
	out[2] = finv(fz) * WhiteD50[2]
}
