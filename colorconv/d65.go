package colorconv

import (
	"math"

	"github.com/kovidgoyal/colors/types"
)

// Linear sRGB to CIE XYZ (D65)
var srgbToXYZ = types.Matrix{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// The inverse is derived from srgbToXYZ rather than taken from a published
// table so that the two agree to machine precision, see TestMatrixInverses.
var xyzToSRGB = mustInvert(&srgbToXYZ)

// CIE XYZ (D65) to the LMS like cone space used by Oklab
var xyzToLMS = types.Matrix{
	{0.8189330101, 0.3618667424, -0.1288597137},
	{0.0329845436, 0.9293118715, 0.0361456387},
	{0.0482003018, 0.2643662691, 0.6338517070},
}

var lmsToXYZ = mustInvert(&xyzToLMS)

// Cube rooted LMS to Oklab
var lmsToLab = types.Matrix{
	{0.2104542553, 0.7936177850, -0.0040720468},
	{1.9779984951, -2.4285922050, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.8086757660},
}

var labToLMS = mustInvert(&lmsToLab)

func LRGBToXYZ65(in, out *types.Buffer) { Multiply(&srgbToXYZ, in, out) }
func XYZ65ToLRGB(in, out *types.Buffer) { Multiply(&xyzToSRGB, in, out) }

func XYZ65ToOklab(in, out *types.Buffer) {
	var lms types.Buffer
	Multiply(&xyzToLMS, in, &lms)
	lms[0], lms[1], lms[2] = math.Cbrt(lms[0]), math.Cbrt(lms[1]), math.Cbrt(lms[2])
	Multiply(&lmsToLab, &lms, out)
}

func OklabToXYZ65(in, out *types.Buffer) {
	var lms types.Buffer
	Multiply(&labToLMS, in, &lms)
	lms[0], lms[1], lms[2] = lms[0]*lms[0]*lms[0], lms[1]*lms[1]*lms[1], lms[2]*lms[2]*lms[2]
	Multiply(&lmsToXYZ, &lms, out)
}
