package colors

import (
	"fmt"

	"github.com/kovidgoyal/colors/colorconv"
	"github.com/kovidgoyal/colors/convert"
	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// Bounds holds the [min, max] range of each channel of a space. A channel
// whose max is 360 is a hue: it is wrapped, never clipped or rejected.
type Bounds [3][2]float64

const hue_max = 360

// SpaceBounds returns the channel ranges of s. It panics if s is not a
// supported space.
func SpaceBounds(s types.Space) Bounds {
	switch s {
	case types.RGB:
		return Bounds{{0, 1}, {0, 1}, {0, 1}}
	case types.HSV, types.HSL, types.HWB:
		return Bounds{{0, hue_max}, {0, 1}, {0, 1}}
	case types.LAB:
		return Bounds{{0, 100}, {-128, 128}, {-128, 128}}
	case types.LCH:
		return Bounds{{0, 100}, {0, 150}, {0, hue_max}}
	case types.OKLAB:
		return Bounds{{0, 1}, {-0.4, 0.4}, {-0.4, 0.4}}
	case types.OKLCH:
		return Bounds{{0, 1}, {0, 0.4}, {0, hue_max}}
	}
	panic(&types.UnsupportedSpaceError{Space: s})
}

// ClampBuffer clamps v in place to the bounds of space s.
func ClampBuffer(v *types.Buffer, s types.Space) {
	b := SpaceBounds(s)
	for i, r := range b {
		if r[1] == hue_max {
			v[i] = colorconv.WrapHue(v[i])
		} else {
			v[i] = max(r[0], min(v[i], r[1]))
		}
	}
}

// Clamp returns a copy of c with hue channels wrapped into [0, 360) and all
// other channels clipped to the bounds of its space.
func Clamp(c Color) Color {
	ClampBuffer(&c.Values, c.Space)
	return c
}

// CheckGamut reports whether every non hue channel of c lies within the
// bounds of its space widened by tolerance. NaN is never in gamut.
func CheckGamut(c Color, tolerance float64) bool {
	for i, r := range SpaceBounds(c.Space) {
		if r[1] == hue_max {
			continue
		}
		if v := c.Values[i]; !(v >= r[0]-tolerance && v <= r[1]+tolerance) {
			return false
		}
	}
	return true
}

func linear_in_gamut(v *types.Buffer) bool {
	const eps = 1e-12
	return v[0] >= -eps && v[1] >= -eps && v[2] >= -eps && v[0] <= 1+eps && v[1] <= 1+eps && v[2] <= 1+eps
}

// InRGBGamut reports whether c is displayable in sRGB.
func InRGBGamut(c Color) bool {
	var xyz types.Buffer
	must(convert.ToXYZ65(&c.Values, &xyz, c.Space))
	colorconv.XYZ65ToLRGB(&xyz, &xyz)
	return linear_in_gamut(&xyz)
}

// MapToRGBGamut brings c into the sRGB gamut by reducing its Oklch chroma
// while keeping lightness and hue fixed. Binary search is used to find the
// largest chroma that is in gamut. Colors already in gamut are returned
// unchanged. The result is in the space of c.
func MapToRGBGamut(c Color) Color {
	if InRGBGamut(c) {
		return c
	}
	var lch types.Buffer
	convertInto(&c, types.OKLCH, &lch)
	test := func(chroma float64) (rgb types.Buffer, ok bool) {
		var xyz types.Buffer
		colorconv.OklchToOklab(&types.Buffer{lch[0], chroma, lch[2]}, &xyz)
		colorconv.OklabToXYZ65(&xyz, &xyz)
		colorconv.XYZ65ToLRGB(&xyz, &rgb)
		return rgb, linear_in_gamut(&rgb)
	}
	lo, hi := 0.0, lch[1]
	found := false
	var best types.Buffer
	for range 24 {
		mid := (lo + hi) / 2
		if rgb, ok := test(mid); ok {
			best, found = rgb, true
			lo = mid
		} else {
			hi = mid
		}
	}
	if !found {
		// even the achromatic color is out of gamut, L is outside [0, 1]
		best, _ = test(0)
	}
	for i := range best {
		best[i] = max(0, min(best[i], 1))
	}
	colorconv.LRGBToRGB(&best, &best)
	ans := Color{Space: types.RGB, Values: best, Alpha: c.Alpha}
	must(ans.Mutate(c.Space))
	return ans
}
