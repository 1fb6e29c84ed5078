package colorconv

import (
	"math"

	"github.com/kovidgoyal/colors/types"
)

const (
	radToDeg = 180 / math.Pi
	degToRad = math.Pi / 180
)

// WrapHue reduces h modulo 360 into [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-17 + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// ToPolar converts (L, a, b) to (L, C, H) with H in degrees in [0, 360).
// The same formula serves CIE Lab→LCH and Oklab→Oklch.
func ToPolar(in, out *types.Buffer) {
	l, a, b := in[0], in[1], in[2]
	out[0], out[1], out[2] = l, math.Hypot(a, b), WrapHue(math.Atan2(b, a)*radToDeg)
}

// ToCartesian converts (L, C, H) back to (L, a, b).
func ToCartesian(in, out *types.Buffer) {
	l, c, h := in[0], in[1], in[2]
	s, co := math.Sincos(h * degToRad)
	out[0], out[1], out[2] = l, c*co, c*s
}

var (
	LabToLCH     Adapter = ToPolar
	LCHToLab     Adapter = ToCartesian
	OklabToOklch Adapter = ToPolar
	OklchToOklab Adapter = ToCartesian
)
