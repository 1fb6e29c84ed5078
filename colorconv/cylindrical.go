package colorconv

import (
	"math"

	"github.com/kovidgoyal/colors/types"
)

func RGBToHSV(in, out *types.Buffer) {
	r, g, b := in[0], in[1], in[2]
	v := max(r, g, b)
	delta := v - min(r, g, b)
	s := 0.0
	if v != 0 {
		s = delta / v
	}
	h := 0.0
	if delta != 0 {
		switch v {
		case r:
			h = (g - b) / delta
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
		h = WrapHue(h * 60)
	}
	out[0], out[1], out[2] = h, s, v
}

func HSVToRGB(in, out *types.Buffer) {
	h, s, v := WrapHue(in[0])/60, in[1], in[2]
	if s == 0 {
		out[0], out[1], out[2] = v, v, v
		return
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - c
	var r, g, b float64
	switch math.Floor(h) {
	case 0:
		r, g = c, x
	case 1:
		r, g = x, c
	case 2:
		g, b = c, x
	case 3:
		g, b = x, c
	case 4:
		r, b = x, c
	default:
		r, b = c, x
	}
	out[0], out[1], out[2] = r+m, g+m, b+m
}

func HSVToHSL(in, out *types.Buffer) {
	h, s, v := in[0], in[1], in[2]
	l := v * (1 - s/2)
	sl := 0.0
	if l > 0 && l < 1 {
		sl = (v - l) / min(l, 1-l)
	}
	out[0], out[1], out[2] = h, sl, l
}

func HSLToHSV(in, out *types.Buffer) {
	h, s, l := in[0], in[1], in[2]
	v := l + s*min(l, 1-l)
	sv := 0.0
	if v != 0 {
		sv = 2 * (1 - l/v)
	}
	out[0], out[1], out[2] = h, sv, v
}

func HSVToHWB(in, out *types.Buffer) {
	h, s, v := in[0], in[1], in[2]
	out[0], out[1], out[2] = h, v*(1-s), 1-v
}

func HWBToHSV(in, out *types.Buffer) {
	h, w, b := in[0], in[1], in[2]
	v := 1 - b
	s := 0.0
	if v != 0 {
		s = max(0, (v-w)/v)
	}
	out[0], out[1], out[2] = h, s, v
}
