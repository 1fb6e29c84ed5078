package colors

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

func to16bit(x float64) uint32 {
	return uint32(clamp01(x)*0xffff + 0.5)
}

// RGBA implements color.Color. The color is clipped to the sRGB gamut and
// premultiplied by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	var rgb types.Buffer
	convertInto(&c, types.RGB, &rgb)
	alpha := clamp01(c.Alpha)
	r = to16bit(rgb[0] * alpha)
	g = to16bit(rgb[1] * alpha)
	b = to16bit(rgb[2] * alpha)
	a = to16bit(alpha)
	return
}

// FromStdColor converts any color.Color into an rgb Color, undoing the
// alpha premultiplication.
func FromStdColor(c color.Color) Color {
	if x, ok := c.(Color); ok {
		return x
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{Space: types.RGB}
	}
	fa := float64(a)
	return Color{Space: types.RGB, Values: types.Buffer{float64(r) / fa, float64(g) / fa, float64(b) / fa}, Alpha: fa / 0xffff}
}

// Colorful returns the sRGB value of c as a go-colorful color. Alpha is
// dropped and out of gamut values are not clipped, use Clamped on the result
// if needed.
func (c Color) Colorful() colorful.Color {
	var rgb types.Buffer
	convertInto(&c, types.RGB, &rgb)
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
}

// FromColorful converts a go-colorful color to an opaque rgb Color.
func FromColorful(c colorful.Color) Color {
	return RGB(c.R, c.G, c.B)
}

var Model color.Model = color.ModelFunc(func(c color.Color) color.Color { return FromStdColor(c) })
