package colors

import (
	"fmt"
	"strings"

	"github.com/kovidgoyal/colors/colorconv"
	"github.com/kovidgoyal/colors/convert"
	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// Color is a value in one of the supported color spaces. Values holds the
// channels in the space's own order and scale, see types.Space. Alpha is
// carried along untouched by conversions.
type Color struct {
	Space  types.Space  `json:"space"`
	Values types.Buffer `json:"values"`
	Alpha  float64      `json:"alpha"`
}

// New creates an opaque color in the given space. Exactly three values must
// be supplied.
func New(space types.Space, values ...float64) (ans Color, err error) {
	if err = types.CheckSpace(space); err != nil {
		return
	}
	b, err := types.BufferFromSlice(values)
	if err != nil {
		return
	}
	return Color{Space: space, Values: b, Alpha: 1}, nil
}

// MustNew is like New but panics on error.
func MustNew(space types.Space, values ...float64) Color {
	c, err := New(space, values...)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns an opaque sRGB color with channels in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{Space: types.RGB, Values: types.Buffer{r, g, b}, Alpha: 1}
}

// OKLCH returns an opaque Oklch color, l in [0, 1] and h in degrees.
func OKLCH(l, c, h float64) Color {
	return Color{Space: types.OKLCH, Values: types.Buffer{l, c, h}, Alpha: 1}
}

// ColorFromHex parses #rgb, #rgba, #rrggbb or #rrggbbaa, the leading # is
// optional. The result is an rgb color.
func ColorFromHex(s string) (ans Color, err error) {
	ans.Space = types.RGB
	ans.Alpha, err = colorconv.HexToRGB(s, &ans.Values)
	if err != nil {
		return Color{}, err
	}
	ans.Alpha = clamp01(ans.Alpha)
	return
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// To returns a new color holding c converted to space. c is not modified.
func (c Color) To(space types.Space) (ans Color, err error) {
	ans = Color{Space: space, Alpha: c.Alpha}
	if err = convert.Convert(&c.Values, &ans.Values, c.Space, space); err != nil {
		return Color{}, err
	}
	return
}

// MustTo is like To but panics if either space is unsupported.
func (c Color) MustTo(space types.Space) Color {
	ans, err := c.To(space)
	must(err)
	return ans
}

// Mutate converts c to space in place.
func (c *Color) Mutate(space types.Space) error {
	if err := convert.Convert(&c.Values, &c.Values, c.Space, space); err != nil {
		return err
	}
	c.Space = space
	return nil
}

// Clone returns an independent copy of c. As Values is an array this is the
// same as assignment, it exists for symmetry with To.
func (c Color) Clone() Color { return c }

// Update returns a copy of c with its channel values replaced.
func (c Color) Update(values ...float64) (Color, error) {
	b, err := types.BufferFromSlice(values)
	if err != nil {
		return c, err
	}
	c.Values = b
	return c, nil
}

// WithAlpha returns a copy of c with alpha set, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = clamp01(a)
	return c
}

// Hex returns c as a #rrggbb string, or #rrggbbaa when withAlpha is true.
// Out of gamut colors are clipped channel by channel.
func (c Color) Hex(withAlpha bool) string {
	var rgb types.Buffer
	must(convert.Convert(&c.Values, &rgb, c.Space, types.RGB))
	if withAlpha {
		return colorconv.RGBAToHex(&rgb, c.Alpha)
	}
	return colorconv.RGBToHex(&rgb)
}

func (c Color) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%g %g %g", c.Space, c.Values[0], c.Values[1], c.Values[2])
	if c.Alpha != 1 {
		fmt.Fprintf(&b, " / %g", c.Alpha)
	}
	b.WriteByte(')')
	return b.String()
}

// convertInto writes b's values in space s into out.
func convertInto(b *Color, s types.Space, out *types.Buffer) {
	must(convert.Convert(&b.Values, out, b.Space, s))
}
