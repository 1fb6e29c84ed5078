package colors

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/colors/colorconv"
	"github.com/kovidgoyal/colors/convert"
	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// shortest_hue returns end adjusted by a full turn so that interpolating
// from start takes the short way around the circle.
func shortest_hue(start, end float64) float64 {
	switch d := end - start; {
	case d > 180:
		return end - 360
	case d < -180:
		return end + 360
	}
	return end
}

// lerp interpolates between two buffers in space s. t is not clamped.
func lerp(s types.Space, a, b *types.Buffer, t float64, out *types.Buffer) {
	hi := s.HueIndex()
	for i := range 3 {
		if i == hi {
			e := shortest_hue(a[i], b[i])
			out[i] = colorconv.WrapHue(a[i] + (e-a[i])*t)
		} else {
			out[i] = a[i] + (b[i]-a[i])*t
		}
	}
}

// operand returns the values of c expressed in space s.
func operand(c *Color, s types.Space) (ans types.Buffer) {
	if c.Space == s {
		return c.Values
	}
	convertInto(c, s, &ans)
	return
}

// MixColor interpolates between a and b at t, which is clamped to [0, 1].
// The hue channel, if the space has one, moves the short way around the
// circle. b is first converted to the space of a. Alpha is interpolated
// linearly.
func MixColor(a, b Color, t float64) Color {
	t = clamp01(t)
	bv := operand(&b, a.Space)
	ans := Color{Space: a.Space, Alpha: a.Alpha + (b.Alpha-a.Alpha)*t}
	lerp(a.Space, &a.Values, &bv, t, &ans.Values)
	return ans
}

// CreateShades returns steps colors evenly spaced from start to end
// inclusive. For steps <= 1 only start is returned.
func CreateShades(start, end Color, steps int) []Color {
	if steps <= 1 {
		return []Color{start}
	}
	ans := make([]Color, steps)
	total := float64(steps - 1)
	for i := range ans {
		ans[i] = MixColor(start, end, float64(i)/total)
	}
	return ans
}

// CreateScales samples steps colors evenly along the piecewise path through
// stops. All stops are interpreted in the space of the first. With fewer
// than two stops copies of the stops are returned.
func CreateScales(stops []Color, steps int) []Color {
	if len(stops) < 2 {
		return append([]Color(nil), stops...)
	}
	switch {
	case steps < 1:
		return nil
	case steps == 1:
		return []Color{stops[0]}
	}
	space := stops[0].Space
	values := make([]types.Buffer, len(stops))
	for i := range stops {
		values[i] = operand(&stops[i], space)
	}
	segments := len(stops) - 1
	ans := make([]Color, steps)
	for i := range ans {
		raw := float64(i) / float64(steps-1) * float64(segments)
		idx := min(int(math.Floor(raw)), segments-1)
		t := raw - float64(idx)
		a, b := &stops[idx], &stops[idx+1]
		ans[i] = Color{Space: space, Alpha: a.Alpha + (b.Alpha-a.Alpha)*t}
		lerp(space, &values[idx], &values[idx+1], t, &ans[i].Values)
	}
	return ans
}

// HarmonyVariant is a named set of hue offsets in degrees.
type HarmonyVariant struct {
	Name   string    `json:"name"`
	Ratios []float64 `json:"ratios"`
}

type Harmony struct {
	Name   string  `json:"name"`
	Colors []Color `json:"colors"`
}

var (
	Complementary      = HarmonyVariant{"complementary", []float64{0, 180}}
	Analogous          = HarmonyVariant{"analogous", []float64{-30, 0, 30}}
	Triadic            = HarmonyVariant{"triadic", []float64{0, 120, 240}}
	Tetradic           = HarmonyVariant{"tetradic", []float64{0, 90, 180, 270}}
	SplitComplementary = HarmonyVariant{"split-complementary", []float64{0, 150, 210}}
)

// HarmonyVariants lists the predefined variants.
var HarmonyVariants = []HarmonyVariant{Complementary, Analogous, Triadic, Tetradic, SplitComplementary}

// CreateHarmony rotates the hue of base by each ratio of each variant,
// holding the other channels fixed. The hue rotated is that of hsl for rgb
// colors, lch for lab and oklch for oklab. Results are in the space of base.
func CreateHarmony(base Color, variants ...HarmonyVariant) []Harmony {
	ps, err := convert.HueSpace(base.Space)
	must(err)
	var polar types.Buffer
	must(convert.ConvertHue(&base.Values, &polar, base.Space))
	hi := 0
	if ps == types.LCH || ps == types.OKLCH {
		hi = 2
	}
	base_hue := polar[hi]
	ans := make([]Harmony, len(variants))
	for i, v := range variants {
		colors := make([]Color, len(v.Ratios))
		for j, r := range v.Ratios {
			c := Color{Space: ps, Values: polar, Alpha: base.Alpha}
			c.Values[hi] = colorconv.WrapHue(base_hue + r)
			if ps != base.Space {
				must(c.Mutate(base.Space))
			}
			colors[j] = c
		}
		ans[i] = Harmony{Name: v.Name, Colors: colors}
	}
	return ans
}
