package colors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

func hsl(h, s, l float64) Color { return MustNew(types.HSL, h, s, l) }

func assert_hue_in_range(t *testing.T, c Color) {
	t.Helper()
	if hi := c.Space.HueIndex(); hi > -1 {
		assert.GreaterOrEqual(t, c.Values[hi], 0.0)
		assert.Less(t, c.Values[hi], 360.0)
	}
}

func TestMixShortestHue(t *testing.T) {
	m := MixColor(hsl(350, 1, 0.5), hsl(10, 1, 0.5), 0.5)
	assert.Equal(t, 0.0, m.Values[0])
	assert.Equal(t, types.Buffer{0, 1, 0.5}, m.Values)

	m = MixColor(hsl(10, 1, 0.5), hsl(350, 1, 0.5), 0.25)
	assert.InDelta(t, 5, m.Values[0], 1e-12)

	m = MixColor(OKLCH(0.5, 0.1, 300), OKLCH(0.7, 0.2, 60), 0.5)
	assert.InDelta(t, 0, m.Values[2], 1e-12)
	assert.InDelta(t, 0.6, m.Values[0], 1e-12)
	assert.InDelta(t, 0.15, m.Values[1], 1e-12)
}

func TestMixClampsT(t *testing.T) {
	a, b := RGB(0, 0.2, 0.4), RGB(1, 0.8, 0.6)
	assert.Equal(t, a.Values, MixColor(a, b, -3).Values)
	over := MixColor(a, b, 7)
	assert.InDeltaSlice(t, b.Values[:], over.Values[:], 1e-12)
	mid := MixColor(a, b, 0.5)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5}, mid.Values[:], 1e-12)

	half := MixColor(a.WithAlpha(0), b, 0.5)
	assert.Equal(t, 0.5, half.Alpha)
}

func TestMixConvertsSecondOperand(t *testing.T) {
	a := hsl(0, 1, 0.5)
	b := hsl(120, 1, 0.5).MustTo(types.RGB)
	m := MixColor(a, b, 0.5)
	assert.Equal(t, types.HSL, m.Space)
	assert.InDelta(t, 60, m.Values[0], 1e-9)
}

func TestCreateShades(t *testing.T) {
	a, b := OKLCH(0.2, 0.1, 340), OKLCH(0.9, 0.1, 40)
	assert.Equal(t, []Color{a}, CreateShades(a, b, 1))
	assert.Equal(t, []Color{a}, CreateShades(a, b, -4))
	shades := CreateShades(a, b, 5)
	require.Len(t, shades, 5)
	assert.Equal(t, a, shades[0])
	assert.InDeltaSlice(t, b.Values[:], shades[4].Values[:], 1e-12)
	for i, s := range shades {
		assert_hue_in_range(t, s)
		if i > 0 {
			assert.Greater(t, s.Values[0], shades[i-1].Values[0])
		}
	}
	assert.InDelta(t, 10, shades[2].Values[2], 1e-12)
}

func TestCreateScales(t *testing.T) {
	stops := []Color{RGB(0, 0, 0), RGB(1, 0, 0), RGB(1, 1, 1)}
	scale := CreateScales(stops, 5)
	require.Len(t, scale, 5)
	expected := []types.Buffer{{0, 0, 0}, {0.5, 0, 0}, {1, 0, 0}, {1, 0.5, 0.5}, {1, 1, 1}}
	for i, e := range expected {
		assert.InDeltaSlice(t, e[:], scale[i].Values[:], 1e-12, "sample %d", i)
		assert.Equal(t, types.RGB, scale[i].Space)
	}

	one := []Color{RGB(0.1, 0.2, 0.3)}
	copies := CreateScales(one, 10)
	assert.Equal(t, one, copies)
	copies[0].Values[0] = 1
	assert.Equal(t, 0.1, one[0].Values[0], "result must not share storage")
	assert.Empty(t, CreateScales(nil, 3))

	assert.Nil(t, CreateScales(stops, 0))
	assert.Equal(t, []Color{stops[0]}, CreateScales(stops, 1))

	hues := CreateScales([]Color{hsl(300, 1, 0.5), hsl(20, 1, 0.5), hsl(100, 1, 0.5)}, 9)
	for _, c := range hues {
		assert_hue_in_range(t, c)
	}
	assert.InDelta(t, 340, hues[2].Values[0], 1e-9)
}

func TestCreateHarmony(t *testing.T) {
	base := hsl(30, 0.5, 0.5)
	h := CreateHarmony(base, Complementary, Triadic, Analogous)
	require.Len(t, h, 3)
	assert.Equal(t, "complementary", h[0].Name)
	hues := func(cs []Color) (ans []float64) {
		for _, c := range cs {
			ans = append(ans, c.Values[0])
		}
		return
	}
	assert.Equal(t, []float64{30, 210}, hues(h[0].Colors))
	assert.Equal(t, []float64{30, 150, 270}, hues(h[1].Colors))
	assert.Equal(t, []float64{0, 30, 60}, hues(h[2].Colors))
	for _, v := range h {
		for _, c := range v.Colors {
			assert.Equal(t, types.HSL, c.Space)
			assert.Equal(t, 0.5, c.Values[1])
			assert_hue_in_range(t, c)
		}
	}

	wrapped := CreateHarmony(hsl(10, 1, 0.5), Analogous)
	assert.Equal(t, 340.0, wrapped[0].Colors[0].Values[0])
}

func TestCreateHarmonyWorkingSpaces(t *testing.T) {
	for _, tc := range []struct {
		base    Color
		working types.Space
		hue     int
	}{
		{RGB(0.8, 0.3, 0.1), types.HSL, 0},
		{MustNew(types.HSV, 200, 0.5, 0.5), types.HSV, 0},
		{MustNew(types.HWB, 200, 0.2, 0.3), types.HWB, 0},
		{MustNew(types.LAB, 50, 30, 30), types.LCH, 2},
		{MustNew(types.OKLAB, 0.6, 0.1, -0.05), types.OKLCH, 2},
	} {
		t.Run(tc.base.Space.String(), func(t *testing.T) {
			h := CreateHarmony(tc.base, Complementary)
			require.Len(t, h[0].Colors, 2)
			first, second := h[0].Colors[0], h[0].Colors[1]
			assert.Equal(t, tc.base.Space, first.Space)
			assert.InDeltaSlice(t, tc.base.Values[:], first.Values[:], 1e-9)
			a, b := first.MustTo(tc.working), second.MustTo(tc.working)
			d := b.Values[tc.hue] - a.Values[tc.hue]
			if d < 0 {
				d += 360
			}
			assert.InDelta(t, 180, d, 1e-6)
		})
	}
}
