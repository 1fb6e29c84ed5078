package convert

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// Saturated in gamut sRGB colors, none of which are achromatic.
var sample_rgb = []types.Buffer{
	{0.8, 0.2, 0.3},
	{0.1, 0.6, 0.9},
	{0.3, 0.7, 0.2},
	{0.95, 0.85, 0.1},
	{0.5, 0.1, 0.7},
	{0.2, 0.4, 0.45},
	{1, 0, 0},
	{0.05, 0.05, 0.4},
}

func hue_diff(a, b float64) float64 {
	d := math.Abs(a - b)
	return min(d, 360-d)
}

func assert_same_color(t *testing.T, s types.Space, expected, actual types.Buffer, eps float64, msg string) {
	t.Helper()
	h := s.HueIndex()
	if s == types.HSV {
		h = 0
	}
	for i := range 3 {
		d := math.Abs(expected[i] - actual[i])
		if i == h {
			d = hue_diff(expected[i], actual[i])
		}
		if d > eps {
			t.Fatalf("%s: channel %d differs: expected %v got %v", msg, i, expected, actual)
		}
	}
}

func TestRoundTripAllPairs(t *testing.T) {
	for _, a := range types.Spaces {
		for _, b := range types.Spaces {
			t.Run(a.String()+"/"+b.String(), func(t *testing.T) {
				for _, rgb := range sample_rgb {
					var x, y, back types.Buffer
					require.NoError(t, Convert(&rgb, &x, types.RGB, a))
					require.NoError(t, Convert(&x, &y, a, b))
					require.NoError(t, Convert(&y, &back, b, a))
					assert_same_color(t, a, x, back, 1e-4, fmt.Sprintf("%s -> %s -> %s", x, b, a))
				}
			})
		}
	}
}

func TestIdentityIsExact(t *testing.T) {
	weird := types.Buffer{-3, math.Inf(1), 1234.5}
	for _, s := range types.Spaces {
		var out types.Buffer
		require.NoError(t, Convert(&weird, &out, s, s))
		assert.Equal(t, weird, out)
	}
}

func TestScenarios(t *testing.T) {
	var out types.Buffer
	require.NoError(t, Convert(&types.Buffer{1, 1, 1}, &out, types.RGB, types.LAB))
	assert.InDeltaSlice(t, []float64{100, 0, 0}, out[:], 0.1)

	require.NoError(t, Convert(&types.Buffer{1, 0, 0}, &out, types.RGB, types.HSV))
	if diff := cmp.Diff(types.Buffer{0, 1, 1}, out); diff != "" {
		t.Fatalf("rgb red to hsv mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, Convert(&types.Buffer{1, 0, 0}, &out, types.RGB, types.OKLAB))
	assert.InDeltaSlice(t, []float64{0.62796, 0.22486, 0.12585}, out[:], 1e-3)

	require.NoError(t, Convert(&types.Buffer{0, 0, 1}, &out, types.RGB, types.LCH))
	assert.InDelta(t, 29.57, out[0], 0.2)
	assert.InDelta(t, 131.2, out[1], 1)
	assert.InDelta(t, 301.4, out[2], 1)
}

func TestUnsupportedSpace(t *testing.T) {
	in := types.Buffer{0.1, 0.2, 0.3}
	out := types.Buffer{7, 7, 7}
	err := Convert(&in, &out, types.UNKNOWN, types.RGB)
	require.ErrorIs(t, err, types.ErrUnsupportedSpace)
	err = Convert(&in, &out, types.RGB, types.Space(42))
	var us *types.UnsupportedSpaceError
	require.ErrorAs(t, err, &us)
	assert.Equal(t, types.Space(42), us.Space)
	assert.Equal(t, types.Buffer{7, 7, 7}, out, "output must not be written on error")
	require.ErrorIs(t, ConvertHue(&in, &out, types.UNKNOWN), types.ErrUnsupportedSpace)
	_, err = ToHubPipeline(types.UNKNOWN)
	require.Error(t, err)
	_, err = FromHubPipeline(types.Space(-1))
	require.Error(t, err)
}

func TestConvertAliasing(t *testing.T) {
	for _, a := range types.Spaces {
		for _, b := range types.Spaces {
			var x, separate types.Buffer
			require.NoError(t, Convert(&sample_rgb[0], &x, types.RGB, a))
			require.NoError(t, Convert(&x, &separate, a, b))
			require.NoError(t, Convert(&x, &x, a, b))
			assert.Equal(t, separate, x, "%s -> %s", a, b)
		}
	}
}

func TestDirectMatchesHub(t *testing.T) {
	for _, a := range types.Spaces {
		for _, b := range types.Spaces {
			p := DirectPipeline(a, b)
			if p == nil {
				continue
			}
			fh, _ := NativeHub(a)
			th, _ := NativeHub(b)
			require.Equal(t, fh, th, "direct chains never cross hubs")
			for _, rgb := range sample_rgb {
				var x, direct, hub types.Buffer
				require.NoError(t, Convert(&rgb, &x, types.RGB, a))
				p.Transform(&x, &direct)
				toHub[a].Transform(&x, &hub)
				fromHub[b].Transform(&hub, &hub)
				assert_same_color(t, b, hub, direct, 1e-9, fmt.Sprintf("%s -> %s", a, b))
			}
		}
	}
}

func TestRoute(t *testing.T) {
	p, err := Route(types.RGB, types.LAB)
	require.NoError(t, err)
	assert.Equal(t, "rgb→lrgb, lrgb→xyz65, xyz65→xyz50, xyz50→lab", p.String())
	p, err = Route(types.LCH, types.OKLCH)
	require.NoError(t, err)
	assert.Equal(t, "lch→lab, lab→xyz50, xyz50→xyz65, xyz65→oklab, oklab→oklch", p.String())
	p, err = Route(types.HSL, types.HWB)
	require.NoError(t, err)
	assert.Equal(t, "hsl→hsv, hsv→hwb", p.String())
	p, err = Route(types.OKLAB, types.OKLAB)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	p, err = Route(types.HSV, types.OKLAB)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())

	// Route and Convert must agree
	in := types.Buffer{0.3, 0.6, 0.2}
	var a, b types.Buffer
	for _, from := range []types.Space{types.RGB} {
		for _, to := range types.Spaces {
			p, err := Route(from, to)
			require.NoError(t, err)
			p.Transform(&in, &a)
			require.NoError(t, Convert(&in, &b, from, to))
			assert.Equal(t, b, a)
		}
	}
}

func TestRouteDepthIsBounded(t *testing.T) {
	for _, a := range types.Spaces {
		for _, b := range types.Spaces {
			p, err := Route(a, b)
			require.NoError(t, err)
			assert.LessOrEqual(t, p.Len(), 9)
		}
	}
}

func TestTransformDebug(t *testing.T) {
	p, err := Route(types.RGB, types.OKLCH)
	require.NoError(t, err)
	var names []string
	var out, expected types.Buffer
	p.TransformDebug(&types.Buffer{1, 0.5, 0}, &out, func(s Stage, in, out types.Buffer) {
		names = append(names, s.Name)
	})
	p.Transform(&types.Buffer{1, 0.5, 0}, &expected)
	assert.Equal(t, expected, out)
	assert.Equal(t, []string{"rgb→lrgb", "lrgb→xyz65", "xyz65→oklab", "oklab→oklch"}, names)
}

func TestConvertHue(t *testing.T) {
	var out types.Buffer
	require.NoError(t, ConvertHue(&types.Buffer{1, 0, 0}, &out, types.RGB))
	assert.InDeltaSlice(t, []float64{0, 1, 0.5}, out[:], 1e-12)

	lab := types.Buffer{50, 0, 20}
	require.NoError(t, ConvertHue(&lab, &out, types.LAB))
	assert.InDeltaSlice(t, []float64{50, 20, 90}, out[:], 1e-9)

	polar := types.Buffer{0.5, 0.1, 200}
	for _, s := range []types.Space{types.HSV, types.HSL, types.HWB, types.LCH, types.OKLCH} {
		require.NoError(t, ConvertHue(&polar, &out, s))
		assert.Equal(t, polar, out)
		hs, err := HueSpace(s)
		require.NoError(t, err)
		assert.Equal(t, s, hs)
	}
	hs, err := HueSpace(types.OKLAB)
	require.NoError(t, err)
	assert.Equal(t, types.OKLCH, hs)
}

func TestConvertSlice(t *testing.T) {
	in := make([]types.Buffer, 2000)
	for i := range in {
		in[i] = sample_rgb[i%len(sample_rgb)]
	}
	for _, to := range types.Spaces {
		for _, procs := range []int{0, 1, 3} {
			out := make([]types.Buffer, len(in))
			require.NoError(t, ConvertSlice(in, out, types.RGB, to, procs))
			for i := range in {
				var expected types.Buffer
				require.NoError(t, Convert(&in[i], &expected, types.RGB, to))
				if expected != out[i] {
					t.Fatalf("ConvertSlice to %s with %d procs mismatch at %d: %v != %v", to, procs, i, expected, out[i])
				}
			}
		}
	}
	in_place := append([]types.Buffer(nil), in[:10]...)
	require.NoError(t, ConvertSlice(in_place, in_place, types.RGB, types.LAB, 0))
	var expected types.Buffer
	require.NoError(t, Convert(&in[3], &expected, types.RGB, types.LAB))
	assert.Equal(t, expected, in_place[3])

	require.ErrorIs(t, ConvertSlice(in, in[:5], types.RGB, types.LAB, 0), types.ErrInvalidBufferLength)
	require.ErrorIs(t, ConvertSlice(in, in, types.UNKNOWN, types.LAB, 0), types.ErrUnsupportedSpace)
}
