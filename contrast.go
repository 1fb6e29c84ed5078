package colors

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/colors/convert"
	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

const (
	apca_scale        = 1.14
	apca_soft_black   = 0.022
	apca_black_clamp  = 1.414
	apca_low_clip     = 0.1
	match_iterations  = 10
	bulk_parallel_min = 256
)

// LuminanceD65 returns the Y component of c in XYZ relative to D65.
func LuminanceD65(c Color) float64 {
	var xyz types.Buffer
	must(convert.ToXYZ65(&c.Values, &xyz, c.Space))
	return xyz[1]
}

func soft_clamp(y float64) float64 {
	if y > apca_soft_black {
		return y
	}
	return y + math.Pow(apca_soft_black-y, apca_black_clamp)
}

// CheckContrast returns the APCA lightness contrast of text against
// background, rounded to two decimals. Positive values are dark text on a
// light background, negative values light text on a dark background.
func CheckContrast(text, background Color) float64 {
	return apca(LuminanceD65(text), LuminanceD65(background))
}

func apca(yt, yb float64) float64 {
	vt, vb := soft_clamp(yt), soft_clamp(yb)
	var c float64
	if vb > vt {
		c = (math.Pow(vb, 0.56) - math.Pow(vt, 0.57)) * apca_scale
	} else {
		c = (math.Pow(vb, 0.65) - math.Pow(vt, 0.62)) * apca_scale
	}
	if math.Abs(c) < apca_low_clip {
		return 0
	}
	return math.Round(c*100*100) / 100
}

type Rating int

const (
	FAIL Rating = iota
	UI
	BRONZE
	SILVER
	GOLD
	PLATINUM
)

func (r Rating) String() string {
	switch r {
	case UI:
		return "ui"
	case BRONZE:
		return "bronze"
	case SILVER:
		return "silver"
	case GOLD:
		return "gold"
	case PLATINUM:
		return "platinum"
	}
	return "fail"
}

func (r Rating) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// ContrastRating bands the magnitude of an APCA contrast value.
func ContrastRating(contrast float64) Rating {
	switch v := math.Abs(contrast); {
	case v >= 90:
		return PLATINUM
	case v >= 75:
		return GOLD
	case v >= 60:
		return SILVER
	case v >= 45:
		return BRONZE
	case v >= 30:
		return UI
	}
	return FAIL
}

// MatchContrast returns a color with the chroma and hue of c whose Oklch
// lightness is adjusted so that its contrast against background is at least
// target. c is returned unchanged when it already meets target. The search
// always runs a fixed number of bisection steps, moving lightness towards 1
// on a dark background and towards 0 on a light one. When no lightness in
// that direction meets target the original lightness is kept. The result
// is in the space of c.
func MatchContrast(c, background Color, target float64) Color {
	if math.Abs(CheckContrast(c, background)) >= target {
		return c
	}
	var lch types.Buffer
	convertInto(&c, types.OKLCH, &lch)
	yb := LuminanceD65(background)
	is_dark := yb < 0.5
	lo, hi := 0.0, lch[0]
	if is_dark {
		lo, hi = lch[0], 1
	}
	best, found := lch[0], false
	var xyz types.Buffer
	for range match_iterations {
		t := (lo + hi) / 2
		candidate := types.Buffer{t, lch[1], lch[2]}
		if c.Space != types.OKLCH {
			// test the color as it will actually be returned
			must(convert.Convert(&candidate, &candidate, types.OKLCH, c.Space))
		}
		must(convert.ToXYZ65(&candidate, &xyz, c.Space))
		if math.Abs(apca(xyz[1], yb)) < target {
			if is_dark {
				lo = t
			} else {
				hi = t
			}
		} else {
			best, found = t, true
			if is_dark {
				hi = t
			} else {
				lo = t
			}
		}
	}
	if !found {
		Logger().Debug("contrast target not reachable", "color", c, "background", background, "target", target)
	}
	ans := Color{Space: types.OKLCH, Values: types.Buffer{best, lch[1], lch[2]}, Alpha: c.Alpha}
	must(ans.Mutate(c.Space))
	return ans
}

// MatchScales builds a scale of steps colors through stops, see
// CreateScales, then runs MatchContrast on every sample independently.
func MatchScales(stops []Color, background Color, target float64, steps int) []Color {
	scale := CreateScales(stops, steps)
	for i, c := range scale {
		scale[i] = MatchContrast(c, background, target)
	}
	return scale
}

type ContrastResult struct {
	Color    Color   `json:"color"`
	Contrast float64 `json:"contrast"`
	Rating   Rating  `json:"rating"`
}

// CheckContrastBulk computes the contrast and rating of every color against
// background. Large inputs are split over num_procs goroutines, zero means
// one per CPU.
func CheckContrastBulk(background Color, colors []Color, num_procs int) []ContrastResult {
	ans := make([]ContrastResult, len(colors))
	yb := LuminanceD65(background)
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			c := apca(LuminanceD65(colors[i]), yb)
			ans[i] = ContrastResult{Color: colors[i], Contrast: c, Rating: ContrastRating(c)}
		}
	}
	if len(colors) < bulk_parallel_min || num_procs == 1 {
		f(0, len(colors))
		return ans
	}
	Logger().Debug("checking contrast in parallel", "count", len(colors), "num_procs", num_procs)
	if err := parallel.Run_in_parallel_over_range(num_procs, f, 0, len(colors)); err != nil {
		// only a panic in f can produce an error, re-raise it
		panic(err)
	}
	return ans
}
