package convert

import (
	"fmt"

	"github.com/kovidgoyal/colors/colorconv"
	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// Hub is one of the two internal XYZ pivot spaces. Hubs are never exposed as
// a types.Space.
type Hub int

const (
	XYZ65 Hub = iota
	XYZ50
)

func (h Hub) String() string {
	if h == XYZ50 {
		return "xyz50"
	}
	return "xyz65"
}

// NativeHub returns the pivot the space's hub chain reaches.
func NativeHub(s types.Space) (Hub, error) {
	switch s {
	case types.RGB, types.HSV, types.HSL, types.HWB, types.OKLAB, types.OKLCH:
		return XYZ65, nil
	case types.LAB, types.LCH:
		return XYZ50, nil
	}
	return XYZ65, &types.UnsupportedSpaceError{Space: s}
}

var (
	toHub = [...]*Pipeline{
		types.RGB:   NewPipeline(rgbToLRGB, lrgbToXYZ65),
		types.HSV:   NewPipeline(hsvToRGB, rgbToLRGB, lrgbToXYZ65),
		types.HSL:   NewPipeline(hslToHSV, hsvToRGB, rgbToLRGB, lrgbToXYZ65),
		types.HWB:   NewPipeline(hwbToHSV, hsvToRGB, rgbToLRGB, lrgbToXYZ65),
		types.LAB:   NewPipeline(labToXYZ50),
		types.LCH:   NewPipeline(lchToLab, labToXYZ50),
		types.OKLAB: NewPipeline(oklabToXYZ65),
		types.OKLCH: NewPipeline(oklchToOklab, oklabToXYZ65),
	}
	fromHub = [...]*Pipeline{
		types.RGB:   NewPipeline(xyz65ToLRGB, lrgbToRGB),
		types.HSV:   NewPipeline(xyz65ToLRGB, lrgbToRGB, rgbToHSV),
		types.HSL:   NewPipeline(xyz65ToLRGB, lrgbToRGB, rgbToHSV, hsvToHSL),
		types.HWB:   NewPipeline(xyz65ToLRGB, lrgbToRGB, rgbToHSV, hsvToHWB),
		types.LAB:   NewPipeline(xyz50ToLab),
		types.LCH:   NewPipeline(xyz50ToLab, labToLCH),
		types.OKLAB: NewPipeline(xyz65ToOklab),
		types.OKLCH: NewPipeline(xyz65ToOklab, oklabToOklch),
	}
	bridge65To50 = NewPipeline(xyz65ToXYZ50)
	bridge50To65 = NewPipeline(xyz50ToXYZ65)
)

// ToHubPipeline returns the chain taking s into its native hub.
func ToHubPipeline(s types.Space) (*Pipeline, error) {
	if err := types.CheckSpace(s); err != nil {
		return nil, err
	}
	return toHub[s], nil
}

// FromHubPipeline returns the chain taking the native hub of s into s.
func FromHubPipeline(s types.Space) (*Pipeline, error) {
	if err := types.CheckSpace(s); err != nil {
		return nil, err
	}
	return fromHub[s], nil
}

var (
	direct_rgb_hsv     = NewPipeline(rgbToHSV)
	direct_rgb_hsl     = NewPipeline(rgbToHSV, hsvToHSL)
	direct_rgb_hwb     = NewPipeline(rgbToHSV, hsvToHWB)
	direct_hsv_rgb     = NewPipeline(hsvToRGB)
	direct_hsv_hsl     = NewPipeline(hsvToHSL)
	direct_hsv_hwb     = NewPipeline(hsvToHWB)
	direct_hsl_rgb     = NewPipeline(hslToHSV, hsvToRGB)
	direct_hsl_hsv     = NewPipeline(hslToHSV)
	direct_hsl_hwb     = NewPipeline(hslToHSV, hsvToHWB)
	direct_hwb_rgb     = NewPipeline(hwbToHSV, hsvToRGB)
	direct_hwb_hsv     = NewPipeline(hwbToHSV)
	direct_hwb_hsl     = NewPipeline(hwbToHSV, hsvToHSL)
	direct_lab_lch     = NewPipeline(labToLCH)
	direct_lch_lab     = NewPipeline(lchToLab)
	direct_oklab_oklch = NewPipeline(oklabToOklch)
	direct_oklch_oklab = NewPipeline(oklchToOklab)
)

// DirectPipeline returns a short chain bypassing the hubs for closely
// related pairs of spaces, or nil if the pair has none. Each direct chain is
// a subsequence of the hub route between the same pair with the stages that
// cancel out removed, so both routes agree.
func DirectPipeline(from, to types.Space) *Pipeline {
	switch from {
	case types.RGB:
		switch to {
		case types.HSV:
			return direct_rgb_hsv
		case types.HSL:
			return direct_rgb_hsl
		case types.HWB:
			return direct_rgb_hwb
		}
	case types.HSV:
		switch to {
		case types.RGB:
			return direct_hsv_rgb
		case types.HSL:
			return direct_hsv_hsl
		case types.HWB:
			return direct_hsv_hwb
		}
	case types.HSL:
		switch to {
		case types.RGB:
			return direct_hsl_rgb
		case types.HSV:
			return direct_hsl_hsv
		case types.HWB:
			return direct_hsl_hwb
		}
	case types.HWB:
		switch to {
		case types.RGB:
			return direct_hwb_rgb
		case types.HSV:
			return direct_hwb_hsv
		case types.HSL:
			return direct_hwb_hsl
		}
	case types.LAB:
		if to == types.LCH {
			return direct_lab_lch
		}
	case types.LCH:
		if to == types.LAB {
			return direct_lch_lab
		}
	case types.OKLAB:
		if to == types.OKLCH {
			return direct_oklab_oklch
		}
	case types.OKLCH:
		if to == types.OKLAB {
			return direct_oklch_oklab
		}
	}
	return nil
}

// Bridge runs the Bradford adaptation between two hubs, in place. It is a
// no-op when the hubs are the same.
func Bridge(v *types.Buffer, from, to Hub) {
	switch {
	case from == to:
	case from == XYZ65:
		bridge65To50.Transform(v, v)
	default:
		bridge50To65.Transform(v, v)
	}
}

// ToHub converts in to the native hub of s, writing the result to out.
func ToHub(in, out *types.Buffer, s types.Space) (Hub, error) {
	h, err := NativeHub(s)
	if err != nil {
		return h, err
	}
	toHub[s].Transform(in, out)
	return h, nil
}

// ToXYZ65 converts in to XYZ relative to D65, bridging if the native hub of
// s is D50.
func ToXYZ65(in, out *types.Buffer, s types.Space) error {
	h, err := ToHub(in, out, s)
	if err != nil {
		return err
	}
	Bridge(out, h, XYZ65)
	return nil
}

// FromXYZ65 is the inverse of ToXYZ65.
func FromXYZ65(in, out *types.Buffer, s types.Space) error {
	h, err := NativeHub(s)
	if err != nil {
		return err
	}
	v := *in
	Bridge(&v, XYZ65, h)
	fromHub[s].Transform(&v, out)
	return nil
}

// Convert converts the color in from space from to space to, writing to
// out, which may alias in. An unsupported space is reported before anything
// is written. Arithmetic is never checked, so NaN and out of range values
// propagate.
func Convert(in, out *types.Buffer, from, to types.Space) error {
	fh, err := NativeHub(from)
	if err != nil {
		return err
	}
	th, err := NativeHub(to)
	if err != nil {
		return err
	}
	if from == to {
		*out = *in
		return nil
	}
	if p := DirectPipeline(from, to); p != nil {
		p.Transform(in, out)
		return nil
	}
	toHub[from].Transform(in, out)
	Bridge(out, fh, th)
	fromHub[to].Transform(out, out)
	return nil
}

// Route returns the pipeline Convert uses between the two spaces, for
// inspection. It is built fresh on every call.
func Route(from, to types.Space) (*Pipeline, error) {
	fh, err := NativeHub(from)
	if err != nil {
		return nil, err
	}
	th, err := NativeHub(to)
	if err != nil {
		return nil, err
	}
	if from == to {
		return NewPipeline(), nil
	}
	if p := DirectPipeline(from, to); p != nil {
		return NewPipeline(p.Stages()...), nil
	}
	ans := NewPipeline(toHub[from].Stages()...)
	switch {
	case fh == th:
	case fh == XYZ65:
		ans.Append(xyz65ToXYZ50)
	default:
		ans.Append(xyz50ToXYZ65)
	}
	ans.Append(fromHub[to].Stages()...)
	return ans, nil
}

// ConvertHue writes the hue bearing polar form of in to out without a full
// round trip: rgb goes via hsv to hsl, lab and oklab to their polar
// siblings, and spaces that already have a hue are copied unchanged.
func ConvertHue(in, out *types.Buffer, s types.Space) error {
	switch s {
	case types.RGB:
		colorconv.RGBToHSV(in, out)
		colorconv.HSVToHSL(out, out)
	case types.LAB:
		colorconv.LabToLCH(in, out)
	case types.OKLAB:
		colorconv.OklabToOklch(in, out)
	case types.HSV, types.HSL, types.HWB, types.LCH, types.OKLCH:
		*out = *in
	default:
		return &types.UnsupportedSpaceError{Space: s}
	}
	return nil
}

// HueSpace returns the space whose values ConvertHue produces for s.
func HueSpace(s types.Space) (types.Space, error) {
	switch s {
	case types.RGB:
		return types.HSL, nil
	case types.LAB:
		return types.LCH, nil
	case types.OKLAB:
		return types.OKLCH, nil
	case types.HSV, types.HSL, types.HWB, types.LCH, types.OKLCH:
		return s, nil
	}
	return types.UNKNOWN, &types.UnsupportedSpaceError{Space: s}
}

// FromHub converts in, expressed in the native hub of s, into s.
func FromHub(in, out *types.Buffer, s types.Space) error {
	if err := types.CheckSpace(s); err != nil {
		return err
	}
	fromHub[s].Transform(in, out)
	return nil
}
