package colors

import (
	"fmt"

	"github.com/kovidgoyal/colors/colorconv"
	"github.com/kovidgoyal/colors/convert"
	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// Deficiency is a type of color vision deficiency.
type Deficiency int

const (
	PROTANOPIA Deficiency = iota
	DEUTERANOPIA
	TRITANOPIA
	ACHROMATOPSIA
)

var Deficiencies = [...]Deficiency{PROTANOPIA, DEUTERANOPIA, TRITANOPIA, ACHROMATOPSIA}

func (d Deficiency) String() string {
	switch d {
	case PROTANOPIA:
		return "protanopia"
	case DEUTERANOPIA:
		return "deuteranopia"
	case TRITANOPIA:
		return "tritanopia"
	case ACHROMATOPSIA:
		return "achromatopsia"
	}
	return fmt.Sprintf("Deficiency(%d)", int(d))
}

// ParseDeficiency is the inverse of Deficiency.String.
func ParseDeficiency(name string) (Deficiency, error) {
	for _, d := range Deficiencies {
		if d.String() == name {
			return d, nil
		}
	}
	return PROTANOPIA, fmt.Errorf("unknown color vision deficiency: %q", name)
}

// Linear approximations in XYZ (D65). The dichromacies collapse one axis
// onto a combination of the other two.
var deficiency_matrices = [...]types.Matrix{
	PROTANOPIA: {
		{0.112, 0.888, 0},
		{0.112, 0.888, 0},
		{-0.001, 0.001, 1},
	},
	DEUTERANOPIA: {
		{0.292, 0.708, 0},
		{0.292, 0.708, 0},
		{-0.022, 0.022, 1},
	},
	TRITANOPIA: {
		{1.012, 0.052, -0.064},
		{0, 0.877, 0.123},
		{0, 0.877, 0.123},
	},
	ACHROMATOPSIA: {
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	},
}

// SimulateDeficiency approximates how c appears to a viewer with the given
// deficiency. The result is in the space of c and is clamped, since the
// simulated color is frequently out of gamut. An unknown deficiency leaves
// the color unchanged apart from clamping.
func SimulateDeficiency(c Color, d Deficiency) Color {
	var xyz types.Buffer
	must(convert.ToXYZ65(&c.Values, &xyz, c.Space))
	if d >= 0 && int(d) < len(deficiency_matrices) {
		colorconv.Multiply(&deficiency_matrices[d], &xyz, &xyz)
	}
	ans := Color{Space: c.Space, Alpha: c.Alpha}
	must(convert.FromXYZ65(&xyz, &ans.Values, c.Space))
	return Clamp(ans)
}
