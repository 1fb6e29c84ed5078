package colorconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kovidgoyal/colors/types"
)

func to8bit(x float64) uint64 {
	// NaN falls through both comparisons and ends up as 0
	v := math.Round(x * 255)
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint64(v)
	}
	return 0
}

// RGBToHex encodes an rgb buffer as #rrggbb. Channels are rounded to 8 bits
// and clipped to [0, 255].
func RGBToHex(in *types.Buffer) string {
	v := 1<<24 | to8bit(in[0])<<16 | to8bit(in[1])<<8 | to8bit(in[2])
	// the leading 1 guarantees six zero padded digits
	return "#" + strconv.FormatUint(v, 16)[1:]
}

// RGBAToHex encodes an rgb buffer and an alpha value as #rrggbbaa.
func RGBAToHex(in *types.Buffer, alpha float64) string {
	return RGBToHex(in) + strconv.FormatUint(1<<8|to8bit(alpha), 16)[1:]
}

// HexToRGB decodes #rgb, #rgba, #rrggbb or #rrggbbaa (the # is optional)
// into out, returning the alpha, which is 1 when the input has none.
// out is left untouched on error.
func HexToRGB(s string, out *types.Buffer) (alpha float64, err error) {
	clean := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(clean) {
	case 3, 4:
		var sb strings.Builder
		for i := range len(clean) {
			sb.WriteByte(clean[i])
			sb.WriteByte(clean[i])
		}
		clean = sb.String()
	case 6, 8:
	default:
		return 0, fmt.Errorf("invalid hex color %q: must have 3, 4, 6 or 8 digits", s)
	}
	num, perr := strconv.ParseUint(clean, 16, 32)
	if perr != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", s, perr)
	}
	alpha = 1
	if len(clean) == 8 {
		alpha = float64(num&0xff) / 255
		num >>= 8
	}
	out[0] = float64((num>>16)&0xff) / 255
	out[1] = float64((num>>8)&0xff) / 255
	out[2] = float64(num&0xff) / 255
	return alpha, nil
}
