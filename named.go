package colors

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

var _ = fmt.Print

// Named returns the CSS/SVG keyword color with the given name, matched case
// insensitively, as an rgb Color.
func Named(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("unknown color name: %q", name)
	}
	return from_rgba8(c), nil
}

func from_rgba8(c color.RGBA) Color {
	return RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// NamedColors returns the names of all keyword colors in sorted order.
func NamedColors() []string {
	return append([]string(nil), colornames.Names...)
}

// Parse accepts either a hex color or a color keyword.
func Parse(s string) (Color, error) {
	if c, err := Named(s); err == nil {
		return c, nil
	}
	c, err := ColorFromHex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%q is neither a color name nor a hex color", s)
	}
	return c, nil
}
