package main

import (
	"fmt"
	"os"

	"github.com/kovidgoyal/colors"
	"github.com/kovidgoyal/colors/convert"
	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) == 1 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "colors %s\nusage: go run ./cmd/demo color [background]\n", colors.Version)
		os.Exit(1)
	}
	c, err := colors.Parse(os.Args[1])
	if err != nil {
		return
	}
	backgrounds := []colors.Color{colors.RGB(1, 1, 1), colors.RGB(0, 0, 0)}
	if len(os.Args) == 3 {
		var bg colors.Color
		if bg, err = colors.Parse(os.Args[2]); err != nil {
			return
		}
		backgrounds = []colors.Color{bg}
	}
	fmt.Println("Color:", c.Hex(true))
	for _, s := range types.Spaces {
		x := c.MustTo(s)
		route, _ := convert.Route(c.Space, s)
		fmt.Printf("  %-6s %-40s via %s\n", s, x, route)
	}
	fmt.Println("Contrast:")
	for _, bg := range backgrounds {
		v := colors.CheckContrast(c, bg)
		fmt.Printf("  on %s: %7.2f (%s)", bg.Hex(false), v, colors.ContrastRating(v))
		if colors.ContrastRating(v) < colors.SILVER {
			m := colors.MatchContrast(c, bg, 60)
			fmt.Printf(" adjusted for silver: %s", m.Hex(false))
		}
		fmt.Println()
	}
	fmt.Println("Simulated:")
	for _, d := range colors.Deficiencies {
		s := colors.SimulateDeficiency(c, d)
		fmt.Printf("  %-14s %s  ΔE2000 %.2f\n", d, s.Hex(false), colors.DeltaE2000(c, s))
	}
	if !colors.InRGBGamut(c) {
		fmt.Println("Gamut mapped:", colors.MapToRGBGamut(c).Hex(false))
	}
}
