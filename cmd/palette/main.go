package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/kovidgoyal/colors"
	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

const swatch_size = 32

type palette struct {
	Base       colors.Color            `json:"base"`
	Shades     []colors.Color          `json:"shades"`
	Harmony    []colors.Harmony        `json:"harmony"`
	Accessible []colors.ContrastResult `json:"accessible"`
}

func swatches(rows [][]colors.Color) *image.NRGBA {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	img := image.NewNRGBA(image.Rect(0, 0, width*swatch_size, len(rows)*swatch_size))
	for y, r := range rows {
		for x, c := range r {
			rect := image.Rect(x*swatch_size, y*swatch_size, (x+1)*swatch_size, (y+1)*swatch_size)
			draw.Draw(img, rect, &image.Uniform{C: colors.MapToRGBGamut(c)}, image.Point{}, draw.Src)
		}
	}
	return img
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) == 1 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/palette color [output-prefix]")
		os.Exit(1)
	}
	base, err := colors.Parse(os.Args[1])
	if err != nil {
		return
	}
	output_prefix := "palette"
	if len(os.Args) == 3 {
		output_prefix = os.Args[2]
	}
	o := base.MustTo(types.OKLCH)
	dark, light := o, o
	dark.Values[0], light.Values[0] = 0.15, 0.95
	p := palette{
		Base:    base,
		Shades:  colors.CreateScales([]colors.Color{dark, o, light}, 9),
		Harmony: colors.CreateHarmony(base, colors.HarmonyVariants...),
	}
	white := colors.RGB(1, 1, 1)
	p.Accessible = colors.CheckContrastBulk(white, colors.MatchScales([]colors.Color{dark, o, light}, white, 60, 9), 0)

	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return
	}
	output_file := fmt.Sprintf("%s.json", output_prefix)
	if err = os.WriteFile(output_file, b, 0o666); err != nil {
		return
	}
	rows := [][]colors.Color{p.Shades}
	for _, h := range p.Harmony {
		rows = append(rows, h.Colors)
	}
	out, err := os.OpenFile(output_prefix+".png", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return
	}
	defer out.Close()
	if err = png.Encode(out, swatches(rows)); err == nil {
		fmt.Printf("Palette written to %s.[json|png]\n", output_prefix)
	}
}
