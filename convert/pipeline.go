package convert

import (
	"fmt"
	"strings"

	"github.com/kovidgoyal/colors/colorconv"
	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// Stage is a single named adapter in a Pipeline.
type Stage struct {
	Name string
	fn   colorconv.Adapter
}

func (s Stage) Transform(in, out *types.Buffer) { s.fn(in, out) }

// Pipeline is an ordered chain of adapters. Pipelines used for routing are
// built once at init and never modified afterwards.
type Pipeline struct {
	stages []Stage
}

func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

func (p *Pipeline) Append(s ...Stage) { p.stages = append(p.stages, s...) }

func (p *Pipeline) Len() int { return len(p.stages) }

func (p *Pipeline) Stages() []Stage { return p.stages }

// Transform runs the chain as a left to right fold. Intermediate results
// live in a scratch buffer on the caller's stack, only the final stage writes
// to out, which may alias in. An empty pipeline copies in to out.
func (p *Pipeline) Transform(in, out *types.Buffer) {
	n := len(p.stages)
	if n == 0 {
		*out = *in
		return
	}
	var scratch types.Buffer
	cur := in
	for i, s := range p.stages {
		target := &scratch
		if i == n-1 {
			target = out
		}
		s.fn(cur, target)
		cur = &scratch
	}
}

// TransformDebug is like Transform but calls f with the input and output of
// every stage.
func (p *Pipeline) TransformDebug(in, out *types.Buffer, f func(s Stage, in, out types.Buffer)) {
	cur := *in
	for _, s := range p.stages {
		var next types.Buffer
		s.fn(&cur, &next)
		f(s, cur, next)
		cur = next
	}
	*out = cur
}

func (p *Pipeline) String() string {
	items := make([]string, len(p.stages))
	for i, s := range p.stages {
		items[i] = s.Name
	}
	return strings.Join(items, ", ")
}

var (
	rgbToLRGB    = Stage{"rgb→lrgb", colorconv.RGBToLRGB}
	lrgbToRGB    = Stage{"lrgb→rgb", colorconv.LRGBToRGB}
	lrgbToXYZ65  = Stage{"lrgb→xyz65", colorconv.LRGBToXYZ65}
	xyz65ToLRGB  = Stage{"xyz65→lrgb", colorconv.XYZ65ToLRGB}
	rgbToHSV     = Stage{"rgb→hsv", colorconv.RGBToHSV}
	hsvToRGB     = Stage{"hsv→rgb", colorconv.HSVToRGB}
	hsvToHSL     = Stage{"hsv→hsl", colorconv.HSVToHSL}
	hslToHSV     = Stage{"hsl→hsv", colorconv.HSLToHSV}
	hsvToHWB     = Stage{"hsv→hwb", colorconv.HSVToHWB}
	hwbToHSV     = Stage{"hwb→hsv", colorconv.HWBToHSV}
	xyz65ToOklab = Stage{"xyz65→oklab", colorconv.XYZ65ToOklab}
	oklabToXYZ65 = Stage{"oklab→xyz65", colorconv.OklabToXYZ65}
	oklabToOklch = Stage{"oklab→oklch", colorconv.OklabToOklch}
	oklchToOklab = Stage{"oklch→oklab", colorconv.OklchToOklab}
	xyz50ToLab   = Stage{"xyz50→lab", colorconv.XYZ50ToLab}
	labToXYZ50   = Stage{"lab→xyz50", colorconv.LabToXYZ50}
	labToLCH     = Stage{"lab→lch", colorconv.LabToLCH}
	lchToLab     = Stage{"lch→lab", colorconv.LCHToLab}
	xyz65ToXYZ50 = Stage{"xyz65→xyz50", colorconv.XYZ65ToXYZ50}
	xyz50ToXYZ65 = Stage{"xyz50→xyz65", colorconv.XYZ50ToXYZ65}
)
