package colorconv

import (
	"github.com/kovidgoyal/colors/types"
)

var bradford = types.Matrix{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

var invBradford = mustInvert(&bradford)

// Per channel LMS scale factors between the two reference whites, computed
// once from the Bradford cone responses of each white.
var scaleD65ToD50, scaleD50ToD65 = func() (a, b types.Buffer) {
	var lms65, lms50 types.Buffer
	Multiply(&bradford, &WhiteD65, &lms65)
	Multiply(&bradford, &WhiteD50, &lms50)
	for i := range 3 {
		a[i] = lms50[i] / lms65[i]
		b[i] = lms65[i] / lms50[i]
	}
	return
}()

func adapt(in, out *types.Buffer, scale *types.Buffer) {
	var lms types.Buffer
	Multiply(&bradford, in, &lms)
	lms[0] *= scale[0]
	lms[1] *= scale[1]
	lms[2] *= scale[2]
	Multiply(&invBradford, &lms, out)
}

// XYZ65ToXYZ50 re-expresses a D65 relative XYZ color relative to D50.
func XYZ65ToXYZ50(in, out *types.Buffer) { adapt(in, out, &scaleD65ToD50) }

// XYZ50ToXYZ65 is the inverse of XYZ65ToXYZ50.
func XYZ50ToXYZ65(in, out *types.Buffer) { adapt(in, out, &scaleD50ToD65) }

// ChromaticAdaptationMatrix constructs a 3x3 matrix that adapts XYZ values
// from sourceWhite to targetWhite using the Bradford method. The adapters
// above apply the same transform in three steps, this fused form is for
// callers that want to cache a single matrix.
func ChromaticAdaptationMatrix(sourceWhite, targetWhite *types.Buffer) types.Matrix {
	var src, tgt types.Buffer
	Multiply(&bradford, sourceWhite, &src)
	Multiply(&bradford, targetWhite, &tgt)
	diag := types.Matrix{
		{tgt[0] / src[0], 0, 0},
		{0, tgt[1] / src[1], 0},
		{0, 0, tgt[2] / src[2]},
	}
	tmp := mulMat3(&diag, &bradford)
	return mulMat3(&invBradford, &tmp)
}
