package colorconv

import (
	"fmt"

	"github.com/kovidgoyal/colors/types"
)

var _ = fmt.Print

// Adapter converts one buffer into another. Every adapter in this package
// reads all of its inputs before writing, so in and out may alias.
type Adapter func(in, out *types.Buffer)

// Multiply writes m·v into out. out may alias v.
func Multiply(m *types.Matrix, v, out *types.Buffer) {
	v0, v1, v2 := v[0], v[1], v[2]
	out[0] = m[0][0]*v0 + m[0][1]*v1 + m[0][2]*v2
	out[1] = m[1][0]*v0 + m[1][1]*v1 + m[1][2]*v2
	out[2] = m[2][0]*v0 + m[2][1]*v1 + m[2][2]*v2
}

func mulMat3(a, b *types.Matrix) (out types.Matrix) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return
}

// Inverted returns the inverse of m computed from its adjugate.
func Inverted(m *types.Matrix) (ans types.Matrix, err error) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if det == 0 {
		return ans, fmt.Errorf("matrix is singular and cannot be inverted")
	}
	invDet := 1 / det
	adj := types.Matrix{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = invDet * adj[i][j]
		}
	}
	return
}

// mustInvert is only used on the fixed tables of this package, all of which
// are well conditioned.
func mustInvert(m *types.Matrix) types.Matrix {
	ans, err := Inverted(m)
	if err != nil {
		panic(err)
	}
	return ans
}
