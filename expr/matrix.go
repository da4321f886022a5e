/*
 * matrix.go, part of rotalib.
 *
 * Copyright 2024 Raul Mera <rmeraaatacademicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package expr

// AffineMatrix is a symbolic 4x4 homogeneous transform: each entry is
// either a Const or an expression in the movable atom's chi variables.
type AffineMatrix [4][4]Node

// IdentityMatrix returns the symbolic 4x4 identity.
func IdentityMatrix() AffineMatrix {
	var m AffineMatrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				m[i][j] = Const(1)
			} else {
				m[i][j] = Const(0)
			}
		}
	}
	return m
}

// TranslationMatrix returns the symbolic translation by (tx,ty,tz).
func TranslationMatrix(tx, ty, tz Node) AffineMatrix {
	m := IdentityMatrix()
	m[0][3] = tx
	m[1][3] = ty
	m[2][3] = tz
	return m
}

// RotationZMatrix returns the symbolic rotation about z by angle theta,
// the canonical bond-axis rotation used to sweep a chi torsion.
func RotationZMatrix(theta Node) AffineMatrix {
	m := IdentityMatrix()
	c, s := Cos{theta}, Sin{theta}
	m[0][0] = c
	m[0][1] = Negate(s)
	m[1][0] = s
	m[1][1] = c
	return m
}

// LiteralMatrix lifts a numeric 4x4 matrix (row-major) into an
// AffineMatrix of Const entries.
func LiteralMatrix(rows [4][4]float64) AffineMatrix {
	var m AffineMatrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = Const(rows[i][j])
		}
	}
	return m
}

// Compose multiplies two AffineMatrix values symbolically, left to
// right, mirroring geom.Mult's numeric convention.
func Compose(a, b AffineMatrix) AffineMatrix {
	var out AffineMatrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum Node = Const(0)
			for k := 0; k < 4; k++ {
				sum = Add(sum, Mul(a[i][k], b[k][j]))
			}
			out[i][j] = sum
		}
	}
	return out
}

// ComposeAll composes the given matrices left to right.
func ComposeAll(ms ...AffineMatrix) AffineMatrix {
	if len(ms) == 0 {
		return IdentityMatrix()
	}
	acc := ms[0]
	for _, m := range ms[1:] {
		acc = Compose(acc, m)
	}
	return acc
}

// EvalPoint substitutes vals into m and applies the resulting numeric
// transform to the homogeneous point (x,y,z,1).
func (m AffineMatrix) EvalPoint(x, y, z float64, vals map[string]float64) (float64, float64, float64) {
	p := [4]float64{x, y, z, 1}
	var out [4]float64
	for i := 0; i < 4; i++ {
		row := 0.0
		for j := 0; j < 4; j++ {
			row += m[i][j].Eval(vals) * p[j]
		}
		out[i] = row
	}
	return out[0], out[1], out[2]
}
