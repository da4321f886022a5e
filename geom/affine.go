/*
 * affine.go, part of rotalib.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Identity4 returns a 4x4 identity homogeneous matrix.
func Identity4() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Translate returns the homogeneous translation matrix for (tx,ty,tz).
func Translate(tx, ty, tz float64) *mat.Dense {
	m := Identity4()
	m.Set(0, 3, tx)
	m.Set(1, 3, ty)
	m.Set(2, 3, tz)
	return m
}

// RotateZ returns the homogeneous matrix rotating theta radians about z,
// the canonical bond-axis rotation used to sweep a dihedral (spec 4.E, step
// 3).
func RotateZ(theta float64) *mat.Dense {
	m := Identity4()
	c, s := math.Cos(theta), math.Sin(theta)
	m.Set(0, 0, c)
	m.Set(0, 1, -s)
	m.Set(1, 0, s)
	m.Set(1, 1, c)
	return m
}

// RotateY returns the homogeneous matrix rotating theta radians about y.
func RotateY(theta float64) *mat.Dense {
	m := Identity4()
	c, s := math.Cos(theta), math.Sin(theta)
	m.Set(0, 0, c)
	m.Set(0, 2, s)
	m.Set(2, 0, -s)
	m.Set(2, 2, c)
	return m
}

// RotateX returns the homogeneous matrix rotating theta radians about x.
func RotateX(theta float64) *mat.Dense {
	m := Identity4()
	c, s := math.Cos(theta), math.Sin(theta)
	m.Set(1, 1, c)
	m.Set(1, 2, -s)
	m.Set(2, 1, s)
	m.Set(2, 2, c)
	return m
}

// Mult multiplies the given 4x4 homogeneous matrices left to right and
// returns the product.
func Mult(ms ...*mat.Dense) *mat.Dense {
	if len(ms) == 0 {
		return Identity4()
	}
	acc := ms[0]
	for _, m := range ms[1:] {
		next := mat.NewDense(4, 4, nil)
		next.Mul(acc, m)
		acc = next
	}
	return acc
}

// Inverse4 returns the inverse of a 4x4 homogeneous matrix. It panics if the
// matrix is singular, which for well-formed rigid transforms never happens.
func Inverse4(m *mat.Dense) *mat.Dense {
	inv := mat.NewDense(4, 4, nil)
	if err := inv.Inverse(m); err != nil {
		panic("geom: cannot invert singular affine matrix: " + err.Error())
	}
	return inv
}

// ApplyPoint applies the homogeneous transform m to the cartesian point
// (x,y,z) and returns the resulting cartesian coordinates.
func ApplyPoint(m *mat.Dense, x, y, z float64) (float64, float64, float64) {
	v := mat.NewVecDense(4, []float64{x, y, z, 1})
	out := mat.NewVecDense(4, nil)
	out.MulVec(m, v)
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}
