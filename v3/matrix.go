/*
 * matrix.go, part of rotalib.
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero = 1e-12

// Matrix is a set of row vectors in 3D space, backed by a gonum Dense
// matrix with exactly 3 columns. Within this package "vector" always means
// a row: the cartesian coordinates of a single point.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with n vectors.
func Zeros(n int) *Matrix {
	return &Matrix{mat.NewDense(n, 3, make([]float64, n*3))}
}

// NewVecs builds a Matrix from a flat, row-major slice of coordinates. len(data)
// must be a multiple of 3.
func NewVecs(data []float64) (*Matrix, error) {
	if len(data)%3 != 0 {
		return nil, fmt.Errorf("v3: data length %d is not a multiple of 3", len(data))
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return &Matrix{mat.NewDense(len(data)/3, 3, cp)}, nil
}

// NVecs returns the number of vectors (rows) held by F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic("v3: matrix does not have 3 columns")
	}
	return r
}

// VecView returns a view of the i-th vector. Changes to the view are
// reflected in F and vice versa.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

// Copy copies A into F. F must have the same shape as A.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

// Set sets the (i,j) entry of F.
func (F *Matrix) Set(i, j int, v float64) {
	F.Dense.Set(i, j, v)
}

// Sub puts A-B in F.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

// Add puts A+B in F.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

// AddVec adds the single-row vector to every row of A, putting the result in F.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	vr, vc := vec.Dims()
	if vr != 1 || vc != ac {
		panic("v3: AddVec shape mismatch")
	}
	if F != A {
		F.Copy(A)
	}
	for i := 0; i < ar; i++ {
		row := F.VecView(i)
		row.Add(row, vec)
	}
}

// SubVec subtracts the single-row vector from every row of A, putting the result in F.
func (F *Matrix) SubVec(A, vec *Matrix) {
	neg := Zeros(1)
	neg.Scale(-1, vec)
	F.AddVec(A, neg)
}

// Scale multiplies every element of A by f, putting the result in F.
func (F *Matrix) Scale(f float64, A *Matrix) {
	F.Dense.Scale(f, A.Dense)
}

// Mul puts the matrix product A*B in F. It is a direct call to
// mat.Dense.Mul and adds no aliasing handling of its own.
func (F *Matrix) Mul(A, B mat.Matrix) {
	F.Dense.Mul(A, B)
}

// TCopy sets F to the transpose of A.
func (F *Matrix) TCopy(A mat.Matrix) {
	F.Dense.CloneFrom(A.T())
}

// Dot returns the dot product of the first vector of F and the first vector of B.
func (F *Matrix) Dot(B *Matrix) float64 {
	return mat.Dot(F.RowView(0), B.RowView(0))
}

// Cross puts the cross product of the first vector of a and the first vector of
// b into the first vector of F.
func (F *Matrix) Cross(a, b *Matrix) {
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

// Norm returns the euclidean (2-)norm of the first vector held by F. The
// order argument is accepted for signature symmetry with other norm
// families but only the 2-norm is implemented; order is ignored.
func (F *Matrix) Norm(order float64) float64 {
	v := F.RowView(0)
	var s float64
	for i := 0; i < v.Len(); i++ {
		s += v.AtVec(i) * v.AtVec(i)
	}
	return math.Sqrt(s)
}

// Unit normalizes the first vector of A, putting the result in F.
func (F *Matrix) Unit(A *Matrix) {
	if F != A {
		F.Copy(A)
	}
	n := F.Norm(0)
	if n == 0 {
		panic("v3: cannot normalize a zero-length vector")
	}
	F.Scale(1/n, F)
}

// SomeVecs fills F with the vectors of A indexed by clist, in the given order.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic("v3: SomeVecs shape mismatch")
	}
	for row, idx := range clist {
		for j := 0; j < 3; j++ {
			F.Set(row, j, A.At(idx, j))
		}
	}
}

// SetVecs writes each vector of A back into F at the row indices in clist.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() != len(clist) {
		panic("v3: SetVecs shape mismatch")
	}
	for row, idx := range clist {
		for j := 0; j < 3; j++ {
			F.Set(idx, j, A.At(row, j))
		}
	}
}

// ScaleByCol scales every row of A by the matching entry of the Nx1 column
// vector col, putting the result in F.
func (F *Matrix) ScaleByCol(A *Matrix, col *mat.Dense) {
	ar, _ := A.Dims()
	cr, cc := col.Dims()
	if ar != cr || cc != 1 {
		panic("v3: ScaleByCol shape mismatch")
	}
	if F != A {
		F.Copy(A)
	}
	for i := 0; i < ar; i++ {
		s := col.At(i, 0)
		row := F.VecView(i)
		row.Scale(s, row)
	}
}

// SwapVecs exchanges vectors i and j in place.
func (F *Matrix) SwapVecs(i, j int) {
	var tmp [3]float64
	for k := 0; k < 3; k++ {
		tmp[k] = F.At(i, k)
	}
	for k := 0; k < 3; k++ {
		F.Set(i, k, F.At(j, k))
		F.Set(j, k, tmp[k])
	}
}

// Ones returns a column vector of n ones, useful as a dummy mass/weight vector.
func Ones(n int) *mat.Dense {
	d := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		d.Set(i, 0, 1)
	}
	return d
}
