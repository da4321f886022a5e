/*
 * primitives.go, part of rotalib.
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

	v3 "github.com/rmera/rotalib/v3"
)

// appzero is used to correct floating point errors; ~ machine epsilon for a
// float64, used by the gimbal-lock test in EulerAngles.
const appzero = 2.220446049250313e-16

// Deg2Rad converts degrees to radians.
func Deg2Rad(f float64) float64 { return f * math.Pi / 180 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(f float64) float64 { return f * 180 / math.Pi }

// Distance returns the euclidean distance between points a and b.
func Distance(a, b *v3.Matrix) float64 {
	d := v3.Zeros(1)
	d.Sub(a, b)
	return d.Norm(0)
}

// Distance2 returns the squared euclidean distance between a and b.
func Distance2(a, b *v3.Matrix) float64 {
	d := Distance(a, b)
	return d * d
}

// Angle returns the angle in radians between vectors v1 and v2. It does not
// check for correctness: zero-length input yields NaN.
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(0) * v2.Norm(0)
	arg := v1.Dot(v2) / normproduct
	if math.Abs(arg-1) <= appzero {
		arg = 1
	} else if math.Abs(arg+1) <= appzero {
		arg = -1
	}
	angle := math.Acos(arg)
	if math.Abs(angle) <= appzero {
		return 0
	}
	return angle
}

// BondAngle returns the angle a-b-c in [0,pi], i.e. the angle subtended at b
// by the bonds to a and c.
func BondAngle(a, b, c *v3.Matrix) float64 {
	ba := v3.Zeros(1)
	bc := v3.Zeros(1)
	ba.Sub(a, b)
	bc.Sub(c, b)
	return Angle(ba, bc)
}

// DihedralAngle returns the dihedral angle omega in (-pi,pi] defined by the
// planes abc and bcd, sign-consistent with the IUPAC convention: positive
// means a right-handed rotation of d about bc, looking from b to c.
func DihedralAngle(a, b, c, d *v3.Matrix) float64 {
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)

	bmascaled := v3.Zeros(1)
	bmascaled.Scale(cmb.Norm(0), bma)

	v1 := v3.Zeros(1)
	v1.Cross(bma, cmb)
	v2 := v3.Zeros(1)
	v2.Cross(cmb, dmc)

	first := bmascaled.Dot(v2)
	second := v1.Dot(v2)
	return math.Atan2(first, second)
}

// CreateRefFrame builds a right-handed orthonormal basis (xhat, yhat, zhat)
// with zhat along mid->up and xhat perpendicular to the plane spanned by
// (mid->up, mid->side).
func CreateRefFrame(mid, up, side *v3.Matrix) (xhat, yhat, zhat *v3.Matrix) {
	zhat = v3.Zeros(1)
	tmp := v3.Zeros(1)
	tmp.Sub(up, mid)
	zhat.Unit(tmp)

	toSide := v3.Zeros(1)
	toSide.Sub(side, mid)

	xhat = v3.Zeros(1)
	xhat.Cross(toSide, zhat)
	xhat.Unit(xhat)

	yhat = v3.Zeros(1)
	yhat.Cross(zhat, xhat)
	return xhat, yhat, zhat
}

// EulerAngles extracts the (alpha, beta, gamma) Euler angles (z-x-z
// convention) that rotate the global frame onto the local frame defined by
// (xhat, yhat, zhat). Handles the gimbal case: when the projection of zhat
// onto the global xy plane is smaller than machine epsilon, alpha is set to
// 0, beta to 0 or pi depending on the sign of zhat's z component, and gamma
// is computed directly from xhat.
func EulerAngles(xhat, yhat, zhat *v3.Matrix) (alpha, beta, gamma float64) {
	zx, zy, zz := zhat.At(0, 0), zhat.At(0, 1), zhat.At(0, 2)
	projxy := math.Hypot(zx, zy)
	if projxy < appzero {
		alpha = 0
		if zz >= 0 {
			beta = 0
		} else {
			beta = math.Pi
		}
		gamma = -math.Atan2(xhat.At(0, 1), xhat.At(0, 0))
		return alpha, beta, gamma
	}
	alpha = math.Atan2(zx, -zy)
	beta = math.Atan2(projxy, zz)
	gamma = math.Atan2(xhat.At(0, 2), yhat.At(0, 2))
	return alpha, beta, gamma
}
