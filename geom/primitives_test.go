package geom

import (
	"math"
	"testing"

	v3 "github.com/rmera/rotalib/v3"
)

func vec(x, y, z float64) *v3.Matrix {
	m, _ := v3.NewVecs([]float64{x, y, z})
	return m
}

// TestDistanceMonotonicity checks that distance2(i,j) ==
// distance(i,j)^2 within 1e-12 relative error.
func TestDistanceMonotonicity(t *testing.T) {
	a := vec(0, 0, 0)
	b := vec(3, 4, 0)
	d := Distance(a, b)
	d2 := Distance2(a, b)
	if math.Abs(d2-d*d) > 1e-12 {
		t.Errorf("distance2 mismatch: d=%f d2=%f d*d=%f", d, d2, d*d)
	}
	if math.Abs(d-5) > 1e-12 {
		t.Errorf("expected distance 5, got %f", d)
	}
}

// TestDihedralPeriodicity checks property 3: dihedral_angle is invariant
// mod 2pi (the function itself always returns the canonical branch, so this
// checks that the value and the value plus a full turn compare equal
// modulo 2pi).
func TestDihedralPeriodicity(t *testing.T) {
	a := vec(1, 0, 0)
	b := vec(0, 0, 0)
	c := vec(0, 0, 1)
	d := vec(0, 1, 1)
	w1 := DihedralAngle(a, b, c, d)
	w2 := DihedralAngle(a, b, c, d) + 2*math.Pi
	diff := math.Mod(w1-w2+3*math.Pi, 2*math.Pi) - math.Pi
	if math.Abs(diff) > 1e-9 {
		t.Errorf("dihedral not periodic: %f vs %f", w1, w2)
	}
}

func TestDihedralKnownValues(t *testing.T) {
	// A planar all-cis arrangement should give a dihedral of 0.
	a := vec(1, 1, 0)
	b := vec(0, 0, 0)
	c := vec(0, 0, 1)
	d := vec(1, 1, 1)
	w := DihedralAngle(a, b, c, d)
	if math.Abs(w) > 1e-9 {
		t.Errorf("expected 0 dihedral for eclipsed planar case, got %f", w)
	}
	// A trans (anti) arrangement should give +-pi.
	d2 := vec(-1, -1, 1)
	w2 := DihedralAngle(a, b, c, d2)
	if math.Abs(math.Abs(w2)-math.Pi) > 1e-9 {
		t.Errorf("expected +-pi dihedral for anti case, got %f", w2)
	}
}

func TestBondAngleRightAngle(t *testing.T) {
	a := vec(1, 0, 0)
	b := vec(0, 0, 0)
	c := vec(0, 1, 0)
	theta := BondAngle(a, b, c)
	if math.Abs(theta-math.Pi/2) > 1e-9 {
		t.Errorf("expected right angle, got %f", theta)
	}
}

func TestEulerGimbal(t *testing.T) {
	xhat := vec(1, 0, 0)
	yhat := vec(0, 1, 0)
	zhat := vec(0, 0, 1)
	alpha, beta, _ := EulerAngles(xhat, yhat, zhat)
	if alpha != 0 || beta != 0 {
		t.Errorf("expected gimbal case (alpha=0, beta=0), got alpha=%f beta=%f", alpha, beta)
	}
}
