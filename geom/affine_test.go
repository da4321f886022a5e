package geom

import (
	"math"
	"testing"
)

// TestRotamerIdentityAtZero checks the identity-rotation invariant a
// rotamer transform relies on: rotating by 0 must reproduce the input
// coordinates.
func TestRotamerIdentityAtZero(t *testing.T) {
	m := RotateZ(0)
	x, y, z := ApplyPoint(m, 1.5, -2.3, 4.1)
	if math.Abs(x-1.5) > 1e-9 || math.Abs(y+2.3) > 1e-9 || math.Abs(z-4.1) > 1e-9 {
		t.Errorf("RotateZ(0) should be identity, got (%f,%f,%f)", x, y, z)
	}
}

func TestTranslateThenInverse(t *testing.T) {
	tr := Translate(1, 2, 3)
	inv := Inverse4(tr)
	combined := Mult(tr, inv)
	x, y, z := ApplyPoint(combined, 5, 6, 7)
	if math.Abs(x-5) > 1e-9 || math.Abs(y-6) > 1e-9 || math.Abs(z-7) > 1e-9 {
		t.Errorf("translate composed with its inverse should be identity, got (%f,%f,%f)", x, y, z)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	m := RotateZ(math.Pi / 2)
	x, y, _ := ApplyPoint(m, 1, 0, 0)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("expected (0,1,0) after quarter turn, got (%f,%f)", x, y)
	}
}
