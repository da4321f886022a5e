package potential

import (
	"math"
	"testing"

	rotalib "github.com/rmera/rotalib"
	"github.com/rmera/rotalib/params"
)

func pair(d float64) (*rotalib.Atom, *rotalib.Atom) {
	i := &rotalib.Atom{ID: 1, Symbol: "C", X: 0, Y: 0, Z: 0}
	j := &rotalib.Atom{ID: 2, Symbol: "C", X: d, Y: 0, Z: 0}
	return i, j
}

func TestHardSphereClash(t *testing.T) {
	i, j := pair(1.0)
	sigma := 1.5
	got := HardSphere(i, j, Params{Sigma: &sigma})
	if !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %f", got)
	}
}

func TestHardSphereSymmetric(t *testing.T) {
	i, j := pair(1.0)
	sigma := 1.5
	p := Params{Sigma: &sigma}
	if HardSphere(i, j, p) != HardSphere(j, i, p) {
		t.Error("hard_sphere should be symmetric")
	}
}

func TestLennardJonesZeroAtSigma(t *testing.T) {
	sigma := 2.0
	i, j := pair(sigma)
	eps := 1.0
	got := LennardJones(i, j, Params{Sigma: &sigma, Epsilon: &eps})
	if math.Abs(got) > 1e-12 {
		t.Errorf("expected 0 at r=sigma, got %f", got)
	}
}

func TestCompositeContinuityAtStart(t *testing.T) {
	reg := params.Default()
	sigma := 1.5
	cs := reg.Coefficients.CutoffStart
	r := cs * sigma
	i, j := pair(r)
	p := CompositeParams{
		Params: Params{Sigma: &sigma, Registry: reg},
		HBond:  HBondParams{Params: Params{Sigma: &sigma, Registry: reg}},
	}
	got := Composite(i, j, p)
	want := LennardJones(i, j, p.Params) + Coulomb(i, j, p.Params) + HBond(i, j, p.HBond)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("expected continuity at c_s*sigma: got %f want %f", got, want)
	}
}

func TestCompositeZeroAtEnd(t *testing.T) {
	reg := params.Default()
	sigma := 1.5
	ce := reg.Coefficients.CutoffEnd
	r := ce * sigma
	i, j := pair(r)
	p := CompositeParams{
		Params: Params{Sigma: &sigma, Registry: reg},
		HBond:  HBondParams{Params: Params{Sigma: &sigma, Registry: reg}},
	}
	got := Composite(i, j, p)
	if math.Abs(got) > 1e-10 {
		t.Errorf("expected 0 at c_e*sigma, got %f", got)
	}
}

func TestTorsionZeroOutsideWindow(t *testing.T) {
	reg := params.Default()
	got := Torsion(reg, math.Pi, TorsionParams{Epsilon: 1})
	if got != 0 {
		t.Errorf("expected 0 outside +-pi/phase window, got %f", got)
	}
}

func TestTorsionInsideWindow(t *testing.T) {
	reg := params.Default()
	got := Torsion(reg, 0, TorsionParams{Epsilon: 1})
	want := reg.Coefficients.Tk * 0.5 * 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %f at omega=0, got %f", want, got)
	}
}
