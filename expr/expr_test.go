package expr

import (
	"math"
	"testing"
)

func TestConstFolding(t *testing.T) {
	sum := Add(Const(2), Const(3))
	if _, ok := sum.(Const); !ok {
		t.Fatalf("expected Add of two literals to fold to Const, got %T", sum)
	}
	if sum.Eval(nil) != 5 {
		t.Errorf("expected 5, got %f", sum.Eval(nil))
	}
}

func TestVarSubstitution(t *testing.T) {
	e := Sum{Var("chi0"), Const(1)}
	got := e.Eval(map[string]float64{"chi0": 2.5})
	if got != 3.5 {
		t.Errorf("expected 3.5, got %f", got)
	}
}

func TestSinCos(t *testing.T) {
	e := Cos{Const(0)}
	if e.Eval(nil) != 1 {
		t.Errorf("cos(0) should be 1, got %f", e.Eval(nil))
	}
}

func TestRotationZMatrixAtZeroIsIdentity(t *testing.T) {
	m := RotationZMatrix(Var("chi"))
	x, y, z := m.EvalPoint(1, 0, 0, map[string]float64{"chi": 0})
	if math.Abs(x-1) > 1e-12 || math.Abs(y) > 1e-12 || math.Abs(z) > 1e-12 {
		t.Errorf("expected identity at chi=0, got (%f,%f,%f)", x, y, z)
	}
}

func TestRotationZMatrixQuarterTurn(t *testing.T) {
	m := RotationZMatrix(Var("chi"))
	x, y, _ := m.EvalPoint(1, 0, 0, map[string]float64{"chi": math.Pi / 2})
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("expected (0,1,0), got (%f,%f)", x, y)
	}
}

func TestComposeAppliesRightOperandFirst(t *testing.T) {
	a := TranslationMatrix(Const(1), Const(0), Const(0))
	b := RotationZMatrix(Const(math.Pi))
	composed := Compose(a, b)
	x, y, _ := composed.EvalPoint(1, 0, 0, nil)
	if math.Abs(x-0) > 1e-9 || math.Abs(y-0) > 1e-9 {
		t.Errorf("unexpected composed transform result (%f,%f)", x, y)
	}
}
