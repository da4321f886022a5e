package v3

import (
	"math"
	"testing"
)

func TestCrossDot(t *testing.T) {
	a, _ := NewVecs([]float64{1, 0, 0})
	b, _ := NewVecs([]float64{0, 1, 0})
	c := Zeros(1)
	c.Cross(a, b)
	if c.At(0, 0) != 0 || c.At(0, 1) != 0 || c.At(0, 2) != 1 {
		t.Errorf("cross product of x and y should be z, got %v %v %v", c.At(0, 0), c.At(0, 1), c.At(0, 2))
	}
	if a.Dot(b) != 0 {
		t.Errorf("orthogonal vectors should have zero dot product")
	}
}

func TestNormSub(t *testing.T) {
	a, _ := NewVecs([]float64{3, 4, 0})
	if math.Abs(a.Norm(0)-5) > 1e-12 {
		t.Errorf("expected norm 5, got %f", a.Norm(0))
	}
	b, _ := NewVecs([]float64{1, 1, 1})
	d := Zeros(1)
	d.Sub(a, b)
	want := []float64{2, 3, -1}
	for i, w := range want {
		if math.Abs(d.At(0, i)-w) > 1e-12 {
			t.Errorf("Sub: index %d, want %f got %f", i, w, d.At(0, i))
		}
	}
}

func TestSomeVecsSetVecs(t *testing.T) {
	m, _ := NewVecs([]float64{0, 0, 0, 1, 1, 1, 2, 2, 2})
	sub := Zeros(2)
	sub.SomeVecs(m, []int{0, 2})
	if sub.At(1, 0) != 2 {
		t.Errorf("expected row 1 to be vector 2, got %f", sub.At(1, 0))
	}
	sub.Scale(10, sub)
	m.SetVecs(sub, []int{0, 2})
	if m.At(2, 0) != 20 {
		t.Errorf("SetVecs did not write back, got %f", m.At(2, 0))
	}
}
