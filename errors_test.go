package rotalib

import "testing"

func TestDecorateWrapsMessageOutermostFirst(t *testing.T) {
	err := NewUnknownResidue("XYZ")
	err.Decorate("residue 42")
	err.Decorate("chain A")
	got := err.Error()
	want := "chain A: residue 42: unknown residue: XYZ"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConcreteKindsSatisfyError(t *testing.T) {
	var errs []Error
	errs = append(errs,
		NewParameterError("missing %s", "vdw radius"),
		NewGeometryDegenerate("collinear atoms %d,%d,%d", 1, 2, 3),
		NewConfigurationError("cutoff_start %f >= cutoff_end %f", 5.0, 2.5),
		NewUnknownResidue("XYZ"),
	)
	for _, e := range errs {
		if e.Error() == "" {
			t.Errorf("expected a non-empty message from %T", e)
		}
	}
}
