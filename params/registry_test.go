package params

import "testing"

func TestDefaultHasCoreElements(t *testing.T) {
	r := Default()
	for _, e := range []string{"H", "C", "N", "O"} {
		if _, ok := r.CovalentRadii[e]; !ok {
			t.Errorf("Default registry missing covalent radius for %s", e)
		}
		if _, ok := r.VdwRadii[e]; !ok {
			t.Errorf("Default registry missing vdw radius for %s", e)
		}
	}
}

func TestBondLengthCandidatesCount(t *testing.T) {
	r := Default()
	got := r.BondLengthCandidates("C", "N")
	if len(got) != 9 {
		t.Fatalf("expected 9 candidates (3x3 hybridization product), got %d", len(got))
	}
}

func TestBondLengthCandidatesUnknownElement(t *testing.T) {
	r := Default()
	got := r.BondLengthCandidates("C", "Xx")
	if got != nil {
		t.Errorf("expected nil for unknown element, got %v", got)
	}
}

func TestParseOverridesRejectsBadCutoffs(t *testing.T) {
	_, err := ParseOverrides([]string{"cutoff_start=5", "cutoff_end=2"})
	if err == nil {
		t.Fatal("expected ConfigurationError for cutoff_start >= cutoff_end")
	}
}

func TestParseOverridesAppliesCoefficient(t *testing.T) {
	r, err := ParseOverrides([]string{"lj_epsilon=2.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Coefficients.LJEpsilon != 2.5 {
		t.Errorf("expected lj_epsilon=2.5, got %f", r.Coefficients.LJEpsilon)
	}
}

func TestParseOverridesRejectsMalformedPair(t *testing.T) {
	if _, err := ParseOverrides([]string{"not-a-pair"}); err == nil {
		t.Fatal("expected error for malformed override")
	}
}

func TestRotatableBondsSeeded(t *testing.T) {
	r := Default()
	if len(r.RotatableBonds["SER"]) != 1 {
		t.Errorf("expected 1 chi bond for SER, got %d", len(r.RotatableBonds["SER"]))
	}
	if len(r.RotatableBonds["ARG"]) != 4 {
		t.Errorf("expected 4 chi bonds for ARG, got %d", len(r.RotatableBonds["ARG"]))
	}
}
