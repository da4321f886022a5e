package rotalib

import "testing"

func fixtureStore() *AtomStore {
	s := NewAtomStore()
	s.Insert(&Atom{ID: 1, Name: "N", CompID: "SER", Chain: "A", SeqID: 1})
	s.Insert(&Atom{ID: 2, Name: "CA", CompID: "SER", Chain: "A", SeqID: 1})
	s.Insert(&Atom{ID: 3, Name: "N", CompID: "ARG", Chain: "A", SeqID: 2})
	return s
}

func TestInsertPreservesOrderOnReplace(t *testing.T) {
	s := fixtureStore()
	s.Insert(&Atom{ID: 1, Name: "N", CompID: "SER", Chain: "A", SeqID: 1, X: 9})
	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 atoms after replacing an existing id, got %d", len(all))
	}
	if all[0].X != 9 {
		t.Errorf("expected the replaced atom's fields to update in place")
	}
}

func TestFilterByCompID(t *testing.T) {
	s := fixtureStore()
	out := s.Filter(FilterSpec{CompID: "ARG"})
	if len(out) != 1 || out[0].ID != 3 {
		t.Errorf("expected exactly atom 3, got %v", out)
	}
}

func TestFilterByResidue(t *testing.T) {
	s := fixtureStore()
	out := s.FilterByResidue(ResidueKey{SeqID: 1, Chain: "A"})
	if len(out) != 2 {
		t.Fatalf("expected 2 atoms in residue 1, got %d", len(out))
	}
}

func TestFilterIncludeMatchesAnyAllowedValue(t *testing.T) {
	s := fixtureStore()
	out := s.Filter(FilterSpec{Include: map[string][]string{"comp_id": {"SER", "ARG"}, "name": {"N"}}})
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 3 {
		t.Errorf("expected atoms 1 and 3 (name N in either residue), got %v", out)
	}
}

func TestFilterExcludeRejectsAnyMatch(t *testing.T) {
	s := fixtureStore()
	out := s.Filter(FilterSpec{Exclude: map[string][]string{"comp_id": {"ARG"}}})
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 2 {
		t.Errorf("expected the two SER atoms, got %v", out)
	}
}

func TestFilterAscendingIDOrderRegardlessOfInsertion(t *testing.T) {
	s := NewAtomStore()
	s.Insert(&Atom{ID: 5, CompID: "SER"})
	s.Insert(&Atom{ID: 1, CompID: "SER"})
	s.Insert(&Atom{ID: 3, CompID: "SER"})
	out := s.Filter(FilterSpec{CompID: "SER"})
	if len(out) != 3 || out[0].ID != 1 || out[1].ID != 3 || out[2].ID != 5 {
		t.Errorf("expected ascending atom-id order, got %v", out)
	}
}

func TestProjectReturnsRequestedAttributes(t *testing.T) {
	s := fixtureStore()
	out := s.Project(FilterSpec{CompID: "SER", Project: []string{"name", "comp_id"}})
	if len(out) != 2 {
		t.Fatalf("expected 2 tuples, got %d", len(out))
	}
	if out[0].ID != 1 || out[0].Values["name"] != "N" || out[0].Values["comp_id"] != "SER" {
		t.Errorf("unexpected first tuple: %+v", out[0])
	}
}

func TestGroupBucketsByAttribute(t *testing.T) {
	s := fixtureStore()
	groups := s.Group(FilterSpec{Project: []string{"id"}, Group: "comp_id"})
	if len(groups["SER"]) != 2 {
		t.Errorf("expected 2 atoms in the SER bucket, got %d", len(groups["SER"]))
	}
	if len(groups["ARG"]) != 1 {
		t.Errorf("expected 1 atom in the ARG bucket, got %d", len(groups["ARG"]))
	}
}

func TestResiduesSortedDeterministically(t *testing.T) {
	s := fixtureStore()
	keys := s.Residues()
	if len(keys) != 2 {
		t.Fatalf("expected 2 distinct residues, got %d", len(keys))
	}
	if keys[0].SeqID != 1 || keys[1].SeqID != 2 {
		t.Errorf("expected residues sorted by SeqID, got %v", keys)
	}
}

func TestMarkSelectionTargetOverridesSurrounding(t *testing.T) {
	s := fixtureStore()
	s.MarkSelection([]int{1}, []int{1, 2})
	if s.Lookup(1).SelectionState != Target {
		t.Errorf("expected atom 1 to be Target, overriding its Surrounding membership")
	}
	if s.Lookup(2).SelectionState != Surrounding {
		t.Errorf("expected atom 2 to remain Surrounding")
	}
	if s.Lookup(3).SelectionState != Ignored {
		t.Errorf("expected atom 3 to be Ignored")
	}
}

func TestCopyDeepCopiesConnectionsAndAngles(t *testing.T) {
	a := &Atom{ID: 1, Connections: []int{2, 3}, DihedralAngles: map[string]float64{"chi0": 1.5}}
	b := a.Copy()
	b.Connections[0] = 99
	b.DihedralAngles["chi0"] = 2.5
	if a.Connections[0] == 99 {
		t.Errorf("Copy must not alias Connections")
	}
	if a.DihedralAngles["chi0"] == 2.5 {
		t.Errorf("Copy must not alias DihedralAngles")
	}
}
