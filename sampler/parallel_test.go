package sampler

import (
	"context"
	"math"
	"testing"

	rotalib "github.com/rmera/rotalib"
	"github.com/rmera/rotalib/params"
)

func twoResidueStore() (*rotalib.AtomStore, rotalib.ResidueKey, rotalib.ResidueKey) {
	s := rotalib.NewAtomStore()
	serKey := rotalib.ResidueKey{SeqID: 1, Chain: "A"}
	argKey := rotalib.ResidueKey{SeqID: 1, Chain: "B"}

	ser := []*rotalib.Atom{
		{ID: 1, Symbol: "N", Name: "N", CompID: "SER", SeqID: serKey.SeqID, Chain: serKey.Chain, X: 0, Y: 1.4, Z: 0},
		{ID: 2, Symbol: "C", Name: "CA", CompID: "SER", SeqID: serKey.SeqID, Chain: serKey.Chain, X: 0, Y: 0, Z: 0},
		{ID: 3, Symbol: "C", Name: "CB", CompID: "SER", SeqID: serKey.SeqID, Chain: serKey.Chain, X: 1.53, Y: -0.5, Z: 0},
		{ID: 4, Symbol: "O", Name: "OG", CompID: "SER", SeqID: serKey.SeqID, Chain: serKey.Chain, X: 2.4, Y: 0.3, Z: 0.8},
		{ID: 5, Symbol: "C", Name: "C", CompID: "SER", SeqID: serKey.SeqID, Chain: serKey.Chain, X: -1.4, Y: -0.7, Z: 0},
	}
	arg := []*rotalib.Atom{
		{ID: 101, Symbol: "N", Name: "N", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: 0, Y: 1.4, Z: 0, Connections: []int{102}},
		{ID: 102, Symbol: "C", Name: "CA", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: 0, Y: 0, Z: 0, Connections: []int{101, 103, 110}},
		{ID: 103, Symbol: "C", Name: "CB", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: 1.5, Y: -0.5, Z: 0.2, Connections: []int{102, 104}},
		{ID: 104, Symbol: "C", Name: "CG", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: 2.8, Y: 0.3, Z: 0.6, Connections: []int{103, 105}},
		{ID: 105, Symbol: "C", Name: "CD", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: 4.0, Y: -0.2, Z: 1.0, Connections: []int{104, 106}},
		{ID: 106, Symbol: "N", Name: "NE", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: 5.3, Y: 0.5, Z: 1.4, Connections: []int{105, 107}},
		{ID: 107, Symbol: "C", Name: "CZ", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: 6.6, Y: -0.1, Z: 1.8, Connections: []int{106, 108, 109}},
		{ID: 108, Symbol: "N", Name: "NH1", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: 7.5, Y: 0.8, Z: 2.0, Connections: []int{107}},
		{ID: 109, Symbol: "N", Name: "NH2", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: 7.0, Y: -1.3, Z: 2.3, Connections: []int{107}},
		{ID: 110, Symbol: "C", Name: "C", CompID: "ARG", SeqID: argKey.SeqID, Chain: argKey.Chain, X: -1.4, Y: -0.7, Z: 0, Connections: []int{102}},
	}
	for _, a := range ser {
		s.Insert(a)
	}
	for _, a := range arg {
		s.Insert(a)
	}
	return s, serKey, argKey
}

// TestSweepManyConcurrentResiduesGetDisjointIDs runs two residues'
// sweeps over a worker pool with workers=2 and checks that the
// concurrent Sweep calls never collide on a pseudo-atom id and that the
// only store.Insert calls happen after both workers have joined: every
// returned atom lands in the store exactly once, at the id it was
// assigned.
func TestSweepManyConcurrentResiduesGetDisjointIDs(t *testing.T) {
	s, serKey, argKey := twoResidueStore()
	reg := params.Default()
	before := s.Len()

	grids := map[rotalib.ResidueKey]AngleGrid{
		serKey: {"chi0": {0, math.Pi}},
		argKey: ninetyDegreeGrid(),
	}
	energy := func(i, j *rotalib.Atom) float64 { return 0 }

	results, err := SweepMany(context.Background(), s, reg, []rotalib.ResidueKey{serKey, argKey}, grids, energy, Config{TopRank: 1}, 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	serOut, argOut := results[serKey], results[argKey]
	if len(serOut) == 0 || len(argOut) == 0 {
		t.Fatalf("expected pseudo-atoms for both residues, got %d and %d", len(serOut), len(argOut))
	}

	seen := make(map[int]bool)
	for _, a := range append(append([]*rotalib.Atom{}, serOut...), argOut...) {
		if seen[a.ID] {
			t.Fatalf("id %d assigned to more than one pseudo-atom across concurrent sweeps", a.ID)
		}
		seen[a.ID] = true
		if s.Lookup(a.ID) != a {
			t.Errorf("expected atom %d to be inserted into the store after SweepMany returns", a.ID)
		}
	}

	if got, want := s.Len(), before+len(serOut)+len(argOut); got != want {
		t.Errorf("expected store to grow by exactly the returned pseudo-atoms, got len %d want %d", got, want)
	}
}
