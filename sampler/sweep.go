/*
 * sweep.go, part of rotalib.
 *
 * Copyright 2024 Raul Mera <rmeraaatacademicosdotutadotcl>
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

package sampler

import (
	"context"
	"math"
	"sort"

	rotalib "github.com/rmera/rotalib"
	"github.com/rmera/rotalib/diag"
	"github.com/rmera/rotalib/geom"
	"github.com/rmera/rotalib/params"
	"github.com/rmera/rotalib/potential"
	"github.com/rmera/rotalib/rotamer"
	v3 "github.com/rmera/rotalib/v3"
)

// PairEnergy scores one (movable, surrounding) atom pair; sampler is
// agnostic to which potential.* function it wraps.
type PairEnergy func(i, j *rotalib.Atom) float64

// Config configures a single-residue Sweep.
type Config struct {
	CutoffAtom float64 // pair energies beyond this distance are skipped
	TopRank    int     // 0 means keep all rotamers

	// TorsionEpsilon parameterizes the torsion/bonded term added per
	// movable atom's depth-3 neighbor chain (potential.Torsion), scored
	// in addition to the pairwise energy against the surrounding atoms.
	// Zero means 1, the same "zero means the documented default" idiom
	// CutoffAtom's zero-means-unrestricted reads.
	TorsionEpsilon float64
	TorsionN       int
	TorsionPhase   int

	Sink diag.Sink
}

// Sweep samples one residue's rotatable bonds: it resolves the movable
// atoms and their compiled transforms,
// rebases the grid's angles against the input structure's current chi
// values, iterates the Cartesian product of angle combinations in
// sorted-chi-name order, scores each rotamer against the atoms tagged
// Surrounding plus a per-movable-atom torsion/bonded term over its
// depth-3 bonded neighbor chains, orders by energy ascending (ties ordered
// by chi-tuple lexicographic order then insertion id), keeps the first
// TopRank rotamers and writes rank/energy onto the new pseudo-atoms;
// rotamers of equal energy share a rank. An unknown residue type yields
// (nil, nil): zero rotamers, not an error.
//
// ctx is checked between rotamers: a cancelled context stops the combo
// loop and returns whatever rotamers had already been scored, along with
// ctx.Err(). Callers that don't need cancellation can pass
// context.Background().
//
// Sweep only reads store: it never inserts the pseudo-atoms it builds,
// so a caller can run many Sweeps concurrently over the same store, one
// per residue, without a data race. ids allocates the pseudo-atom ids;
// callers running several Sweeps concurrently must share one allocator
// so ids stay unique across residues. The caller is responsible for
// inserting the returned atoms into store once it is safe to do so.
func Sweep(ctx context.Context, store *rotalib.AtomStore, reg *params.Registry, key rotalib.ResidueKey, grid AngleGrid, energy PairEnergy, cfg Config, ids *IDAllocator) ([]*rotalib.Atom, error) {
	sink := cfg.Sink
	if sink == nil {
		sink = diag.Discard{}
	}

	model, ok := rotamer.Build(store, reg, key)
	if !ok {
		sink.Report("unknown-residue", rotalib.NewUnknownResidue(""))
		return nil, nil
	}

	deltaLists := make(AngleGrid, len(model.Chis))
	absoluteFor := make(map[string][]float64, len(model.Chis))
	for i := range model.Chis {
		name := rotamer.ChiName(i)
		current := model.CurrentChi(i)
		if vals, ok := grid[name]; ok && len(vals) > 0 {
			deltas := make([]float64, len(vals))
			for k, v := range vals {
				deltas[k] = v - current
			}
			deltaLists[name] = deltas
			absoluteFor[name] = vals
		} else {
			deltaLists[name] = []float64{0}
			absoluteFor[name] = []float64{current}
		}
	}

	combos := Product(deltaLists)
	if len(combos) == 0 {
		return nil, nil
	}

	surroundingAtoms := store.Filter(rotalib.FilterSpec{
		Include: map[string][]string{"selection_state": {rotalib.Surrounding.String()}},
	})

	targetAtoms := store.FilterByResidue(key)
	movableIDs := make([]int, 0, len(targetAtoms))
	for _, a := range targetAtoms {
		if model.Movable(a.ID) {
			movableIDs = append(movableIDs, a.ID)
		}
	}
	sort.Ints(movableIDs)

	type rotamerResult struct {
		atoms  []*rotalib.Atom
		energy float64
		chis   []float64
		id     int
	}
	results := make([]rotamerResult, 0, len(combos))

	names := sortedChiNames(deltaLists)

	tp := potential.TorsionParams{N: cfg.TorsionN, Phase: cfg.TorsionPhase, Epsilon: cfg.TorsionEpsilon}
	if tp.Epsilon == 0 {
		tp.Epsilon = 1
	}

	var ctxErr error
combos:
	for _, combo := range combos {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break combos
		default:
		}

		pseudo := make([]*rotalib.Atom, 0, len(movableIDs))
		e := 0.0
		absolutes := make(map[string]float64, len(names))
		for _, name := range names {
			idx := valueIndex(deltaLists[name], combo[name])
			absolutes[name] = absoluteFor[name][idx]
		}

		moved := make(map[int][3]float64, len(movableIDs))
		for _, id := range movableIDs {
			src := store.Lookup(id)
			tr, ok := model.Transform(id)
			if !ok {
				continue
			}
			x, y, z := tr.EvalPoint(src.X, src.Y, src.Z, combo)
			moved[id] = [3]float64{x, y, z}
		}
		posOf := func(id int) (float64, float64, float64, bool) {
			if p, ok := moved[id]; ok {
				return p[0], p[1], p[2], true
			}
			if a := store.Lookup(id); a != nil {
				return a.X, a.Y, a.Z, true
			}
			return 0, 0, 0, false
		}

		for _, id := range movableIDs {
			src := store.Lookup(id)
			pos, ok := moved[id]
			if !ok {
				continue
			}
			p := src.Copy()
			p.ID = ids.Next()
			p.X, p.Y, p.Z = pos[0], pos[1], pos[2]
			p.IsPseudo = true
			p.DihedralAngles = cloneMap(absolutes)
			pseudo = append(pseudo, p)

			if cfg.CutoffAtom > 0 {
				for _, s := range surroundingAtoms {
					if dist(p, s) <= cfg.CutoffAtom {
						e += energy(p, s)
					}
				}
			} else {
				for _, s := range surroundingAtoms {
					e += energy(p, s)
				}
			}

			e += torsionSum(store, src, posOf, reg, tp)
		}

		id := 0
		if len(pseudo) > 0 {
			id = pseudo[0].ID
		}
		chis := make([]float64, len(names))
		for i, name := range names {
			chis[i] = combo[name]
		}
		results = append(results, rotamerResult{atoms: pseudo, energy: e, chis: chis, id: id})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].energy != results[j].energy {
			if math.IsInf(results[i].energy, 1) {
				return false
			}
			if math.IsInf(results[j].energy, 1) {
				return true
			}
			return results[i].energy < results[j].energy
		}
		for k := range results[i].chis {
			if results[i].chis[k] != results[j].chis[k] {
				return results[i].chis[k] < results[j].chis[k]
			}
		}
		return results[i].id < results[j].id
	})

	top := cfg.TopRank
	if top <= 0 || top > len(results) {
		top = len(results)
	}

	out := make([]*rotalib.Atom, 0)
	rank := 0
	for k, r := range results[:top] {
		if k == 0 || r.energy != results[k-1].energy {
			rank = k + 1
		}
		for _, a := range r.atoms {
			a.RotamerEnergy = r.energy
			a.RotamerRank = rank
			out = append(out, a)
		}
	}
	return out, ctxErr
}

func sortedChiNames(g AngleGrid) []string {
	names := make([]string, 0, len(g))
	for n := range g {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func valueIndex(vals []float64, v float64) int {
	for i, x := range vals {
		if x == v {
			return i
		}
	}
	return 0
}

func cloneMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func dist(i, j *rotalib.Atom) float64 {
	dx, dy, dz := i.X-j.X, i.Y-j.Y, i.Z-j.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// posFunc resolves an atom id's current coordinates for this combo: a
// moved (rotated) position for a movable atom, the store's static
// position otherwise.
type posFunc func(id int) (x, y, z float64, ok bool)

func vecAt(pos posFunc, id int) (*v3.Matrix, bool) {
	x, y, z, ok := pos(id)
	if !ok {
		return nil, false
	}
	m, _ := v3.NewVecs([]float64{x, y, z})
	return m, true
}

// torsionSum adds potential.Torsion's contribution for every dihedral
// chain rooted at atom: atom, one bonded neighbor, that neighbor's other
// neighbors, and their other neighbors in turn, i.e. every atom reachable
// three bonds out. Connectivity comes from store, unaffected by a
// rotamer's transform; coordinates come from pos, which may report a
// moved position for a bonded atom that is itself movable under this
// combo.
func torsionSum(store *rotalib.AtomStore, atom *rotalib.Atom, pos posFunc, reg *params.Registry, tp potential.TorsionParams) float64 {
	pa, ok := vecAt(pos, atom.ID)
	if !ok {
		return 0
	}
	total := 0.0
	for _, n1id := range atom.Connections {
		n1 := store.Lookup(n1id)
		pb, ok := vecAt(pos, n1id)
		if n1 == nil || !ok {
			continue
		}
		for _, n2id := range n1.Connections {
			if n2id == atom.ID {
				continue
			}
			n2 := store.Lookup(n2id)
			pc, ok := vecAt(pos, n2id)
			if n2 == nil || !ok {
				continue
			}
			for _, n3id := range n2.Connections {
				if n3id == n1id {
					continue
				}
				pd, ok := vecAt(pos, n3id)
				if !ok {
					continue
				}
				omega := geom.DihedralAngle(pa, pb, pc, pd)
				total += potential.Torsion(reg, omega, tp)
			}
		}
	}
	return total
}
