/*
 * grid.go, part of rotalib.
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

// Package grid infers a covalent bond graph from raw atomic coordinates
// using a uniform spatial hash, replacing an O(N^2) distance scan suited
// to small molecules with a cell-bucketed search suited to whole
// structures.
package grid

import (
	"math"

	"github.com/rmera/rotalib/params"
	rotalib "github.com/rmera/rotalib"
	"github.com/rmera/rotalib/diag"
)

// BuildOptions configures Build. LengthError overrides the registry's
// default bond-length tolerance when greater than zero: the tolerance stays a
// builder-level knob, not something read from the covalent-radius
// table itself.
type BuildOptions struct {
	LengthError float64
	Sink        diag.Sink
}

type cellKey [3]int

// Build reconstructs the covalent bond graph of every atom in store,
// filling each Atom.Connections in place, following the section 4.C
// algorithm: bucket atoms into cells sized to the largest candidate bond
// length, scan the 3x3x3 neighborhood, and accept the first bond-length
// candidate within the tolerance window.
func Build(store *rotalib.AtomStore, reg *params.Registry, opts BuildOptions) {
	atoms := store.All()
	if len(atoms) == 0 {
		return
	}
	tol := reg.LengthError
	if opts.LengthError > 0 {
		tol = opts.LengthError
	}
	sink := opts.Sink
	if sink == nil {
		sink = diag.Discard{}
	}

	s := reg.MaxBondLength()
	if s <= 0 {
		s = 2.0
	}

	minX, minY, minZ := atoms[0].X, atoms[0].Y, atoms[0].Z
	for _, a := range atoms {
		minX = math.Min(minX, a.X)
		minY = math.Min(minY, a.Y)
		minZ = math.Min(minZ, a.Z)
	}

	cellOf := func(a *rotalib.Atom) cellKey {
		return cellKey{
			int(math.Floor((a.X-minX)/s)) + 1,
			int(math.Floor((a.Y-minY)/s)) + 1,
			int(math.Floor((a.Z-minZ)/s)) + 1,
		}
	}

	cells := make(map[cellKey][]*rotalib.Atom, len(atoms))
	for _, a := range atoms {
		if _, ok := reg.CovalentRadii[a.Symbol]; !ok {
			sink.Report("parameter", rotalib.NewParameterError("no covalent radius for element %q (atom id %d)", a.Symbol, a.ID))
			continue
		}
		k := cellOf(a)
		cells[k] = append(cells[k], a)
	}

	connected := make(map[[2]int]bool)
	for _, a := range atoms {
		if _, ok := reg.CovalentRadii[a.Symbol]; !ok {
			continue
		}
		k := cellOf(a)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					nk := cellKey{k[0] + dx, k[1] + dy, k[2] + dz}
					for _, b := range cells[nk] {
						if b.ID == a.ID {
							continue
						}
						pair := [2]int{a.ID, b.ID}
						if pair[0] > pair[1] {
							pair[0], pair[1] = pair[1], pair[0]
						}
						if connected[pair] {
							continue
						}
						if bonded(a, b, reg, tol) {
							connected[pair] = true
						}
					}
				}
			}
		}
	}

	for pair := range connected {
		i, j := store.Lookup(pair[0]), store.Lookup(pair[1])
		i.Connections = append(i.Connections, j.ID)
		j.Connections = append(j.Connections, i.ID)
	}
}

func bonded(a, b *rotalib.Atom, reg *params.Registry, tol float64) bool {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	d2 := dx*dx + dy*dy + dz*dz
	for _, l := range reg.BondLengthCandidates(a.Symbol, b.Symbol) {
		lo, hi := l-tol, l+tol
		if lo < 0 {
			lo = 0
		}
		if d2 >= lo*lo && d2 <= hi*hi {
			return true
		}
	}
	return false
}

// BruteForce is the O(N^2) reference bond builder Build's spatial-hash
// result is checked against: every pair is compared directly, with no
// cell bucketing.
func BruteForce(store *rotalib.AtomStore, reg *params.Registry, opts BuildOptions) {
	atoms := store.All()
	tol := reg.LengthError
	if opts.LengthError > 0 {
		tol = opts.LengthError
	}
	for i := 0; i < len(atoms); i++ {
		if _, ok := reg.CovalentRadii[atoms[i].Symbol]; !ok {
			continue
		}
		for j := i + 1; j < len(atoms); j++ {
			if _, ok := reg.CovalentRadii[atoms[j].Symbol]; !ok {
				continue
			}
			if bonded(atoms[i], atoms[j], reg, tol) {
				atoms[i].Connections = append(atoms[i].Connections, atoms[j].ID)
				atoms[j].Connections = append(atoms[j].Connections, atoms[i].ID)
			}
		}
	}
}
