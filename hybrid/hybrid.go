/*
 * hybrid.go, part of rotalib.
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

// Package hybrid infers sp/sp2/sp3 hybridization from bond connectivity
// and, when concrete hydrogens are absent, generalizes their donor
// geometry from residue and heavy-atom name tables.
package hybrid

import (
	"math"

	rotalib "github.com/rmera/rotalib"
	"github.com/rmera/rotalib/params"
)

// Assign infers Hybridization for every heavy atom in store from its
// neighbor count weighed against the registry's per-element MaxBonds
// table: an atom at its full valence (neighbor count == MaxBonds) is
// sp3, since input structures ordinarily carry no explicit hydrogens to
// tell a genuinely saturated atom from one with implicit ones.  An atom
// one short of its full valence is sp3 too, unless one of its named
// neighbors is its DoubleBondPartners match, in which case the "missing"
// bond is a pi bond rather than an implicit hydrogen and it is sp2. Two
// short of full valence follows the same logic one level down against
// TripleBondPartners: sp if the triple partner is present, sp3
// (saturated by two implicit hydrogens) otherwise. Any other neighbor
// count, or an element absent from MaxBonds, is left SPUnknown.
func Assign(store *rotalib.AtomStore, reg *params.Registry) {
	for _, a := range store.All() {
		if a.Symbol == "H" {
			continue
		}
		max, ok := reg.MaxBonds[a.Symbol]
		n := len(a.Connections)
		switch {
		case !ok:
			a.Hybridization = rotalib.SPUnknown
		case n == max:
			a.Hybridization = rotalib.SP3
		case n == max-1:
			if hasBondPartner(store, reg.DoubleBondPartners, a) {
				a.Hybridization = rotalib.SP2
			} else {
				a.Hybridization = rotalib.SP3
			}
		case n == max-2:
			if hasBondPartner(store, reg.TripleBondPartners, a) {
				a.Hybridization = rotalib.SP
			} else {
				a.Hybridization = rotalib.SP3
			}
		default:
			a.Hybridization = rotalib.SPUnknown
		}
	}
}

// hasBondPartner reports whether one of a's neighbors is named the
// double- or triple-bond partner table's entry for a's residue and atom
// name, falling back to the "*" backbone-wide entry when the residue has
// no atom-specific override.
func hasBondPartner(store *rotalib.AtomStore, table map[string]map[string]string, a *rotalib.Atom) bool {
	partner, ok := table[a.CompID][a.Name]
	if !ok {
		partner, ok = table["*"][a.Name]
	}
	if !ok {
		return false
	}
	for _, id := range a.Connections {
		if nb := store.Lookup(id); nb != nil && nb.Name == partner {
			return true
		}
	}
	return false
}

// DonorAngle returns the analytic donor angle (radians) hydrogens should
// make with their heavy atom for a given hybridization: 109.5 deg for
// sp3, 120 deg for sp2.
func DonorAngle(h rotalib.Hybridization) float64 {
	switch h {
	case rotalib.SP3:
		return 109.5 * math.Pi / 180
	case rotalib.SP2:
		return 120 * math.Pi / 180
	default:
		return 109.5 * math.Pi / 180
	}
}

// GeneralizedHydrogen describes a hydrogen atom rotalib has inferred
// should exist on a donor, without materializing a concrete pseudo-atom
// for it: only the geometric quantities the h_bond potential needs.
type GeneralizedHydrogen struct {
	Name        string
	DonorAngle  float64 // alpha, adjusted downward for donor geometry
	BondLength  float64
}

// Generalize returns the hydrogens a residue's heavy atom donor should
// carry, per the registry's HydrogenNames table, with the donor angle
// adjusted downward by the smallest bond angle between the donor's heavy
// neighbors and the given acceptor position, to avoid a geometrically
// impossible donor orientation.
func Generalize(store *rotalib.AtomStore, reg *params.Registry, donor *rotalib.Atom, acceptor *rotalib.Atom) []GeneralizedHydrogen {
	names, ok := reg.HydrogenNames[donor.CompID][donor.Name]
	if !ok {
		return nil
	}
	alpha := DonorAngle(donor.Hybridization)
	adjust := smallestHeavyAngleTo(store, donor, acceptor)
	if adjust < alpha {
		alpha = adjust
	}
	length := reg.CovalentRadii["H"].SP3 + covalentRadiusFor(reg, donor)
	out := make([]GeneralizedHydrogen, 0, len(names))
	for _, n := range names {
		out = append(out, GeneralizedHydrogen{Name: n, DonorAngle: alpha, BondLength: length})
	}
	return out
}

func covalentRadiusFor(reg *params.Registry, a *rotalib.Atom) float64 {
	r, ok := reg.CovalentRadii[a.Symbol]
	if !ok {
		return 0
	}
	switch a.Hybridization {
	case rotalib.SP2:
		return r.SP2
	case rotalib.SP:
		return r.SP
	default:
		return r.SP3
	}
}

func smallestHeavyAngleTo(store *rotalib.AtomStore, donor, acceptor *rotalib.Atom) float64 {
	min := math.Pi
	for _, id := range donor.Connections {
		nb := store.Lookup(id)
		if nb == nil || nb.Symbol == "H" {
			continue
		}
		theta := angleBetween(nb, donor, acceptor)
		if theta < min {
			min = theta
		}
	}
	return min
}

func angleBetween(a, b, c *rotalib.Atom) float64 {
	ax, ay, az := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	cx, cy, cz := c.X-b.X, c.Y-b.Y, c.Z-b.Z
	dot := ax*cx + ay*cy + az*cz
	na := math.Sqrt(ax*ax + ay*ay + az*az)
	nc := math.Sqrt(cx*cx + cy*cy + cz*cz)
	if na == 0 || nc == 0 {
		return math.Pi
	}
	cos := dot / (na * nc)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}
