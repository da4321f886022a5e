/*
 * model.go, part of rotalib.
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

// Package rotamer builds, per residue type, the symbolic affine
// transform each side-chain atom undergoes as a function of the
// residue's chi torsion angles, following a translate/align/rotate/
// un-align/un-translate recipe.
package rotamer

import (
	"math"
	"strconv"

	rotalib "github.com/rmera/rotalib"
	"github.com/rmera/rotalib/chemgraph"
	"github.com/rmera/rotalib/expr"
	"github.com/rmera/rotalib/geom"
	"github.com/rmera/rotalib/params"
	v3 "github.com/rmera/rotalib/v3"
)

// ChiName returns the canonical variable name for the i-th chi bond of a
// residue, e.g. "chi0", "chi1".
func ChiName(i int) string {
	return "chi" + strconv.Itoa(i)
}

// Model is the compiled per-residue rotatable-bond model: one symbolic
// AffineMatrix per movable atom, expressed in the residue's chi
// variables.
type Model struct {
	ResidueKey rotalib.ResidueKey
	CompID     string
	Chis       []params.ChiBond
	transforms map[int]expr.AffineMatrix // atom id -> compiled transform
	current    map[int]float64           // atom's current chi values from the input structure
}

// Movable reports whether atom id is under the control of at least one
// chi in the model.
func (m *Model) Movable(id int) bool {
	_, ok := m.transforms[id]
	return ok
}

// Transform returns the compiled symbolic transform for atom id, and
// whether one exists.
func (m *Model) Transform(id int) (expr.AffineMatrix, bool) {
	t, ok := m.transforms[id]
	return t, ok
}

// CurrentChi returns the chi value the input structure already has for
// chi index i.
func (m *Model) CurrentChi(i int) float64 {
	return m.current[i]
}

// Build compiles the rotatable-bond model for the residue identified by
// key, using the registry's per-comp-id chi topology. It returns
// (nil, false) for a residue type with no rotatable-bond entry (spec
// section 4.G, "unknown residue type... produces zero rotamers, not an
// error").
func Build(store *rotalib.AtomStore, reg *params.Registry, key rotalib.ResidueKey) (*Model, bool) {
	atoms := store.FilterByResidue(key)
	if len(atoms) == 0 {
		return nil, false
	}
	compID := atoms[0].CompID
	chis, ok := reg.RotatableBonds[compID]
	if !ok || len(chis) == 0 {
		return nil, false
	}

	byName := make(map[string]*rotalib.Atom, len(atoms))
	for _, a := range atoms {
		byName[a.Name] = a
	}

	topo := chemgraph.FromStore(store)

	m := &Model{
		ResidueKey: key,
		CompID:     compID,
		Chis:       chis,
		transforms: make(map[int]expr.AffineMatrix),
		current:    make(map[int]float64),
	}

	// outer[i] holds the composed transform contributed by chi bonds
	// 0..i (inclusive), applied outermost-first: each bond's transform
	// is pre-multiplied by the next outer bond's transform.
	outer := make([]expr.AffineMatrix, len(chis))
	downstream := make([]map[int]bool, len(chis))

	for i, chi := range chis {
		b, ok1 := byName[chi.B]
		c, ok2 := byName[chi.C]
		if !ok1 || !ok2 {
			continue
		}
		downstream[i] = chemgraph.DownstreamOf(topo, b.ID, c.ID)

		bond := singleChiTransform(b, c, i)
		if i == 0 {
			outer[i] = bond
		} else {
			outer[i] = expr.Compose(outer[i-1], bond)
		}

		a, aok := byName[chi.A]
		d, dok := byName[chi.D]
		if aok && dok {
			m.current[i] = geomDihedral(a, b, c, d)
		}
	}

	for i := range chis {
		for id := range downstream[i] {
			// The innermost chi whose downstream set contains id
			// governs it most tightly; since downstream sets nest
			// (each chi's downstream atoms are a subset of the
			// previous chi's), the last chi to claim an atom wins,
			// giving it the full composed outer-to-inner transform.
			m.transforms[id] = outer[i]
		}
	}

	return m, true
}

func singleChiTransform(b, c *rotalib.Atom, chiIndex int) expr.AffineMatrix {
	mid, up := midpoint(b, c), point(c)
	// The side point must lie off the b-c axis, or the frame's x axis is a
	// zero vector: offset the midpoint along the global axis least
	// parallel to the bond.
	sx, sy, sz := (b.X+c.X)/2, (b.Y+c.Y)/2, (b.Z+c.Z)/2
	ax, ay, az := math.Abs(c.X-b.X), math.Abs(c.Y-b.Y), math.Abs(c.Z-b.Z)
	switch {
	case ax <= ay && ax <= az:
		sx++
	case ay <= az:
		sy++
	default:
		sz++
	}
	side, _ := v3.NewVecs([]float64{sx, sy, sz})
	xhat, yhat, zhat := geom.CreateRefFrame(mid, up, side)
	alpha, beta, gamma := geom.EulerAngles(xhat, yhat, zhat)
	rows := eulerRows(alpha, beta, gamma)
	align := expr.LiteralMatrix(rows)
	unalign := expr.LiteralMatrix(inverseRows(rows))

	mx, my, mz := b.X+(c.X-b.X)/2, b.Y+(c.Y-b.Y)/2, b.Z+(c.Z-b.Z)/2
	toOrigin := expr.TranslationMatrix(expr.Const(-mx), expr.Const(-my), expr.Const(-mz))
	fromOrigin := expr.TranslationMatrix(expr.Const(mx), expr.Const(my), expr.Const(mz))
	rot := expr.RotationZMatrix(expr.Var(ChiName(chiIndex)))

	return expr.ComposeAll(fromOrigin, unalign, rot, align, toOrigin)
}

func eulerRows(alpha, beta, gamma float64) [4][4]float64 {
	m := geom.Mult(geom.RotateZ(-gamma), geom.RotateX(-beta), geom.RotateZ(-alpha))
	var rows [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

func inverseRows(rows [4][4]float64) [4][4]float64 {
	m := geom.Identity4()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, rows[i][j])
		}
	}
	inv := geom.Inverse4(m)
	var out [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = inv.At(i, j)
		}
	}
	return out
}

func point(a *rotalib.Atom) *v3.Matrix {
	m, _ := v3.NewVecs([]float64{a.X, a.Y, a.Z})
	return m
}

func midpoint(a, b *rotalib.Atom) *v3.Matrix {
	m, _ := v3.NewVecs([]float64{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2})
	return m
}

func geomDihedral(a, b, c, d *rotalib.Atom) float64 {
	pa, pb, pc, pd := point(a), point(b), point(c), point(d)
	return geom.DihedralAngle(pa, pb, pc, pd)
}
