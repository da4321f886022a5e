/*
 * potential.go, part of rotalib.
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

// Package potential implements the pluggable pair and torsion energy
// functions a rotamer sweep scores candidates with: hard_sphere,
// soft_sphere, lennard_jones, coulomb, h_bond, torsion, and a composite
// that blends lennard_jones, coulomb and h_bond via a cosine taper between
// cutoffs.
package potential

import (
	"math"

	rotalib "github.com/rmera/rotalib"
	"github.com/rmera/rotalib/hybrid"
	"github.com/rmera/rotalib/params"
)

// Params carries every optional field a potential may need; a nil
// pointer field means "compute or default", the same FF-style
// optional-field convention used throughout this codebase.
type Params struct {
	R        *float64 // distance, computed from atom coordinates if nil
	Sigma    *float64 // vdw_i + vdw_j, computed if nil
	Epsilon  *float64
	N        *int // soft_sphere exponent, default 12
	Registry *params.Registry
}

func dist(i, j *rotalib.Atom) float64 {
	dx, dy, dz := i.X-j.X, i.Y-j.Y, i.Z-j.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (p Params) r(i, j *rotalib.Atom) float64 {
	if p.R != nil {
		return *p.R
	}
	return dist(i, j)
}

func (p Params) sigma(i, j *rotalib.Atom) float64 {
	if p.Sigma != nil {
		return *p.Sigma
	}
	if p.Registry == nil {
		return 0
	}
	return p.Registry.VdwRadii[i.Symbol] + p.Registry.VdwRadii[j.Symbol]
}

// HardSphere returns +Inf if r^2 < sigma^2, 0 otherwise. Symmetric in
// (i,j) by construction.
func HardSphere(i, j *rotalib.Atom, p Params) float64 {
	r := p.r(i, j)
	s := p.sigma(i, j)
	if r*r < s*s {
		return math.Inf(1)
	}
	return 0
}

// SoftSphere returns epsilon_s*(sigma/r)^n for r <= sigma, 0 otherwise.
func SoftSphere(i, j *rotalib.Atom, p Params) float64 {
	r := p.r(i, j)
	s := p.sigma(i, j)
	if r > s {
		return 0
	}
	eps := 1.0
	if p.Epsilon != nil {
		eps = *p.Epsilon
	}
	n := 12
	if p.N != nil {
		n = *p.N
	}
	return eps * math.Pow(s/r, float64(n))
}

// LennardJones returns 4*epsilon*[(sigma/r)^12 - (sigma/r)^6].
func LennardJones(i, j *rotalib.Atom, p Params) float64 {
	r := p.r(i, j)
	s := p.sigma(i, j)
	eps := 1.0
	if p.Epsilon != nil {
		eps = *p.Epsilon
	}
	sr6 := math.Pow(s/r, 6)
	return 4 * eps * (sr6*sr6 - sr6)
}

// Coulomb returns k_c*q_i*q_j/r^2, an inverse-square form rather than
// the usual inverse-first-power Coulomb law, kept as written.
func Coulomb(i, j *rotalib.Atom, p Params) float64 {
	if p.Registry == nil {
		return 0
	}
	r := p.r(i, j)
	kc := p.Registry.Coefficients.Ck
	qi := p.Registry.PartialCharges[i.Symbol]
	qj := p.Registry.PartialCharges[j.Symbol]
	return kc * qi * qj / (r * r)
}

// HBondParams configures HBond beyond the shared Params. Both atoms'
// elements must be N, O or F; with HydrogensPresent false, the donor must
// also appear in the hydrogen-name table.
type HBondParams struct {
	Params
	Store             *rotalib.AtomStore
	HydrogensPresent  bool
}

func isHBondCapable(sym string) bool {
	return sym == "N" || sym == "O" || sym == "F"
}

// HBond sums, over every hydrogen the donor carries (concrete or
// generalized), epsilon_H*[5*(r_DH/r)^12 - 6*(r_DH/r)^10]*cos(theta),
// restricted to theta in [pi/2, 3pi/2] (cos theta <= 0), kept as the
// literal window even though only theta in (pi/2, pi] actually
// contributes attraction under cos(theta); theta comes from acos (or
// from a donor angle below pi) and so never exceeds pi, which leaves the
// part of the window above pi unreached.
func HBond(donor, acceptor *rotalib.Atom, p HBondParams) float64 {
	if !isHBondCapable(donor.Symbol) || !isHBondCapable(acceptor.Symbol) {
		return 0
	}
	if p.Registry == nil || p.Store == nil {
		return 0
	}
	epsH := p.Registry.Coefficients.HEpsilon
	if p.Epsilon != nil {
		epsH = *p.Epsilon
	}
	r := p.r(donor, acceptor)

	total := 0.0
	if p.HydrogensPresent {
		for _, hid := range donor.Connections {
			h := p.Store.Lookup(hid)
			if h == nil || h.Symbol != "H" {
				continue
			}
			theta := hAngle(acceptor, h, donor)
			rdh := dist(donor, h)
			total += hbondTerm(epsH, rdh, r, theta)
		}
		return total
	}
	for _, gh := range hybrid.Generalize(p.Store, p.Registry, donor, acceptor) {
		theta := gh.DonorAngle
		total += hbondTerm(epsH, gh.BondLength, r, theta)
	}
	return total
}

func hAngle(acceptor, h, donor *rotalib.Atom) float64 {
	ax, ay, az := acceptor.X-h.X, acceptor.Y-h.Y, acceptor.Z-h.Z
	dx, dy, dz := donor.X-h.X, donor.Y-h.Y, donor.Z-h.Z
	dot := ax*dx + ay*dy + az*dz
	na := math.Sqrt(ax*ax + ay*ay + az*az)
	nd := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if na == 0 || nd == 0 {
		return math.Pi
	}
	cos := dot / (na * nd)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

func hbondTerm(epsH, rdh, r, theta float64) float64 {
	if theta < math.Pi/2 || theta > 3*math.Pi/2 {
		return 0
	}
	ratio := rdh / r
	r12 := math.Pow(ratio, 12)
	r10 := math.Pow(ratio, 10)
	return epsH * (5*r12 - 6*r10) * math.Cos(theta)
}

// TorsionParams configures Torsion. Phase defaults to 3 regardless of
// hybridization; it stays a field rather than a constant so future work
// can vary it without another rewrite.
type TorsionParams struct {
	N       int // peak count, classical mode default 3
	Epsilon float64
	Phase   int
}

// Torsion returns k_T*(epsilon_T/2)*(1+cos(n*omega)) when omega lies in
// [-pi/phase, pi/phase], 0 otherwise.
func Torsion(reg *params.Registry, omega float64, tp TorsionParams) float64 {
	phase := tp.Phase
	if phase == 0 {
		phase = 3
	}
	if omega < -math.Pi/float64(phase) || omega > math.Pi/float64(phase) {
		return 0
	}
	n := tp.N
	if n == 0 {
		n = 3
	}
	return reg.Coefficients.Tk * (tp.Epsilon / 2) * (1 + math.Cos(float64(n)*omega))
}
