/*
 * composite.go, part of rotalib.
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

package potential

import (
	"math"

	rotalib "github.com/rmera/rotalib"
)

// CompositeParams bundles the inputs Composite needs to evaluate the
// blended LJ+Coulomb+H-bond sum and its cosine taper.
type CompositeParams struct {
	Params
	HBond HBondParams
}

// Composite sums LennardJones+Coulomb+HBond below c_s*sigma, multiplies
// that sum by a cosine taper between c_s*sigma and c_e*sigma, and
// returns 0 beyond c_e*sigma. The taper is
// continuous at c_s*sigma and reaches exactly 0 at c_e*sigma (spec
// section 8, property 6).
func Composite(i, j *rotalib.Atom, p CompositeParams) float64 {
	r := p.r(i, j)
	sigma := p.sigma(i, j)
	if p.Registry == nil {
		return 0
	}
	cs := p.Registry.Coefficients.CutoffStart
	ce := p.Registry.Coefficients.CutoffEnd

	sum := LennardJones(i, j, p.Params) + Coulomb(i, j, p.Params) + HBond(i, j, p.HBond)

	switch {
	case r <= cs*sigma:
		return sum
	case r >= ce*sigma:
		return 0
	default:
		taper := math.Cos(math.Pi * (r - cs*sigma) / (2 * (ce - cs) * sigma))
		return sum * taper
	}
}
