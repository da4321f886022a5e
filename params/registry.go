/*
 * registry.go, part of rotalib.
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

// Package params holds the process-wide, immutable-after-construction
// tables the rest of rotalib is parameterized by: covalent and van der
// Waals radii, partial charges, per-residue rotatable-bond topology,
// hydrogen-name tables and force-field coefficients.
package params

// CovalentRadius holds an element's covalent radius per hybridization
// state, indexed sp3, sp2, sp.
type CovalentRadius struct {
	SP3, SP2, SP float64
}

// ChiBond names the four atoms defining one rotatable side-chain bond
// within a residue type.
type ChiBond struct {
	A, B, C, D string
}

// Coefficients holds the pluggable potentials' force-field constants
// along with their documented defaults.
type Coefficients struct {
	LJk           float64
	Ck            float64
	Hk            float64
	Tk            float64
	LJEpsilon     float64
	HEpsilon      float64
	RSigma        float64
	CEpsilon      float64
	CutoffAtom    float64
	CutoffResidue float64
	CutoffStart   float64 // multiple of sigma, c_s
	CutoffEnd     float64 // multiple of sigma, c_e
}

// DefaultCoefficients returns the documented default constants.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		LJk:           1,
		Ck:            1,
		Hk:            1,
		Tk:            1,
		LJEpsilon:     1,
		HEpsilon:      1,
		RSigma:        1,
		CEpsilon:      1,
		CutoffAtom:    8.0,
		CutoffResidue: 12.0,
		CutoffStart:   2.5,
		CutoffEnd:     5.0,
	}
}

// Registry is the immutable table set every pure computation in rotalib
// is parameterized by. It carries no behavior beyond lookups: nothing in
// this package mutates a Registry after Default, LoadTOML or
// ParseOverrides returns it.
type Registry struct {
	CovalentRadii  map[string]CovalentRadius
	LengthError    float64
	VdwRadii       map[string]float64
	PartialCharges map[string]float64
	MaxBonds       map[string]int
	RotatableBonds map[string][]ChiBond
	HydrogenNames  map[string]map[string][]string
	Coefficients   Coefficients

	// DoubleBondPartners and TripleBondPartners name, per residue and
	// atom, the neighbor atom name a double or triple bond is drawn to
	// by amino-acid nomenclature convention (the peptide C=O carbonyl,
	// the partial N=C amide bond, the ARG guanidinium C=N resonance),
	// rather than from an explicit bond-order field the input never
	// carries. The "*" residue key holds entries that apply regardless
	// of CompID, i.e. the backbone.
	DoubleBondPartners map[string]map[string]string
	TripleBondPartners map[string]map[string]string
}

// BondLengthCandidates returns every candidate covalent bond length
// between an atom of element a and one of element b: the Cartesian
// product of their per-hybridization covalent radii, summed pairwise.
func (r *Registry) BondLengthCandidates(a, b string) []float64 {
	ra, ok1 := r.CovalentRadii[a]
	rb, ok2 := r.CovalentRadii[b]
	if !ok1 || !ok2 {
		return nil
	}
	as := []float64{ra.SP3, ra.SP2, ra.SP}
	bs := []float64{rb.SP3, rb.SP2, rb.SP}
	out := make([]float64, 0, 9)
	for _, x := range as {
		for _, y := range bs {
			out = append(out, x+y)
		}
	}
	return out
}

// MaxBondLength returns the largest candidate bond length across every
// element pair in the registry, used by grid.Build to size its spatial
// hash cells.
func (r *Registry) MaxBondLength() float64 {
	max := 0.0
	elems := make([]string, 0, len(r.CovalentRadii))
	for e := range r.CovalentRadii {
		elems = append(elems, e)
	}
	for _, a := range elems {
		for _, b := range elems {
			for _, l := range r.BondLengthCandidates(a, b) {
				if l > max {
					max = l
				}
			}
		}
	}
	return max
}

// Default returns the built-in registry: element radii from the Cordero
// (covalent) and Bondi-family (van der Waals) tables, plus the
// rotatable-bond and hydrogen-name tables for the residues exercised by
// this package's own tests.
func Default() *Registry {
	r := &Registry{
		LengthError: 0.1,
		CovalentRadii: map[string]CovalentRadius{
			"H":  {SP3: 0.40, SP2: 0.40, SP: 0.40},
			"C":  {SP3: 0.76, SP2: 0.73, SP: 0.69},
			"O":  {SP3: 0.66, SP2: 0.62, SP: 0.53},
			"N":  {SP3: 0.71, SP2: 0.68, SP: 0.60},
			"P":  {SP3: 1.07, SP2: 1.07, SP: 1.07},
			"S":  {SP3: 1.05, SP2: 1.05, SP: 1.05},
			"Se": {SP3: 1.20, SP2: 1.20, SP: 1.20},
		},
		VdwRadii: map[string]float64{
			"H": 1.10, "C": 1.70, "O": 1.52, "N": 1.55,
			"P": 1.80, "S": 1.80, "Se": 1.90,
		},
		PartialCharges: map[string]float64{
			"H": 0.10, "C": 0.0, "O": -0.4, "N": -0.3,
			"P": 0.3, "S": -0.1, "Se": -0.1,
		},
		MaxBonds: map[string]int{
			"H": 1, "C": 4, "O": 2, "N": 3, "P": 5, "S": 2, "Se": 2,
		},
		RotatableBonds:     defaultRotatableBonds(),
		HydrogenNames:      defaultHydrogenNames(),
		Coefficients:       DefaultCoefficients(),
		DoubleBondPartners: defaultDoubleBondPartners(),
		TripleBondPartners: map[string]map[string]string{},
	}
	return r
}

// defaultDoubleBondPartners seeds the backbone carbonyl (C=O) and the
// partial amide bond (N=C, the peptide bond's resonance form) under the
// "*" wildcard residue, plus the ARG guanidinium group's localized
// CZ=NH1 resonance form.
func defaultDoubleBondPartners() map[string]map[string]string {
	return map[string]map[string]string{
		"*": {
			"C": "O",
			"O": "C",
			"N": "C",
		},
		"ARG": {
			"CZ":  "NH1",
			"NH1": "CZ",
		},
	}
}

func defaultRotatableBonds() map[string][]ChiBond {
	return map[string][]ChiBond{
		"SER": {
			{A: "N", B: "CA", C: "CB", D: "OG"},
		},
		"ARG": {
			{A: "N", B: "CA", C: "CB", D: "CG"},
			{A: "CA", B: "CB", C: "CG", D: "CD"},
			{A: "CB", B: "CG", C: "CD", D: "NE"},
			{A: "CG", B: "CD", C: "NE", D: "CZ"},
		},
		"ILE": {
			{A: "N", B: "CA", C: "CB", D: "CG1"},
			{A: "CA", B: "CB", C: "CG1", D: "CD1"},
		},
	}
}

func defaultHydrogenNames() map[string]map[string][]string {
	return map[string]map[string][]string{
		"SER": {
			"OG": {"HG"},
		},
		"ARG": {
			"NE": {"HE"},
			"NH1": {"HH11", "HH12"},
			"NH2": {"HH21", "HH22"},
		},
		"ILE": {
			"CD1": {"HD11", "HD12", "HD13"},
			"CG2": {"HG21", "HG22", "HG23"},
		},
	}
}
