/*
 * atom.go, part of rotalib.
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

package rotalib

// Hybridization classifies the geometry of a heavy atom's substituents.
type Hybridization int

const (
	SPUnknown Hybridization = iota
	SP
	SP2
	SP3
)

func (h Hybridization) String() string {
	switch h {
	case SP:
		return "sp"
	case SP2:
		return "sp2"
	case SP3:
		return "sp3"
	default:
		return "unknown"
	}
}

// SelectionState tags an atom's role in a sampling run.
type SelectionState int

const (
	Ignored SelectionState = iota
	Target
	Surrounding
)

func (s SelectionState) String() string {
	switch s {
	case Target:
		return "T"
	case Surrounding:
		return "S"
	default:
		return "I"
	}
}

// ResidueKey uniquely identifies a residue instance, including alternate
// locations, as the 4-tuple (label_seq_id, label_asym_id, label_entity_id,
// label_alt_id).
type ResidueKey struct {
	SeqID    int
	Chain    string
	EntityID string
	AltID    string
}

// Atom is the in-memory record for one mmCIF atom_site row, plus the
// fields the core computes: Connections, Hybridization,
// SelectionGroup/State, and the pseudo-atom annotations produced by a
// rotamer sweep.
type Atom struct {
	ID       int
	Symbol   string // type_symbol
	Name     string // label_atom_id
	AltID    string // label_alt_id, "." when absent
	CompID   string // label_comp_id, e.g. "SER"
	Chain    string // label_asym_id
	EntityID string // label_entity_id
	SeqID    int    // label_seq_id
	X, Y, Z  float64
	Model    int

	Connections    []int
	Hybridization  Hybridization
	SelectionGroup string
	SelectionState SelectionState

	IsPseudo        bool
	DihedralAngles  map[string]float64
	RotamerEnergy   float64
	RotamerRank     int
}

// ResidueKey returns the residue instance this atom belongs to.
func (a *Atom) ResidueKey() ResidueKey {
	return ResidueKey{SeqID: a.SeqID, Chain: a.Chain, EntityID: a.EntityID, AltID: a.AltID}
}

// Copy returns a shallow copy of a, with its own Connections and
// DihedralAngles backing storage so mutating the copy never affects a.
func (a *Atom) Copy() *Atom {
	n := *a
	if a.Connections != nil {
		n.Connections = append([]int(nil), a.Connections...)
	}
	if a.DihedralAngles != nil {
		n.DihedralAngles = make(map[string]float64, len(a.DihedralAngles))
		for k, v := range a.DihedralAngles {
			n.DihedralAngles[k] = v
		}
	}
	return &n
}
