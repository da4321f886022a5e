/*
 * store.go, part of rotalib.
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

import (
	"sort"
	"strconv"
)

// FilterSpec selects a subset of an AtomStore. Zero-value fields are
// wildcards. CompID, Chain, Name and Residue are exact-match shorthands
// kept for callers that only need one attribute; Include and Exclude
// express the general {attribute -> allowed_values} predicate: an atom
// passes Include iff every listed attribute's value is one of its
// allowed values, and passes Exclude iff no listed attribute matches.
// Project names the attributes a Project/Group call should read off a
// surviving atom; Group additionally names the attribute results are
// bucketed by.
//
// Recognized attribute names: id, symbol, name, alt_id, comp_id, chain,
// entity_id, seq_id, model, hybridization, selection_group,
// selection_state.
type FilterSpec struct {
	CompID  string
	Chain   string
	Name    string
	Residue *ResidueKey

	Include map[string][]string
	Exclude map[string][]string
	Project []string
	Group   string
}

// attributeValue reads the named attribute off a, string-encoded so it
// can be compared against a FilterSpec's allowed-value lists or handed
// back in a Tuple.
func attributeValue(a *Atom, attr string) (string, bool) {
	switch attr {
	case "id":
		return strconv.Itoa(a.ID), true
	case "symbol":
		return a.Symbol, true
	case "name":
		return a.Name, true
	case "alt_id":
		return a.AltID, true
	case "comp_id":
		return a.CompID, true
	case "chain":
		return a.Chain, true
	case "entity_id":
		return a.EntityID, true
	case "seq_id":
		return strconv.Itoa(a.SeqID), true
	case "model":
		return strconv.Itoa(a.Model), true
	case "hybridization":
		return a.Hybridization.String(), true
	case "selection_group":
		return a.SelectionGroup, true
	case "selection_state":
		return a.SelectionState.String(), true
	default:
		return "", false
	}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (f FilterSpec) match(a *Atom) bool {
	if f.CompID != "" && a.CompID != f.CompID {
		return false
	}
	if f.Chain != "" && a.Chain != f.Chain {
		return false
	}
	if f.Name != "" && a.Name != f.Name {
		return false
	}
	if f.Residue != nil && a.ResidueKey() != *f.Residue {
		return false
	}
	for attr, allowed := range f.Include {
		v, ok := attributeValue(a, attr)
		if !ok || !contains(allowed, v) {
			return false
		}
	}
	for attr, disallowed := range f.Exclude {
		v, ok := attributeValue(a, attr)
		if ok && contains(disallowed, v) {
			return false
		}
	}
	return true
}

// Tuple is one atom's projection under a FilterSpec's Project list, its
// values keyed by attribute name.
type Tuple struct {
	ID     int
	Values map[string]string
}

// AtomStore holds every atom of a structure, indexed by ID, and preserves
// the order atoms were inserted in so iteration is deterministic.
type AtomStore struct {
	atoms map[int]*Atom
	order []int
}

// NewAtomStore returns an empty store.
func NewAtomStore() *AtomStore {
	return &AtomStore{atoms: make(map[int]*Atom)}
}

// Insert adds a to the store, replacing any existing atom with the same ID
// without disturbing that atom's position in iteration order.
func (s *AtomStore) Insert(a *Atom) {
	if _, ok := s.atoms[a.ID]; !ok {
		s.order = append(s.order, a.ID)
	}
	s.atoms[a.ID] = a
}

// Lookup returns the atom with the given ID, or nil if absent.
func (s *AtomStore) Lookup(id int) *Atom {
	return s.atoms[id]
}

// Len returns the number of atoms in the store.
func (s *AtomStore) Len() int {
	return len(s.order)
}

// All returns every atom in insertion order.
func (s *AtomStore) All() []*Atom {
	out := make([]*Atom, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.atoms[id])
	}
	return out
}

// sortedIDs returns every atom id in the store in ascending order,
// the deterministic iteration order Filter's Project and Group results
// are required to follow.
func (s *AtomStore) sortedIDs() []int {
	ids := append([]int(nil), s.order...)
	sort.Ints(ids)
	return ids
}

// Filter returns the atoms matching spec's CompID/Chain/Name/Residue
// shorthand and Include/Exclude predicates, in ascending atom-id order.
func (s *AtomStore) Filter(spec FilterSpec) []*Atom {
	var out []*Atom
	for _, id := range s.sortedIDs() {
		a := s.atoms[id]
		if spec.match(a) {
			out = append(out, a)
		}
	}
	return out
}

// project builds a Tuple for a, reading off every attribute named in
// spec.Project.
func project(a *Atom, spec FilterSpec) Tuple {
	values := make(map[string]string, len(spec.Project))
	for _, attr := range spec.Project {
		if v, ok := attributeValue(a, attr); ok {
			values[attr] = v
		}
	}
	return Tuple{ID: a.ID, Values: values}
}

// Project filters the store by spec, then returns one Tuple per
// surviving atom carrying spec.Project's attributes, in ascending
// atom-id order.
func (s *AtomStore) Project(spec FilterSpec) []Tuple {
	matched := s.Filter(spec)
	out := make([]Tuple, 0, len(matched))
	for _, a := range matched {
		out = append(out, project(a, spec))
	}
	return out
}

// Group filters the store by spec and projects spec.Project's
// attributes as Project does, then buckets the resulting tuples by the
// value of spec.Group, in ascending atom-id order within each bucket.
func (s *AtomStore) Group(spec FilterSpec) map[string][]Tuple {
	matched := s.Filter(spec)
	out := make(map[string][]Tuple)
	for _, a := range matched {
		key, _ := attributeValue(a, spec.Group)
		out[key] = append(out[key], project(a, spec))
	}
	return out
}

// FilterByResidue returns every atom belonging to key, in ascending
// atom-id order.
func (s *AtomStore) FilterByResidue(key ResidueKey) []*Atom {
	return s.Filter(FilterSpec{Residue: &key})
}

// Residues returns the distinct residue keys present in the store, sorted
// by (Chain, SeqID, AltID) for deterministic reporting.
func (s *AtomStore) Residues() []ResidueKey {
	seen := make(map[ResidueKey]bool)
	var keys []ResidueKey
	for _, id := range s.order {
		k := s.atoms[id].ResidueKey()
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Chain != b.Chain {
			return a.Chain < b.Chain
		}
		if a.SeqID != b.SeqID {
			return a.SeqID < b.SeqID
		}
		return a.AltID < b.AltID
	})
	return keys
}

// MarkSelection sets SelectionState to Target for every id in target and to
// Surrounding for every id in surrounding not already marked Target. Every
// other atom in the store is reset to Ignored.
func (s *AtomStore) MarkSelection(target, surrounding []int) {
	for _, id := range s.order {
		s.atoms[id].SelectionState = Ignored
	}
	for _, id := range surrounding {
		if a := s.atoms[id]; a != nil {
			a.SelectionState = Surrounding
		}
	}
	for _, id := range target {
		if a := s.atoms[id]; a != nil {
			a.SelectionState = Target
		}
	}
}
