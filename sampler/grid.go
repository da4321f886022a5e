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

// Package sampler evaluates a residue's rotatable-bond model on a
// configurable angle grid, scores every candidate rotamer with a
// pluggable potential, ranks them and writes the pseudo-atoms back into
// the atom store.
package sampler

import "sort"

// AngleGrid maps a chi variable name ("chi0", "chi1", ...) to the list
// of angle values (radians) the sweep should try for it. A chi absent
// from the grid keeps its current value.
type AngleGrid map[string][]float64

// Product enumerates the Cartesian product of grid's value lists in
// sorted-key order, implemented as a mixed-radix odometer rather than
// recursion, returning one map per combination.
func Product(grid AngleGrid) []map[string]float64 {
	names := make([]string, 0, len(grid))
	for k := range grid {
		names = append(names, k)
	}
	sort.Strings(names)

	lists := make([][]float64, len(names))
	total := 1
	for i, n := range names {
		lists[i] = grid[n]
		if len(lists[i]) == 0 {
			return nil
		}
		total *= len(lists[i])
	}
	if len(names) == 0 {
		return []map[string]float64{{}}
	}

	out := make([]map[string]float64, 0, total)
	idx := make([]int, len(names))
	for c := 0; c < total; c++ {
		combo := make(map[string]float64, len(names))
		for i, n := range names {
			combo[n] = lists[i][idx[i]]
		}
		out = append(out, combo)

		for d := len(names) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < len(lists[d]) {
				break
			}
			idx[d] = 0
		}
	}
	return out
}
