/*
 * ids.go, part of rotalib.
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
	"sync/atomic"

	rotalib "github.com/rmera/rotalib"
)

// IDAllocator hands out unique pseudo-atom ids above every id already in
// a store. Sweep never inserts into the shared store itself, so several
// residues can be swept concurrently; sharing one IDAllocator across
// those Sweep calls keeps their pseudo-atom ids from colliding.
type IDAllocator struct {
	next int64
}

// NewIDAllocator seeds an allocator above the highest id currently in
// store.
func NewIDAllocator(store *rotalib.AtomStore) *IDAllocator {
	max := 0
	for _, a := range store.All() {
		if a.ID > max {
			max = a.ID
		}
	}
	return &IDAllocator{next: int64(max)}
}

// Next returns the next unused id. Safe for concurrent use.
func (a *IDAllocator) Next() int {
	return int(atomic.AddInt64(&a.next, 1))
}
