/*
 * parallel.go, part of rotalib.
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
	"context"
	"log"
	"sync"

	rotalib "github.com/rmera/rotalib"
	"github.com/rmera/rotalib/params"
)

// SweepMany runs one Sweep per residue key over a bounded worker pool,
// the same "one goroutine per unit of work, sync.WaitGroup to join" idiom
// kpotier-molsolvent's cfg.Cfg.Start uses to fan out calculations. Every
// worker shares the frozen store and registry read-only: Sweep itself
// never mutates store, so this holds even with workers>1. Once every
// worker has joined, the pseudo-atoms each Sweep returned are inserted
// into store sequentially, in key order, so store.Insert never runs
// concurrently with itself. ctx carries cooperative cancellation: a
// cancelled context stops dispatching new residues to workers, and each
// worker's Sweep call additionally checks it between rotamers, so an
// in-flight residue sweep also winds down promptly instead of running to
// completion.
func SweepMany(ctx context.Context, store *rotalib.AtomStore, reg *params.Registry, keys []rotalib.ResidueKey, grids map[rotalib.ResidueKey]AngleGrid, energy PairEnergy, cfg Config, workers int, logger *log.Logger) (map[rotalib.ResidueKey][]*rotalib.Atom, error) {
	if workers <= 0 {
		workers = 1
	}

	ids := NewIDAllocator(store)

	jobs := make(chan rotalib.ResidueKey)
	results := make(map[rotalib.ResidueKey][]*rotalib.Atom, len(keys))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range jobs {
				out, err := Sweep(ctx, store, reg, key, grids[key], energy, cfg, ids)
				if err != nil {
					if logger != nil {
						logger.Printf("sweep %v: %v", key, err)
					}
					continue
				}
				mu.Lock()
				results[key] = out
				mu.Unlock()
			}
		}()
	}

dispatch:
	for _, key := range keys {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- key:
		}
	}
	close(jobs)
	wg.Wait()

	for _, key := range keys {
		for _, a := range results[key] {
			store.Insert(a)
		}
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
