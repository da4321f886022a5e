/*
 * sink.go, part of rotalib.
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

// Package diag collects the non-fatal ParameterError/UnknownResidue
// events a run produces, instead of a bare log.Println at the call site.
package diag

import (
	"log"
	"sync"
)

// Sink receives a non-fatal diagnostic. kind names the error kind
// ("parameter", "unknown-residue", ...); err carries the detail.
type Sink interface {
	Report(kind string, err error)
}

// Slice is an in-memory sink, safe for concurrent use by sampler.SweepMany's
// worker pool, and the default choice in tests.
type Slice struct {
	mu      sync.Mutex
	Entries []Entry
}

// Entry is one recorded diagnostic.
type Entry struct {
	Kind string
	Err  error
}

func (s *Slice) Report(kind string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = append(s.Entries, Entry{Kind: kind, Err: err})
}

// Logger wraps a *log.Logger, the way kpotier-molsolvent's cfg.Cfg.Start
// takes a *log.Logger parameter rather than assuming a package-global one.
type Logger struct {
	L *log.Logger
}

func (l Logger) Report(kind string, err error) {
	l.L.Printf("%s: %v", kind, err)
}

// Discard silently drops every diagnostic; used when a caller has no
// interest in non-fatal events.
type Discard struct{}

func (Discard) Report(string, error) {}
