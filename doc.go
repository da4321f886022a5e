/*
 * doc.go, part of rotalib.
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

// Package rotalib computes alternative side-chain rotamer conformations of
// protein residues. It reconstructs the covalent bond graph from raw atomic
// coordinates, builds a symbolic model of each rotatable side-chain bond,
// sweeps a dihedral-angle grid, scores the resulting candidates with a
// pluggable potential and ranks them.
//
// The package does not parse or write any structure file format: it
// consumes atom records already extracted from a PDBx/mmCIF file and
// returns the same records augmented with pseudo-atoms. The subpackages
// v3 and geom provide the vector and geometric primitives everything
// else is built on; grid, hybrid, expr, rotamer, potential and sampler
// implement the neighbor search, hybridization inference, symbolic
// affine algebra, rotatable-bond model, energy functions and the
// dihedral-sweep driver, in that dependency order; params holds the
// immutable parameter registry; chemgraph and diag are supporting
// infrastructure for bond-graph traversal and non-fatal diagnostics.
package rotalib
