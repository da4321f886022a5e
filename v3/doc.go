/*
 * doc.go, part of rotalib.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

// Package v3 implements a Matrix type representing a row-major Nx3 matrix.
// The v3.Matrix is used to hold the cartesian coordinates of a set of atoms.
// It is backed by gonum's (gonum.org/v1/gonum/mat) Dense type, with the
// column count fixed at 3 and a handful of vector-oriented helpers added on
// top for the geometric work the rest of the module needs.
package v3
