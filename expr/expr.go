/*
 * expr.go, part of rotalib.
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

// Package expr implements the small expression-tree algebraic data type
// the rotatable-bond model composes its symbolic affine matrices from:
// sums, products, negation, sine and cosine over a fixed set of named
// variables, plus rational literals. Evaluation is a single substitution
// pass; there is no simplification beyond folding two literals at
// construction time.
package expr

import "math"

// Node is any symbolic expression: Const, Var, Sum, Product, Neg, Sin or
// Cos. It is a sealed interface: only this package's constructors
// produce Nodes.
type Node interface {
	Eval(vals map[string]float64) float64
	node()
}

// Const is a rational (here, floating point) literal.
type Const float64

func (c Const) Eval(map[string]float64) float64 { return float64(c) }
func (Const) node()                              {}

// Var is a named variable, substituted from the Eval map. A name absent
// from the map evaluates to 0.
type Var string

func (v Var) Eval(vals map[string]float64) float64 { return vals[string(v)] }
func (Var) node()                                   {}

// Sum is the n-ary sum of its terms.
type Sum []Node

func (s Sum) Eval(vals map[string]float64) float64 {
	total := 0.0
	for _, n := range s {
		total += n.Eval(vals)
	}
	return total
}
func (Sum) node() {}

// Product is the n-ary product of its factors.
type Product []Node

func (p Product) Eval(vals map[string]float64) float64 {
	total := 1.0
	for _, n := range p {
		total *= n.Eval(vals)
	}
	return total
}
func (Product) node() {}

// Neg negates its operand.
type Neg struct{ X Node }

func (n Neg) Eval(vals map[string]float64) float64 { return -n.X.Eval(vals) }
func (Neg) node()                                   {}

// Sin is the sine of its operand.
type Sin struct{ X Node }

func (n Sin) Eval(vals map[string]float64) float64 { return math.Sin(n.X.Eval(vals)) }
func (Sin) node()                                   {}

// Cos is the cosine of its operand.
type Cos struct{ X Node }

func (n Cos) Eval(vals map[string]float64) float64 { return math.Cos(n.X.Eval(vals)) }
func (Cos) node()                                   {}

// Add builds a Sum of a and b, folding to a Const when both are already
// literals so a fully numeric expression never grows a tree at runtime.
func Add(a, b Node) Node {
	if ca, ok := a.(Const); ok {
		if cb, ok := b.(Const); ok {
			return ca + cb
		}
	}
	return Sum{a, b}
}

// Mul builds a Product of a and b, folding two literals immediately.
func Mul(a, b Node) Node {
	if ca, ok := a.(Const); ok {
		if cb, ok := b.(Const); ok {
			return ca * cb
		}
	}
	return Product{a, b}
}

// Negate builds Neg(a), folding a literal immediately.
func Negate(a Node) Node {
	if ca, ok := a.(Const); ok {
		return -ca
	}
	return Neg{a}
}
