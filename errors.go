/*
 * errors.go, part of rotalib.
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

import "fmt"

// Error is implemented by every error kind rotalib returns. Decorate lets a
// caller that adds context (a residue id, a file name) prepend it without
// losing the chain of messages already attached.
type Error interface {
	error
	Decorate(string) []string
}

// baseError implements the bookkeeping shared by every concrete error kind:
// a message and the decoration trail built up as the error propagates.
type baseError struct {
	kind    string
	msg     string
	decorations []string
}

func (e *baseError) Error() string {
	s := e.kind + ": " + e.msg
	for _, d := range e.decorations {
		s = d + ": " + s
	}
	return s
}

func (e *baseError) Decorate(s string) []string {
	e.decorations = append(e.decorations, s)
	return e.decorations
}

// ParameterError reports a missing or malformed entry in the parameter
// registry (unknown residue, missing coefficient, unparsable override).
type ParameterError struct{ *baseError }

func NewParameterError(format string, args ...interface{}) *ParameterError {
	return &ParameterError{&baseError{kind: "parameter error", msg: fmt.Sprintf(format, args...)}}
}

// GeometryDegenerate reports a geometric configuration rotalib cannot build
// a reference frame or dihedral from (collinear atoms, coincident points).
type GeometryDegenerate struct{ *baseError }

func NewGeometryDegenerate(format string, args ...interface{}) *GeometryDegenerate {
	return &GeometryDegenerate{&baseError{kind: "degenerate geometry", msg: fmt.Sprintf(format, args...)}}
}

// ConfigurationError reports invalid sampler or loader configuration (bad
// grid step, conflicting selection, malformed TOML).
type ConfigurationError struct{ *baseError }

func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{&baseError{kind: "configuration error", msg: fmt.Sprintf(format, args...)}}
}

// UnknownResidue reports a residue name absent from the parameter registry's
// rotatable-bond table.
type UnknownResidue struct{ *baseError }

func NewUnknownResidue(compID string) *UnknownResidue {
	return &UnknownResidue{&baseError{kind: "unknown residue", msg: compID}}
}
