/*
 * toml.go, part of rotalib.
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

package params

import (
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"

	rotalib "github.com/rmera/rotalib"
)

// overridesDoc mirrors the subset of the registry a TOML file may
// override; an empty map or a zero length_error leaves the corresponding
// Default() entry untouched, while every key listed under coefficients is
// applied, zero values included.
type overridesDoc struct {
	LengthError    float64                    `toml:"length_error"`
	VdwRadii       map[string]float64         `toml:"vdw_radii"`
	PartialCharges map[string]float64         `toml:"partial_charges"`
	Coefficients   map[string]float64         `toml:"coefficients"`
}

// LoadTOML reads a registry-overrides document at path and applies it on
// top of Default(), following the same toml.NewDecoder idiom
// kpotier-molsolvent's cfg.New uses to load its own configuration file.
func LoadTOML(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rotalib.NewConfigurationError("opening parameter file %q: %v", path, err)
	}
	defer f.Close()

	var doc overridesDoc
	dec := toml.NewDecoder(f)
	if err := dec.Decode(&doc); err != nil {
		return nil, rotalib.NewConfigurationError("decoding parameter file %q: %v", path, err)
	}

	r := Default()
	applyOverridesDoc(r, doc)
	return r, nil
}

func applyOverridesDoc(r *Registry, doc overridesDoc) {
	if doc.LengthError > 0 {
		r.LengthError = doc.LengthError
	}
	for k, v := range doc.VdwRadii {
		r.VdwRadii[k] = v
	}
	for k, v := range doc.PartialCharges {
		r.PartialCharges[k] = v
	}
	for k, v := range doc.Coefficients {
		setCoefficient(&r.Coefficients, k, v)
	}
}

func setCoefficient(c *Coefficients, key string, v float64) {
	switch key {
	case "lj_k":
		c.LJk = v
	case "c_k":
		c.Ck = v
	case "h_k":
		c.Hk = v
	case "t_k":
		c.Tk = v
	case "lj_epsilon":
		c.LJEpsilon = v
	case "h_epsilon":
		c.HEpsilon = v
	case "r_sigma":
		c.RSigma = v
	case "c_epsilon":
		c.CEpsilon = v
	case "cutoff_atom":
		c.CutoffAtom = v
	case "cutoff_residue":
		c.CutoffResidue = v
	case "cutoff_start":
		c.CutoffStart = v
	case "cutoff_end":
		c.CutoffEnd = v
	}
}

// ParseOverrides parses the CLI's `--parameters KEY=VAL,...` contract
// into a registry built on top of Default(). KEY is one
// of the Coefficients names (e.g. "lj_epsilon") or "length_error".
func ParseOverrides(pairs []string) (*Registry, error) {
	r := Default()
	for _, p := range pairs {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			return nil, rotalib.NewConfigurationError("malformed override %q, expected KEY=VAL", p)
		}
		key := strings.TrimSpace(kv[0])
		val, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return nil, rotalib.NewConfigurationError("malformed override value in %q: %v", p, err)
		}
		if key == "length_error" {
			r.LengthError = val
			continue
		}
		setCoefficient(&r.Coefficients, key, val)
	}
	if r.Coefficients.CutoffStart >= r.Coefficients.CutoffEnd {
		return nil, rotalib.NewConfigurationError("cutoff_start (%f) must be < cutoff_end (%f)", r.Coefficients.CutoffStart, r.Coefficients.CutoffEnd)
	}
	return r, nil
}
