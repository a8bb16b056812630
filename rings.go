/*
 * rings.go, part of gopucker
 *
 * Copyright 2024 The gopucker authors
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package pucker

import (
	"bufio"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Specs maps a system name to the indices of its ring atoms within a Frame,
// in ring-traversal order. The order is part of the data: the Fourier
// decomposition is order-sensitive, so rotating or reversing a ring changes
// phi and can flip amplitude signs.
type Specs map[string][]int

//DefaultSpecs returns the ring-index tables for the diketopiperazine series.
func DefaultSpecs() Specs {
	return Specs{
		"cGlyGly":   {0, 1, 2, 3, 4, 5},
		"cAlaAla":   {4, 3, 2, 1, 0, 5},
		"cHisHis":   {0, 1, 2, 3, 4, 5},
		"cHisHis2+": {0, 1, 2, 3, 4, 5},
		"cPhgPhg":   {2, 1, 0, 5, 4, 3},
		"cLeuLeu":   {0, 4, 5, 3, 2, 1},
		"cValVal":   {4, 3, 2, 1, 0, 5},
		"cTrpTrp":   {0, 1, 2, 3, 4, 5},
		"cPhePhe":   {0, 5, 4, 3, 2, 1},
	}
}

//ReadSpecs reads ring-index tables from a YAML file mapping each system name
//to its list of ring indices, and validates them.
func ReadSpecs(path string) (Specs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var s Specs
	if err := yaml.NewDecoder(bufio.NewReader(f)).Decode(&s); err != nil {
		return nil, fmt.Errorf("gopucker: ring specs %s: %w", path, err)
	}
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("gopucker: ring specs %s: %w", path, err)
	}
	return s, nil
}

//Check verifies that every table has exactly 6 non-negative indices with no
//duplicates. Specs built by hand should be checked before use.
func (s Specs) Check() error {
	for name, idx := range s {
		if len(idx) != 6 {
			return fmt.Errorf("system %s: need 6 ring indices, got %d", name, len(idx))
		}
		seen := make(map[int]bool, len(idx))
		for _, j := range idx {
			if j < 0 {
				return fmt.Errorf("system %s: negative ring index %d", name, j)
			}
			if seen[j] {
				return fmt.Errorf("system %s: duplicate ring index %d", name, j)
			}
			seen[j] = true
		}
	}
	return nil
}

// Selector extracts ring atoms from geometry frames according to an immutable
// table of ring specs. It holds no other state, so one Selector can serve any
// number of concurrent analyses.
type Selector struct {
	specs Specs
}

//NewSelector returns a Selector over a private copy of the given table, or
//over the default diketopiperazine table if specs is nil. The table is not
//validated here; see Specs.Check.
func NewSelector(specs Specs) *Selector {
	if specs == nil {
		specs = DefaultSpecs()
	}
	c := make(Specs, len(specs))
	for name, idx := range specs {
		c[name] = append([]int(nil), idx...)
	}
	return &Selector{specs: c}
}

//Ring returns the ring indices registered for a system, or false if there is
//no table for it.
func (S *Selector) Ring(system string) ([]int, bool) {
	idx, ok := S.specs[system]
	if !ok {
		return nil, false
	}
	return append([]int(nil), idx...), true
}

//Select returns the positions of the ring atoms of the given system, in
//traversal order, as an Nx3 matrix. It returns a *UnknownSystemError for
//unregistered systems and a *MalformedGeometryError when the frame has fewer
//atoms than the table requires.
func (S *Selector) Select(frame *Frame, system string) (*mat.Dense, error) {
	idx, ok := S.specs[system]
	if !ok {
		return nil, &UnknownSystemError{System: system}
	}
	ring := mat.NewDense(len(idx), 3, nil)
	for i, j := range idx {
		if j >= frame.Len() {
			return nil, &MalformedGeometryError{File: system,
				Reason: fmt.Sprintf("ring index %d out of range for a %d-atom frame", j, frame.Len())}
		}
		ring.SetRow(i, frame.Pos(j))
	}
	return ring, nil
}

//Analyze runs the whole pipeline for one six-membered ring: ring selection,
//centering, Cremer-Pople decomposition, spherical-polar reduction and
//conformational classification. It returns the puckering result and the
//assigned family label.
func (S *Selector) Analyze(frame *Frame, system string) (*Result, string, error) {
	ring, err := S.Select(frame, system)
	if err != nil {
		return nil, "", errDecorate(err, "Analyze")
	}
	cen := Translate(ring)
	z, err := Displacements(cen)
	if err != nil {
		return nil, "", errDecorate(err, "Analyze")
	}
	amps, adeg, arad, err := Parameters(z)
	if err != nil {
		return nil, "", errDecorate(err, "Analyze")
	}
	Q, theta, phi, err := SphericalPolarSix(amps, adeg)
	if err != nil {
		return nil, "", errDecorate(err, "Analyze")
	}
	res := &Result{Amplitudes: amps, AnglesDeg: adeg, AnglesRad: arad, Q: Q, ThetaDeg: theta, PhiDeg: phi}
	return res, Classify(theta, phi), nil
}
