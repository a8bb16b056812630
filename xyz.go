/*
 * xyz.go, part of gopucker
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
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//Atom holds the per-atom data of a geometry file other than the coordinates,
//which live in the coordinate matrix of the Frame.
type Atom struct {
	Symbol string
}

// Frame is one static molecular geometry: the atoms in file order plus their
// coordinates as a Len()x3 matrix. A Frame is not modified after parsing.
type Frame struct {
	Atoms  []*Atom
	Coords *mat.Dense
}

//Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	return len(F.Atoms)
}

//Pos returns the position of the ith atom.
func (F *Frame) Pos(i int) []float64 {
	return F.Coords.RawRowView(i)
}

//XYZRead reads a single-snapshot XYZ file. Files ending in .gz or .zst are
//decompressed on the fly.
func XYZRead(xyzname string) (*Frame, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(xyzname, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, &MalformedGeometryError{File: xyzname, Reason: err.Error()}
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(xyzname, ".zst"):
		zs, err := zstd.NewReader(f)
		if err != nil {
			return nil, &MalformedGeometryError{File: xyzname, Reason: err.Error()}
		}
		defer zs.Close()
		r = zs
	}
	return XYZReadFrom(r, xyzname)
}

//XYZReadFrom reads an XYZ geometry from r. The name is only used in error
//messages. The format is a line with the atom count, a comment line, and
//one line per atom: symbol followed by the three cartesian coordinates,
//extra columns ignored.
func XYZReadFrom(r io.Reader, name string) (*Frame, error) {
	buf := bufio.NewReader(r)
	line, err := buf.ReadString('\n')
	if err != nil && line == "" {
		return nil, &MalformedGeometryError{File: name, Line: 1, Reason: "missing atom-count header"}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, &MalformedGeometryError{File: name, Line: 1, Reason: "atom-count header is not a positive integer"}
	}
	if _, err := buf.ReadString('\n'); err != nil {
		return nil, &MalformedGeometryError{File: name, Line: 2, Reason: "missing comment line"}
	}
	atoms := make([]*Atom, 0, natoms)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = buf.ReadString('\n')
		if err != nil && line == "" {
			return nil, &MalformedGeometryError{File: name, Line: i + 3,
				Reason: "file ends before the declared " + strconv.Itoa(natoms) + " atoms"}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &MalformedGeometryError{File: name, Line: i + 3, Reason: "expected symbol plus 3 coordinates"}
		}
		for _, field := range fields[1:4] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &MalformedGeometryError{File: name, Line: i + 3, Reason: "non-numeric coordinate " + field}
			}
			coords = append(coords, v)
		}
		atoms = append(atoms, &Atom{Symbol: fields[0]})
	}
	return &Frame{Atoms: atoms, Coords: mat.NewDense(natoms, 3, coords)}, nil
}
