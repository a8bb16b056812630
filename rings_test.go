package pucker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSelectOrder(Te *testing.T) {
	//selection must follow the permutation, not ascending index order.
	frame := &Frame{
		Atoms: []*Atom{{"C"}, {"N"}, {"C"}, {"N"}, {"C"}, {"O"}},
		Coords: mat.NewDense(6, 3, []float64{
			0, 0, 0,
			1, 0, 0,
			2, 0, 0,
			3, 0, 0,
			4, 0, 0,
			5, 0, 0,
		}),
	}
	sel := NewSelector(nil)
	ring, err := sel.Select(frame, "cAlaAla") //4 3 2 1 0 5
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{4, 3, 2, 1, 0, 5}
	for i, w := range want {
		if ring.At(i, 0) != w {
			Te.Errorf("ring atom %d has x = %g, want %g", i, ring.At(i, 0), w)
		}
	}
}

func TestSelectUnknownSystem(Te *testing.T) {
	frame := &Frame{Atoms: make([]*Atom, 6), Coords: mat.NewDense(6, 3, nil)}
	_, err := NewSelector(nil).Select(frame, "cFooFoo")
	var target *UnknownSystemError
	if !errors.As(err, &target) {
		Te.Errorf("got %v, want UnknownSystemError", err)
	}
	if target.System != "cFooFoo" {
		Te.Errorf("error carries system %q", target.System)
	}
}

func TestSelectShortFrame(Te *testing.T) {
	frame := &Frame{
		Atoms:  []*Atom{{"C"}, {"N"}, {"C"}},
		Coords: mat.NewDense(3, 3, nil),
	}
	_, err := NewSelector(nil).Select(frame, "cGlyGly")
	var target *MalformedGeometryError
	if !errors.As(err, &target) {
		Te.Errorf("got %v, want MalformedGeometryError", err)
	}
}

func TestSpecsCheck(Te *testing.T) {
	if err := DefaultSpecs().Check(); err != nil {
		Te.Errorf("default specs rejected: %v", err)
	}
	bad := []Specs{
		{"short": {0, 1, 2}},
		{"dup": {0, 1, 2, 3, 3, 5}},
		{"neg": {0, 1, 2, 3, -4, 5}},
	}
	for _, s := range bad {
		if err := s.Check(); err == nil {
			Te.Errorf("specs %v passed Check", s)
		}
	}
}

func TestReadSpecs(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "rings.yaml")
	y := "cGlyGly: [0, 1, 2, 3, 4, 5]\ncustom: [5, 4, 3, 2, 1, 0]\n"
	if err := os.WriteFile(path, []byte(y), 0644); err != nil {
		Te.Fatal(err)
	}
	specs, err := ReadSpecs(path)
	if err != nil {
		Te.Fatal(err)
	}
	idx, ok := NewSelector(specs).Ring("custom")
	if !ok {
		Te.Fatal("custom system not registered")
	}
	for i, j := range idx {
		if j != 5-i {
			Te.Errorf("custom ring index %d = %d, want %d", i, j, 5-i)
		}
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("oops: [0, 1, 2]\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := ReadSpecs(bad); err == nil {
		Te.Error("invalid spec file accepted")
	}
}

func TestSelectorImmutable(Te *testing.T) {
	specs := Specs{"sys": {0, 1, 2, 3, 4, 5}}
	sel := NewSelector(specs)
	specs["sys"][0] = 99
	idx, _ := sel.Ring("sys")
	if idx[0] != 0 {
		Te.Error("Selector shares state with the table it was built from")
	}
}
