package puckplot

import (
	"os"
	"path/filepath"
	"testing"

	pucker "github.com/dkplab/gopucker"
	"github.com/dkplab/gopucker/batch"
)

func testRecords() map[string]batch.Record {
	return map[string]batch.Record{
		"cGlyGly_SS": {Amplitude: 0.12, Theta: 2.1, Phi: 33, Conformation: pucker.Chair},
		"cGlyGly_SR": {Amplitude: 0.31, Theta: 88.7, Phi: 61.2, Conformation: pucker.Boat},
		"cAlaAla_SS": {Amplitude: 0.44, Theta: 151.0, Phi: 290.4, Conformation: pucker.HalfChair},
	}
}

func TestAmplitudeHisto(Te *testing.T) {
	file := filepath.Join(Te.TempDir(), "histo.png")
	if err := AmplitudeHisto(testRecords(), file); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(file); err != nil || fi.Size() == 0 {
		Te.Errorf("no histogram written to %s", file)
	}
}

func TestPolarScatter(Te *testing.T) {
	file := filepath.Join(Te.TempDir(), "polar.png")
	if err := PolarScatter(testRecords(), file); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(file); err != nil || fi.Size() == 0 {
		Te.Errorf("no scatter written to %s", file)
	}
}
