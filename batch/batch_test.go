package batch

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pucker "github.com/dkplab/gopucker"
)

const chairXYZ = `6
test chair ring
N    1.500000    0.000000    0.300000
C    0.750000    1.299038   -0.300000
C   -0.750000    1.299038    0.300000
N   -1.500000    0.000000   -0.300000
C   -0.750000   -1.299038    0.300000
C    0.750000   -1.299038   -0.300000
`

const flatXYZ = `6
test planar ring
N    1.500000    0.000000    0.000000
C    0.750000    1.299038    0.000000
C   -0.750000    1.299038    0.000000
N   -1.500000    0.000000    0.000000
C   -0.750000   -1.299038    0.000000
C    0.750000   -1.299038    0.000000
`

//builds a data root with one good geometry per chirality, plus files that
//must be skipped without aborting the batch.
func testTree(Te *testing.T) string {
	root := Te.TempDir()
	files := map[string]string{
		"SS/cGlyGly/opt.xyz":    chairXYZ,
		"SR/cGlyGly/opt.xyz":    flatXYZ,
		"SS/mystery/opt.xyz":    chairXYZ, //unknown system
		"SS/cAlaAla/broken.xyz": "6\nbad\nN one 0.0 0.0\n",
		"SS/cGlyGly/notes.txt":  "not a geometry",
	}
	for rel, text := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			Te.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			Te.Fatal(err)
		}
	}
	return root
}

func TestAnalyze(Te *testing.T) {
	root := testTree(Te)
	results, err := Analyze(root, pucker.NewSelector(nil))
	if err != nil {
		Te.Fatal(err)
	}
	if len(results) != 2 {
		Te.Fatalf("got %d results, want 2 (skipped files must not count)", len(results))
	}
	byKey := Records(results)
	ss, ok := byKey["cGlyGly_SS"]
	if !ok {
		Te.Fatal("cGlyGly_SS missing from records")
	}
	if ss.Conformation != pucker.Chair {
		Te.Errorf("SS geometry classified as %s", ss.Conformation)
	}
	wantQ := 1.8 / math.Sqrt(6)
	if math.Abs(ss.Amplitude-wantQ) > 1e-4 {
		Te.Errorf("SS amplitude = %g, want about %g", ss.Amplitude, wantQ)
	}
	if sr := byKey["cGlyGly_SR"]; sr.Amplitude > 1e-9 {
		Te.Errorf("planar SR geometry has Q = %g", sr.Amplitude)
	}
}

func TestAnalyzeUnreadableDir(Te *testing.T) {
	if os.Geteuid() == 0 {
		Te.Skip("permission bits do not bind root")
	}
	root := testTree(Te)
	locked := filepath.Join(root, "SS", "locked")
	if err := os.MkdirAll(locked, 0755); err != nil {
		Te.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(locked, "opt.xyz"), []byte(chairXYZ), 0644); err != nil {
		Te.Fatal(err)
	}
	if err := os.Chmod(locked, 0); err != nil {
		Te.Fatal(err)
	}
	defer os.Chmod(locked, 0755) //so the temp dir can be cleaned up
	results, err := Analyze(root, pucker.NewSelector(nil))
	if err != nil {
		Te.Fatalf("unreadable subdirectory aborted the batch: %v", err)
	}
	if len(results) != 2 {
		Te.Errorf("got %d results, want the 2 readable ones", len(results))
	}
}

func TestAnalyzeMissingRoot(Te *testing.T) {
	if _, err := Analyze(filepath.Join(Te.TempDir(), "nope"), pucker.NewSelector(nil)); err == nil {
		Te.Error("missing data root not reported")
	}
}

func TestAnalyzeNoResults(Te *testing.T) {
	root := Te.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "SS", "mystery"), 0755); err != nil {
		Te.Fatal(err)
	}
	path := filepath.Join(root, "SS", "mystery", "opt.xyz")
	if err := os.WriteFile(path, []byte(chairXYZ), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := Analyze(root, pucker.NewSelector(nil)); err == nil {
		Te.Error("all-skipped batch must surface a no-results error")
	}
}

func TestStoreRoundTrip(Te *testing.T) {
	root := testTree(Te)
	results, err := Analyze(root, pucker.NewSelector(nil))
	if err != nil {
		Te.Fatal(err)
	}
	path := filepath.Join(Te.TempDir(), "puckering_data.json")
	if err := Save(results, path); err != nil {
		Te.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		Te.Fatal(err)
	}
	want := Records(results)
	if len(loaded) != len(want) {
		Te.Fatalf("round trip changed record count: %d vs %d", len(loaded), len(want))
	}
	for key, w := range want {
		l, ok := loaded[key]
		if !ok {
			Te.Errorf("key %s lost in round trip", key)
			continue
		}
		if l != w {
			Te.Errorf("record %s changed in round trip: %+v vs %+v", key, l, w)
		}
	}
}

func TestSummary(Te *testing.T) {
	root := testTree(Te)
	results, err := Analyze(root, pucker.NewSelector(nil))
	if err != nil {
		Te.Fatal(err)
	}
	var b strings.Builder
	Summary(&b, results)
	out := b.String()
	for _, want := range []string{"Puckering Analysis Summary:", "cGlyGly (SS)", "Conformation: " + pucker.Chair} {
		if !strings.Contains(out, want) {
			Te.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
