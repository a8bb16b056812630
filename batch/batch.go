//Package batch runs the puckering analysis over whole directory trees of XYZ
//geometries and persists the results. The expected layout is a data root with
//one subfolder per chirality class (SS and SR), searched recursively; the
//immediate parent folder of each geometry file names the system it belongs
//to. Per-ring failures are logged and skipped, they never abort the batch.
package batch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	pucker "github.com/dkplab/gopucker"
)

//The chirality subfolders searched under the data root.
var Chiralities = []string{"SS", "SR"}

// SystemResult is the analysis outcome for one geometry file. It is the only
// long-lived artifact of a batch run and is immutable after creation.
type SystemResult struct {
	System       string
	Chirality    string
	Pucker       *pucker.Result
	Conformation string
}

//Key returns the identifier under which this result is persisted.
func (r *SystemResult) Key() string {
	return r.System + "_" + r.Chirality
}

//Analyze walks the SS and SR subtrees of root, analyzes every geometry file
//whose parent folder names a registered system, and returns the collected
//results. A missing root is a fatal error reported before any processing;
//individual files that cannot be read or analyzed are logged and skipped. If
//nothing at all could be analyzed an error is returned.
func Analyze(root string, sel *pucker.Selector) ([]*SystemResult, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("batch: data directory %s: %w", root, err)
	}
	var results []*SystemResult
	for _, chir := range Chiralities {
		dir := filepath.Join(root, chir)
		if _, err := os.Stat(dir); err != nil {
			log.Printf("batch: no %s folder under %s, skipping", chir, root)
			continue
		}
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			//unreadable entries are logged and skipped like any other
			//per-file problem; they never abort the batch.
			if err != nil {
				log.Printf("batch: skipping %s: %v", path, err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isGeometry(path) {
				return nil
			}
			system := filepath.Base(filepath.Dir(path))
			r, ok := analyzeFile(path, system, chir, sel)
			if ok {
				results = append(results, r)
			}
			return nil
		})
	}
	if len(results) == 0 {
		return nil, errors.New("batch: no results produced from " + root)
	}
	return results, nil
}

//analyzeFile handles one geometry file, reporting per-ring errors to the log
//instead of propagating them.
func analyzeFile(path, system, chir string, sel *pucker.Selector) (*SystemResult, bool) {
	frame, err := pucker.XYZRead(path)
	if err != nil {
		log.Printf("batch: skipping %s: %v", path, err)
		return nil, false
	}
	res, conf, err := sel.Analyze(frame, system)
	if err != nil {
		log.Printf("batch: skipping %s: %v", path, err)
		return nil, false
	}
	return &SystemResult{System: system, Chirality: chir, Pucker: res, Conformation: conf}, true
}

func isGeometry(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, suffix := range []string{".xyz", ".xyz.gz", ".xyz.zst"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

//Summary writes a human-readable summary of the batch to w, one block per
//analyzed system.
func Summary(w io.Writer, results []*SystemResult) {
	fmt.Fprintln(w, "Puckering Analysis Summary:")
	for _, r := range results {
		fmt.Fprintf(w, "System: %s (%s)\n", r.System, r.Chirality)
		fmt.Fprintf(w, "  Conformation: %s\n", r.Conformation)
		fmt.Fprintf(w, "  Total Puckering Amplitude (Q): %.3f\n", r.Pucker.Q)
		fmt.Fprintf(w, "  Theta (deg): %.2f\n", r.Pucker.ThetaDeg)
		fmt.Fprintf(w, "  Phi (deg): %.2f\n", r.Pucker.PhiDeg)
		fmt.Fprintln(w, strings.Repeat("-", 40))
	}
}
