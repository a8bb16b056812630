package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Record is the serialized form of one analyzed system, keyed in the store by
// "<system>_<chirality>". The field names on the wire are fixed by the
// existing data files, casing included.
type Record struct {
	Amplitude    float64 `json:"Amplitude"`
	Theta        float64 `json:"theta"`
	Phi          float64 `json:"phi"`
	Conformation string  `json:"conformation"`
}

//Records flattens batch results into their serializable form. A later result
//for the same system and chirality overwrites an earlier one.
func Records(results []*SystemResult) map[string]Record {
	recs := make(map[string]Record, len(results))
	for _, r := range results {
		recs[r.Key()] = Record{
			Amplitude:    r.Pucker.Q,
			Theta:        r.Pucker.ThetaDeg,
			Phi:          r.Pucker.PhiDeg,
			Conformation: r.Conformation,
		}
	}
	return recs
}

//Save writes the results as an indented JSON map to path, overwriting any
//previous file.
func Save(results []*SystemResult, path string) error {
	j, err := json.MarshalIndent(Records(results), "", "    ")
	if err != nil {
		return fmt.Errorf("batch: serializing results: %w", err)
	}
	return os.WriteFile(path, j, 0644)
}

//Load reads a result store written by Save.
func Load(path string) (map[string]Record, error) {
	j, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recs map[string]Record
	if err := json.Unmarshal(j, &recs); err != nil {
		return nil, fmt.Errorf("batch: reading result store %s: %w", path, err)
	}
	return recs, nil
}
