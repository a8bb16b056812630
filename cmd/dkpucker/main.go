//dkpucker analyzes the ring puckering of diketopiperazine geometries.
//
//	dkpucker [flags] <data_directory>
//
//The data directory is expected to contain SS and SR subfolders, searched
//recursively for XYZ files; the parent folder of each file names its system.
//Results are written as JSON plus summary plots to the output directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	pucker "github.com/dkplab/gopucker"
	"github.com/dkplab/gopucker/batch"
	"github.com/dkplab/gopucker/puckplot"
)

func main() {
	var out, rings string
	var quiet bool
	flag.StringVar(&out, "o", "output", "output directory")
	flag.StringVar(&rings, "rings", "", "YAML file with ring-index tables (default: the built-in DKP tables)")
	flag.BoolVar(&quiet, "q", false, "do not print the per-system summary")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dkpucker [flags] <data_directory>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	specs := pucker.DefaultSpecs()
	if rings != "" {
		var err error
		specs, err = pucker.ReadSpecs(rings)
		if err != nil {
			log.Fatal(err)
		}
	}
	sel := pucker.NewSelector(specs)

	log.Printf("Analyzing geometries under `%s`\n", flag.Arg(0))
	results, err := batch.Analyze(flag.Arg(0), sel)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(out, 0755); err != nil {
		log.Fatal(err)
	}
	store := filepath.Join(out, "puckering_data.json")
	if err := batch.Save(results, store); err != nil {
		log.Fatal(err)
	}
	log.Printf("Full puckering data saved to %s\n", store)

	//plot from the persisted records so the figures always reflect the store.
	records, err := batch.Load(store)
	if err != nil {
		log.Fatal(err)
	}
	if err := puckplot.AmplitudeHisto(records, filepath.Join(out, "amplitude_histo.png")); err != nil {
		log.Fatal(err)
	}
	if err := puckplot.PolarScatter(records, filepath.Join(out, "conformations.png")); err != nil {
		log.Fatal(err)
	}

	if !quiet {
		batch.Summary(os.Stdout, results)
	}
	log.Println("Done")
}
