// Command seedstore prepares a catalog database outside the dashboard:
// it migrates the schema, loads the demo data and prints a row-count
// summary. Use --reset to wipe and reload an existing store.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/Maishelbayeh/BringUs-sub000/internal/catalog"
)

func main() {
	var storePath string
	var reset bool
	flag.StringVar(&storePath, "store", "", "path to the catalog sqlite file (required)")
	flag.BoolVar(&reset, "reset", false, "wipe existing rows and reload the demo data")
	flag.Parse()

	if storePath == "" {
		exitWithError(fmt.Errorf("missing --store path"))
	}

	store, err := catalog.Open(storePath)
	if err != nil {
		exitWithError(fmt.Errorf("open store: %w", err))
	}
	defer store.Close()

	if reset {
		err = store.Reseed()
	} else {
		err = store.SeedIfEmpty()
	}
	if err != nil {
		exitWithError(fmt.Errorf("seed: %w", err))
	}

	counts, err := store.Counts()
	if err != nil {
		exitWithError(fmt.Errorf("count: %w", err))
	}
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("%-14s %d\n", kind, counts[kind])
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "seedstore: %v\n", err)
	os.Exit(1)
}
