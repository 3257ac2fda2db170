// Command partsp reads a plain-text distance matrix and prints the
// optimal Hamiltonian cycle through it, computed by either the serial or
// the parallel Branch-and-Bound engine.
//
// This is the thin external driver spec.md §1 keeps out of the core: its
// only job is to parse a file, pick an entry point, and print the result.
// No repository in the retrieval pack imports a CLI framework, so this
// follows the teacher's own register for user-facing entry points:
// standard library flag parsing and log.Fatalf on failure (see
// examples/dijkstra_city_route.go for the same log.Fatalf idiom).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kvitsenko/partsp"
)

func main() {
	var (
		workers = flag.Int("workers", 1, "number of parallel workers (1 selects the serial engine)")
		path    = flag.String("matrix", "", "path to a plain-text N×N distance matrix")
	)
	flag.Parse()

	if *path == "" {
		log.Fatalf("partsp: -matrix is required")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("partsp: open %s: %v", *path, err)
	}
	defer f.Close()

	d, err := partsp.ParseMatrix(f)
	if err != nil {
		log.Fatalf("partsp: parse %s: %v", *path, err)
	}

	opts := partsp.DefaultOptions()

	var tour partsp.Tour
	if *workers <= 1 {
		tour, err = partsp.SolveSerial(d, opts)
	} else {
		tour, err = partsp.SolveParallel(d, *workers, opts)
	}
	if err != nil {
		log.Fatalf("partsp: solve: %v", err)
	}

	fmt.Printf("cost: %g\n", tour.Cost)
	fmt.Printf("tour: %v\n", tour.Cities)
}
