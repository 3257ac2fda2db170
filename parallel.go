package partsp

import "sync"

// Package partsp — parallel dispatcher: seed, distribute, run, join.
//
// Grounded on original_source/src/lib.rs's parallel_tsp_bb (spawn one
// thread per worker, join all, read back the shared incumbent) and on
// tsp/solve.go's SolveWithMatrix dispatcher shape (validate once, then
// route). Go workers are goroutines rather than OS threads; this matches
// spec §5's "one OS thread per worker" in spirit (each worker gets
// dedicated, independently schedulable execution) while following the Go
// idiom of letting the runtime multiplex goroutines onto OS threads.

// SolveParallel runs W independent DFS Branch-and-Bound workers over d
// and returns the optimal Hamiltonian cycle starting and ending at city 0.
// W must be >= 1.
//
// The search tree's initial frontier is produced by ExpandSeeds and
// distributed round-robin across workers (spec §9 open question 1), so
// every seed subtree is covered even when the frontier size is not a
// multiple of W. Workers then run independently, donating and receiving
// work through a shared rendezvous object until every worker is
// simultaneously idle with nothing left to donate.
func SolveParallel(d Matrix, workers int, opts Options) (Tour, error) {
	if workers < 1 {
		return Tour{}, ErrInvalidWorkerCount
	}
	if err := ValidateMatrix(d); err != nil {
		return Tour{}, err
	}
	n := d.N()

	inc := newIncumbent()

	if n == 1 {
		inc.seed(&Tour{Cities: []int{0}, Cost: 0})
		return inc.snapshot(), nil
	}

	queue, seedBest := ExpandSeeds(d, workers, opts)
	inc.seed(seedBest)

	if len(queue) == 0 {
		// The whole search tree fit inside the seed frontier; nothing left
		// for any worker to search.
		return inc.snapshot(), nil
	}

	stacks := distributeSeeds(queue, workers)
	rv := newRendezvous(workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		w := &worker{id: i, stack: stacks[i], d: d, n: n, rv: rv, inc: inc, opts: opts}
		go func() {
			defer wg.Done()
			w.run()
		}()
	}
	wg.Wait()

	return inc.snapshot(), nil
}
