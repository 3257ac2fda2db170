package partsp

import "math"

// Package partsp — breadth-first seed expander.
//
// ExpandSeeds produces the initial frontier handed to SolveParallel's
// worker fleet. Grounded on original_source/src/lib.rs's
// get_initial_stack, generalized per spec §4.3/§9 open question 1: the
// frontier is distributed round-robin across workers rather than
// truncated to a multiple of W, so no seed subtree is ever discarded.

// ExpandSeeds performs BFS on the search tree starting from the trivial
// tour, expanding the front of the queue until its size is at least
// workers (or until no tour in the queue can expand further, which only
// happens when n is small enough that the whole tree fits in fewer than
// workers leaves). The incumbent is also tracked during expansion, since
// full tours can appear here when n is very small.
//
// Returns the frontier (possibly shorter than workers, see above) and the
// best complete tour observed during expansion (cost +Inf if none).
func ExpandSeeds(d Matrix, workers int, opts Options) ([]*Tour, *Tour) {
	n := d.N()
	queue := []*Tour{NewTour()}
	best := &Tour{Cities: []int{0}, Cost: math.Inf(1)}

	for len(queue) > 0 && len(queue) < workers {
		t := queue[0]
		queue = queue[1:]

		if t.Cost >= best.Cost {
			continue
		}

		if len(t.Cities) == n {
			if t.Cost < best.Cost {
				best = t
				if opts.Logger != nil {
					opts.Logger.Improved(Event{Cost: best.Cost, Worker: -1, StackSize: len(queue)})
				}
			}
			continue
		}

		for v := 1; v < n; v++ {
			if t.IsFeasible(v) {
				t.Extend(v, d)
				queue = append(queue, t.Clone())
				t.Retract(d)
			}
		}
	}

	return queue, best
}

// distributeSeeds assigns the seed frontier to workers round-robin so
// that len(queue) mod workers leftover tours are spread out instead of
// discarded (spec §9 open question 1): worker i receives queue[i],
// queue[i+workers], queue[i+2*workers], ... in order.
func distributeSeeds(queue []*Tour, workers int) [][]*Tour {
	stacks := make([][]*Tour, workers)
	for i, t := range queue {
		w := i % workers
		stacks[w] = append(stacks[w], t)
	}
	return stacks
}
