package partsp

import "math"

// Package partsp — serial depth-first Branch-and-Bound.
//
// SolveSerial is both the single-threaded baseline and the reference
// oracle SolveParallel is checked against. Grounded on
// original_source/src/lib.rs's serial_tsp_bb, recast in the teacher's
// idiom: a dedicated engine-free loop (no closures, explicit stack,
// sentinel-free hot path — mirrors tsp/bb.go's preference for named
// state over anonymous functions, minus the engine struct since there is
// only one stack and no shared precomputation to cache).

// SolveSerial runs single-threaded DFS Branch-and-Bound over d and
// returns the optimal Hamiltonian cycle starting and ending at city 0.
//
// Algorithm (spec §4.2): maintain a LIFO of partial tours and a mutable
// incumbent. Pop a tour; prune it if its closed-cycle cost already meets
// or exceeds the incumbent's; if it is a full tour and improves on the
// incumbent, adopt it; otherwise branch over every feasible next city in
// ascending index order.
//
// Complexity: exponential worst case; O(n) per stacked partial tour.
func SolveSerial(d Matrix, opts Options) (Tour, error) {
	if err := ValidateMatrix(d); err != nil {
		return Tour{}, err
	}
	n := d.N()

	stack := []*Tour{NewTour()}
	best := &Tour{Cities: []int{0}, Cost: math.Inf(1)}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.Cost >= best.Cost {
			continue
		}

		if len(t.Cities) == n {
			if t.Cost < best.Cost {
				best = t
				if opts.Logger != nil {
					opts.Logger.Improved(Event{Cost: best.Cost, Worker: 0, StackSize: len(stack)})
				}
			}
			continue
		}

		// City 0 is the root and never feasible again; start at 1 (spec §4.2 note).
		for v := 1; v < n; v++ {
			if t.IsFeasible(v) {
				t.Extend(v, d)
				stack = append(stack, t.Clone())
				t.Retract(d)
			}
		}
	}

	return *best, nil
}
