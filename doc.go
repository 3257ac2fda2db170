// Package partsp solves the symmetric Traveling Salesman Problem exactly by
// parallel depth-first Branch-and-Bound over the tree of partial tours.
//
// # What & Why
//
// Given an n×n non-negative distance matrix, partsp returns a Hamiltonian
// cycle starting and ending at city 0 with provably minimum total length.
// The search enumerates partial tours depth-first, pruning any branch whose
// closed-cycle cost already meets or exceeds the best complete tour found
// so far (the incumbent).
//
// # Algorithms & Complexity
//
//	SolveSerial   — single-threaded stack-driven DFS; the reference oracle.
//	  Time:   exponential worst case, pruned by the incumbent.
//	  Memory: O(n) per stacked partial tour, O(stack depth · n) total.
//
//	SolveParallel — W independent DFS workers seeded from a breadth-first
//	  frontier, sharing one incumbent and one rendezvous object for dynamic
//	  load balancing and termination detection.
//	  Time:   same asymptotic shape as SolveSerial, divided across workers
//	          (pruning strength depends on how quickly a strong incumbent
//	          is found, which is itself non-deterministic under concurrency).
//
// # Determinism & Stability
//
//   - The optimal cost is deterministic; the exact tour returned may differ
//     across runs and worker counts when multiple optima exist.
//   - Branching order within a partial tour is always ascending city index.
//   - Equality on costs is never tested; only strict less-than.
//
// # Cost Model
//
// A partial tour's cached cost is the length of the *closed* cycle formed
// by returning to city 0 from its last visited city. Charging the return
// edge to every partial tour makes that cached cost a valid pruning bound
// against the incumbent without any auxiliary lower bound, PROVIDED all
// distances are non-negative (see tour.go). partsp relies on the
// incumbent's cost alone as its bound; it does not compute a degree-1 or
// one-tree relaxation.
//
// # Errors
//
//	ErrNonSquareMatrix, ErrNonZeroDiagonal, ErrAsymmetricMatrix,
//	ErrNegativeDistance, ErrNonFiniteDistance, ErrEmptyMatrix,
//	ErrInvalidWorkerCount, ErrMalformedInput.
//
// Matrix/option errors are returned as sentinels (match with errors.Is); a
// precondition violation inside the core search (e.g. extending a tour
// with a city already on it) is an internal invariant failure and panics
// rather than returning a partial result, since no recovery is meaningful
// mid-search.
//
// # Results
//
//	type Tour struct {
//	    Cities []int   // Cities[0] == 0, all entries distinct, len == n
//	    Cost   float64 // closed-cycle length, recomputable from Cities
//	}
package partsp
