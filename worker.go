package partsp

import (
	"math"
	"sync"
)

// Package partsp — per-worker DFS search loop and shared incumbent.
//
// Grounded on original_source/src/lib.rs's parallel_tsp_bb thread body,
// generalized from a single local_stack busy-loop into the spec's
// explicit check/pop/prune/expand cycle coordinating through rendezvous.

// incumbent is the single shared best-tour-so-far, guarded by a mutex
// held only for a compare or a compare-and-set (spec §4.4/§5), exactly as
// tsp/bb.go's bbEngine.recordUB/commit guard a single engine's bestCost —
// generalized here to cross-goroutine safety since multiple workers race
// to update it.
type incumbent struct {
	mu   sync.Mutex
	best *Tour
}

func newIncumbent() *incumbent {
	return &incumbent{best: &Tour{Cities: []int{0}, Cost: math.Inf(1)}}
}

// cost reads the incumbent's current cost under lock.
func (inc *incumbent) cost() float64 {
	inc.mu.Lock()
	defer inc.mu.Unlock()
	return inc.best.Cost
}

// seed installs t as the incumbent if it strictly improves on the
// current one, without emitting an event (used once, before any worker
// starts, to install the seed expander's finding).
func (inc *incumbent) seed(t *Tour) {
	inc.mu.Lock()
	defer inc.mu.Unlock()
	if t.Cost < inc.best.Cost {
		inc.best = t
	}
}

// update publishes t as the new incumbent if it still strictly improves
// on the current one (re-checked under lock, since the caller's last read
// may be stale), and reports an Event on success.
func (inc *incumbent) update(t *Tour, workerID int, stackSize int, logger Logger) {
	inc.mu.Lock()
	if t.Cost >= inc.best.Cost {
		inc.mu.Unlock()
		return
	}
	inc.best = t
	cost := t.Cost
	inc.mu.Unlock()

	if logger != nil {
		logger.Improved(Event{Cost: cost, Worker: workerID, StackSize: stackSize})
	}
}

// snapshot returns a copy of the current incumbent.
func (inc *incumbent) snapshot() Tour {
	inc.mu.Lock()
	defer inc.mu.Unlock()
	return *inc.best
}

// worker runs one DFS search loop over a private stack, consulting the
// shared incumbent for pruning and the shared rendezvous for load
// balancing and termination detection (spec §4.4).
type worker struct {
	id    int
	stack []*Tour
	d     Matrix
	n     int
	rv    *rendezvous
	inc   *incumbent
	opts  Options
}

// run executes the worker loop until the rendezvous declares termination.
func (w *worker) run() {
	for {
		if w.rv.check(&w.stack) {
			return
		}

		t := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if t.Cost >= w.inc.cost() {
			continue
		}

		if len(t.Cities) == w.n {
			w.inc.update(t, w.id, len(w.stack), w.opts.Logger)
			continue
		}

		for v := 1; v < w.n; v++ {
			if t.IsFeasible(v) {
				t.Extend(v, w.d)
				w.stack = append(w.stack, t.Clone())
				t.Retract(w.d)
			}
		}
	}
}
