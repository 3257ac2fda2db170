package partsp

import "sync"

// Package partsp — load-balancing and termination-detection rendezvous.
//
// rendezvous is the single shared coordination object described in spec
// §3/§4.5: a donation slot, a waiting-worker counter, one mutex, and one
// condition variable. It implements both dynamic work donation (idle
// workers receive a half-share of a busy worker's stack) and distributed
// termination detection (the search ends only once every worker is
// simultaneously idle with nothing left to donate).
//
// There is no direct teacher precedent for this exact protocol (lvlath's
// concurrency is confined to core.Graph's sync.RWMutex-guarded mutations);
// the shape — one mutex, one sync.Cond, explicit state transitions named
// in a table — follows the spec's own state-machine description in §4.5
// directly, using the same "hold the lock only for the constant-time
// protocol step" discipline the teacher applies to its own locks.

// rendezvous coordinates work donation and termination across a fixed
// pool of workers. Its zero value is not usable; construct with
// newRendezvous.
type rendezvous struct {
	mu      sync.Mutex
	cond    *sync.Cond
	donated []*Tour // nil: no pending donation. non-nil (possibly empty): HasDonation state.
	waiting int // workers currently blocked in the idle path
	workers int // total worker count W
}

func newRendezvous(workers int) *rendezvous {
	r := &rendezvous{workers: workers}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// splitStack partitions a donor's stack into what it keeps and what it
// gives away: even-indexed elements stay with the donor, odd-indexed
// elements go to the taker, each half preserving its relative order
// (spec §4.5, "Stack-split policy").
func splitStack(stack []*Tour) (keep, give []*Tour) {
	keep = make([]*Tour, 0, (len(stack)+1)/2)
	give = make([]*Tour, 0, len(stack)/2)
	for i, t := range stack {
		if i%2 == 0 {
			keep = append(keep, t)
		} else {
			give = append(give, t)
		}
	}
	return keep, give
}

// check implements spec §4.5's per-call protocol. *stack is the calling
// worker's private stack; check may shrink it (Case A, donating half away)
// or grow it (Case C, receiving a donation). It returns true iff the
// caller should terminate.
//
// Case A (donor): len(*stack) > 2. r.mu is acquired on every such call,
// and the waiting>0 && donated==nil test is made only under the lock;
// there is no unlocked pre-check, so a waiter that arrives just before the
// lock is taken is never missed (spec §9 open question 2).
//
// Case B (still working): *stack is non-empty and not large enough to
// donate from — return immediately, no lock taken.
//
// Case C (idle): *stack is empty. Acquire r.mu; either this is the W-th
// worker to go idle (termination) or it waits for a donation or for
// termination to be declared by the last arrival.
func (r *rendezvous) check(stack *[]*Tour) (terminated bool) {
	if len(*stack) > 2 {
		r.mu.Lock()
		if r.waiting > 0 && r.donated == nil {
			keep, give := splitStack(*stack)
			*stack = keep
			r.donated = give
			r.cond.Signal()
		}
		r.mu.Unlock()
		return false
	}

	if len(*stack) > 0 {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.waiting == r.workers-1 {
		// This is the W-th worker to arrive idle: every other worker is
		// already blocked in the wait loop below. Termination is only
		// reachable from donated == nil (spec §4.5's state table): a
		// donor may have committed r.donated and signalled a waiter that
		// hasn't yet reacquired the lock to consume it, racing this
		// arrival. Take the pending donation ourselves rather than
		// declare termination out from under it — the signalled waiter
		// simply loops back to Wait() and re-checks once we release the
		// lock, and the search only actually ends once an arrival finds
		// donated == nil.
		if r.donated != nil {
			*stack = append(*stack, r.donated...)
			r.donated = nil
			return false
		}
		r.waiting = r.workers
		r.cond.Broadcast()
		return true
	}

	r.waiting++
	for r.donated == nil && r.waiting < r.workers {
		r.cond.Wait()
	}

	if r.waiting < r.workers && r.donated != nil {
		*stack = append(*stack, r.donated...)
		r.donated = nil
		r.waiting--
		return false
	}

	// r.waiting == r.workers: termination was declared while we waited.
	return true
}
