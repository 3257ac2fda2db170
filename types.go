package partsp

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (input shape, options governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Input-shape errors. Never wrap these with fmt.Errorf where the sentinel
// alone is informative; callers match with errors.Is.
var (
	// ErrEmptyMatrix indicates a zero-size distance matrix.
	ErrEmptyMatrix = errors.New("partsp: empty distance matrix")

	// ErrNonSquareMatrix indicates the distance matrix is not N×N.
	ErrNonSquareMatrix = errors.New("partsp: distance matrix is not square")

	// ErrNonZeroDiagonal indicates some D[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("partsp: non-zero self-distance on diagonal")

	// ErrAsymmetricMatrix indicates D[i][j] != D[j][i] for some i, j.
	ErrAsymmetricMatrix = errors.New("partsp: asymmetric distance matrix")

	// ErrNegativeDistance indicates a negative entry, which would invalidate
	// the closed-cycle pruning bound (see doc.go, "Cost Model").
	ErrNegativeDistance = errors.New("partsp: negative distance encountered")

	// ErrNonFiniteDistance indicates a NaN or ±Inf entry.
	ErrNonFiniteDistance = errors.New("partsp: non-finite distance encountered")

	// ErrMalformedInput indicates the plain-text matrix format could not be parsed.
	ErrMalformedInput = errors.New("partsp: malformed distance matrix input")
)

// Solver governance sentinels.
var (
	// ErrInvalidWorkerCount indicates W < 1 was passed to SolveParallel.
	ErrInvalidWorkerCount = errors.New("partsp: worker count must be >= 1")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Tour is a Hamiltonian cycle (or, internally, a partial one) through a
// distance matrix, starting at city 0.
//
// Invariants for a RESULT Tour (returned by SolveSerial/SolveParallel):
//
//	len(Cities) == n
//	Cities[0]   == 0
//	each vertex in [0..n-1] appears exactly once
//	Cost == the closed-cycle length of Cities, recomputed from the matrix
type Tour struct {
	// Cities is the ordered sequence of visited city indices.
	Cities []int

	// Cost is the cached closed-cycle length; see tour.go for the
	// incremental update rule and doc.go for why it doubles as a bound.
	Cost float64
}

// Event reports an incumbent improvement. Events are advisory only; they
// are never required for correctness and their delivery order across
// workers is not externally observable.
type Event struct {
	// Cost is the new incumbent's closed-cycle cost.
	Cost float64

	// Worker identifies the reporting worker (0 for SolveSerial, which has
	// exactly one "worker").
	Worker int

	// StackSize is the reporting worker's stack depth at the moment of
	// improvement; purely informational (carried over from the sequential
	// engine's own "stack_size" trace, see original_source).
	StackSize int
}

// Logger receives improvement events. Implementations must not block the
// caller for long, since Improved is invoked while workers are mid-search.
type Logger interface {
	Improved(Event)
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Options configures both SolveSerial and SolveParallel. Zero value is
// meaningful (nil Logger disables event reporting); use DefaultOptions
// when a stdlib-backed logger is wanted.
type Options struct {
	// Logger receives an Event on every incumbent improvement. May be nil.
	Logger Logger
}

// DefaultOptions returns Options with a Logger backed by the standard
// library's log package (see events.go), matching the rest of this
// module's zero-dependency ambient stack.
func DefaultOptions() Options {
	return Options{
		Logger: NewStdLogger(),
	}
}
