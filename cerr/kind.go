// Package cerr is the engine's error carrier: a small error kind plus an
// optional message and source location, propagated unchanged from the
// point of failure to the caller, with a single last-error record for the
// buffer-copy retrieval accessor of spec section 6.
//
// Every fallible operation in digraph, sortindex, seed and batch, and the
// oracle constructors, return a *cerr.Error (or nil); Oracle.Search
// returns a plain error, which is a *cerr.Error except for the context's
// own error on cancellation. Construction happens exactly once, at
// the point of failure, via New/Newf — propagation through intermediate
// call frames must return the same value unchanged, never re-wrap it.
package cerr

// Kind classifies what went wrong. The zero value, OK, is never returned
// as an error (functions return a nil *Error instead); it exists so Kind
// has a defined zero value and so Of(nil) has a Kind to report. (Last()
// itself returns nil until the first failure.)
type Kind int

const (
	OK Kind = iota
	UnknownError
	InvalidInput
	NoMemory
	NoSolution
	TooLargeProblem
	TooLargeDigraph
	DistSearchError
	NotImplemented
)

// tags gives each Kind its formatted-message prefix, matching the
// "<tag>:<file>:<line>) <message>" shape of spec section 6.
var tags = [...]string{
	OK:              "OK",
	UnknownError:    "UNKNOWN_ERROR",
	InvalidInput:    "INVALID_INPUT",
	NoMemory:        "NO_MEMORY",
	NoSolution:      "NO_SOLUTION",
	TooLargeProblem: "TOO_LARGE_PROBLEM",
	TooLargeDigraph: "TOO_LARGE_DIGRAPH",
	DistSearchError: "DIST_SEARCH_ERROR",
	NotImplemented:  "NOT_IMPLEMENTED",
}

// String returns the tag used in formatted error messages, e.g. "NO_MEMORY".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(tags) {
		return tags[UnknownError]
	}
	return tags[k]
}
