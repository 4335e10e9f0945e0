package cerr

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// stackTracer is satisfied by every error github.com/pkg/errors produces
// (errors.New, errors.Errorf, errors.WithStack, ...). The stack's first
// frame is wherever that error was built: the call site itself when it
// builds the error directly, or the helper's own line when a helper such
// as Newf (or digraph's errInvalid/errNoMemory/errTooLarge) builds it.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Error is the engine's carried error: a Kind plus the underlying
// pkg/errors value that supplies the message and source location.
type Error struct {
	Kind Kind
	err  error
}

// New wraps err (which must already carry a pkg/errors stack - construct
// it with errors.New/errors.Errorf/errors.WithStack at the call site) with
// a Kind, and records it as the last error.
//
// New never re-captures the stack itself: doing so here would always
// point at this line in cerr, defeating the "source location of the
// actual failure" contract of spec section 6/7.
func New(kind Kind, err error) *Error {
	e := &Error{Kind: kind, err: err}
	setLast(e)
	return e
}

// Newf is a convenience wrapper for New(kind, errors.Errorf(format, args...)).
// Because the error is built inside Newf, its recorded source location is
// Newf's own line in this file, not the caller's.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, errors.Errorf(format, args...))
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "cerr: <nil>"
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.err.Error())
}

// Unwrap exposes the underlying pkg/errors value so errors.Is/As see through it.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Is reports whether target is a *cerr.Error with the same Kind. It lets
// callers write `errors.Is(err, &cerr.Error{Kind: cerr.NoMemory})`-style
// checks (building the target with New would overwrite the last-error
// record), but the idiomatic form is `cerr.Of(err) == cerr.NoMemory`.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Of extracts the Kind carried by err: OK if err is nil, UnknownError if
// err is not a *cerr.Error.
func Of(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if err == nil {
		return OK
	}
	return UnknownError
}

// location returns the basename/line of the first stack frame captured at
// construction, or ("", 0) if the underlying error carries no stack (this
// should not happen for errors built via pkg/errors, but callers embedding
// a plain error should not panic for it).
func (e *Error) location() (file string, line int) {
	st, ok := e.err.(stackTracer)
	if !ok {
		return "", 0
	}
	frames := st.StackTrace()
	if len(frames) == 0 {
		return "", 0
	}
	f := frames[0]
	return fmt.Sprintf("%s", f), atoi(fmt.Sprintf("%d", f))
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return n
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// message returns the plain message without the pkg/errors stack annotation.
func (e *Error) message() string {
	return e.err.Error()
}

// format renders "<tag>:<file>:<line>) <message>" per spec section 6.
func (e *Error) format() string {
	file, line := e.location()
	return fmt.Sprintf("%s:%s:%d) %s", e.Kind, file, line, e.message())
}

var (
	mu   sync.Mutex
	last *Error
)

// setLast records e as the process-wide last error. Guarded by mu per the
// "serialised by the host" option of spec section 5 - this module does not
// attempt per-goroutine confinement, which Go has no first-class support
// for anyway.
func setLast(e *Error) {
	mu.Lock()
	last = e
	mu.Unlock()
}

// Last returns the most recently constructed *Error, or nil if none has
// occurred yet in this process.
func Last() *Error {
	mu.Lock()
	defer mu.Unlock()
	return last
}

// ClearLast resets the last-error record. Exposed for tests that need a
// clean slate; the core itself never calls it.
func ClearLast() {
	mu.Lock()
	last = nil
	mu.Unlock()
}

// Format copies the formatted last-error string into buf, returning
// whether buf was large enough to hold it. This is the single
// boolean-returning accessor of spec section 6/7: no logging, no
// stdout/stderr, just a buffer copy.
func Format(buf []byte) bool {
	e := Last()
	if e == nil {
		if len(buf) < len("OK") {
			return false
		}
		copy(buf, "OK")
		return true
	}
	s := e.format()
	if len(buf) < len(s) {
		return false
	}
	copy(buf, s)
	return true
}
