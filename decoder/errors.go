package nanocbor

import (
	"fmt"
	"strconv"
	"strings"
)

const resumableDefault = false

var (
	// ErrShortBytes is returned when a declared argument or payload would
	// read past the end of the buffer.
	ErrShortBytes error = errShort{}

	// ErrRecursion is returned when Skip exhausts its depth budget
	// (RecursionMax). This should only realistically be seen on
	// adversarial data trying to exhaust the stack.
	ErrRecursion error = errRecursion{}
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether or not the error leaves the cursor in a
	// usable state. The cursor never advances on a failed operation, so a
	// resumable error may be answered by retrying with a different getter.
	Resumable() bool
}

// contextError allows Error instances to be enhanced with additional
// context about their origin.
type contextError interface {
	Error

	// withContext must not modify the error instance - it must clone and
	// return a new error with the context added.
	withContext(ctx string) error
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable returns whether or not the error leaves the cursor usable.
func Resumable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with additional context that allows the part of
// the traversal that caused the problem to be identified. Skip and Diag use
// it to record the slot indices an error propagated through. Underlying
// errors can be retrieved using Cause()
//
// The input error is not modified - a new error should be returned.
//
// ErrShortBytes is not wrapped with any context: truncation is a property
// of the whole buffer rather than of a position within the traversal, and
// it is the expected failure on partial input.
func WrapError(err error, ctx ...any) error {
	switch e := err.(type) {
	case errShort:
		return e
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	} else {
		return add
	}
}

// errWrapped allows arbitrary errors passed to WrapError to be enhanced with
// context and unwrapped with Cause()
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	} else {
		return e.cause.Error()
	}
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

type errShort struct{}

func (e errShort) Error() string   { return "nanocbor: too few bytes left to read object" }
func (e errShort) Resumable() bool { return false }

type errRecursion struct{}

func (e errRecursion) Error() string   { return "nanocbor: recursion limit reached" }
func (e errRecursion) Resumable() bool { return false }

// UintOverflow is returned when a decoded magnitude does not fit the
// requested unsigned target width, or when a container count would
// overflow its bookkeeping.
type UintOverflow struct {
	Value         uint64 // value of the uint
	FailedBitsize int    // the bit size that couldn't fit the value
	ctx           string
}

// Error implements the error interface
func (u UintOverflow) Error() string {
	str := "nanocbor: " + strconv.FormatUint(u.Value, 10) + " overflows uint" + strconv.Itoa(u.FailedBitsize)
	if u.ctx != "" {
		str += " at " + u.ctx
	}
	return str
}

// Resumable is always 'true' for overflows
func (u UintOverflow) Resumable() bool { return true }

func (u UintOverflow) withContext(ctx string) error { u.ctx = addCtx(u.ctx, ctx); return u }

// IntOverflow is returned when a negative-integer magnitude cannot be
// represented in the requested signed target width.
type IntOverflow struct {
	Value         int64 // the value of the integer
	FailedBitsize int   // the bit size that the int64 could not fit into
	ctx           string
}

// Error implements the error interface
func (i IntOverflow) Error() string {
	str := "nanocbor: " + strconv.FormatInt(i.Value, 10) + " overflows int" + strconv.Itoa(i.FailedBitsize)
	if i.ctx != "" {
		str += " at " + i.ctx
	}
	return str
}

// Resumable is always 'true' for overflows
func (i IntOverflow) Resumable() bool { return true }

func (i IntOverflow) withContext(ctx string) error { i.ctx = addCtx(i.ctx, ctx); return i }

// A TypeError is returned when a particular
// decoding method is unsuitable for decoding
// a particular CBOR value.
type TypeError struct {
	Method  Type // Type expected by method
	Encoded Type // Type actually encoded

	ctx string
}

// Error implements the error interface
func (t TypeError) Error() string {
	out := "nanocbor: attempted to decode type " + quoteStr(t.Encoded.String()) + " with method for " + quoteStr(t.Method.String())
	if t.ctx != "" {
		out += " at " + t.ctx
	}
	return out
}

// Resumable returns 'true' for TypeErrors
func (t TypeError) Resumable() bool { return true }

func (t TypeError) withContext(ctx string) error { t.ctx = addCtx(t.ctx, ctx); return t }

// badPrefix builds the error for a major type that
// does not match what the caller requested.
func badPrefix(gotMajor uint8, wantMajor uint8) error {
	return InvalidPrefixError{Want: wantMajor, Got: gotMajor}
}

// InvalidPrefixError is returned when an encoding
// uses a major type that is not expected.
type InvalidPrefixError struct {
	Want uint8
	Got  uint8
}

// Error implements the error interface
func (i InvalidPrefixError) Error() string {
	return "nanocbor: expected major type " + strconv.Itoa(int(i.Want)) + " but got " + strconv.Itoa(int(i.Got))
}

// Resumable returns 'true' for InvalidPrefixErrors: the cursor has not
// moved, so the caller may retry with the getter for the actual type.
func (i InvalidPrefixError) Resumable() bool { return true }

// InvalidAdditionalInfoError is returned when a header carries an
// additional info value that is reserved (28-30) or not usable in its
// position, such as an indefinite-length marker on an integer. Data
// containing these is not well-formed and cannot be resumed.
type InvalidAdditionalInfoError struct {
	Major uint8
	Info  uint8
}

// Error implements the error interface
func (i InvalidAdditionalInfoError) Error() string {
	return "nanocbor: invalid additional info " + strconv.Itoa(int(i.Info)) + " in major type " + strconv.Itoa(int(i.Major))
}

// Resumable returns 'false' for InvalidAdditionalInfoErrors
func (i InvalidAdditionalInfoError) Resumable() bool { return false }

func ctxString(ctx []any) string {
	parts := make([]string, 0, len(ctx))
	for _, c := range ctx {
		parts = append(parts, fmt.Sprint(c))
	}
	return strings.Join(parts, "/")
}

func quoteStr(s string) string { return strconv.Quote(s) }
