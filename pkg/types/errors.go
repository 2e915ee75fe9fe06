package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	KindIO                 ErrKind = iota // file open/map/read failure
	KindAllocatorExhausted                // arena capacity exceeded
	KindTableOverflow                     // hash table load-factor ceiling reached
	KindMalformedInput                    // input does not match the grammar
	KindConfig                            // invalid limits or options
)

// String returns the taxonomy tag of the kind.
func (k ErrKind) String() string {
	switch k {
	case KindIO:
		return "IoFailure"
	case KindAllocatorExhausted:
		return "AllocatorExhausted"
	case KindTableOverflow:
		return "TableOverflow"
	case KindMalformedInput:
		return "MalformedInput"
	case KindConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// NoOffset marks errors that are not tied to a position in the input.
const NoOffset = -1

// Error is a typed error with the detection offset and an optional cause.
type Error struct {
	Kind   ErrKind
	Offset int // byte offset into the input, NoOffset if not positional
	Msg    string
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an *Error. Msg may be empty when err already says it all.
func NewError(kind ErrKind, offset int, msg string, err error) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries a typed error of the given kind.
func IsKind(err error, kind ErrKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// OffsetOf returns the detection offset of err, or NoOffset.
func OffsetOf(err error) int {
	var te *Error
	if errors.As(err, &te) {
		return te.Offset
	}
	return NoOffset
}
