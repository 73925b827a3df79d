// Package errs defines the error kinds shared by the codec, XOR and scoring packages.
package errs

import "errors"

// Kind classifies a failure.
type Kind uint8

const (
	Other Kind = iota
	Argument
	InvalidHex
	OddLength
	OddInput
	BufferTooSmall
	OutOfMemory
	IO
	Empty
)

// OddDigits and OutputOverflow name the same conditions from the encoder's side.
const (
	OddDigits      = OddLength
	OutputOverflow = BufferTooSmall
)

// String returns a human-readable description of the kind.
func (k Kind) String() string {
	switch k {
	case Argument:
		return "invalid arguments"
	case InvalidHex:
		return "invalid hex digit"
	case OddLength:
		return "odd number of hex digits"
	case OddInput:
		return "input length must be even (two equal buffers)"
	case BufferTooSmall:
		return "output buffer too small"
	case OutOfMemory:
		return "out of memory"
	case IO:
		return "I/O failure"
	case Empty:
		return "empty input"
	}
	return "unknown error"
}

// Error lets a Kind be used as a target for errors.Is.
func (k Kind) Error() string { return k.String() }

// Error records the operation and kind of a failure.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

// E returns an *Error for op. err may be nil.
func E(op string, kind Kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or Other.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// Describe returns the description of err's kind, falling back to err's own text.
func Describe(err error) string {
	if err == nil {
		return "success"
	}
	if k := KindOf(err); k != Other {
		return k.String()
	}
	return err.Error()
}
