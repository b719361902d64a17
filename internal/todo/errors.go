package todo

import (
	"errors"
	"fmt"
)

// Kind classifies store failures so callers can branch without reading messages.
type Kind int

const (
	KindOutOfBounds Kind = iota + 1
	KindNothingToDelete
	KindParse
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindOutOfBounds:
		return "index out of bounds"
	case KindNothingToDelete:
		return "no completed tasks to delete"
	case KindParse:
		return "index must be a positive integer"
	case KindIO:
		return "store i/o failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is; an *Error matches the sentinel of its Kind.
var (
	ErrOutOfBounds     = &Error{Kind: KindOutOfBounds}
	ErrNothingToDelete = &Error{Kind: KindNothingToDelete}
	ErrParse           = &Error{Kind: KindParse}
	ErrIO              = &Error{Kind: KindIO}
)

// Error is returned by every store operation that fails.
type Error struct {
	Op     string // "load", "add", "complete", "delete_completed"
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or 0 when err is not a store error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
