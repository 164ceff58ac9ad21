package pcalc

import (
	"errors"
	"fmt"
)

// Kind classifies an evaluation failure. Kind implements error so that
// callers may test any returned error with errors.Is(err, OutOfBounds).
type Kind uint8

// Failure kinds.
const (
	AllocationFailure Kind = iota + 1
	OutOfBounds
	NotEnoughValues
	InvalidExpression
	UnknownToken
	NoPreviousAnswer
)

var kindMessages = [...]string{
	AllocationFailure: "Memory allocation failed",
	OutOfBounds:       "Value out of bounds",
	NotEnoughValues:   "Not enough values",
	InvalidExpression: "Invalid expression",
	UnknownToken:      "Unknown token",
	NoPreviousAnswer:  "No previous answer",
}

func (k Kind) String() string {
	if int(k) < len(kindMessages) && kindMessages[k] != "" {
		return kindMessages[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) Error() string { return k.String() }

// Error is the only error returned by an evaluation. Pos is the byte offset
// into the evaluated text of the token at which recognition or evaluation
// failed.
type Error struct {
	Kind Kind
	Pos  int

	// cause retains an internal condition escalated into Kind, e.g.
	// NotEnoughValues becoming InvalidExpression.
	cause Kind
}

func (err *Error) Error() string {
	return fmt.Sprintf("%v at offset %v", err.Kind, err.Pos)
}

func (err *Error) Unwrap() error { return err.Kind }

// Is matches the escalated cause as well as Kind.
func (err *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k != 0 && (k == err.Kind || k == err.cause)
}

// Pos returns the error offset carried by err, or -1 if err did not come
// from an evaluation.
func Pos(err error) int {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Pos
	}
	return -1
}

func errorAt(kind Kind, pos int) *Error {
	return &Error{Kind: kind, Pos: pos}
}
