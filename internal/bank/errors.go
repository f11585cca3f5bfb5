package bank

import "fmt"

// ErrMalformedBank indicates the bank document is not a role → question-list
// mapping at the top level.
type ErrMalformedBank struct {
	Err error
}

func (e *ErrMalformedBank) Error() string {
	return fmt.Sprintf("malformed question bank: %v", e.Err)
}

func (e *ErrMalformedBank) Unwrap() error { return e.Err }

// ErrInvalidQuestion indicates a single question record violates the
// question invariant. It identifies the offending role and record index.
type ErrInvalidQuestion struct {
	Role  string
	Index int
	Err   error
}

func (e *ErrInvalidQuestion) Error() string {
	return fmt.Sprintf("invalid question (role %q, index %d): %v", e.Role, e.Index, e.Err)
}

func (e *ErrInvalidQuestion) Unwrap() error { return e.Err }

// ErrEmptyBank indicates the loaded document contains no roles with at least
// one valid question.
type ErrEmptyBank struct{}

func (e *ErrEmptyBank) Error() string {
	return "question bank has no roles with valid questions"
}

// ErrUnknownRole indicates a role that is not present in the bank.
type ErrUnknownRole struct {
	Role string
}

func (e *ErrUnknownRole) Error() string {
	return fmt.Sprintf("unknown role: %q", e.Role)
}
