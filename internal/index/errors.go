package index

import (
	"fmt"
	"time"
)

// ErrEmptyIndex indicates a role has no indexed questions: either the role
// is unknown or everything it had was rejected at load time.
type ErrEmptyIndex struct {
	Role string
}

func (e *ErrEmptyIndex) Error() string {
	return fmt.Sprintf("no indexed questions for role %q", e.Role)
}

// ErrRebuildTimeout indicates an index rebuild exceeded its deadline.
// The previous index, if any, remains in place and queryable.
type ErrRebuildTimeout struct {
	Timeout time.Duration
	Err     error
}

func (e *ErrRebuildTimeout) Error() string {
	return fmt.Sprintf("index rebuild timed out after %s: %v", e.Timeout, e.Err)
}

func (e *ErrRebuildTimeout) Unwrap() error { return e.Err }
