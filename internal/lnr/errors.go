package lnr

import (
	"errors"
	"fmt"

	"lnr.org/internal/names"
)

var (
	ErrRemoteMutation = errors.New("lnr: remote mutation failed")
	ErrInvalidAddress = errors.New("lnr: invalid address")
	ErrNoCaller       = errors.New("lnr: caller address not configured")
	ErrCallerMismatch = errors.New("lnr: caller does not match signing address")
)

// RemoteMutationError wraps a failed contract transaction with the operation
// that issued it.
type RemoteMutationError struct {
	Op     string
	Domain names.Domain
	Err    error
}

func (e *RemoteMutationError) Error() string {
	if e.Domain == "" {
		return fmt.Sprintf("lnr: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("lnr: %s %s: %v", e.Op, e.Domain, e.Err)
}

func (e *RemoteMutationError) Unwrap() error { return e.Err }

func (e *RemoteMutationError) Is(target error) bool { return target == ErrRemoteMutation }
