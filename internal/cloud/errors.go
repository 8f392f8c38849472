package cloud

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a target that is already absent. Delete paths treat it as success.
	ErrNotFound = errors.New("resource not found")
	// ErrStillReferenced marks a delete rejected because another live resource depends on the target.
	ErrStillReferenced = errors.New("resource still referenced")
)

// RetryableDependencyError is returned when a delete or detach races with a
// dependent resource that has not been removed yet.
type RetryableDependencyError struct {
	ResourceID string
	Err        error
}

func (e *RetryableDependencyError) Error() string {
	return fmt.Sprintf("%s still referenced: %v", e.ResourceID, e.Err)
}

func (e *RetryableDependencyError) Unwrap() error { return e.Err }

func (e *RetryableDependencyError) Is(target error) bool {
	return target == ErrStillReferenced
}

// TransientTransportError covers authorization, throttling and network failures.
type TransientTransportError struct {
	Op  string
	Err error
}

func (e *TransientTransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransientTransportError) Unwrap() error { return e.Err }

// RejectedError is any other refusal by the control plane, e.g. an invalid
// parameter or a CIDR conflicting with an existing subnet.
type RejectedError struct {
	Op   string
	Code string
	Err  error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: rejected (%s): %v", e.Op, e.Code, e.Err)
}

func (e *RejectedError) Unwrap() error { return e.Err }

// FatalConfigurationError aborts a run: missing scope, missing user data, or a
// failed attribute toggle that leaves the topology out of contract.
type FatalConfigurationError struct {
	Phase string
	Err   error
}

func (e *FatalConfigurationError) Error() string {
	return fmt.Sprintf("fatal configuration error in %s: %v", e.Phase, e.Err)
}

func (e *FatalConfigurationError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStillReferenced(err error) bool {
	return errors.Is(err, ErrStillReferenced)
}

func IsTransport(err error) bool {
	var t *TransientTransportError
	return errors.As(err, &t)
}

func IsFatal(err error) bool {
	var f *FatalConfigurationError
	return errors.As(err, &f)
}
