package orchestrator

import "fmt"

// PhaseError carries the phase a run stopped in.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase failed: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// CanceledError reports a run stopped at a phase boundary. After is nil
// when no phase had completed yet.
type CanceledError struct {
	After *Phase
	Err   error
}

func (e *CanceledError) Error() string {
	if e.After == nil {
		return fmt.Sprintf("canceled before any phase ran: %v", e.Err)
	}
	return fmt.Sprintf("canceled after %s phase completed: %v", *e.After, e.Err)
}

func (e *CanceledError) Unwrap() error {
	return e.Err
}
