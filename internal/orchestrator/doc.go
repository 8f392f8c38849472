// Package orchestrator sequences the create and delete calls for the lab
// network against an eventually consistent control plane.
//
// Provisioning runs its phases strictly in order and aborts on the first
// failure. Decommissioning runs its phases in reverse dependency order, retries
// deletions that race with asynchronous detachment, and degrades anything it
// cannot remove into warnings so that later phases still run. Phase order is
// explicit ([ProvisionPhases], [DecommissionPhases]) and recorded in the
// [Report] of every run.
package orchestrator
