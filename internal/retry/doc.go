// Package retry provides the bounded fixed-interval retry used by teardown.
//
// [Batch] repeats an operation over a set of resources, partitioning the set on
// every attempt into succeeded and remaining items, and stops as soon as the
// remaining set is empty. Items still remaining when the attempt budget runs
// out are reported as [PartialTeardownWarning] values instead of failing the
// run. Sleeping goes through an injectable [clock.Clock].
package retry
