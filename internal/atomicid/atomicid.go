// Package atomicid issues process-wide unique identifiers.
//
// Identifiers come from a single atomic counter, so two values obtained
// from different goroutines are never equal and later calls always
// return larger values.
package atomicid

import "sync/atomic"

var counter atomic.Uint64

// Next returns a fresh identifier. The first identifier issued by a
// process is 1.
func Next() uint64 {
	return counter.Add(1)
}

// Current returns the most recently issued identifier without consuming
// one. It returns 0 if Next has never been called.
func Current() uint64 {
	return counter.Load()
}
