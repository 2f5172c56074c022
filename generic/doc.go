// Package generic implements the capability-based dispatch that lets the
// rest of this module express "do these two things overlap/contain/merge"
// once, for operands as different as a bare scalar, an Interval, or a
// Point whose coordinates are themselves Intervals.
//
// Capability is expressed as a set of small optional interfaces
// (Overlapper, Container, ...) that a concrete type implements when it
// supports the operation. The free functions in this package try lhs,
// then rhs, then fall back to scalar semantics, in that fixed order.
package generic
