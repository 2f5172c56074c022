// Package interval implements a closed integer range [Lb, Ub] with
// three-valued ordering, set operations, and the in-place mutators the
// rest of this module builds on (enlargement, intersection-with-collapse).
// Every higher-level primitive (Point, Rectangle, ManhattanArc) reduces to
// Interval operations on one or both axes.
//
// An Interval is invalid iff Lb > Ub; invalid intervals are a legal value
// (the result of intersecting two disjoint intervals) and are never
// rejected by construction; only algorithms that depend on a non-empty
// range check IsInvalid() where it matters.
//
// Complexity: every operation here is O(1).
package interval
