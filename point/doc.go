// Package point implements the recursively parametric Point described by
// the geometric primitive stack: a 2-D ordered pair whose coordinates are
// themselves scalars, Intervals, or nested Points. This recursive
// composition is what lets the same Point machinery produce a Rectangle
// (Point of Intervals), a segment (Point of Interval and scalar), or a
// 3-D point (Point whose X coordinate is itself a Point) without a
// separate type for each.
//
// Where a call site is statically shaped and performance-sensitive
// (polygon construction, clock-tree embedding, routing), this module uses
// the plain, non-recursive coordinate structs in package recti instead of
// this type; this package exists to give the fully generic composition a
// concrete, testable home.
package point
