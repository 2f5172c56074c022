// Package recti implements the statically-shaped rectilinear primitives:
// an integer 2-D point, axis-aligned rectangles and segments built by
// composing it with Interval, and the 45°-rotated ManhattanArc used by
// the clock-tree merging algorithm. Where package point gives the fully
// generic, recursively parametric composition, this package gives the
// plain structs that the clock-tree and router packages actually use on
// their hot call sites.
package recti
