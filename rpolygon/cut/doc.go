// Package cut implements the RPolygon decomposition family: recursive
// splitting of a rectilinear polygon into convex, orthogonally-convex
// ("explicit"), and rectangular pieces.
//
// Input and output polygons use the staircase vertex-stream convention
// shared with package rpolygon: consecutive stored vertices p, q are
// joined by a horizontal run at p.Y followed by a vertical run at q.X,
// so a stream of n points encodes up to 2n corners and two points encode
// a full rectangle.
//
// All three variants share the same move at a "bad" vertex: find the
// nearest boundary run facing it (vertically or horizontally, whichever
// is closer), append a new vertex at the projection point to the shared
// vertex buffer, link it as a new node of the rdllist cycle, and re-route
// the cycle into two independent sub-cycles that recurse separately.
// They differ only in which corner counts as bad: a concave
// direction-reversing stored vertex (convex), any concave stored vertex
// (explicit), or a concave inferred elbow between two stored vertices
// (implicit). CutRectangle composes explicit over implicit.
package cut
