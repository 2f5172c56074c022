// Package rpolygon implements the rectilinear polygon primitive: signed
// area, point containment, orientation detection, convexity and
// monotonicity predicates, and the monotone-chain and stress-test
// constructors used by the decomposition and hull algorithms in the cut
// and hull subpackages.
//
// The vertex stream uses the staircase convention: consecutive stored
// vertices p, q are joined by a horizontal run at p.Y followed by a
// vertical run at q.X, with the elbow between them left implicit when p
// and q differ on both axes. A fully explicit rectilinear ring (every
// edge axis-aligned, even vertex count) is the special case where no
// elbow is implied; ToPolygon expands any stream to that form.
package rpolygon
