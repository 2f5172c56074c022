package recti

import "github.com/physdes/recti/interval"

// ManhattanArc is a rectilinear polygon's locus-of-equal-distance
// primitive, held in the 45°-rotated basis U = X-Y, V = X+Y. An L1 ball
// in the original (X, Y) basis is an L∞ (square) ball in this rotated
// one, so every Manhattan operation below reduces to plain Interval /
// Rectangle arithmetic.
type ManhattanArc struct {
	U, V interval.Interval
}

// FromPoint constructs the degenerate (zero-measure) arc at p's rotated
// image.
func FromPoint(p Point2D) ManhattanArc {
	r := p.Rotates()
	return ManhattanArc{U: interval.Point(r.X), V: interval.Point(r.Y)}
}

// Construct builds an arc directly from raw rotated-basis coordinates,
// without going through a Point2D.
func Construct(u, v int64) ManhattanArc {
	return ManhattanArc{U: interval.Point(u), V: interval.Point(v)}
}

// IsInvalid reports whether either rotated axis is empty.
func (a ManhattanArc) IsInvalid() bool {
	return a.U.IsInvalid() || a.V.IsInvalid()
}

// LowerCorner returns the rotated-basis lower corner (U.Lb, V.Lb).
func (a ManhattanArc) LowerCorner() Point2D {
	return Point2D{X: a.U.Lb, Y: a.V.Lb}
}

// UpperCorner returns the rotated-basis upper corner (U.Ub, V.Ub).
func (a ManhattanArc) UpperCorner() Point2D {
	return Point2D{X: a.U.Ub, Y: a.V.Ub}
}

// Center returns the rotated-basis midpoint.
func (a ManhattanArc) Center() Point2D {
	return Point2D{X: (a.U.Lb + a.U.Ub) / 2, Y: (a.V.Lb + a.V.Ub) / 2}
}

// Contains reports whether a fully contains other, in rotated-basis
// coordinates.
func (a ManhattanArc) Contains(other ManhattanArc) bool {
	return a.U.ContainsInterval(other.U) && a.V.ContainsInterval(other.V)
}

// EnlargeWith returns a new arc widened by r on both rotated axes.
// Unlike Rectangle.EnlargeWith this does not mutate in place: the merge
// algorithm needs both the enlarged and the original segment
// simultaneously.
func (a ManhattanArc) EnlargeWith(r int64) ManhattanArc {
	out := a
	out.U.EnlargeWith(r)
	out.V.EnlargeWith(r)
	return out
}

// IntersectWith returns the pointwise intersection of the two arcs; may
// be invalid.
func (a ManhattanArc) IntersectWith(other ManhattanArc) ManhattanArc {
	return ManhattanArc{U: a.U.IntersectWith(other.U), V: a.V.IntersectWith(other.V)}
}

// MinDistWith returns max(dist_U, dist_V), the L∞ distance in rotated
// space, which equals the L1 (Manhattan) distance in the original frame.
func (a ManhattanArc) MinDistWith(other ManhattanArc) int64 {
	du := a.U.MinDistWith(other.U)
	dv := a.V.MinDistWith(other.V)
	if du > dv {
		return du
	}
	return dv
}

// MergeWith constructs the DME merging segment of a and other for a
// tapping offset alpha (0 <= alpha <= MinDistWith(other)): a is enlarged
// by alpha, other is enlarged by the remaining distance, and the two
// trust regions are intersected.
func (a ManhattanArc) MergeWith(other ManhattanArc, alpha int64) ManhattanArc {
	d := a.MinDistWith(other)
	trr1 := a.EnlargeWith(alpha)
	trr2 := other.EnlargeWith(d - alpha)
	return trr1.IntersectWith(trr2)
}

// NearestPointTo returns the point on a (in the unrotated frame)
// nearest to p: it builds the degenerate arc at p, enlarges it by its
// distance to a to form a trust region, and resolves ties toward a's
// corners before a's center.
func (a ManhattanArc) NearestPointTo(p Point2D) Point2D {
	ms := FromPoint(p)
	dist := a.MinDistWith(ms)
	trr := ms.EnlargeWith(dist)

	lower := a.LowerCorner()
	upper := a.UpperCorner()
	lowerArc := ManhattanArc{U: interval.Point(lower.X), V: interval.Point(lower.Y)}
	upperArc := ManhattanArc{U: interval.Point(upper.X), V: interval.Point(upper.Y)}

	switch {
	case trr.Contains(lowerArc):
		return lower.InvRotates()
	case trr.Contains(upperArc):
		return upper.InvRotates()
	default:
		return a.Center().InvRotates()
	}
}
