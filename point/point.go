package point

import (
	"github.com/physdes/recti/generic"
	"github.com/physdes/recti/interval"
)

// Coord is the coordinate slot of a Point: an int64 scalar, an
// interval.Interval, or another Point. Go has no closed sum type, so this
// is expressed as any and narrowed by type switch at each operation,
// mirroring the tagged-variant approach the design notes call for.
type Coord = any

// Point is an ordered pair of coordinates.
type Point struct {
	X, Y Coord
}

// New constructs a Point from two coordinates.
func New(x, y Coord) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and other are equal, recursing through nested
// Points and comparing Intervals and scalars structurally.
func (p Point) Equal(other Point) bool {
	return coordEqual(p.X, other.X) && coordEqual(p.Y, other.Y)
}

func coordEqual(a, b Coord) bool {
	switch av := a.(type) {
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case interval.Interval:
		bv, ok := b.(interval.Interval)
		return ok && av == bv
	case Point:
		bv, ok := b.(Point)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

// OverlapsValue implements generic.Overlapper: pointwise promotion, both
// axes must overlap.
func (p Point) OverlapsValue(other any) bool {
	o, ok := other.(Point)
	if !ok {
		return false
	}
	return generic.Overlap(p.X, o.X) && generic.Overlap(p.Y, o.Y)
}

// ContainsValue implements generic.Container.
func (p Point) ContainsValue(other any) bool {
	o, ok := other.(Point)
	if !ok {
		return false
	}
	return generic.Contain(p.X, o.X) && generic.Contain(p.Y, o.Y)
}

// HullWithValue implements generic.Huller: the bounding rectangle of the
// two points, expressed as a Point whose coordinates are Intervals.
func (p Point) HullWithValue(other any) any {
	o, ok := other.(Point)
	if !ok {
		return p
	}
	return Point{X: generic.Hull(p.X, o.X), Y: generic.Hull(p.Y, o.Y)}
}

// IntersectWithValue implements generic.Intersector.
func (p Point) IntersectWithValue(other any) any {
	o, ok := other.(Point)
	if !ok {
		return p
	}
	return Point{X: generic.Intersection(p.X, o.X), Y: generic.Intersection(p.Y, o.Y)}
}

// MinDistWithValue implements generic.MinDister: the sum of per-axis
// distances, i.e. Manhattan distance.
func (p Point) MinDistWithValue(other any) int64 {
	o, ok := other.(Point)
	if !ok {
		return 0
	}
	return generic.MinDist(p.X, o.X) + generic.MinDist(p.Y, o.Y)
}

// NearestValue implements generic.Nearester: nearest_to snaps other to
// this point's bounding region per axis (identity when this axis is a
// bare scalar).
func (p Point) NearestValue(other any) any {
	o, ok := other.(Point)
	if !ok {
		return p
	}
	return Point{X: generic.Nearest(p.X, o.X), Y: generic.Nearest(p.Y, o.Y)}
}

// CenterValue implements generic.Centerer pointwise.
func (p Point) CenterValue() any {
	return Point{X: generic.CenterOf(p.X), Y: generic.CenterOf(p.Y)}
}

// LowerCornerValue implements generic.LowerCornerer pointwise.
func (p Point) LowerCornerValue() any {
	return Point{X: generic.LowerOf(p.X), Y: generic.LowerOf(p.Y)}
}

// UpperCornerValue implements generic.UpperCornerer pointwise.
func (p Point) UpperCornerValue() any {
	return Point{X: generic.UpperOf(p.X), Y: generic.UpperOf(p.Y)}
}

// FlipXY swaps the two coordinates.
func (p Point) FlipXY() Point {
	return Point{X: p.Y, Y: p.X}
}

// FlipY reflects across the y axis: only the X coordinate is negated
// (the name refers to the reflection axis, not the coordinate touched).
func (p Point) FlipY() Point {
	return Point{X: negateCoord(p.X), Y: p.Y}
}

func negateCoord(c Coord) Coord {
	switch v := c.(type) {
	case int64:
		return -v
	case interval.Interval:
		return interval.New(-v.Ub, -v.Lb)
	case Point:
		return v.FlipY()
	default:
		return c
	}
}
