package recti

import (
	"fmt"

	"github.com/physdes/recti/interval"
	"github.com/physdes/recti/vector2"
)

// Point2D is an integer 2-D point.
type Point2D struct {
	X, Y int64
}

// NewPoint2D constructs a Point2D.
func NewPoint2D(x, y int64) Point2D {
	return Point2D{X: x, Y: y}
}

// Less is the lexicographic order: compare X, then Y.
func (p Point2D) Less(other Point2D) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// Equal reports component-wise equality.
func (p Point2D) Equal(other Point2D) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add translates p by a displacement vector.
func (p Point2D) Add(v vector2.Vector2) Point2D {
	return Point2D{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement vector from other to p.
func (p Point2D) Sub(other Point2D) vector2.Vector2 {
	return vector2.New(p.X-other.X, p.Y-other.Y)
}

// FlipXY swaps the two coordinates.
func (p Point2D) FlipXY() Point2D {
	return Point2D{X: p.Y, Y: p.X}
}

// FlipY reflects across the y axis: only the X coordinate is negated.
func (p Point2D) FlipY() Point2D {
	return Point2D{X: -p.X, Y: p.Y}
}

// MinDistWith returns the Manhattan distance to other.
func (p Point2D) MinDistWith(other Point2D) int64 {
	return interval.Point(p.X).MinDistWith(interval.Point(other.X)) +
		interval.Point(p.Y).MinDistWith(interval.Point(other.Y))
}

// HullWith returns the bounding Rectangle of p and other.
func (p Point2D) HullWith(other Point2D) Rectangle {
	return Rectangle{
		X: interval.Point(p.X).HullWith(interval.Point(other.X)),
		Y: interval.Point(p.Y).HullWith(interval.Point(other.Y)),
	}
}

// Rotates sends (x, y) to the 45°-rotated basis (u, v) = (x-y, x+y) used
// by ManhattanArc.
func (p Point2D) Rotates() Point2D {
	return Point2D{X: p.X - p.Y, Y: p.X + p.Y}
}

// InvRotates is the inverse of Rotates. Go's integer division truncates
// toward zero, which is exactly "round half toward the origin" for the
// /2 performed here when (u, v) does not correspond to an exact integer
// (x, y); this happens after ManhattanArc corners are produced by
// enlargement or intersection.
func (p Point2D) InvRotates() Point2D {
	return Point2D{X: (p.X + p.Y) / 2, Y: (p.Y - p.X) / 2}
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
