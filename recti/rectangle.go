package recti

import "github.com/physdes/recti/interval"

// Rectangle is an axis-aligned rectangle: a Point⟨Interval, Interval⟩
// specialised to a plain struct.
type Rectangle struct {
	X, Y interval.Interval
}

// NewRectangle constructs a Rectangle from its two axis spans.
func NewRectangle(xspan, yspan interval.Interval) Rectangle {
	return Rectangle{X: xspan, Y: yspan}
}

// IsInvalid reports whether either axis span is empty.
func (r Rectangle) IsInvalid() bool {
	return r.X.IsInvalid() || r.Y.IsInvalid()
}

// Measure returns the rectangle's area.
func (r Rectangle) Measure() int64 {
	return r.X.Measure() * r.Y.Measure()
}

// ContainsPoint reports whether pt lies within r, closed on every edge.
func (r Rectangle) ContainsPoint(pt Point2D) bool {
	return r.X.Contains(pt.X) && r.Y.Contains(pt.Y)
}

// ContainsRectangle reports whether r fully contains other.
func (r Rectangle) ContainsRectangle(other Rectangle) bool {
	return r.X.ContainsInterval(other.X) && r.Y.ContainsInterval(other.Y)
}

// HullWith returns the bounding rectangle of r and other.
func (r Rectangle) HullWith(other Rectangle) Rectangle {
	return Rectangle{X: r.X.HullWith(other.X), Y: r.Y.HullWith(other.Y)}
}

// HullWithPoint returns the bounding rectangle of r and pt.
func (r Rectangle) HullWithPoint(pt Point2D) Rectangle {
	return Rectangle{
		X: r.X.HullWith(interval.Point(pt.X)),
		Y: r.Y.HullWith(interval.Point(pt.Y)),
	}
}

// IntersectWith returns the pointwise intersection; may be invalid.
func (r Rectangle) IntersectWith(other Rectangle) Rectangle {
	return Rectangle{X: r.X.IntersectWith(other.X), Y: r.Y.IntersectWith(other.Y)}
}

// EnlargeWith widens both axes by alpha in place.
func (r *Rectangle) EnlargeWith(alpha int64) {
	r.X.EnlargeWith(alpha)
	r.Y.EnlargeWith(alpha)
}

// MinDistWith returns the Manhattan distance between r and other (zero
// when they overlap on both axes).
func (r Rectangle) MinDistWith(other Rectangle) int64 {
	return r.X.MinDistWith(other.X) + r.Y.MinDistWith(other.Y)
}

// MinDistWithPoint returns the Manhattan distance between r and pt.
func (r Rectangle) MinDistWithPoint(pt Point2D) int64 {
	return r.X.MinDistWith(interval.Point(pt.X)) + r.Y.MinDistWith(interval.Point(pt.Y))
}

// NearestTo clamps pt to the closest point on or inside r, per axis.
func (r Rectangle) NearestTo(pt Point2D) Point2D {
	return Point2D{X: clamp(pt.X, r.X), Y: clamp(pt.Y, r.Y)}
}

func clamp(v int64, iv interval.Interval) int64 {
	switch {
	case v < iv.Lb:
		return iv.Lb
	case v > iv.Ub:
		return iv.Ub
	default:
		return v
	}
}

// LowerCorner returns the (Lb, Lb) corner.
func (r Rectangle) LowerCorner() Point2D {
	return Point2D{X: r.X.Lb, Y: r.Y.Lb}
}

// UpperCorner returns the (Ub, Ub) corner.
func (r Rectangle) UpperCorner() Point2D {
	return Point2D{X: r.X.Ub, Y: r.Y.Ub}
}

// Center returns the rectangle's integer-truncated center.
func (r Rectangle) Center() Point2D {
	return Point2D{X: (r.X.Lb + r.X.Ub) / 2, Y: (r.Y.Lb + r.Y.Ub) / 2}
}

// HSegment is a horizontal segment: a Point⟨Interval, scalar⟩.
type HSegment struct {
	X interval.Interval
	Y int64
}

// Overlaps reports whether the two horizontal segments share a point.
func (h HSegment) Overlaps(other HSegment) bool {
	return h.Y == other.Y && h.X.Overlaps(other.X)
}

// VSegment is a vertical segment: a Point⟨scalar, Interval⟩.
type VSegment struct {
	X int64
	Y interval.Interval
}

// Overlaps reports whether the two vertical segments share a point.
func (v VSegment) Overlaps(other VSegment) bool {
	return v.X == other.X && v.Y.Overlaps(other.Y)
}
