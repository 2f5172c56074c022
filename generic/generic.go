package generic

import "github.com/physdes/recti/interval"

// Overlapper is implemented by any value that knows how to test overlap
// against another value of the same dispatch domain.
type Overlapper interface {
	OverlapsValue(other any) bool
}

// Container is implemented by any value that knows how to test
// containment of another value. Containment is asymmetric: unlike the
// other capabilities, a rhs-only Container is deliberately NOT consulted
// with swapped arguments (see Contain below).
type Container interface {
	ContainsValue(other any) bool
}

// Intersector computes the pointwise intersection with another value.
type Intersector interface {
	IntersectWithValue(other any) any
}

// Huller computes the bounding ("hull") value containing both operands.
type Huller interface {
	HullWithValue(other any) any
}

// MinDister computes the minimum distance to another value.
type MinDister interface {
	MinDistWithValue(other any) int64
}

// Nearester returns the point of self nearest to other.
type Nearester interface {
	NearestValue(other any) any
}

// Measurer reports a scalar "size" for a value (e.g. an Interval's span).
type Measurer interface {
	MeasureValue() int64
}

// MinDistChanger computes the minimum distance to another value while
// consuming the slack: both operands collapse toward their near sides.
// Implemented on pointer types, since the collapse mutates.
type MinDistChanger interface {
	MinDistChangeValue(other any) int64
}

// Centerer reports a value's central point.
type Centerer interface {
	CenterValue() any
}

// LowerCornerer reports a value's lower corner.
type LowerCornerer interface {
	LowerCornerValue() any
}

// UpperCornerer reports a value's upper corner.
type UpperCornerer interface {
	UpperCornerValue() any
}

// Scalar is the type used for the degenerate (non-Interval, non-Point)
// dispatch case throughout this module.
type Scalar = int64

// Overlap dispatches lhs.OverlapsValue(rhs), then rhs.OverlapsValue(lhs),
// then falls back to scalar equality.
func Overlap(lhs, rhs any) bool {
	if o, ok := lhs.(Overlapper); ok {
		return o.OverlapsValue(rhs)
	}
	if o, ok := rhs.(Overlapper); ok {
		return o.OverlapsValue(lhs)
	}
	return scalarEqual(lhs, rhs)
}

// Contain dispatches lhs.ContainsValue(rhs). If lhs does not implement
// Container, the result is false even when rhs does: containment is
// asymmetric and never swapped. Only when neither side implements
// Container does this fall back to scalar equality.
func Contain(lhs, rhs any) bool {
	if c, ok := lhs.(Container); ok {
		return c.ContainsValue(rhs)
	}
	if _, ok := rhs.(Container); ok {
		return false
	}
	return scalarEqual(lhs, rhs)
}

// Intersection dispatches IntersectWithValue, preferring lhs.
func Intersection(lhs, rhs any) any {
	if i, ok := lhs.(Intersector); ok {
		return i.IntersectWithValue(rhs)
	}
	if i, ok := rhs.(Intersector); ok {
		return i.IntersectWithValue(lhs)
	}
	if scalarEqual(lhs, rhs) {
		return lhs
	}
	return nil
}

// Hull dispatches HullWithValue, preferring lhs. Two bare scalars widen
// to the interval spanning both.
func Hull(lhs, rhs any) any {
	if h, ok := lhs.(Huller); ok {
		return h.HullWithValue(rhs)
	}
	if h, ok := rhs.(Huller); ok {
		return h.HullWithValue(lhs)
	}
	a, aok := lhs.(Scalar)
	b, bok := rhs.(Scalar)
	if aok && bok {
		return interval.New(min(a, b), max(a, b))
	}
	return lhs
}

// MinDist dispatches MinDistWithValue, preferring lhs, falling back to
// absolute scalar difference.
func MinDist(lhs, rhs any) int64 {
	if m, ok := lhs.(MinDister); ok {
		return m.MinDistWithValue(rhs)
	}
	if m, ok := rhs.(MinDister); ok {
		return m.MinDistWithValue(lhs)
	}
	a, aok := lhs.(Scalar)
	b, bok := rhs.(Scalar)
	if aok && bok {
		d := a - b
		if d < 0 {
			d = -d
		}
		return d
	}
	return 0
}

// Nearest dispatches NearestValue, preferring lhs, falling back to
// identity (the scalar case: the nearest point of a scalar to anything is
// itself).
func Nearest(lhs, rhs any) any {
	if n, ok := lhs.(Nearester); ok {
		return n.NearestValue(rhs)
	}
	if n, ok := rhs.(Nearester); ok {
		return n.NearestValue(lhs)
	}
	return lhs
}

// MinDistChange dispatches MinDistChangeValue, preferring lhs, falling
// back to absolute scalar difference (with nothing to collapse in the
// scalar case). Operands that support the collapse must be passed as
// pointers.
func MinDistChange(lhs, rhs any) int64 {
	if m, ok := lhs.(MinDistChanger); ok {
		return m.MinDistChangeValue(rhs)
	}
	if m, ok := rhs.(MinDistChanger); ok {
		return m.MinDistChangeValue(lhs)
	}
	a, aok := lhs.(Scalar)
	b, bok := rhs.(Scalar)
	if aok && bok {
		d := a - b
		if d < 0 {
			d = -d
		}
		return d
	}
	return 0
}

// MeasureOf dispatches MeasureValue, falling back to 1 for a bare scalar.
func MeasureOf(v any) int64 {
	if m, ok := v.(Measurer); ok {
		return m.MeasureValue()
	}
	return 1
}

// CenterOf dispatches CenterValue, falling back to identity (a scalar is
// its own center).
func CenterOf(v any) any {
	if c, ok := v.(Centerer); ok {
		return c.CenterValue()
	}
	return v
}

// LowerOf dispatches LowerCornerValue, falling back to identity.
func LowerOf(v any) any {
	if l, ok := v.(LowerCornerer); ok {
		return l.LowerCornerValue()
	}
	return v
}

// UpperOf dispatches UpperCornerValue, falling back to identity.
func UpperOf(v any) any {
	if u, ok := v.(UpperCornerer); ok {
		return u.UpperCornerValue()
	}
	return v
}

func scalarEqual(lhs, rhs any) bool {
	a, aok := lhs.(Scalar)
	b, bok := rhs.(Scalar)
	return aok && bok && a == b
}
