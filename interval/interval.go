package interval

import "fmt"

// Interval is a closed range [Lb, Ub] over Go's built-in signed integers.
// Zero value is the degenerate interval [0, 0].
type Interval struct {
	Lb, Ub int64
}

// New constructs an Interval from explicit bounds. It does not validate
// lb <= ub: callers that need a guaranteed-valid interval check
// IsInvalid() themselves.
func New(lb, ub int64) Interval {
	return Interval{Lb: lb, Ub: ub}
}

// Point constructs a degenerate interval [v, v].
func Point(v int64) Interval {
	return Interval{Lb: v, Ub: v}
}

// IsInvalid reports whether the interval is empty (Lb > Ub).
func (iv Interval) IsInvalid() bool {
	return iv.Lb > iv.Ub
}

// Measure returns Ub - Lb (zero for a degenerate interval, negative for an
// invalid one).
func (iv Interval) Measure() int64 {
	return iv.Ub - iv.Lb
}

// Contains reports whether the interval contains the scalar v, closed on
// both ends.
func (iv Interval) Contains(v int64) bool {
	return iv.Lb <= v && v <= iv.Ub
}

// ContainsInterval reports whether iv fully contains other.
func (iv Interval) ContainsInterval(other Interval) bool {
	return iv.Lb <= other.Lb && other.Ub <= iv.Ub
}

// Overlaps reports whether the two intervals share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.Less(other) || other.Less(iv))
}

// Less is the three-valued comparison against another interval: two
// overlapping intervals compare as equivalent (neither Less nor Greater),
// so Less only holds when iv lies strictly below other.
func (iv Interval) Less(other Interval) bool {
	return iv.Ub < other.Lb
}

// Greater is the mirror of Less.
func (iv Interval) Greater(other Interval) bool {
	return iv.Lb > other.Ub
}

// LessScalar reports whether iv lies strictly below the scalar v.
func (iv Interval) LessScalar(v int64) bool {
	return iv.Ub < v
}

// GreaterScalar reports whether iv lies strictly above the scalar v.
func (iv Interval) GreaterScalar(v int64) bool {
	return iv.Lb > v
}

// IntersectWith returns the pointwise intersection (max of lower bounds,
// min of upper bounds). The result may be invalid when the inputs do not
// overlap.
func (iv Interval) IntersectWith(other Interval) Interval {
	lb := iv.Lb
	if other.Lb > lb {
		lb = other.Lb
	}
	ub := iv.Ub
	if other.Ub < ub {
		ub = other.Ub
	}
	return Interval{Lb: lb, Ub: ub}
}

// HullWith returns the bounding interval (min of lower bounds, max of
// upper bounds).
func (iv Interval) HullWith(other Interval) Interval {
	lb := iv.Lb
	if other.Lb < lb {
		lb = other.Lb
	}
	ub := iv.Ub
	if other.Ub > ub {
		ub = other.Ub
	}
	return Interval{Lb: lb, Ub: ub}
}

// EnlargeWith widens the interval in place by alpha on both ends. A
// negative alpha shrinks it (and may make it invalid).
func (iv *Interval) EnlargeWith(alpha int64) {
	iv.Lb -= alpha
	iv.Ub += alpha
}

// MinDistWith returns the Manhattan (1-D) distance to other: zero when the
// two overlap, otherwise the distance from the nearer bound.
func (iv Interval) MinDistWith(other Interval) int64 {
	if iv.Overlaps(other) {
		return 0
	}
	if iv.Less(other) {
		return other.Lb - iv.Ub
	}
	return iv.Lb - other.Ub
}

// MinDistChangeWith behaves like MinDistWith but additionally collapses
// both operands to their near-side endpoint (or to their intersection, if
// they overlap). This mutates iv and other in place, matching algorithms
// downstream that consume the geometric slack produced by the distance
// computation.
func (iv *Interval) MinDistChangeWith(other *Interval) int64 {
	if iv.Overlaps(*other) {
		*iv = iv.IntersectWith(*other)
		*other = *iv
		return 0
	}
	if iv.Less(*other) {
		d := other.Lb - iv.Ub
		*iv = Point(iv.Ub)
		*other = Point(other.Lb)
		return d
	}
	d := iv.Lb - other.Ub
	*iv = Point(iv.Lb)
	*other = Point(other.Ub)
	return d
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d]", iv.Lb, iv.Ub)
}
