package interval

// This file wires Interval into the generic dispatch capabilities defined
// in package generic (Overlapper, Container, Intersector, Huller,
// MinDister, Nearester, Measurer), so generic.Overlap(a, b) and friends
// work whether a and b are both Interval, or an Interval and a bare
// int64 scalar.

// OverlapsValue implements generic.Overlapper.
func (iv Interval) OverlapsValue(other any) bool {
	switch o := other.(type) {
	case Interval:
		return iv.Overlaps(o)
	case int64:
		return iv.Contains(o)
	default:
		return false
	}
}

// ContainsValue implements generic.Container.
func (iv Interval) ContainsValue(other any) bool {
	switch o := other.(type) {
	case Interval:
		return iv.ContainsInterval(o)
	case int64:
		return iv.Contains(o)
	default:
		return false
	}
}

// IntersectWithValue implements generic.Intersector.
func (iv Interval) IntersectWithValue(other any) any {
	switch o := other.(type) {
	case Interval:
		return iv.IntersectWith(o)
	case int64:
		return iv.IntersectWith(Point(o))
	default:
		return iv
	}
}

// HullWithValue implements generic.Huller.
func (iv Interval) HullWithValue(other any) any {
	switch o := other.(type) {
	case Interval:
		return iv.HullWith(o)
	case int64:
		return iv.HullWith(Point(o))
	default:
		return iv
	}
}

// MinDistWithValue implements generic.MinDister.
func (iv Interval) MinDistWithValue(other any) int64 {
	switch o := other.(type) {
	case Interval:
		return iv.MinDistWith(o)
	case int64:
		return iv.MinDistWith(Point(o))
	default:
		return 0
	}
}

// NearestValue implements generic.Nearester: the point of iv nearest to
// other, clamped per axis.
func (iv Interval) NearestValue(other any) any {
	var v int64
	switch o := other.(type) {
	case Interval:
		v = o.Lb
	case int64:
		v = o
	default:
		return iv.Lb
	}
	switch {
	case v < iv.Lb:
		return iv.Lb
	case v > iv.Ub:
		return iv.Ub
	default:
		return v
	}
}

// MeasureValue implements generic.Measurer.
func (iv Interval) MeasureValue() int64 {
	return iv.Measure()
}

// MinDistChangeValue implements generic.MinDistChanger on the pointer
// receiver: the collapse mutates iv, and other when it is *Interval.
func (iv *Interval) MinDistChangeValue(other any) int64 {
	switch o := other.(type) {
	case *Interval:
		return iv.MinDistChangeWith(o)
	case int64:
		tmp := Point(o)
		return iv.MinDistChangeWith(&tmp)
	default:
		return 0
	}
}

// CenterValue implements generic.Centerer.
func (iv Interval) CenterValue() any {
	return (iv.Lb + iv.Ub) / 2
}

// LowerCornerValue implements generic.LowerCornerer.
func (iv Interval) LowerCornerValue() any {
	return iv.Lb
}

// UpperCornerValue implements generic.UpperCornerer.
func (iv Interval) UpperCornerValue() any {
	return iv.Ub
}
