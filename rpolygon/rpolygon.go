package rpolygon

import (
	"sort"

	"github.com/physdes/recti/polygon"
	"github.com/physdes/recti/recti"
	"github.com/physdes/recti/vector2"
)

// RPolygon is an origin point plus the displacement vectors to each
// subsequent vertex, exactly like polygon.Polygon, specialised to the
// rectilinear case's simpler area formula.
type RPolygon struct {
	Origin recti.Point2D
	Vecs   []vector2.Vector2
}

// New constructs an RPolygon from a vertex sequence; the first point
// becomes Origin.
func New(pointset []recti.Point2D) RPolygon {
	r := RPolygon{Origin: pointset[0]}
	r.Vecs = make([]vector2.Vector2, 0, len(pointset)-1)
	for _, pt := range pointset[1:] {
		r.Vecs = append(r.Vecs, pt.Sub(r.Origin))
	}
	return r
}

// Vertices reconstructs the full vertex sequence.
func (r RPolygon) Vertices() []recti.Point2D {
	out := make([]recti.Point2D, 0, len(r.Vecs)+1)
	out = append(out, r.Origin)
	for _, v := range r.Vecs {
		out = append(out, r.Origin.Add(v))
	}
	return out
}

// SignedArea computes the (undoubled) signed area, using the simpler
// Σ xᵢ·(yᵢ − yᵢ₋₁) reduction available because rectilinear edges
// alternate axis.
func (r RPolygon) SignedArea() int64 {
	res := r.Vecs[0].X * r.Vecs[0].Y
	if len(r.Vecs) == 1 {
		return res
	}
	prevY := r.Vecs[0].Y
	for _, v := range r.Vecs[1:] {
		res += v.X * (v.Y - prevY)
		prevY = v.Y
	}
	return res
}

// LB returns the lower-left corner of the bounding box.
func (r RPolygon) LB() recti.Point2D {
	lb := r.Origin
	for _, v := range r.Vecs {
		p := r.Origin.Add(v)
		if p.X < lb.X {
			lb.X = p.X
		}
		if p.Y < lb.Y {
			lb.Y = p.Y
		}
	}
	return lb
}

// UB returns the upper-right corner of the bounding box.
func (r RPolygon) UB() recti.Point2D {
	ub := r.Origin
	for _, v := range r.Vecs {
		p := r.Origin.Add(v)
		if p.X > ub.X {
			ub.X = p.X
		}
		if p.Y > ub.Y {
			ub.Y = p.Y
		}
	}
	return ub
}

// Contains reports whether rhs lies within the rectilinear polygon, via
// PointInRPolygon over the reconstructed vertex sequence.
func (r RPolygon) Contains(rhs recti.Point2D) bool {
	return PointInRPolygon(r.Vertices(), rhs)
}

// PointInRPolygon is the horizontal-ray test specialised to vertical
// edges: no cross product is needed because every edge is axis-aligned.
func PointInRPolygon(pointset []recti.Point2D, ptq recti.Point2D) bool {
	n := len(pointset)
	pt0 := pointset[n-1]
	qy := ptq.Y
	p0y := pt0.Y

	res := false
	for _, pt1 := range pointset {
		p1y := pt1.Y
		if (p1y <= qy && qy < p0y) || (p0y <= qy && qy < p1y) {
			if pt1.X > ptq.X {
				res = !res
			}
		}
		pt0 = pt1
		p0y = p1y
	}
	return res
}

// RPolygonIsClockwise finds the lexicographically minimum vertex and
// compares its y against its predecessor (wrapping to the last element
// when the minimum is first); ties are broken by the successor (wrapping
// to the first element when the minimum is last).
func RPolygonIsClockwise(pointset []recti.Point2D) bool {
	minIdx := 0
	for i, p := range pointset {
		if p.Less(pointset[minIdx]) {
			minIdx = i
		}
	}
	n := len(pointset)
	prevIdx := minIdx - 1
	if prevIdx < 0 {
		prevIdx = n - 1
	}
	if pointset[minIdx].Y < pointset[prevIdx].Y {
		return false
	}
	if pointset[minIdx].Y > pointset[prevIdx].Y {
		return true
	}
	nextIdx := minIdx + 1
	if nextIdx >= n {
		nextIdx = 0
	}
	return pointset[nextIdx].Y > pointset[minIdx].Y
}

// CreateMonoRPolygon partitions pointset (in place) by a key function
// dir returning (primary, secondary) coordinates, sorting each side along
// the full (primary, secondary) key and reversing the "upper" half.
// Returns whether the resulting polygon is anticlockwise (== is_clockwise
// for the y-monotone caller). The extrema and both sort passes compare
// the full key pair so that primary-coordinate ties still produce a
// deterministic, simple polygon.
func CreateMonoRPolygon(pointset []recti.Point2D, dir func(recti.Point2D) (int64, int64)) bool {
	keyLess := func(p, q recti.Point2D) bool {
		pa, pb := dir(p)
		qa, qb := dir(q)
		if pa != qa {
			return pa < qa
		}
		return pb < qb
	}

	leftmost := pointset[0]
	rightmost := pointset[0]
	for _, p := range pointset[1:] {
		if keyLess(p, leftmost) {
			leftmost = p
		}
		if !keyLess(p, rightmost) {
			rightmost = p
		}
	}
	_, leftB := dir(leftmost)
	_, rightB := dir(rightmost)
	isAnticw := rightB <= leftB

	var lower, upper []recti.Point2D
	for _, p := range pointset {
		_, b := dir(p)
		onLower := b <= leftB
		if !isAnticw {
			onLower = b >= leftB
		}
		if onLower {
			lower = append(lower, p)
		} else {
			upper = append(upper, p)
		}
	}
	sort.Slice(lower, func(i, j int) bool { return keyLess(lower[i], lower[j]) })
	sort.Slice(upper, func(i, j int) bool { return keyLess(upper[i], upper[j]) })
	reversePoints(upper)
	copy(pointset, append(lower, upper...))
	return isAnticw
}

// CreateXMonoRPolygon builds an x-monotone RPolygon in place. Returns
// whether the result is anticlockwise.
func CreateXMonoRPolygon(pointset []recti.Point2D) bool {
	return CreateMonoRPolygon(pointset, func(p recti.Point2D) (int64, int64) { return p.X, p.Y })
}

// CreateYMonoRPolygon builds a y-monotone RPolygon in place. Returns
// whether the result is clockwise (the y-monotone dual of
// CreateXMonoRPolygon's anticlockwise flag).
func CreateYMonoRPolygon(pointset []recti.Point2D) bool {
	return CreateMonoRPolygon(pointset, func(p recti.Point2D) (int64, int64) { return p.Y, p.X })
}

// CreateTestRPolygon rearranges pointset in place into a random-looking
// but self-consistent non-convex rectilinear polygon, via a 4-way
// partition keyed on the diagonal between the y-extremes. Used to
// stress-test hull and cut without hand-authoring vertex lists.
func CreateTestRPolygon(pointset []recti.Point2D) {
	upwd := func(a, b recti.Point2D) bool {
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	}
	down := func(a, b recti.Point2D) bool { return upwd(b, a) }
	left := func(a, b recti.Point2D) bool {
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	}
	right := func(a, b recti.Point2D) bool { return left(b, a) }

	minIdx, maxIdx := 0, 0
	for i, p := range pointset {
		if upwd(p, pointset[minIdx]) {
			minIdx = i
		}
		if upwd(pointset[maxIdx], p) {
			maxIdx = i
		}
	}
	minPt := pointset[minIdx]
	maxPt := pointset[maxIdx]
	dx := maxPt.X - minPt.X
	dy := maxPt.Y - minPt.Y

	pred := func(p recti.Point2D) bool {
		return dx*(p.Y-minPt.Y) < (p.X-minPt.X)*dy
	}
	_, middle := partition(pointset, pred)

	group1 := pointset[:middle]
	maxPt1 := group1[0]
	for _, p := range group1 {
		if left(maxPt1, p) {
			maxPt1 = p
		}
	}
	g1a, g1mid := partitionSlice(group1, func(p recti.Point2D) bool { return p.Y < maxPt1.Y })

	group2 := pointset[middle:]
	minPt2 := group2[0]
	for _, p := range group2 {
		if left(p, minPt2) {
			minPt2 = p
		}
	}
	g2a, g2mid := partitionSlice(group2, func(p recti.Point2D) bool { return p.Y > minPt2.Y })

	if dx < 0 {
		sort.Slice(g1a, func(i, j int) bool { return down(g1a[i], g1a[j]) })
		sort.Slice(g1mid, func(i, j int) bool { return left(g1mid[i], g1mid[j]) })
		sort.Slice(g2a, func(i, j int) bool { return upwd(g2a[i], g2a[j]) })
		sort.Slice(g2mid, func(i, j int) bool { return right(g2mid[i], g2mid[j]) })
	} else {
		sort.Slice(g1a, func(i, j int) bool { return left(g1a[i], g1a[j]) })
		sort.Slice(g1mid, func(i, j int) bool { return upwd(g1mid[i], g1mid[j]) })
		sort.Slice(g2a, func(i, j int) bool { return right(g2a[i], g2a[j]) })
		sort.Slice(g2mid, func(i, j int) bool { return down(g2mid[i], g2mid[j]) })
	}
}

// RPolygonIsConvex reports whether no stored vertex of pointset has a
// direction-reversing turn with the concave orientation for the
// polygon's own winding. Inferred staircase elbows between stored
// vertices are not inspected: they are the domain of the implicit cut,
// and a staircase that only climbs is convex under this notion even
// though its elbows alternate.
func RPolygonIsConvex(pointset []recti.Point2D) bool {
	concave := concaveFor(!RPolygonIsClockwise(pointset))
	n := len(pointset)
	for i, p1 := range pointset {
		p0 := pointset[(i-1+n)%n]
		p2 := pointset[(i+1)%n]
		v1x, v1y := p1.X-p0.X, p1.Y-p0.Y
		v2x, v2y := p2.X-p1.X, p2.Y-p1.Y
		if v1x*v2x < 0 || v1y*v2y < 0 {
			if concave((p1.Y - p0.Y) * (p2.X - p1.X)) {
				return false
			}
		}
	}
	return true
}

func concaveFor(isAnticlockwise bool) func(int64) bool {
	if isAnticlockwise {
		return func(a int64) bool { return a > 0 }
	}
	return func(a int64) bool { return a < 0 }
}

// RPolygonIsXMonotone reports whether any vertical line crosses the
// polygon's boundary at most twice: the cyclic sequence of x coordinates
// must rise once and fall once (at most two sign changes of the
// nonzero x deltas).
func RPolygonIsXMonotone(pointset []recti.Point2D) bool {
	return isMonotone(pointset, func(p recti.Point2D) int64 { return p.X })
}

// RPolygonIsYMonotone is the horizontal-line counterpart of
// RPolygonIsXMonotone.
func RPolygonIsYMonotone(pointset []recti.Point2D) bool {
	return isMonotone(pointset, func(p recti.Point2D) int64 { return p.Y })
}

func isMonotone(pointset []recti.Point2D, coord func(recti.Point2D) int64) bool {
	n := len(pointset)
	var signs []int
	for i, p := range pointset {
		d := coord(pointset[(i+1)%n]) - coord(p)
		switch {
		case d > 0:
			signs = append(signs, 1)
		case d < 0:
			signs = append(signs, -1)
		}
	}
	changes := 0
	for i, s := range signs {
		if s != signs[(i-1+len(signs))%len(signs)] {
			changes++
		}
	}
	return changes <= 2
}

// ToPolygon expands the staircase vertex stream into the explicit vertex
// sequence of a general polygon, inserting the inferred elbow (q.X, p.Y)
// between every pair of consecutive stored vertices that differ on both
// axes.
func (r RPolygon) ToPolygon() polygon.Polygon {
	pts := r.Vertices()
	n := len(pts)
	out := make([]recti.Point2D, 0, 2*n)
	for i, p := range pts {
		q := pts[(i+1)%n]
		out = append(out, p)
		if p.X != q.X && p.Y != q.Y {
			out = append(out, recti.NewPoint2D(q.X, p.Y))
		}
	}
	return polygon.New(out)
}

// partition reorders s in place so every element satisfying pred comes
// first, mirroring std::partition, and returns (s, splitIndex).
func partition(s []recti.Point2D, pred func(recti.Point2D) bool) ([]recti.Point2D, int) {
	i := 0
	for j := range s {
		if pred(s[j]) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	return s, i
}

func partitionSlice(s []recti.Point2D, pred func(recti.Point2D) bool) ([]recti.Point2D, []recti.Point2D) {
	_, mid := partition(s, pred)
	return s[:mid], s[mid:]
}

func reversePoints(pts []recti.Point2D) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
