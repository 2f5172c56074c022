package polygon

import (
	"sort"

	"github.com/physdes/recti/recti"
	"github.com/physdes/recti/vector2"
)

// Polygon stores an origin point plus the displacement vectors from the
// origin to each subsequent vertex; the vertex count is len(Vecs)+1.
type Polygon struct {
	Origin recti.Point2D
	Vecs   []vector2.Vector2
}

// New constructs a Polygon from an explicit vertex sequence. The first
// point becomes Origin; the rest are stored as displacements from it.
func New(pointset []recti.Point2D) Polygon {
	p := Polygon{Origin: pointset[0]}
	p.Vecs = make([]vector2.Vector2, 0, len(pointset)-1)
	for _, pt := range pointset[1:] {
		p.Vecs = append(p.Vecs, pt.Sub(p.Origin))
	}
	return p
}

// Vertices reconstructs the full vertex sequence.
func (p Polygon) Vertices() []recti.Point2D {
	out := make([]recti.Point2D, 0, len(p.Vecs)+1)
	out = append(out, p.Origin)
	for _, v := range p.Vecs {
		out = append(out, p.Origin.Add(v))
	}
	return out
}

// SignedAreaX2 computes twice the signed area via the shoelace sum over
// the displacement representation: each vector contributes its x times
// the y-difference of its neighbours, with the origin (the zero vector)
// closing the fan at both ends. Positive under the convention that
// vertices run counter-clockwise with y pointing up.
func (p Polygon) SignedAreaX2() int64 {
	vs := p.Vecs
	n := len(vs)
	if n < 2 {
		return 0
	}
	res := vs[0].X*vs[1].Y - vs[n-1].X*vs[n-2].Y
	for i := 1; i < n-1; i++ {
		res += vs[i].X * (vs[i+1].Y - vs[i-1].Y)
	}
	return res
}

// PointInPolygon implements the W. Randolph Franklin crossing-number test
// over the explicit vertex sequence.
func PointInPolygon(pointset []recti.Point2D, q recti.Point2D) bool {
	n := len(pointset)
	res := false
	p0 := pointset[n-1]
	for _, p1 := range pointset {
		if (p1.Y <= q.Y && q.Y < p0.Y) || (p0.Y <= q.Y && q.Y < p1.Y) {
			// side test via cross product, matching the standard FRW test.
			cross := (p1.X-p0.X)*(q.Y-p0.Y) - (q.X-p0.X)*(p1.Y-p0.Y)
			side := p1.Y - p0.Y
			if (side > 0 && cross > 0) || (side < 0 && cross < 0) {
				res = !res
			}
		}
		p0 = p1
	}
	return res
}

// CreateXMonoPolygon rearranges pointset in place into an x-monotone
// vertex ordering: the point set is split by which side of the
// min-to-max diagonal each point falls on, both chains are sorted
// lexicographically, and the far chain is reversed. Returns whether the
// resulting polygon is anticlockwise.
func CreateXMonoPolygon(pointset []recti.Point2D) bool {
	return createMonoPolygon(pointset, func(p, q recti.Point2D) bool { return p.Less(q) })
}

// CreateYMonoPolygon is the y-monotone counterpart of CreateXMonoPolygon,
// ordered by (y, x).
func CreateYMonoPolygon(pointset []recti.Point2D) bool {
	return createMonoPolygon(pointset, func(p, q recti.Point2D) bool {
		if p.Y != q.Y {
			return p.Y < q.Y
		}
		return p.X < q.X
	})
}

func createMonoPolygon(pointset []recti.Point2D, less func(p, q recti.Point2D) bool) bool {
	if len(pointset) == 0 {
		return false
	}
	minPt := pointset[0]
	maxPt := pointset[0]
	for _, p := range pointset[1:] {
		if less(p, minPt) {
			minPt = p
		}
		if less(maxPt, p) {
			maxPt = p
		}
	}
	d := maxPt.Sub(minPt)

	var lower, upper []recti.Point2D
	for _, p := range pointset {
		if d.Cross(p.Sub(minPt)) <= 0 {
			lower = append(lower, p)
		} else {
			upper = append(upper, p)
		}
	}
	sort.Slice(lower, func(i, j int) bool { return less(lower[i], lower[j]) })
	sort.Slice(upper, func(i, j int) bool { return less(upper[i], upper[j]) })
	reverse(upper)
	copy(pointset, append(lower, upper...))
	return !PolygonIsClockwise(pointset)
}

// PolygonIsClockwise reports the winding of a simple polygon by the turn
// sign at its lexicographically minimum vertex, which is always convex.
func PolygonIsClockwise(pointset []recti.Point2D) bool {
	n := len(pointset)
	minIdx := 0
	for i, p := range pointset {
		if p.Less(pointset[minIdx]) {
			minIdx = i
		}
	}
	p0 := pointset[(minIdx-1+n)%n]
	p1 := pointset[minIdx]
	p2 := pointset[(minIdx+1)%n]
	return p1.Sub(p0).Cross(p2.Sub(p1)) < 0
}

func reverse(pts []recti.Point2D) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
