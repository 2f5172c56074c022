package cut

import (
	"github.com/physdes/recti/rdllist"
	"github.com/physdes/recti/recti"
)

// cutter bundles the shared state of one decomposition run: the vertex
// buffer (which grows as cuts invent projection vertices), the cycle over
// vertex indices, and the orientation-dependent concavity test. Node i's
// payload is always index i into lst, including appended nodes.
type cutter struct {
	lst  []recti.Point2D
	rdll *rdllist.RDllist
	cmp  func(int64) bool
}

// concaveCmp classifies a turn-area term as concave for the polygon's
// orientation: positive areas are concave on an anticlockwise polygon,
// negative ones on a clockwise polygon.
func concaveCmp(isAnticlockwise bool) func(int64) bool {
	if isAnticlockwise {
		return func(a int64) bool { return a > 0 }
	}
	return func(a int64) bool { return a < 0 }
}

func newCutter(pointset []recti.Point2D, isAnticlockwise bool) *cutter {
	lst := make([]recti.Point2D, len(pointset), 2*len(pointset))
	copy(lst, pointset)
	return &cutter{
		lst:  lst,
		rdll: rdllist.New(len(pointset)),
		cmp:  concaveCmp(isAnticlockwise),
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// findMinDistPoint scans the cycle for the node whose boundary segment
// passes nearest to pcurr, horizontally or vertically (whichever is
// shorter). Each node vi owns two runs of the staircase boundary: the
// vertical run at x = vi.X spanning (prev.Y, vi.Y], and the horizontal
// run at y = vi.Y spanning (vi.X, next.X]. The half-open span tests
// double as crossing tests, so only runs genuinely facing pcurr across
// the interior qualify. The scan starts at start and stops upon
// returning to vcurr. vertical reports which kind of run won (true = a
// vertical run, reached by a horizontal cut).
func (c *cutter) findMinDistPoint(vcurr int, pcurr recti.Point2D, start int) (vMin int, vertical bool) {
	vMin, vertical = vcurr, true
	found := false
	var minValue int64

	for vi := start; vi != vcurr; vi = c.rdll.Next(vi) {
		p0 := c.lst[c.rdll.Data(c.rdll.Prev(vi))]
		p1 := c.lst[c.rdll.Data(vi)]
		p2 := c.lst[c.rdll.Data(c.rdll.Next(vi))]

		if (p0.Y < pcurr.Y && pcurr.Y <= p1.Y) || (p1.Y <= pcurr.Y && pcurr.Y < p0.Y) {
			if d := abs(p1.X - pcurr.X); !found || minValue > d {
				minValue, vMin, vertical, found = d, vi, true, true
			}
		}
		if (p2.X < pcurr.X && pcurr.X <= p1.X) || (p1.X <= pcurr.X && pcurr.X < p2.X) {
			if d := abs(p1.Y - pcurr.Y); !found || minValue > d {
				minValue, vMin, vertical, found = d, vi, false, true
			}
		}
	}
	return vMin, vertical
}

// collect returns the vertex indices of the cycle through v1, in order.
func (c *cutter) collect(v1 int) []int {
	out := []int{c.rdll.Data(v1)}
	for cur := c.rdll.Next(v1); cur != v1; cur = c.rdll.Next(cur) {
		out = append(out, c.rdll.Data(cur))
	}
	return out
}

// turnArea is the oriented turn term at a stored vertex p1 between
// neighbours p0 and p2. It is nonzero only at vertices where the
// incoming vertical run and the outgoing horizontal run both have
// extent, i.e. where the staircase boundary actually turns.
func turnArea(p0, p1, p2 recti.Point2D) int64 {
	return (p1.Y - p0.Y) * (p2.X - p1.X)
}

// findConcaveConvex finds a stored vertex whose turn both reverses
// direction (the incoming and outgoing displacements disagree in sign on
// some axis) and has the concave orientation. The direction-reversal
// check is what separates the convex criterion from the explicit one:
// staircase vertices that merely keep climbing are not reversals.
func (c *cutter) findConcaveConvex(vstart int) (int, bool) {
	vcurr := vstart
	for {
		vprev, vnext := c.rdll.Prev(vcurr), c.rdll.Next(vcurr)
		p0 := c.lst[c.rdll.Data(vprev)]
		p1 := c.lst[c.rdll.Data(vcurr)]
		p2 := c.lst[c.rdll.Data(vnext)]

		v1x, v1y := p1.X-p0.X, p1.Y-p0.Y
		v2x, v2y := p2.X-p1.X, p2.Y-p1.Y
		if v1x*v2x < 0 || v1y*v2y < 0 {
			if c.cmp(turnArea(p0, p1, p2)) {
				return vcurr, true
			}
		}
		vcurr = vnext
		if vcurr == vstart {
			return 0, false
		}
	}
}

// findConcaveExplicit is the stricter criterion: any stored vertex with a
// concave turn area, with no direction-reversal requirement.
func (c *cutter) findConcaveExplicit(vstart int) (int, bool) {
	vcurr := vstart
	for {
		vprev, vnext := c.rdll.Prev(vcurr), c.rdll.Next(vcurr)
		p0 := c.lst[c.rdll.Data(vprev)]
		p1 := c.lst[c.rdll.Data(vcurr)]
		p2 := c.lst[c.rdll.Data(vnext)]
		if c.cmp(turnArea(p0, p1, p2)) {
			return vcurr, true
		}
		vcurr = vnext
		if vcurr == vstart {
			return 0, false
		}
	}
}

// findConcaveImplicit evaluates the inferred corner between consecutive
// stored vertices p1 and p2 (the (p2.X, p1.Y) elbow the staircase
// implies) rather than a vertex already present in the buffer.
func (c *cutter) findConcaveImplicit(vstart int) (int, bool) {
	vcurr := vstart
	for {
		vnext := c.rdll.Next(vcurr)
		p1 := c.lst[c.rdll.Data(vcurr)]
		p2 := c.lst[c.rdll.Data(vnext)]
		if c.cmp(-(p2.Y - p1.Y) * (p2.X - p1.X)) {
			return vcurr, true
		}
		vcurr = vnext
		if vcurr == vstart {
			return 0, false
		}
	}
}

// splitAtVertex performs the cycle surgery for the convex and explicit
// cuts: a new vertex at the projection of vcurr onto vMin's run is
// appended to the buffer, and three Link calls re-route the cycle so
// that vcurr..vMin and the new node..the remainder become two
// independent sub-cycles. Returns the new node's index.
func (c *cutter) splitAtVertex(vcurr, vMin int, vertical bool) int {
	pMin := c.lst[c.rdll.Data(vMin)]
	p1 := c.lst[c.rdll.Data(vcurr)]

	newIdx := c.rdll.Append(len(c.lst))
	if vertical {
		vminPrev, vcurrNext := c.rdll.Prev(vMin), c.rdll.Next(vcurr)
		c.rdll.Link(vminPrev, newIdx)
		c.rdll.Link(newIdx, vcurrNext)
		c.rdll.Link(vcurr, vMin)
		c.lst = append(c.lst, recti.NewPoint2D(pMin.X, p1.Y))
	} else {
		vcurrPrev, vminNext := c.rdll.Prev(vcurr), c.rdll.Next(vMin)
		c.rdll.Link(vcurrPrev, newIdx)
		c.rdll.Link(newIdx, vminNext)
		c.rdll.Link(vMin, vcurr)
		c.lst = append(c.lst, recti.NewPoint2D(p1.X, pMin.Y))
	}
	return newIdx
}

func (c *cutter) cutConvexRecur(v1 int) [][]int {
	v2 := c.rdll.Next(v1)
	v3 := c.rdll.Next(v2)
	if v3 == v1 { // two stored vertices: a rectangle
		return [][]int{{c.rdll.Data(v1), c.rdll.Data(v2)}}
	}
	if c.rdll.Next(v3) == v1 { // three stored vertices
		return [][]int{{c.rdll.Data(v1), c.rdll.Data(v2), c.rdll.Data(v3)}}
	}

	vcurr, found := c.findConcaveConvex(v1)
	if !found {
		return [][]int{c.collect(v1)}
	}
	vMin, vertical := c.findMinDistPoint(vcurr, c.lst[c.rdll.Data(vcurr)], c.rdll.Next(vcurr))
	newIdx := c.splitAtVertex(vcurr, vMin, vertical)
	return append(c.cutConvexRecur(vcurr), c.cutConvexRecur(newIdx)...)
}

func (c *cutter) cutExplicitRecur(v1 int) [][]int {
	v2 := c.rdll.Next(v1)
	if c.rdll.Next(v2) == v1 {
		return [][]int{{c.rdll.Data(v1), c.rdll.Data(v2)}}
	}

	vcurr, found := c.findConcaveExplicit(v1)
	if !found {
		return [][]int{c.collect(v1)}
	}
	vMin, vertical := c.findMinDistPoint(vcurr, c.lst[c.rdll.Data(vcurr)], c.rdll.Next(vcurr))
	newIdx := c.splitAtVertex(vcurr, vMin, vertical)
	return append(c.cutExplicitRecur(vcurr), c.cutExplicitRecur(newIdx)...)
}

func (c *cutter) cutImplicitRecur(v1 int) [][]int {
	v2 := c.rdll.Next(v1)
	if c.rdll.Next(v2) == v1 {
		return [][]int{{c.rdll.Data(v1), c.rdll.Data(v2)}}
	}

	vcurr, found := c.findConcaveImplicit(v1)
	if !found {
		return [][]int{c.collect(v1)}
	}

	// The concavity sits at the inferred elbow, so the distance scan
	// starts from it and skips the two vertices that imply it.
	vnext := c.rdll.Next(vcurr)
	pc1 := c.lst[c.rdll.Data(vcurr)]
	pc2 := c.lst[c.rdll.Data(vnext)]
	pcurr := recti.NewPoint2D(pc2.X, pc1.Y)
	vMin, vertical := c.findMinDistPoint(vcurr, pcurr, c.rdll.Next(vnext))

	pMin := c.lst[c.rdll.Data(vMin)]
	newIdx := c.rdll.Append(len(c.lst))
	if vertical {
		vminPrev := c.rdll.Prev(vMin)
		c.rdll.Link(vminPrev, newIdx)
		c.rdll.Link(newIdx, vnext)
		c.rdll.Link(vcurr, vMin)
		c.lst = append(c.lst, recti.NewPoint2D(pMin.X, pcurr.Y))
	} else {
		vminNext := c.rdll.Next(vMin)
		c.rdll.Link(vcurr, newIdx)
		c.rdll.Link(newIdx, vminNext)
		c.rdll.Link(vMin, vnext)
		c.lst = append(c.lst, recti.NewPoint2D(pcurr.X, pMin.Y))
	}

	return append(c.cutImplicitRecur(vMin), c.cutImplicitRecur(newIdx)...)
}

func (c *cutter) resolve(indexLists [][]int) [][]recti.Point2D {
	out := make([][]recti.Point2D, 0, len(indexLists))
	for _, indices := range indexLists {
		piece := make([]recti.Point2D, 0, len(indices))
		for _, idx := range indices {
			piece = append(piece, c.lst[idx])
		}
		out = append(out, piece)
	}
	return out
}

// CutConvex decomposes pointset into pieces free of concave
// direction-reversing corners (rpolygon.RPolygonIsConvex holds for every
// piece). Pieces of two stored vertices are rectangles.
func CutConvex(pointset []recti.Point2D, isAnticlockwise bool) [][]recti.Point2D {
	c := newCutter(pointset, isAnticlockwise)
	return c.resolve(c.cutConvexRecur(0))
}

// CutExplicit decomposes pointset using the stricter no-reversal-check
// criterion: every stored vertex with a concave turn area is cut, so the
// result has at least as many pieces as CutConvex would produce.
func CutExplicit(pointset []recti.Point2D, isAnticlockwise bool) [][]recti.Point2D {
	c := newCutter(pointset, isAnticlockwise)
	return c.resolve(c.cutExplicitRecur(0))
}

// CutImplicit decomposes pointset at its concave inferred corners: the
// elbows between consecutive stored vertices rather than the vertices
// themselves.
func CutImplicit(pointset []recti.Point2D, isAnticlockwise bool) [][]recti.Point2D {
	c := newCutter(pointset, isAnticlockwise)
	return c.resolve(c.cutImplicitRecur(0))
}

// CutRectangle decomposes pointset into rectangles by composing the
// explicit cut over every piece the implicit cut produces.
func CutRectangle(pointset []recti.Point2D, isAnticlockwise bool) [][]recti.Point2D {
	var out [][]recti.Point2D
	for _, piece := range CutImplicit(pointset, isAnticlockwise) {
		out = append(out, CutExplicit(piece, isAnticlockwise)...)
	}
	return out
}

// SignedArea computes the (undoubled) signed area of a vertex stream
// using the same Σ xᵢ·(yᵢ − yᵢ₋₁) reduction as
// rpolygon.RPolygon.SignedArea, so callers can verify area preservation
// across a decomposition without rebuilding an RPolygon from
// displacement vectors.
func SignedArea(points []recti.Point2D) int64 {
	var res int64
	prev := points[len(points)-1]
	for _, p := range points {
		res += p.X * (p.Y - prev.Y)
		prev = p
	}
	return res
}
