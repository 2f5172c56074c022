package hull

import (
	"github.com/physdes/recti/rdllist"
	"github.com/physdes/recti/recti"
)

// DirFunc extracts the (primary, secondary) key pair used to find the
// hull's extrema and to order its chain.
type DirFunc func(recti.Point2D) (int64, int64)

// MakeMonotoneHull builds a monotone hull of pointset along the direction
// given by dir. isAnticlockwise selects which of the two symmetric
// pruning passes to run. Polygons of three or fewer vertices are returned
// unchanged: a monotone hull is vacuous below that size.
func MakeMonotoneHull(pointset []recti.Point2D, isAnticlockwise bool, dir DirFunc) []recti.Point2D {
	if len(pointset) <= 3 {
		out := make([]recti.Point2D, len(pointset))
		copy(out, pointset)
		return out
	}

	minIdx, maxIdx := 0, 0
	minA, _ := dir(pointset[0])
	maxA := minA
	for i, p := range pointset {
		a, _ := dir(p)
		if a < minA {
			minA, minIdx = a, i
		}
		if a > maxA {
			maxA, maxIdx = a, i
		}
	}
	minPoint := pointset[minIdx]

	rdll := rdllist.New(len(pointset))

	process := func(vcurr, vstop int, cmp func(a, b int64) bool, cmp2 func(a int64) bool) {
		for vcurr != vstop {
			vnext := rdll.Next(vcurr)
			vprev := rdll.Prev(vcurr)
			p0 := pointset[rdll.Data(vprev)]
			p1 := pointset[rdll.Data(vcurr)]
			p2 := pointset[rdll.Data(vnext)]

			dp0, _ := dir(p0)
			dp1, _ := dir(p1)
			dp2, _ := dir(p2)

			if cmp(dp1, dp2) || cmp(dp0, dp1) {
				areaDiff := (p1.Y - p0.Y) * (p2.X - p1.X)
				if cmp2(areaDiff) {
					rdll.Detach(vcurr)
					vcurr = vprev
				} else {
					vcurr = vnext
				}
			} else {
				vcurr = vnext
			}
		}
	}

	ge := func(a, b int64) bool { return a >= b }
	le := func(a, b int64) bool { return a <= b }
	nonNeg := func(a int64) bool { return a >= 0 }
	nonPos := func(a int64) bool { return a <= 0 }

	if isAnticlockwise {
		process(minIdx, maxIdx, ge, nonNeg)
		process(maxIdx, minIdx, le, nonNeg)
	} else {
		process(minIdx, maxIdx, ge, nonPos)
		process(maxIdx, minIdx, le, nonPos)
	}

	result := []recti.Point2D{minPoint}
	for _, data := range rdll.From(minIdx)[1:] {
		result = append(result, pointset[data])
	}
	return result
}

// MakeXMonotoneHull builds an x-monotone hull keyed on (x, y).
func MakeXMonotoneHull(pointset []recti.Point2D, isAnticlockwise bool) []recti.Point2D {
	return MakeMonotoneHull(pointset, isAnticlockwise, func(p recti.Point2D) (int64, int64) { return p.X, p.Y })
}

// MakeYMonotoneHull builds a y-monotone hull keyed on (y, x).
func MakeYMonotoneHull(pointset []recti.Point2D, isAnticlockwise bool) []recti.Point2D {
	return MakeMonotoneHull(pointset, isAnticlockwise, func(p recti.Point2D) (int64, int64) { return p.Y, p.X })
}

// MakeConvexHull composes the x-monotone pass followed by the
// y-monotone pass over its result.
func MakeConvexHull(pointset []recti.Point2D, isAnticlockwise bool) []recti.Point2D {
	xmono := MakeXMonotoneHull(pointset, isAnticlockwise)
	return MakeYMonotoneHull(xmono, isAnticlockwise)
}
