package hull_test

import (
	"testing"

	"github.com/physdes/recti/recti"
	"github.com/physdes/recti/rpolygon"
	"github.com/physdes/recti/rpolygon/cut"
	"github.com/physdes/recti/rpolygon/hull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scatter40() []recti.Point2D {
	coords := [][2]int64{
		{729, 1024}, {1458, 512}, {243, 1536}, {972, 256},
		{1701, 1280}, {486, 768}, {1215, 1792}, {1944, 128},
		{81, 1152}, {810, 640}, {1539, 1664}, {324, 384},
		{1053, 1408}, {1782, 896}, {567, 1920}, {1296, 64},
		{2025, 1088}, {162, 576}, {891, 1600}, {1620, 320},
		{405, 1344}, {1134, 832}, {1863, 1856}, {648, 192},
		{1377, 1216}, {2106, 704}, {27, 1728}, {756, 448},
		{1485, 1472}, {270, 960}, {999, 1984}, {1728, 32},
		{513, 1056}, {1242, 544}, {1971, 1568}, {108, 288},
		{837, 1312}, {1566, 800}, {351, 1824}, {1080, 160},
	}
	pts := make([]recti.Point2D, len(coords))
	for i, c := range coords {
		pts[i] = recti.NewPoint2D(c[0], c[1])
	}
	return pts
}

func TestMakeMonotoneHullTrivialForSmallSets(t *testing.T) {
	pts := []recti.Point2D{recti.NewPoint2D(0, 0), recti.NewPoint2D(1, 1), recti.NewPoint2D(2, 0)}
	out := hull.MakeXMonotoneHull(pts, true)
	assert.Equal(t, pts, out)
}

func TestMakeConvexHullOfUnitSquareKeepsAllCorners(t *testing.T) {
	pts := []recti.Point2D{
		recti.NewPoint2D(0, 0),
		recti.NewPoint2D(10, 0),
		recti.NewPoint2D(10, 10),
		recti.NewPoint2D(0, 10),
	}
	out := hull.MakeConvexHull(pts, true)
	// (10,0) is the elbow implied between (0,0) and (10,10) in the
	// staircase convention, so it is pruned: the three stored vertices
	// left still encode all four corners of the square.
	assert.Len(t, out, 3)
	assert.True(t, rpolygon.RPolygonIsConvex(out))
}

func TestMakeConvexHullStressIsConvexAndGrowsArea(t *testing.T) {
	pts := scatter40()
	rpolygon.CreateTestRPolygon(pts)
	isAnticw := !rpolygon.RPolygonIsClockwise(pts)
	inputArea := cut.SignedArea(pts)
	require.NotZero(t, inputArea)

	out := hull.MakeConvexHull(pts, isAnticw)
	assert.True(t, rpolygon.RPolygonIsConvex(out))
	assert.Less(t, len(out), len(pts))

	// Pruning re-entrant vertices can only add area, whichever the
	// winding.
	hullArea := cut.SignedArea(out)
	if inputArea < 0 {
		assert.LessOrEqual(t, hullArea, inputArea)
	} else {
		assert.GreaterOrEqual(t, hullArea, inputArea)
	}
}
