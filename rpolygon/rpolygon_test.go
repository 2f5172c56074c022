package rpolygon_test

import (
	"testing"

	"github.com/physdes/recti/recti"
	"github.com/physdes/recti/rpolygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() []recti.Point2D {
	return []recti.Point2D{
		recti.NewPoint2D(0, 0),
		recti.NewPoint2D(10, 0),
		recti.NewPoint2D(10, 10),
		recti.NewPoint2D(0, 10),
	}
}

// scatter12 is the shared 12-point fixture for the monotone builders;
// the expected areas below are pinned to this exact set.
func scatter12() []recti.Point2D {
	coords := [][2]int64{
		{-2, 2}, {0, -1}, {-5, 1}, {-2, 4}, {0, -4}, {-4, 3},
		{-6, -2}, {5, 1}, {2, 2}, {3, -3}, {-3, -4}, {1, 4},
	}
	pts := make([]recti.Point2D, len(coords))
	for i, c := range coords {
		pts[i] = recti.NewPoint2D(c[0], c[1])
	}
	return pts
}

// scatter50 extends the low-discrepancy sample (van der Corput bases 3
// and 2) to 50 points; the query point below is the 51st draw.
func scatter50() []recti.Point2D {
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
		{1809, 1184}, {594, 672}, {1323, 1696}, {2052, 416},
		{189, 1440}, {918, 928}, {1647, 1952}, {432, 96},
		{1161, 1120}, {1890, 608},
	}
	pts := make([]recti.Point2D, len(coords))
	for i, c := range coords {
		pts[i] = recti.NewPoint2D(c[0], c[1])
	}
	return pts
}

func TestPointInRPolygonUnitSquare(t *testing.T) {
	sq := unitSquare()
	inside := []recti.Point2D{recti.NewPoint2D(5, 5), recti.NewPoint2D(1, 1), recti.NewPoint2D(9, 9)}
	outside := []recti.Point2D{recti.NewPoint2D(-1, -1), recti.NewPoint2D(11, 5), recti.NewPoint2D(5, -1), recti.NewPoint2D(5, 11)}
	for _, p := range inside {
		assert.True(t, rpolygon.PointInRPolygon(sq, p), "expected %v inside", p)
	}
	for _, p := range outside {
		assert.False(t, rpolygon.PointInRPolygon(sq, p), "expected %v outside", p)
	}
}

func TestSignedAreaOfUnitSquare(t *testing.T) {
	r := rpolygon.New(unitSquare())
	assert.Equal(t, int64(100), r.SignedArea())
}

func TestRPolygonIsClockwiseForUnitSquare(t *testing.T) {
	// (0,0),(10,0),(10,10),(0,10): minimum vertex is (0,0) at index 0,
	// predecessor wraps to (0,10) with larger y, so this ordering reads
	// as anticlockwise (false), matching signed area sign convention.
	assert.False(t, rpolygon.RPolygonIsClockwise(unitSquare()))
}

func TestCreateYMonoRPolygon(t *testing.T) {
	pts := scatter12()
	isClockwise := rpolygon.CreateYMonoRPolygon(pts)
	assert.False(t, isClockwise)
	assert.False(t, rpolygon.RPolygonIsClockwise(pts))
	assert.True(t, rpolygon.RPolygonIsYMonotone(pts))

	r := rpolygon.New(pts)
	assert.Equal(t, int64(45), r.SignedArea())
	assert.False(t, rpolygon.PointInRPolygon(pts, recti.NewPoint2D(4, 5)))
}

func TestCreateXMonoRPolygon(t *testing.T) {
	pts := scatter12()
	isAnticw := rpolygon.CreateXMonoRPolygon(pts)
	assert.False(t, isAnticw)
	assert.True(t, rpolygon.RPolygonIsClockwise(pts))
	assert.True(t, rpolygon.RPolygonIsXMonotone(pts))

	r := rpolygon.New(pts)
	assert.Equal(t, int64(-53), r.SignedArea())
}

func TestCreateYMonoRPolygonFifty(t *testing.T) {
	pts := scatter50()
	isClockwise := rpolygon.CreateYMonoRPolygon(pts)
	assert.True(t, isClockwise)
	assert.True(t, rpolygon.RPolygonIsClockwise(pts))

	r := rpolygon.New(pts)
	assert.Equal(t, int64(-2032128), r.SignedArea())
	assert.False(t, rpolygon.PointInRPolygon(pts, recti.NewPoint2D(675, 1632)))
}

func TestCreateTestRPolygonIsSelfConsistent(t *testing.T) {
	pts := scatter50()[:40]
	rpolygon.CreateTestRPolygon(pts)
	require.Len(t, pts, 40)

	r := rpolygon.New(pts)
	area := r.SignedArea()
	assert.NotZero(t, area)
	if rpolygon.RPolygonIsClockwise(pts) {
		assert.Negative(t, area)
	} else {
		assert.Positive(t, area)
	}
}

func TestToPolygonExpandsImpliedElbows(t *testing.T) {
	r := rpolygon.New([]recti.Point2D{
		recti.NewPoint2D(0, 0),
		recti.NewPoint2D(10, 10),
		recti.NewPoint2D(5, 5),
	})
	want := []recti.Point2D{
		recti.NewPoint2D(0, 0), recti.NewPoint2D(10, 0),
		recti.NewPoint2D(10, 10), recti.NewPoint2D(5, 10),
		recti.NewPoint2D(5, 5), recti.NewPoint2D(0, 5),
	}
	assert.Equal(t, want, r.ToPolygon().Vertices())
}

func TestRPolygonIsConvexPredicates(t *testing.T) {
	assert.True(t, rpolygon.RPolygonIsConvex(unitSquare()))
	// implicit rectangle
	assert.True(t, rpolygon.RPolygonIsConvex([]recti.Point2D{
		recti.NewPoint2D(0, 0), recti.NewPoint2D(10, 10),
	}))
	// A staircase diamond only climbs between its extremes: convex in
	// the Manhattan sense even though its elbows alternate.
	diamond := []recti.Point2D{
		recti.NewPoint2D(5, 0), recti.NewPoint2D(10, 5),
		recti.NewPoint2D(5, 10), recti.NewPoint2D(0, 5),
	}
	assert.True(t, rpolygon.RPolygonIsConvex(diamond))
	// The (4,6) vertex reverses the x direction with a concave turn.
	zig := []recti.Point2D{
		recti.NewPoint2D(0, 0), recti.NewPoint2D(10, 4),
		recti.NewPoint2D(4, 6), recti.NewPoint2D(12, 10),
		recti.NewPoint2D(0, 14),
	}
	assert.False(t, rpolygon.RPolygonIsConvex(zig))
}

func TestMonotonePredicatesOnUnitSquare(t *testing.T) {
	assert.True(t, rpolygon.RPolygonIsXMonotone(unitSquare()))
	assert.True(t, rpolygon.RPolygonIsYMonotone(unitSquare()))
}

func TestLBUB(t *testing.T) {
	r := rpolygon.New(unitSquare())
	assert.Equal(t, recti.NewPoint2D(0, 0), r.LB())
	assert.Equal(t, recti.NewPoint2D(10, 10), r.UB())
}
