package recti_test

import (
	"testing"

	"github.com/physdes/recti/recti"
	"github.com/stretchr/testify/assert"
)

func TestFromPointRotatesInvRotatesRoundTrip(t *testing.T) {
	p := recti.NewPoint2D(10, 3)
	arc := recti.FromPoint(p)
	assert.Equal(t, p, arc.LowerCorner().InvRotates())
	assert.Equal(t, p, arc.UpperCorner().InvRotates())
}

func TestManhattanArcMinDistIsManhattanDistance(t *testing.T) {
	a := recti.FromPoint(recti.NewPoint2D(0, 0))
	b := recti.FromPoint(recti.NewPoint2D(3, 4))
	assert.Equal(t, int64(7), a.MinDistWith(b))
}

func TestMergeWithProducesContainedMergingSegment(t *testing.T) {
	a := recti.FromPoint(recti.NewPoint2D(0, 0))
	b := recti.FromPoint(recti.NewPoint2D(10, 0))
	d := a.MinDistWith(b)
	merged := a.MergeWith(b, d/2)
	assert.False(t, merged.IsInvalid())
}

func TestMergeWithSplitsDistanceByAlpha(t *testing.T) {
	a := recti.FromPoint(recti.NewPoint2D(0, 0))
	b := recti.FromPoint(recti.NewPoint2D(3, 7))
	d := a.MinDistWith(b)
	assert.Equal(t, int64(10), d)

	alpha := int64(3)
	merged := a.MergeWith(b, alpha)
	assert.False(t, merged.IsInvalid())
	// The merging segment sits exactly alpha away from one child and
	// d-alpha away from the other: the zero-skew balance DME relies on.
	assert.Equal(t, alpha, merged.MinDistWith(a))
	assert.Equal(t, d-alpha, merged.MinDistWith(b))
}

func TestNearestPointToOnMergedSegment(t *testing.T) {
	a := recti.FromPoint(recti.NewPoint2D(0, 0))
	b := recti.FromPoint(recti.NewPoint2D(3, 7))
	merged := a.MergeWith(b, 3)

	nearest := merged.NearestPointTo(recti.NewPoint2D(0, 0))
	assert.Equal(t, recti.NewPoint2D(0, 3), nearest)
	// The chosen point lies on the segment: its degenerate arc is
	// contained in the merged one.
	assert.True(t, merged.Contains(recti.FromPoint(nearest)))
}

func TestNearestPointToOnDegenerateArcIsTheArcItself(t *testing.T) {
	center := recti.NewPoint2D(5, 5)
	arc := recti.FromPoint(center)
	nearest := arc.NearestPointTo(recti.NewPoint2D(100, 100))
	assert.Equal(t, center, nearest)
}
