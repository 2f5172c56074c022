package point_test

import (
	"testing"

	"github.com/physdes/recti/interval"
	"github.com/physdes/recti/point"
	"github.com/stretchr/testify/assert"
)

func TestFlipXYInvolution(t *testing.T) {
	p := point.New(int64(3), int64(4))
	assert.True(t, p.Equal(p.FlipXY().FlipXY()))
}

func TestFlipYInvolutionAndNegatesOnlyX(t *testing.T) {
	p := point.New(int64(3), int64(4))
	flipped := p.FlipY()
	assert.Equal(t, int64(-3), flipped.X)
	assert.Equal(t, int64(4), flipped.Y)
	assert.True(t, p.Equal(flipped.FlipY()))
}

func TestMinDistWithIsManhattan(t *testing.T) {
	a := point.New(int64(0), int64(0))
	b := point.New(int64(3), int64(4))
	assert.Equal(t, int64(7), a.MinDistWithValue(b))
}

func TestHullWithProducesRectangleOfIntervals(t *testing.T) {
	a := point.New(int64(1), int64(5))
	b := point.New(int64(4), int64(2))
	hull := a.HullWithValue(b).(point.Point)
	assert.Equal(t, interval.New(1, 4), hull.X)
	assert.Equal(t, interval.New(2, 5), hull.Y)
}

func TestContainsWithRectangleCoordinates(t *testing.T) {
	rect := point.New(interval.New(0, 10), interval.New(0, 10))
	inside := point.New(int64(5), int64(5))
	outside := point.New(int64(15), int64(5))
	assert.True(t, rect.ContainsValue(inside))
	assert.False(t, rect.ContainsValue(outside))
}

func TestNestedPointForThreeDimensions(t *testing.T) {
	p3 := point.New(point.New(int64(1), int64(2)), int64(3))
	q3 := point.New(point.New(int64(1), int64(2)), int64(3))
	assert.True(t, p3.Equal(q3))

	// Manhattan distance recurses through the nested axis: |dx|+|dy|+|dz|.
	r3 := point.New(point.New(int64(4), int64(6)), int64(8))
	assert.Equal(t, int64(12), p3.MinDistWithValue(r3))
}

func TestCenterLowerUpperOnRectanglePoint(t *testing.T) {
	rect := point.New(interval.New(0, 10), interval.New(2, 6))
	center := rect.CenterValue().(point.Point)
	assert.Equal(t, int64(5), center.X)
	assert.Equal(t, int64(4), center.Y)

	lower := rect.LowerCornerValue().(point.Point)
	assert.Equal(t, int64(0), lower.X)
	assert.Equal(t, int64(2), lower.Y)

	upper := rect.UpperCornerValue().(point.Point)
	assert.Equal(t, int64(10), upper.X)
	assert.Equal(t, int64(6), upper.Y)
}
