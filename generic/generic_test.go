package generic_test

import (
	"testing"

	"github.com/physdes/recti/generic"
	"github.com/physdes/recti/interval"
	"github.com/stretchr/testify/assert"
)

func TestOverlapDispatchesToOperandCapability(t *testing.T) {
	a := interval.New(0, 5)
	b := interval.New(3, 9)
	assert.True(t, generic.Overlap(a, b))
	assert.True(t, generic.Overlap(b, a))
	assert.True(t, generic.Overlap(a, int64(4)))
}

func TestContainIsAsymmetric(t *testing.T) {
	iv := interval.New(0, 10)
	// lhs implements Container and contains rhs: true.
	assert.True(t, generic.Contain(iv, int64(5)))
	// rhs implements Container but lhs (a bare scalar) does not: must be
	// false, never swapped.
	assert.False(t, generic.Contain(int64(5), iv))
}

func TestMinDistScalarFallback(t *testing.T) {
	assert.Equal(t, int64(3), generic.MinDist(int64(10), int64(7)))
	assert.Equal(t, int64(3), generic.MinDist(int64(7), int64(10)))
}

func TestMeasureOfScalarFallback(t *testing.T) {
	assert.Equal(t, int64(1), generic.MeasureOf(int64(42)))
	assert.Equal(t, int64(4), generic.MeasureOf(interval.New(2, 6)))
}

func TestCenterLowerUpper(t *testing.T) {
	iv := interval.New(2, 6)
	assert.Equal(t, int64(4), generic.CenterOf(iv))
	assert.Equal(t, int64(2), generic.LowerOf(iv))
	assert.Equal(t, int64(6), generic.UpperOf(iv))

	// scalar fallback: identity
	assert.Equal(t, int64(7), generic.CenterOf(int64(7)))
	assert.Equal(t, int64(7), generic.LowerOf(int64(7)))
	assert.Equal(t, int64(7), generic.UpperOf(int64(7)))
}

func TestMinDistChangeCollapsesIntervals(t *testing.T) {
	a := interval.New(0, 5)
	b := interval.New(10, 20)
	d := generic.MinDistChange(&a, &b)
	assert.Equal(t, int64(5), d)
	assert.Equal(t, interval.Point(5), a)
	assert.Equal(t, interval.Point(10), b)

	assert.Equal(t, int64(3), generic.MinDistChange(int64(4), int64(7)))
}
