package rdllist_test

import (
	"testing"

	"github.com/physdes/recti/rdllist"
	"github.com/stretchr/testify/assert"
)

func TestNewLinksFullCycle(t *testing.T) {
	rd := rdllist.New(4)
	assert.Equal(t, []int{0, 1, 2, 3}, rd.From(0))
}

func TestDetachRemovesNodeFromCycle(t *testing.T) {
	rd := rdllist.New(4)
	rd.Detach(1)
	assert.Equal(t, []int{0, 2, 3}, rd.From(0))
	assert.True(t, rd.IsLocked(1))
}

func TestAppendStartsLocked(t *testing.T) {
	rd := rdllist.New(2)
	idx := rd.Append(99)
	assert.True(t, rd.IsLocked(idx))
	assert.Equal(t, 99, rd.Data(idx))
}

func TestLinkBisectsCycle(t *testing.T) {
	rd := rdllist.New(6)
	// Re-route 0..5 into the two rings {0,1,2} and {3,4,5}.
	rd.Link(2, 0)
	rd.Link(5, 3)
	assert.Equal(t, []int{0, 1, 2}, rd.From(0))
	assert.Equal(t, []int{3, 4, 5}, rd.From(3))
}

func TestFromExcludingAnchorOmitsAnchor(t *testing.T) {
	rd := rdllist.New(3)
	assert.Equal(t, []int{1, 2}, rd.FromExcludingAnchor(0))
}

func TestInsertAfterSplicesIntoCycle(t *testing.T) {
	rd := rdllist.New(3)
	idx := rd.Append(100)
	rd.InsertAfter(0, idx)
	assert.Equal(t, []int{0, 100, 1, 2}, rd.From(0))
}
