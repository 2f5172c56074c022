package dme

import (
	"fmt"
	"sort"
)

// buildTopology recursively bipartitions sinks by axis (0 = x, 1 = y),
// alternating at each level, halving at the median until every group is
// a singleton leaf. Every node (leaf or internal) is appended to arena,
// which must have enough spare capacity (2*len(sinks)-1 total across the
// whole build) that this append never reallocates: callers retain
// pointers into arena's backing array across the whole build.
func buildTopology(sinks []Sink, axis int, arena *[]TreeNode, namePrefix string, counter *int) *TreeNode {
	if len(sinks) == 1 {
		*arena = append(*arena, TreeNode{Name: sinks[0].Name, Pos: sinks[0].Pos, Cap: sinks[0].Cap})
		return &(*arena)[len(*arena)-1]
	}

	ordered := make([]Sink, len(sinks))
	copy(ordered, sinks)
	sort.Slice(ordered, func(i, j int) bool {
		if axis == 0 {
			if ordered[i].Pos.X != ordered[j].Pos.X {
				return ordered[i].Pos.X < ordered[j].Pos.X
			}
			return ordered[i].Pos.Y < ordered[j].Pos.Y
		}
		if ordered[i].Pos.Y != ordered[j].Pos.Y {
			return ordered[i].Pos.Y < ordered[j].Pos.Y
		}
		return ordered[i].Pos.X < ordered[j].Pos.X
	})

	mid := len(ordered) / 2
	nextAxis := 1 - axis
	left := buildTopology(ordered[:mid], nextAxis, arena, namePrefix, counter)
	right := buildTopology(ordered[mid:], nextAxis, arena, namePrefix, counter)

	name := fmt.Sprintf("%s%d", namePrefix, *counter)
	*counter++
	*arena = append(*arena, TreeNode{Name: name, Left: left, Right: right})
	node := &(*arena)[len(*arena)-1]
	left.Parent = node
	right.Parent = node
	return node
}
