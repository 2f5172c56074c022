package router

import (
	"fmt"
	"strings"
)

// FindPathToSource returns the chain of nodes from the source down to n
// (inclusive of both ends), by walking n's Parent links and reversing.
func (t *Tree) FindPathToSource(n *RoutingNode) []*RoutingNode {
	var rev []*RoutingNode
	for cur := n; cur != nil; cur = cur.Parent {
		rev = append(rev, cur)
	}
	path := make([]*RoutingNode, len(rev))
	for i, node := range rev {
		path[len(rev)-1-i] = node
	}
	return path
}

// GetAllTerminals returns every terminal node currently reachable from
// the root, in pre-order.
func (t *Tree) GetAllTerminals() []*RoutingNode {
	var out []*RoutingNode
	t.walk(func(n *RoutingNode) {
		if n.Kind == KindTerminal {
			out = append(out, n)
		}
	})
	return out
}

// GetAllSteinerNodes returns every Steiner node currently reachable from
// the root, in pre-order.
func (t *Tree) GetAllSteinerNodes() []*RoutingNode {
	var out []*RoutingNode
	t.walk(func(n *RoutingNode) {
		if n.Kind == KindSteiner {
			out = append(out, n)
		}
	})
	return out
}

// CalculateWirelength sums the Manhattan length of every edge currently
// reachable from the root. It is always a fresh recomputation from node
// positions, never read off the PathLength cache: OptimiseSteinerPoints
// reparents nodes without recomputing PathLength for everything below the
// splice, so PathLength alone cannot be trusted after a collapse.
func (t *Tree) CalculateWirelength() int64 {
	var total int64
	for _, e := range t.edges() {
		total += e[0].Pos.MinDistWith(e[1].Pos)
	}
	return total
}

// GetTreeStructure renders a human-readable, indented dump of the tree,
// useful for test-failure messages without reaching for the SVG renderer.
func (t *Tree) GetTreeStructure() string {
	var b strings.Builder
	var rec func(n *RoutingNode, depth int)
	rec = func(n *RoutingNode, depth int) {
		fmt.Fprintf(&b, "%s%s #%d %s\n", strings.Repeat("  ", depth), n.Kind, n.ID, n.Pos)
		for _, c := range n.Children {
			rec(c, depth+1)
		}
	}
	rec(t.root, 0)
	return b.String()
}

// OptimiseSteinerPoints removes every Steiner node that has exactly one
// child, reparenting that child directly under the Steiner's own parent.
// It preserves every terminal's position and the reachability relation
// from the source. It does not attempt to recompute PathLength along the
// collapsed edge: CalculateWirelength never trusts that cache, so
// nothing downstream is corrupted by leaving it stale (see its doc
// comment).
func (t *Tree) OptimiseSteinerPoints() {
	for {
		var toCollapse []*RoutingNode
		t.walk(func(n *RoutingNode) {
			if n.Kind == KindSteiner && len(n.Children) == 1 && n.Parent != nil {
				toCollapse = append(toCollapse, n)
			}
		})
		if len(toCollapse) == 0 {
			return
		}
		for _, n := range toCollapse {
			child := n.Children[0]
			parent := n.Parent
			for i, c := range parent.Children {
				if c == n {
					parent.Children[i] = child
					break
				}
			}
			child.Parent = parent
		}
	}
}
