package router

import "github.com/physdes/recti/recti"

// NodeKind classifies a RoutingNode.
type NodeKind int

const (
	// KindSource marks the tree's single root.
	KindSource NodeKind = iota
	// KindSteiner marks an auxiliary node inserted to shorten the tree.
	KindSteiner
	// KindTerminal marks a node the caller asked to be routed to.
	KindTerminal
)

func (k NodeKind) String() string {
	switch k {
	case KindSource:
		return "SOURCE"
	case KindSteiner:
		return "STEINER"
	case KindTerminal:
		return "TERMINAL"
	default:
		return "UNKNOWN"
	}
}

// RoutingNode is one node of a global routing tree. Every node but the
// root is owned by exactly one parent; Parent is a non-owning back
// reference used for upward queries (FindPathToSource).
type RoutingNode struct {
	ID    int
	Kind  NodeKind
	Label string
	Pos   recti.Point2D

	Children []*RoutingNode
	Parent   *RoutingNode

	// PathLength is the Manhattan path length from the source along tree
	// edges as of this node's insertion. It is a convenience cache, not
	// the source of truth: CalculateWirelength always recomputes fresh
	// from node positions (see its doc comment for why).
	PathLength int64
}

// Tree is the flat storage for a GlobalRouter's routing tree: it owns
// every RoutingNode ever created for one router, addressable by ID, and
// the root (the source node).
type Tree struct {
	nodes []*RoutingNode
	root  *RoutingNode
}

func newTree(source recti.Point2D) *Tree {
	root := &RoutingNode{ID: 0, Kind: KindSource, Pos: source}
	return &Tree{nodes: []*RoutingNode{root}, root: root}
}

// Root returns the source node.
func (t *Tree) Root() *RoutingNode {
	return t.root
}

// NodeByID returns the node with the given ID, or nil if no node was
// ever created with that ID. Nodes detached by OptimiseSteinerPoints are
// still returned: they stay addressable in nodes but are unreachable from
// Root.
func (t *Tree) NodeByID(id int) *RoutingNode {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

func (t *Tree) newNode(kind NodeKind, pos recti.Point2D, label string) *RoutingNode {
	n := &RoutingNode{ID: len(t.nodes), Kind: kind, Pos: pos, Label: label}
	t.nodes = append(t.nodes, n)
	return n
}

// walk visits every node reachable from the root in pre-order.
func (t *Tree) walk(visit func(*RoutingNode)) {
	var rec func(n *RoutingNode)
	rec = func(n *RoutingNode) {
		visit(n)
		for _, c := range n.Children {
			rec(c)
		}
	}
	rec(t.root)
}

// edges yields every (parent, child) pair reachable from the root.
func (t *Tree) edges() [][2]*RoutingNode {
	var out [][2]*RoutingNode
	t.walk(func(n *RoutingNode) {
		for _, c := range n.Children {
			out = append(out, [2]*RoutingNode{n, c})
		}
	})
	return out
}
