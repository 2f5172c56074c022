package dme

import "github.com/physdes/recti/recti"

// Sink is one clock-tree leaf: a named physical location the tree must
// reach with equal (zero-skew) delay from the root. Cap is the sink's
// input capacitance, the load its leaf presents to the wire driving it;
// zero is a legal (idealized) load.
type Sink struct {
	Name string
	Pos  recti.Point2D
	Cap  float64
}

// TreeNode is one node of a built clock tree: either a sink (Left and
// Right both nil) or an internal merge node. Children are owned by their
// parent; Parent is a non-owning back-reference used for upward queries
// (e.g. tree_statistics's per-wire records) and is nil at the root.
type TreeNode struct {
	Name string
	Pos  recti.Point2D

	Left, Right *TreeNode
	Parent      *TreeNode

	// WireLength is the Manhattan length of the edge from this node to
	// Parent; zero (and meaningless) at the root.
	WireLength int64

	// Delay is the accumulated propagation delay from the root to this
	// node, filled in by the top-down delay-propagation phase.
	Delay float64

	// Cap is this node's downstream capacitance: the sink's own input
	// capacitance at a leaf, or the sum of both children's Cap plus the
	// capacitance of the merging wire at an internal node.
	Cap float64

	// NeedsElongation marks a node whose edge to its parent was clamped
	// short of the unconstrained zero-skew tapping point: its subtree
	// would need extra (dummy) wire to fully restore zero skew.
	NeedsElongation bool

	// arc is this node's merging segment (its own locus for a leaf,
	// the merge of its children's for an internal node). Retained after
	// Build so NearestPointTo-style diagnostics remain possible, though
	// the public API does not expose it directly.
	arc recti.ManhattanArc

	// bottomUpDelay is the subtree delay accumulated from this node's
	// own (not-yet-placed) position down to its deepest leaf, computed
	// during the bottom-up merge phase and consumed by this node's
	// parent's tapping-point computation. It is distinct from Delay,
	// which is filled in later and measured from the root.
	bottomUpDelay float64
}

// IsLeaf reports whether n is a sink (has no children).
func (n *TreeNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}
