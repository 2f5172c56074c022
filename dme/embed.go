package dme

import "github.com/physdes/recti/recti"

// embedTopDown performs the pre-order embedding pass: root is placed at
// the upper corner of its own merging segment (any corner is equally
// valid); every other node is placed at the point on its own segment
// nearest to its (already-placed) parent, with WireLength set to the
// Manhattan distance between the two.
func embedTopDown(root *TreeNode) {
	root.Pos = root.arc.UpperCorner().InvRotates()
	embedChildren(root)
}

func embedChildren(n *TreeNode) {
	if n.IsLeaf() {
		return
	}
	placeChild(n.Left, n.Pos)
	placeChild(n.Right, n.Pos)
	embedChildren(n.Left)
	embedChildren(n.Right)
}

func placeChild(child *TreeNode, parentPos recti.Point2D) {
	child.Pos = child.arc.NearestPointTo(parentPos)
	child.WireLength = child.Pos.MinDistWith(parentPos)
}

// propagateDelays performs the final pre-order pass: root starts at zero
// delay; every other node's delay is its parent's plus the model's wire
// delay over the embedded edge, driven by this node's own downstream
// capacitance.
func propagateDelays(root *TreeNode, model DelayModel) {
	root.Delay = 0
	propagateChildren(root, model)
}

func propagateChildren(n *TreeNode, model DelayModel) {
	if n.IsLeaf() {
		return
	}
	for _, child := range [2]*TreeNode{n.Left, n.Right} {
		child.Delay = n.Delay + model.WireDelay(child.WireLength, child.Cap)
		propagateChildren(child, model)
	}
}
