package dme

import "github.com/physdes/recti/recti"

// mergeBottomUp performs the post-order merging-segment pass: it sets
// arc, Cap, bottomUpDelay (and NeedsElongation, where clamping forces
// it) on every node in the subtree rooted at n, using model for the
// tapping-point and wire-delay/capacitance computations.
func mergeBottomUp(n *TreeNode, model DelayModel) {
	if n.IsLeaf() {
		// Cap keeps the sink's own input capacitance set at topology
		// build.
		n.arc = recti.FromPoint(n.Pos)
		n.bottomUpDelay = 0
		return
	}

	mergeBottomUp(n.Left, model)
	mergeBottomUp(n.Right, model)

	d := n.Left.arc.MinDistWith(n.Right.arc)
	leftInfo := ChildInfo{Delay: n.Left.bottomUpDelay, Cap: n.Left.Cap}
	rightInfo := ChildInfo{Delay: n.Right.bottomUpDelay, Cap: n.Right.Cap}

	alpha, delayAtTap, clamp := model.TappingPoint(leftInfo, rightInfo, d)
	n.arc = n.Left.arc.MergeWith(n.Right.arc, alpha)
	n.bottomUpDelay = delayAtTap
	n.Cap = n.Left.Cap + n.Right.Cap + model.WireCapacitance(d)

	switch clamp {
	case ClampedLow:
		n.Right.NeedsElongation = true
	case ClampedHigh:
		n.Left.NeedsElongation = true
	}
}
