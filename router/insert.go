package router

import "github.com/physdes/recti/recti"

// attach links child under parent, filling in child.Parent and
// child.PathLength from parent's already-known path length plus the
// Manhattan length of the new edge.
func attach(parent, child *RoutingNode) {
	child.Parent = parent
	child.PathLength = parent.PathLength + parent.Pos.MinDistWith(child.Pos)
	parent.Children = append(parent.Children, child)
}

// InsertSteinerNode creates a Steiner node at pos and attaches it as a
// new child of parent. parent must already belong to this router's tree.
func (g *GlobalRouter) InsertSteinerNode(parent *RoutingNode, pos recti.Point2D) (*RoutingNode, error) {
	if parent == nil || g.tree.NodeByID(parent.ID) != parent {
		return nil, ErrUnknownParent
	}
	n := g.tree.newNode(KindSteiner, pos, "")
	attach(parent, n)
	return n, nil
}

// InsertTerminalNode attaches a terminal directly to whichever existing
// tree node is nearest to pos (by Manhattan distance), with no Steiner
// point and no budget/keep-out filtering; the primitive RouteSimple
// drives.
func (g *GlobalRouter) InsertTerminalNode(pos recti.Point2D, label string) (*RoutingNode, error) {
	var nearest *RoutingNode
	var best int64
	g.tree.walk(func(n *RoutingNode) {
		d := n.Pos.MinDistWith(pos)
		if nearest == nil || d < best {
			nearest, best = n, d
		}
	})
	term := g.tree.newNode(KindTerminal, pos, label)
	attach(nearest, term)
	return term, nil
}

// InsertNodeOnBranch manually splices a new Steiner node at steinerPos
// between branchStart and branchEnd (which must already be connected as
// parent and child), then attaches a new terminal at terminalPos to that
// Steiner node. It fails with ErrUnknownParent if either endpoint is
// foreign to this tree, or ErrNotAChild if branchEnd is not currently a
// direct child of branchStart.
func (g *GlobalRouter) InsertNodeOnBranch(branchStart, branchEnd *RoutingNode, steinerPos, terminalPos recti.Point2D, label string) (*RoutingNode, *RoutingNode, error) {
	if branchStart == nil || g.tree.NodeByID(branchStart.ID) != branchStart {
		return nil, nil, ErrUnknownParent
	}
	if branchEnd == nil || g.tree.NodeByID(branchEnd.ID) != branchEnd {
		return nil, nil, ErrUnknownParent
	}
	idx := -1
	for i, c := range branchStart.Children {
		if c == branchEnd {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil, ErrNotAChild
	}

	steiner := g.tree.newNode(KindSteiner, steinerPos, "")
	branchStart.Children[idx] = steiner
	steiner.Parent = branchStart
	steiner.PathLength = branchStart.PathLength + branchStart.Pos.MinDistWith(steinerPos)
	steiner.Children = append(steiner.Children, branchEnd)
	branchEnd.Parent = steiner
	branchEnd.PathLength = steiner.PathLength + steiner.Pos.MinDistWith(branchEnd.Pos)

	term := g.tree.newNode(KindTerminal, terminalPos, label)
	attach(steiner, term)
	return steiner, term, nil
}

// candidate is one surviving insertion point evaluated by
// FindNearestInsertionPoint.
type candidate struct {
	parent, child *RoutingNode // child is nil for the tree's root-only case
	point         recti.Point2D
	distToTerm    int64
	pathLenAtPt   int64
}

// FindNearestInsertionPoint scans every parent-child edge of the tree
// (or just the root, if it has no children yet), projects terminalPos
// onto each edge's axis-aligned hull, discards candidates that violate
// an active budget or keep-out set, and returns the surviving candidate
// nearest to terminalPos. ok is false when no candidate survives.
func (g *GlobalRouter) FindNearestInsertionPoint(terminalPos recti.Point2D) (parent, child *RoutingNode, point recti.Point2D, dist int64, ok bool) {
	edges := g.tree.edges()
	var best *candidate

	consider := func(p, c *RoutingNode, pt recti.Point2D, pathLen int64) {
		d := terminalPos.MinDistWith(pt)
		if g.budget != nil && pathLen+d > *g.budget {
			return
		}
		if g.blocked(p, c, pt, terminalPos) {
			return
		}
		if best == nil || d < best.distToTerm {
			best = &candidate{parent: p, child: c, point: pt, distToTerm: d, pathLenAtPt: pathLen}
		}
	}

	if len(edges) == 0 {
		root := g.tree.root
		consider(root, nil, root.Pos, root.PathLength)
	}
	for _, e := range edges {
		p, c := e[0], e[1]
		hull := p.Pos.HullWith(c.Pos)
		pt := hull.NearestTo(terminalPos)
		pathLen := p.PathLength + p.Pos.MinDistWith(pt)
		consider(p, c, pt, pathLen)
	}

	if best == nil {
		return nil, nil, recti.Point2D{}, 0, false
	}
	return best.parent, best.child, best.point, best.distToTerm, true
}

// blocked reports whether any active keep-out invalidates connecting
// terminalPos to the candidate edge point pt: either pt itself sits
// inside a keep-out, or any of the three legs (terminal-to-pt,
// pt-to-parent, pt-to-child) has a bounding hull overlapping one.
// child may be nil (the root-only candidate), in which case only the
// terminal-to-pt and pt-to-parent legs are checked.
func (g *GlobalRouter) blocked(parent, child *RoutingNode, pt, terminalPos recti.Point2D) bool {
	if len(g.cfg.keepouts) == 0 {
		return false
	}
	legs := [][2]recti.Point2D{
		{terminalPos, pt},
		{pt, parent.Pos},
	}
	if child != nil {
		legs = append(legs, [2]recti.Point2D{pt, child.Pos})
	}
	for _, ko := range g.cfg.keepouts {
		if ko.ContainsPoint(pt) {
			return true
		}
		for _, leg := range legs {
			hull := leg[0].HullWith(leg[1])
			if !hull.IntersectWith(ko).IsInvalid() {
				return true
			}
		}
	}
	return false
}

// insertViaNearestPoint is the shared driver for RouteWithSteiners and
// RouteWithConstraints: find the nearest feasible insertion point and
// either attach directly to an existing node or splice a fresh Steiner.
func (g *GlobalRouter) insertViaNearestPoint(term Terminal) error {
	parent, child, pt, _, ok := g.FindNearestInsertionPoint(term.Pos)
	if !ok {
		return ErrNoFeasibleInsertion
	}

	switch {
	case child == nil:
		// Root-only tree: attach directly to the source.
		_, err := g.InsertTerminalNodeAt(parent, term.Pos, term.Name)
		return err
	case pt.Equal(parent.Pos):
		_, err := g.InsertTerminalNodeAt(parent, term.Pos, term.Name)
		return err
	case pt.Equal(child.Pos):
		_, err := g.InsertTerminalNodeAt(child, term.Pos, term.Name)
		return err
	default:
		_, _, err := g.InsertNodeOnBranch(parent, child, pt, term.Pos, term.Name)
		return err
	}
}

// InsertTerminalNodeAt attaches a terminal directly as a new child of a
// specific, known node (no search), used once FindNearestInsertionPoint
// has already identified the coincident attachment point.
func (g *GlobalRouter) InsertTerminalNodeAt(parent *RoutingNode, pos recti.Point2D, label string) (*RoutingNode, error) {
	if parent == nil || g.tree.NodeByID(parent.ID) != parent {
		return nil, ErrUnknownParent
	}
	term := g.tree.newNode(KindTerminal, pos, label)
	attach(parent, term)
	return term, nil
}
