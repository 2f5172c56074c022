package router

import (
	"math"
	"sort"

	"github.com/physdes/recti/recti"
)

// Terminal is one point the router must connect to the source.
type Terminal struct {
	Name string
	Pos  recti.Point2D
}

// GlobalRouter is a one-shot handle over a fixed source and terminal set:
// exactly one of RouteSimple, RouteWithSteiners, or RouteWithConstraints
// should be called once to build the tree, after which Tree exposes it
// for read-oriented queries (and, if desired, further manual splicing via
// InsertSteinerNode / InsertNodeOnBranch).
type GlobalRouter struct {
	source    recti.Point2D
	terminals []Terminal
	cfg       config
	tree      *Tree
	budget    *int64
}

// New constructs a GlobalRouter. It does not route anything yet: the
// tree starts as a single source node until one of the Route* methods
// runs.
func New(source recti.Point2D, terminals []Terminal, opts ...Option) *GlobalRouter {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &GlobalRouter{
		source:    source,
		terminals: terminals,
		cfg:       cfg,
		tree:      newTree(source),
	}
}

// Tree returns the router's tree, built so far. Callers should treat it
// as read-only except through the documented mutation primitives
// (InsertSteinerNode, InsertNodeOnBranch, OptimiseSteinerPoints): this
// package does not itself enforce that boundary at compile time.
func (g *GlobalRouter) Tree() *Tree {
	return g.tree
}

// orderedTerminals sorts a copy of g.terminals by increasing Manhattan
// distance from the source, breaking ties by decreasing source-
// enclosing-rectangle area so that wider detours are resolved earlier.
func (g *GlobalRouter) orderedTerminals() []Terminal {
	out := make([]Terminal, len(g.terminals))
	copy(out, g.terminals)
	sort.SliceStable(out, func(i, j int) bool {
		di := g.source.MinDistWith(out[i].Pos)
		dj := g.source.MinDistWith(out[j].Pos)
		if di != dj {
			return di < dj
		}
		ai := g.source.HullWith(out[i].Pos).Measure()
		aj := g.source.HullWith(out[j].Pos).Measure()
		return ai > aj
	})
	return out
}

// RouteSimple attaches every terminal to whichever existing node is
// nearest it, in arrival order, never introducing a Steiner point.
func (g *GlobalRouter) RouteSimple() error {
	g.budget = nil
	for _, term := range g.orderedTerminals() {
		if _, err := g.InsertTerminalNode(term.Pos, term.Name); err != nil {
			return err
		}
	}
	return nil
}

// RouteWithSteiners inserts every terminal at its true nearest point on
// the growing tree (an existing node, or a fresh Steiner spliced into an
// edge), honoring any configured keep-outs but no wire-length budget.
func (g *GlobalRouter) RouteWithSteiners() error {
	g.budget = nil
	for _, term := range g.orderedTerminals() {
		if err := g.insertViaNearestPoint(term); err != nil {
			return err
		}
	}
	return nil
}

// RouteWithConstraints is RouteWithSteiners with an additional
// wire-length budget of alpha times the worst (largest) single
// terminal-to-source Manhattan distance, rounded up.
func (g *GlobalRouter) RouteWithConstraints(alpha float64) error {
	var worst int64
	for _, term := range g.terminals {
		d := g.source.MinDistWith(term.Pos)
		if d > worst {
			worst = d
		}
	}
	budget := int64(math.Ceil(alpha * float64(worst)))
	g.budget = &budget

	for _, term := range g.orderedTerminals() {
		if err := g.insertViaNearestPoint(term); err != nil {
			return err
		}
	}
	return nil
}
