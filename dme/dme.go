package dme

// DmeAlgorithm is a one-shot handle over a sink set and a delay model:
// Build runs the four-phase Deferred Merge Embedding construction and
// returns the tree's root. Each call to New owns an independent arena;
// nothing is shared across DmeAlgorithm instances.
type DmeAlgorithm struct {
	sinks []Sink
	model DelayModel
	cfg   config
	arena []TreeNode
	built bool
	root  *TreeNode
}

// New constructs a DmeAlgorithm over sinks using model. It does not
// validate sinks or model yet (Build does): constructing the handle is
// always cheap and side-effect-free.
func New(sinks []Sink, model DelayModel, opts ...Option) *DmeAlgorithm {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &DmeAlgorithm{sinks: sinks, model: model, cfg: cfg}
}

// Build runs the full four-phase construction and returns the tree's
// root. It fails only on invalid input (ErrEmptySinks, ErrNilDelayModel):
// a failed Build never leaves a partially built tree visible to the
// caller, and Build is idempotent: calling it again on the same handle
// returns the same root without rebuilding.
func (d *DmeAlgorithm) Build() (*TreeNode, error) {
	if d.built {
		return d.root, nil
	}
	if len(d.sinks) == 0 {
		return nil, ErrEmptySinks
	}
	if d.model == nil {
		return nil, ErrNilDelayModel
	}

	d.arena = make([]TreeNode, 0, 2*len(d.sinks)-1)
	counter := 0
	root := buildTopology(d.sinks, 0, &d.arena, d.cfg.namePrefix, &counter)

	mergeBottomUp(root, d.model)
	embedTopDown(root)
	propagateDelays(root, d.model)

	d.root = root
	d.built = true
	return d.root, nil
}
