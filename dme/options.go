package dme

// Default knobs.
const (
	// DefaultInternalNamePrefix names every internal (non-sink) node
	// "<prefix><counter>", counter starting at 0 in the order nodes are
	// created (post-order) during the topology phase.
	DefaultInternalNamePrefix = "m"

	// DefaultLinearK is a reference per-unit-length wire delay
	// coefficient for the linear model.
	DefaultLinearK = 0.5

	// DefaultLinearC is a reference per-unit-length wire capacitance
	// coefficient for the linear model.
	DefaultLinearC = 0.2
)

// config holds DmeAlgorithm construction-time knobs. Zero value is not
// meaningful on its own; newConfig fills in the defaults above before any
// Option is applied.
type config struct {
	namePrefix string
}

func newConfig() config {
	return config{namePrefix: DefaultInternalNamePrefix}
}

// Option customizes a DmeAlgorithm before Build runs.
type Option func(*config)

// WithInternalNamePrefix overrides the prefix used to name merge nodes
// created during the topology phase. Panics on an empty prefix: an
// unnamed internal node would be indistinguishable from a typo'd sink
// name in GetTreeStatistics output.
func WithInternalNamePrefix(prefix string) Option {
	if prefix == "" {
		panic("dme: WithInternalNamePrefix(\"\")")
	}
	return func(c *config) {
		c.namePrefix = prefix
	}
}
