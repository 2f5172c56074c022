package dme

// SkewAnalysis summarizes the delay distribution of a built clock tree.
type SkewAnalysis struct {
	Max             float64
	Min             float64
	Skew            float64
	SinkDelays      map[string]float64
	TotalWirelength int64
	ModelName       string
}

// AnalyzeSkew walks root's leaves, collecting each sink's delay, and
// sums WireLength over every non-root node to report total wire length.
// modelName is recorded verbatim in the result for reporting purposes
// (e.g. "linear", "elmore"); AnalyzeSkew does not otherwise depend on
// which model built the tree.
func AnalyzeSkew(root *TreeNode, modelName string) SkewAnalysis {
	sinkDelays := make(map[string]float64)
	var totalWire int64
	var maxDelay, minDelay float64
	first := true

	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		if n.Parent != nil {
			totalWire += n.WireLength
		}
		if n.IsLeaf() {
			sinkDelays[n.Name] = n.Delay
			if first {
				maxDelay, minDelay = n.Delay, n.Delay
				first = false
			} else {
				if n.Delay > maxDelay {
					maxDelay = n.Delay
				}
				if n.Delay < minDelay {
					minDelay = n.Delay
				}
			}
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	return SkewAnalysis{
		Max:             maxDelay,
		Min:             minDelay,
		Skew:            maxDelay - minDelay,
		SinkDelays:      sinkDelays,
		TotalWirelength: totalWire,
		ModelName:       modelName,
	}
}

// NodeInfo is one row of GetTreeStatistics's per-node listing.
type NodeInfo struct {
	Name            string
	IsLeaf          bool
	Delay           float64
	Cap             float64
	NeedsElongation bool
}

// WireInfo is one row of GetTreeStatistics's per-edge listing: the edge
// from Child up to its parent.
type WireInfo struct {
	Parent string
	Child  string
	Length int64
}

// TreeStatistics is the full per-node/per-wire dump over a built tree.
type TreeStatistics struct {
	Nodes []NodeInfo
	Wires []WireInfo
}

// GetTreeStatistics walks root and returns every node's delay/capacitance
// record and every non-root edge's length, in pre-order.
func GetTreeStatistics(root *TreeNode) TreeStatistics {
	var stats TreeStatistics
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		stats.Nodes = append(stats.Nodes, NodeInfo{
			Name:            n.Name,
			IsLeaf:          n.IsLeaf(),
			Delay:           n.Delay,
			Cap:             n.Cap,
			NeedsElongation: n.NeedsElongation,
		})
		if n.Parent != nil {
			stats.Wires = append(stats.Wires, WireInfo{
				Parent: n.Parent.Name,
				Child:  n.Name,
				Length: n.WireLength,
			})
		}
		if !n.IsLeaf() {
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(root)
	return stats
}
