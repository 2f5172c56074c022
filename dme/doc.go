// Package dme implements Deferred Merge Embedding, the classical
// zero-skew clock-tree construction algorithm.
//
// Build proceeds in four phases:
//
//  1. Topology: recursively bipartition the sink set by x then y,
//     alternating axis at each level, halving at the median until every
//     group is a singleton. This fixes the tree's shape (a balanced
//     binary tree over the sinks) before any position is chosen.
//  2. Bottom-up merging segments, in post-order: a leaf's merging
//     segment is the degenerate ManhattanArc at its sink; an internal
//     node's is left.MergeWith(right, alpha), where alpha is the delay
//     model's tapping point between the two children's accumulated
//     subtree delay and downstream capacitance.
//  3. Top-down embedding, in pre-order: the root is placed at the upper
//     corner of its own merging segment (any corner is equally valid);
//     every other node is placed at the point on its own segment nearest
//     to its already-placed parent.
//  4. Delay propagation, in pre-order again: the root has zero delay;
//     each child's delay is its parent's delay plus the delay model's
//     wire delay over the embedded edge.
//
// All four phases are pure functions of the sink set and the chosen
// DelayModel; the tree nodes are allocated once, from a per-build arena
// held by the returned handle, so every *TreeNode the caller sees stays
// valid for the handle's lifetime without per-node heap churn.
package dme
