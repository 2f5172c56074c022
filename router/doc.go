// Package router implements the incremental global-routing tree builder:
// a fixed source, terminals inserted one at a time in order of increasing
// Manhattan distance from the source (ties broken toward the terminal
// with the larger source-enclosing rectangle, so wider detours are
// resolved first), with optional wire-length budget and rectangular
// keep-out avoidance.
//
// Each insertion finds the point on the existing tree nearest the
// incoming terminal, projected onto the axis-aligned hull of every
// parent-child edge rather than onto the node set alone, subject to
// whichever of the budget and keep-out constraints are active. It then
// either attaches the terminal directly to a coincident existing node or
// splices in a fresh Steiner point. GlobalRouter.RouteSimple,
// RouteWithSteiners and RouteWithConstraints are thin drivers over the
// same primitives (InsertTerminalNode, InsertSteinerNode,
// InsertNodeOnBranch) that a caller can also call directly to build a
// tree by hand.
//
// Routing here is a topology and embedding problem, not detailed
// routing on a grid graph: a parent-child edge's "hull" is the
// axis-aligned bounding rectangle of its two endpoints, and keep-out
// intersection is tested against that rectangle, not against a traced
// rectilinear wire path, consistent with the Manhattan-distance
// abstraction the rest of this module uses throughout.
package router
