package router

import "errors"

// Sentinel errors returned by this package. Callers branch on these with
// errors.Is; programmer errors (nil receivers, malformed options) panic
// instead, per this module's invalid-input/programmer-error split.
var (
	// ErrUnknownParent is returned when an insertion primitive is given
	// a parent node this tree does not own.
	ErrUnknownParent = errors.New("router: unknown parent node")

	// ErrNotAChild is returned by InsertNodeOnBranch when the supplied
	// branch end is not actually a child of the supplied branch start.
	ErrNotAChild = errors.New("router: branch end is not a child of branch start")

	// ErrNoFeasibleInsertion is returned when every candidate insertion
	// point for a terminal is blocked by an active keep-out or would
	// exceed the active wire-length budget. The policy is conservative:
	// the terminal is not inserted and the error is returned, leaving
	// every earlier, successful insertion in the tree untouched.
	ErrNoFeasibleInsertion = errors.New("router: no feasible insertion point under active constraints")
)
