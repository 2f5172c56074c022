package dme

import "errors"

// Sentinel errors returned by Build. Callers branch on these with
// errors.Is; no algorithm here panics on caller-supplied data, per the
// invalid-input/programmer-error split this module follows throughout.
var (
	// ErrEmptySinks is returned when a DmeAlgorithm is built with no
	// sinks: a clock tree needs at least one leaf.
	ErrEmptySinks = errors.New("dme: empty sink set")

	// ErrNilDelayModel is returned by Build when New was given a nil
	// DelayModel.
	ErrNilDelayModel = errors.New("dme: nil delay model")
)
