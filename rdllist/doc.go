// Package rdllist implements the doubly-linked circular list used as a
// mutable polygon ring: every node is addressed by its integer index
// into a pre-reserved backing slice, and appending is always safe
// because indices, unlike addresses, never move.
//
// Both rpolygon subpackages drive this type. The hull passes walk the
// cycle detaching vertices whose local turn is wrong, the Detach-heavy
// access pattern. The cut decompositions Append a node per invented
// projection vertex and use Link to re-route one cycle into two
// independent sub-cycles in constant time, the growth-under-iteration
// pattern the pre-reserved capacity exists for.
package rdllist
