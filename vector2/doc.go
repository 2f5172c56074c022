// Package vector2 implements a 2-D displacement vector over Go's integer
// type, the additive group that Point translation and RPolygon edge
// representation build on.
package vector2
