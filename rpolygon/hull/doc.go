// Package hull implements monotone and convex hull extraction over a
// rectilinear point set: each direction pass walks the point cycle with
// a DLL, detaching vertices whose local turn has the wrong sign while
// moving the wrong way along the major axis.
package hull
