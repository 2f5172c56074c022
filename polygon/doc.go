// Package polygon implements the general (non-rectilinear) polygon
// primitive: signed area, point-in-polygon, and monotone-chain
// construction. RPolygon in the sibling rpolygon package is the
// rectilinear specialisation whose edges alternate axis; this package
// keeps the unrestricted case available for the same family of queries.
package polygon
