// Package geom defines the geometry contract labels are placed on and the
// flat-coordinate algorithms used for placement.
//
// Geometries expose their vertices as a flat coordinate slice with a
// stride (2 for XY, 3 for XYZ, ...). Multi-part geometries describe their
// parts with end offsets into that slice. Placement needs a few derived
// points (midpoints, interior points, centers); these come from optional
// interfaces so that callers can supply precomputed values.
package geom
