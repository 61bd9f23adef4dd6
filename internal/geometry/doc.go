// Package geometry implements pure 2D rectangle arithmetic for forms layout.
//
// It covers set operations (union, intersection), containment and collision
// queries, ratio-weighted subdivision, grid-cell extraction, alignment against
// a container, distance queries, and scaling transforms. Types are re-exported
// through the root forms package for public consumption.
//
// Everything here is a total function over immutable values: degenerate inputs
// (empty rectangles, empty ratio lists, out-of-range grid indices) produce a
// defined empty or zero result, never an error.
package geometry
