// Package sizing implements the declarative size-policy model for forms
// components and its resolution against available space.
//
// A SizeValue is an explicit three-variant tagged value: Content (measure
// the node's intrinsic content), Absolute (a pixel count), or Relative (a
// fraction of the parent's extent). Resolution is a total function; content
// measurement happens only when a Content policy demands it, so a node's
// measurement can never depend on an ancestor's unresolved rectangle.
package sizing
