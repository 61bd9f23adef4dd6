// Package forms is an object-oriented component layer over an immediate-mode
// renderer.
//
// A caller builds a tree of panels and labels, assigns each a declarative
// size policy (absolute pixels, fraction of parent, or intrinsic content),
// and updates the tree once per frame inside a rectangle supplied by the
// host render loop. Layout resolution is two-pass: content extents are
// measured leaf-to-root only where a policy demands it, then final
// rectangles are assigned root-to-leaf.
//
// The rendering substrate is the Renderer interface: text measurement,
// draw-primitive submission, pointer queries and drag-drop payloads. A
// tcell-backed ScreenRenderer ships for terminal hosts, and MockRenderer
// supports tests. Rectangle arithmetic lives in internal/geometry and size
// policies in internal/sizing; both are re-exported here.
//
// Everything is single-threaded and call-stack driven: one Update traversal
// per frame, no background work, no shared mutable state. All framework
// misuse (double BeginFrame, update outside a frame) degrades to a logged
// warning, never a panic.
package forms
