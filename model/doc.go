// Package model provides the data types for reconstructed reading structure.
//
// This package defines the value types that flow through an analysis pass:
// fragments in, lines and pages out. They are the primary API for consuming
// reconstruction results.
//
// # Geometry
//
// The [Rect] type is a normalized axis-aligned rectangle in a top-left
// coordinate space, with union, containment, and intersection calculations.
// Rects come in two flavors:
//
//   - document-absolute: coordinates relative to the whole scrollable document
//   - page-relative: horizontal coordinates taken modulo the page width
//
// Conversion is one-directional, absolute to page-relative, via
// [Rect.PageRelative]. The page index must be computed from the absolute rect
// first (via [Rect.PageIndex]) because the conversion discards it.
//
// # Structure
//
// A [Fragment] is the smallest positioned unit of text, one word with a
// measured rectangle. A [Line] is a maximal run of fragments judged visually
// contiguous, with a unioned rect and joined text. A [Page] holds the lines
// that fall on one horizontally paginated slice of the document. A [Document]
// is the dense, complete page sequence produced by a pass:
//
//	doc.PageCount()          // externally derived total, empty pages included
//	doc.GetPage(0).Lines     // lines in reading order
//	doc.Text()               // all text, pages separated by blank lines
package model
