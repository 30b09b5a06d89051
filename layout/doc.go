// Package layout reconstructs logical reading structure from positioned text
// fragments: which fragments form a visual line, and which page each line
// falls on.
//
// The pipeline is two strictly sequential pure transformations:
//
//	fragments -> [LineGrouper] -> lines -> [Paginator] -> pages
//
// [LineGrouper.Group] is a single forward pass over the ordered fragment
// list with constant lookback state. A new line starts when a fragment's
// left edge fails to advance, its top edge drops past the previous bottom,
// or it crosses onto the next page. [Paginator.Assign] places each line on
// a page by horizontal pagination arithmetic and always produces a dense
// page sequence sized to the externally supplied page count, empty pages
// included.
//
// Both stages assume a stable geometry snapshot: fragment order and
// rectangles must not change during the pass, and the page index must be
// monotonically non-decreasing across the traversal. Violations surface as
// [ErrBackwardPage] or [ErrPageIndexRange]; the caller re-runs the whole
// pass once the environment stabilizes.
package layout
