package model

// Fragment is the smallest positioned unit of text: one word-like span with
// its measured rectangle in absolute document coordinates.
//
// Fragments arrive pre-ordered by document traversal order (depth-first,
// source order). The line grouping pass depends on that order and never
// re-sorts them.
type Fragment struct {
	Text string
	Rect Rect
}
