package model

import "strings"

// Line is a maximal run of fragments judged visually contiguous by the
// grouping heuristic. Rect is the smallest rectangle containing every member
// fragment's rectangle; Text is the member texts joined with single spaces,
// in fragment order.
type Line struct {
	Rect      Rect
	Fragments []Fragment
	Text      string
}

// NewLine creates an empty in-progress line. Its rect is the EmptyRect
// sentinel so that the first Add yields exactly the fragment's rect.
func NewLine() *Line {
	return &Line{Rect: EmptyRect()}
}

// Add appends a fragment to the line and grows the line's rect to the union
// of the current rect and the fragment's rect.
func (l *Line) Add(f Fragment) {
	l.Fragments = append(l.Fragments, f)
	l.Rect = l.Rect.Union(f.Rect)
}

// IsEmpty returns true if the line has no member fragments.
func (l *Line) IsEmpty() bool {
	return len(l.Fragments) == 0
}

// FragmentCount returns the number of member fragments.
func (l *Line) FragmentCount() int {
	return len(l.Fragments)
}

// JoinText returns the member fragment texts joined with single ASCII spaces,
// in fragment order. Sealing a line stores this in Text.
func (l *Line) JoinText() string {
	var sb strings.Builder
	for i, f := range l.Fragments {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(f.Text)
	}
	return sb.String()
}
