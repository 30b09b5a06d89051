package model

import "math"

// Rect represents a normalized axis-aligned rectangle in document coordinates.
// The coordinate space is top-left: X grows rightward, Y grows downward, so a
// normalized rect satisfies Left <= Right and Top <= Bottom.
//
// A Rect is either document-absolute (relative to the whole scrollable
// document) or page-relative (horizontal coordinates taken modulo the page
// width). Conversion is one-directional via PageRelative; the page index must
// be captured from the absolute rect first, because the conversion discards it.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewRect creates a normalized rectangle from two corners.
func NewRect(left, top, right, bottom float64) Rect {
	if right < left {
		left, right = right, left
	}
	if bottom < top {
		top, bottom = bottom, top
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// EmptyRect returns the identity rectangle for Union: every edge is at the
// opposite infinity, so the union of EmptyRect with any rect is that rect.
func EmptyRect() Rect {
	return Rect{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Intersects checks if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right < other.Left ||
		r.Left > other.Right ||
		r.Bottom < other.Top ||
		r.Top > other.Bottom)
}

// Contains checks if the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// IsEmpty returns true for the EmptyRect sentinel, i.e. a rect that has had
// nothing unioned into it yet.
func (r Rect) IsEmpty() bool {
	return r.Left > r.Right || r.Top > r.Bottom
}

// IsDegenerate returns true if the rectangle has zero width or height.
// Degenerate rects are unioned like any other, which may distort a line's
// rectangle; filtering them out is the fragment producer's responsibility.
func (r Rect) IsDegenerate() bool {
	return !r.IsEmpty() && (r.Width() == 0 || r.Height() == 0)
}

// PageIndex returns the zero-based page this rectangle's left edge falls on,
// for a horizontally paginated document with the given page width and
// horizontal scroll offset. The left edge decides the page: a rect straddling
// a page boundary resolves to the page it starts on.
func (r Rect) PageIndex(pageWidth, pageOffsetX float64) int {
	return int(math.Floor((r.Left + pageOffsetX) / pageWidth))
}

// PageRelative returns the rectangle with horizontal coordinates taken modulo
// the page width, i.e. local to one page. Vertical coordinates are unchanged.
// The conversion is lossy: the page index cannot be recovered from the result,
// so it must be computed from the absolute rect beforehand.
func (r Rect) PageRelative(pageWidth float64) Rect {
	return Rect{
		Left:   math.Mod(r.Left, pageWidth),
		Top:    r.Top,
		Right:  math.Mod(r.Right, pageWidth),
		Bottom: r.Bottom,
	}
}
