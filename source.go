package folio

import "github.com/tsawler/folio/model"

// FragmentSource produces the ordered fragment list for one analysis pass.
// Fragments must be in document traversal order (depth-first, source order);
// the pass depends on that order and never re-sorts. A source is consumed
// exactly once per pass: re-invoking an exhausted or live source may
// duplicate fragments.
type FragmentSource interface {
	Fragments() ([]model.Fragment, error)
}

// Environment supplies the pagination geometry for one pass: the current
// page width, the current horizontal scroll offset, and the total scrollable
// extent of the document. The values are treated as a point-in-time
// snapshot; if the page width changes between the start and end of a pass,
// the entire result is invalid and the caller must re-run from scratch.
type Environment interface {
	PageWidth() float64
	PageOffsetX() float64
	TotalWidth() float64
}

// GeometryProvider is a fragment source that also knows its page geometry.
// The htmldoc.Reader implements it; callers with their own measurement can
// use a SliceSource.
type GeometryProvider interface {
	FragmentSource
	Environment
}

// SliceSource is an in-memory GeometryProvider over pre-measured fragments
// and fixed environment values.
type SliceSource struct {
	fragments  []model.Fragment
	pageWidth  float64
	offsetX    float64
	totalWidth float64
}

// NewSliceSource creates a source over the given fragments. The slice is
// copied so later caller mutations cannot leak into a running pass.
func NewSliceSource(fragments []model.Fragment, pageWidth, pageOffsetX, totalWidth float64) *SliceSource {
	frags := make([]model.Fragment, len(fragments))
	copy(frags, fragments)
	return &SliceSource{
		fragments:  frags,
		pageWidth:  pageWidth,
		offsetX:    pageOffsetX,
		totalWidth: totalWidth,
	}
}

// Fragments returns the fragment list in input order.
func (s *SliceSource) Fragments() ([]model.Fragment, error) {
	return s.fragments, nil
}

// PageWidth returns the fixed page width.
func (s *SliceSource) PageWidth() float64 {
	return s.pageWidth
}

// PageOffsetX returns the fixed horizontal scroll offset.
func (s *SliceSource) PageOffsetX() float64 {
	return s.offsetX
}

// TotalWidth returns the fixed total document width.
func (s *SliceSource) TotalWidth() float64 {
	return s.totalWidth
}
