package layout

import (
	"fmt"
	"math"

	"github.com/tsawler/folio/model"
)

// Paginator distributes grouped lines onto a dense page sequence.
type Paginator struct{}

// NewPaginator creates a new paginator.
func NewPaginator() *Paginator {
	return &Paginator{}
}

// Assign distributes lines onto pages. The page sequence is sized up front
// to totalPageCount (supplied by the caller, derived from the document
// extent via PageCount) and is dense and complete: every index from 0 to
// totalPageCount-1 is present, pages without lines included.
//
// Each line's page index is computed from its absolute rect with the same
// formula the grouper uses. Rects must still be absolute here; page-relative
// conversion discards the page number, so it may only happen afterwards,
// via Relativize.
//
// Assign returns ErrPageWidth for a non-positive page width, ErrPageCount
// for a negative count, and ErrPageIndexRange when a line resolves to a page
// outside 0..totalPageCount-1, which indicates the extent and the fragment
// geometry come from different snapshots.
func (p *Paginator) Assign(lines []model.Line, totalPageCount int, pageWidth, pageOffsetX float64) ([]*model.Page, error) {
	if pageWidth <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrPageWidth, pageWidth)
	}
	if totalPageCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrPageCount, totalPageCount)
	}

	pages := make([]*model.Page, totalPageCount)
	for i := range pages {
		pages[i] = model.NewPage(i)
	}

	for i, line := range lines {
		index := line.Rect.PageIndex(pageWidth, pageOffsetX)
		if index < 0 || index >= totalPageCount {
			return nil, fmt.Errorf("line %d (%q) on page %d with %d pages: %w",
				i, line.Text, index, totalPageCount, ErrPageIndexRange)
		}
		pages[index].AddLine(line)
	}

	return pages, nil
}

// Relativize converts every line rect (and its member fragment rects) on the
// given pages from absolute to page-relative coordinates. It must run only
// after Assign: the conversion keeps the intra-page offset and discards the
// page number.
func (p *Paginator) Relativize(pages []*model.Page, pageWidth float64) error {
	if pageWidth <= 0 {
		return fmt.Errorf("%w: %g", ErrPageWidth, pageWidth)
	}

	for _, page := range pages {
		for i := range page.Lines {
			line := &page.Lines[i]
			line.Rect = line.Rect.PageRelative(pageWidth)
			for j := range line.Fragments {
				line.Fragments[j].Rect = line.Fragments[j].Rect.PageRelative(pageWidth)
			}
		}
	}

	return nil
}

// PageCount derives the total page count from the document extent:
// ceil(totalWidth / pageWidth). A zero-width document has zero pages.
func PageCount(totalWidth, pageWidth float64) (int, error) {
	if pageWidth <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrPageWidth, pageWidth)
	}
	return int(math.Ceil(totalWidth / pageWidth)), nil
}
