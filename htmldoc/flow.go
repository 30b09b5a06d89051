package htmldoc

import "github.com/tsawler/folio/model"

// layOut flows the collected words into the paginated layout, producing the
// fragment list. Pages sit side by side: page N's content area runs from
// N*PageWidth+Margin to (N+1)*PageWidth-Margin horizontally and from Margin
// to PageHeight-Margin vertically.
//
// The flow is greedy: words advance left to right, wrap to a new line when
// they would cross the right margin, and move to the next page when a new
// line would cross the bottom margin. A word wider than the content area is
// placed at the start of its own line and allowed to overflow; its page is
// still decided by its left edge.
func (r *Reader) layOut() {
	if r.laidOut {
		return
	}
	r.laidOut = true

	m := r.opts.Measurer
	bottom := r.opts.PageHeight - r.opts.Margin

	page := 0
	x := r.pageLeft(0)
	y := r.opts.Margin
	lineHeight := 0.0 // max word height on the current line
	onLine := false   // current line has at least one word

	for _, w := range r.words {
		advance := m.Advance(w.text, w.scale)
		height := m.LineHeight(w.scale)
		if advance <= 0 || height <= 0 {
			continue
		}

		wrap := w.newBlock || x+advance > r.pageRight(page)
		if onLine && wrap {
			y += lineHeight
			lineHeight = 0
			x = r.pageLeft(page)
			onLine = false
		}

		// A fresh line that cannot fit vertically opens the next page.
		if !onLine && y+height > bottom {
			page++
			y = r.opts.Margin
			x = r.pageLeft(page)
		}

		r.fragments = append(r.fragments, model.Fragment{
			Text: w.text,
			Rect: model.NewRect(x, y, x+advance, y+height),
		})

		x += advance + m.Advance(" ", w.scale)
		if height > lineHeight {
			lineHeight = height
		}
		onLine = true
	}

	r.totalWidth = float64(page+1) * r.opts.PageWidth
}

// pageLeft returns the left edge of a page's content area in absolute
// coordinates.
func (r *Reader) pageLeft(page int) float64 {
	return float64(page)*r.opts.PageWidth + r.opts.Margin
}

// pageRight returns the right edge of a page's content area in absolute
// coordinates.
func (r *Reader) pageRight(page int) float64 {
	return float64(page+1)*r.opts.PageWidth - r.opts.Margin
}
