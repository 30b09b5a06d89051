package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/folio/model"
)

var (
	// ErrPageWidth indicates a non-positive page width, which makes the
	// pagination arithmetic meaningless.
	ErrPageWidth = errors.New("page width must be positive")

	// ErrBackwardPage indicates a fragment whose page index is lower than a
	// preceding fragment's. The traversal order guarantees monotonically
	// non-decreasing page indices, so a backward step means the snapshot is
	// inconsistent (the document moved between measurements).
	ErrBackwardPage = errors.New("fragment page index moved backward")

	// ErrPageIndexRange indicates a line whose page index falls outside the
	// externally supplied page count.
	ErrPageIndexRange = errors.New("line page index out of range")

	// ErrPageCount indicates a negative total page count.
	ErrPageCount = errors.New("page count must be non-negative")
)

// groupState is the constant lookback state threaded through the grouping
// pass: the previous fragment's bottom and left edges, the page reached so
// far, and the line in progress.
type groupState struct {
	lastBottom float64
	lastLeft   float64
	lastPage   int
	current    *model.Line
}

// LineGrouper partitions an ordered fragment sequence into visual lines.
type LineGrouper struct{}

// NewLineGrouper creates a new line grouper.
func NewLineGrouper() *LineGrouper {
	return &LineGrouper{}
}

// Group partitions fragments into lines in a single forward pass with
// constant lookback state and no backtracking. Fragments must be in document
// traversal order; they are never re-sorted.
//
// A fragment starts a new line when any of three conditions holds:
//
//   - its left edge does not advance past the previous fragment's left edge
//     (reading order reset leftward, i.e. wraparound)
//   - its top edge is at or below the previous fragment's bottom edge
//     (vertical displacement onto a new line)
//   - it falls on a later page than the previous fragment (lines never span
//     pages)
//
// The heuristic is purely positional, with no line-break signal from the
// layout engine. It can misfire on single-character lines, right-aligned
// text, or unusual letter spacing; that behavior is part of the contract
// and kept as-is.
//
// A fragment is assumed to cross at most one page boundary; the page a
// fragment starts on is its page. Group returns ErrPageWidth for a
// non-positive page width and ErrBackwardPage when a fragment's page index
// decreases, which indicates an inconsistent geometry snapshot.
func (g *LineGrouper) Group(fragments []model.Fragment, pageWidth, pageOffsetX float64) ([]model.Line, error) {
	if pageWidth <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrPageWidth, pageWidth)
	}
	if len(fragments) == 0 {
		return nil, nil
	}

	st := groupState{
		lastBottom: math.Inf(-1),
		lastLeft:   math.Inf(-1),
		current:    model.NewLine(),
	}

	var lines []model.Line

	for i, frag := range fragments {
		page := frag.Rect.PageIndex(pageWidth, pageOffsetX)
		if page < st.lastPage {
			return nil, fmt.Errorf("fragment %d (%q) on page %d after page %d: %w",
				i, frag.Text, page, st.lastPage, ErrBackwardPage)
		}
		onNextPage := page > st.lastPage

		if frag.Rect.Left <= st.lastLeft || frag.Rect.Top >= st.lastBottom || onNextPage {
			// The condition always fires for the first fragment (lastBottom
			// starts at -Inf). The line in progress at that point has no
			// members and must be discarded, not emitted.
			if !st.current.IsEmpty() {
				lines = append(lines, seal(st.current))
			}
			st.current = model.NewLine()
		}
		st.current.Add(frag)

		st.lastBottom = frag.Rect.Bottom
		st.lastLeft = frag.Rect.Left
		if onNextPage {
			st.lastPage++
		}
	}

	// Don't forget the line still in progress.
	if !st.current.IsEmpty() {
		lines = append(lines, seal(st.current))
	}

	return lines, nil
}

// seal finalizes an in-progress line: its text becomes the member fragment
// texts joined with single spaces, and it is returned by value so nothing
// mutates it afterwards.
func seal(l *model.Line) model.Line {
	l.Text = l.JoinText()
	return *l
}
