package layout

import (
	"errors"
	"testing"

	"github.com/tsawler/folio/model"
)

// makeFragment creates a test fragment from edge coordinates.
func makeFragment(text string, left, top, right, bottom float64) model.Fragment {
	return model.Fragment{
		Text: text,
		Rect: model.NewRect(left, top, right, bottom),
	}
}

func TestLineGrouper_EmptyInput(t *testing.T) {
	grouper := NewLineGrouper()

	lines, err := grouper.Group(nil, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected 0 lines, got %d", len(lines))
	}
}

func TestLineGrouper_SingleFragment(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("Hello", 0, 0, 10, 10),
	}

	lines, err := grouper.Group(fragments, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Hello" {
		t.Errorf("Expected 'Hello', got %q", lines[0].Text)
	}
	if lines[0].Rect != fragments[0].Rect {
		t.Errorf("Expected line rect to equal fragment rect, got %+v", lines[0].Rect)
	}
}

// Two fragments advancing rightward on the same band form one line whose
// rect unions both.
func TestLineGrouper_AdjacentFragmentsShareLine(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("Hello", 0, 0, 10, 10),
		makeFragment("world", 15, 0, 25, 10),
	}

	lines, err := grouper.Group(fragments, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	if line.Text != "Hello world" {
		t.Errorf("Expected 'Hello world', got %q", line.Text)
	}

	want := model.Rect{Left: 0, Top: 0, Right: 25, Bottom: 10}
	if line.Rect != want {
		t.Errorf("Expected rect %+v, got %+v", want, line.Rect)
	}
}

// A left edge that fails to advance indicates wraparound, even with the
// vertical band unchanged.
func TestLineGrouper_LeftEdgeRetreatBreaksLine(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("first", 20, 0, 40, 10),
		makeFragment("second", 5, 0, 15, 10),
	}

	lines, err := grouper.Group(fragments, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "first" || lines[1].Text != "second" {
		t.Errorf("Expected 'first'/'second', got %q/%q", lines[0].Text, lines[1].Text)
	}
}

// An equal left edge counts as a retreat (the condition is <=).
func TestLineGrouper_EqualLeftEdgeBreaksLine(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("a", 10, 0, 20, 10),
		makeFragment("b", 10, 12, 20, 22),
	}

	lines, err := grouper.Group(fragments, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
}

// A top edge at or below the previous bottom starts a new line even when
// the left edge advances.
func TestLineGrouper_VerticalDropBreaksLine(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("up", 0, 0, 10, 10),
		makeFragment("down", 20, 10, 30, 20),
	}

	lines, err := grouper.Group(fragments, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
}

// Crossing a page boundary always breaks the line, regardless of geometry.
func TestLineGrouper_PageCrossingBreaksLine(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("left", 80, 0, 95, 10),
		makeFragment("right", 105, 0, 120, 10),
	}

	lines, err := grouper.Group(fragments, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if got := lines[0].Rect.PageIndex(100, 0); got != 0 {
		t.Errorf("Expected first line on page 0, got %d", got)
	}
	if got := lines[1].Rect.PageIndex(100, 0); got != 1 {
		t.Errorf("Expected second line on page 1, got %d", got)
	}
}

// The page offset participates in the page-index arithmetic.
func TestLineGrouper_OffsetShiftsPageBoundary(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("a", 50, 0, 60, 10),
		makeFragment("b", 95, 0, 105, 10), // 95+10 = 105 -> page 1
	}

	lines, err := grouper.Group(fragments, 100, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines with offset 10, got %d", len(lines))
	}
}

// There must never be a phantom empty leading line: for non-empty input the
// first output line contains the first fragment.
func TestLineGrouper_NoPhantomFirstLine(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("only", 30, 40, 60, 55),
	}

	lines, err := grouper.Group(fragments, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 1 {
		t.Fatalf("Expected exactly 1 line, got %d", len(lines))
	}
	if lines[0].FragmentCount() == 0 {
		t.Error("First line has no fragments")
	}
	if lines[0].Fragments[0].Text != "only" {
		t.Errorf("Expected first line to contain the first fragment, got %q", lines[0].Fragments[0].Text)
	}
}

func TestLineGrouper_LineCountMatchesBreaks(t *testing.T) {
	grouper := NewLineGrouper()
	// Three lines: break before "wrap" (left retreat), break before
	// "below" (vertical drop).
	fragments := []model.Fragment{
		makeFragment("one", 0, 0, 10, 10),
		makeFragment("two", 15, 0, 25, 10),
		makeFragment("wrap", 0, 12, 12, 22),
		makeFragment("more", 16, 12, 28, 22),
		makeFragment("below", 20, 24, 40, 34),
	}

	lines, err := grouper.Group(fragments, 1000, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	wantTexts := []string{"one two", "wrap more", "below"}
	for i, want := range wantTexts {
		if lines[i].Text != want {
			t.Errorf("Line %d: expected %q, got %q", i, want, lines[i].Text)
		}
	}
}

// Union correctness: every line rect edge equals the min/max over member
// fragments.
func TestLineGrouper_UnionCorrectness(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("tall", 0, 0, 10, 20),
		makeFragment("short", 15, 5, 30, 12),
		makeFragment("wide", 35, 2, 80, 18),
	}

	lines, err := grouper.Group(fragments, 1000, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	union := model.EmptyRect()
	for _, f := range line.Fragments {
		union = union.Union(f.Rect)
	}
	if line.Rect != union {
		t.Errorf("Expected line rect %+v to equal fragment union %+v", line.Rect, union)
	}
}

// Order preservation: concatenating line fragments reproduces input order.
func TestLineGrouper_OrderPreserved(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("w1", 0, 0, 10, 10),
		makeFragment("w2", 12, 0, 22, 10),
		makeFragment("w3", 0, 12, 10, 22),
		makeFragment("w4", 12, 12, 22, 22),
		makeFragment("w5", 24, 12, 34, 22),
	}

	lines, err := grouper.Group(fragments, 1000, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var got []string
	for _, line := range lines {
		for _, f := range line.Fragments {
			got = append(got, f.Text)
		}
	}

	if len(got) != len(fragments) {
		t.Fatalf("Expected %d fragments across lines, got %d", len(fragments), len(got))
	}
	for i, f := range fragments {
		if got[i] != f.Text {
			t.Errorf("Position %d: expected %q, got %q", i, f.Text, got[i])
		}
	}
}

// Page-index monotonicity across consecutive output lines.
func TestLineGrouper_PageIndexMonotone(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("a", 10, 0, 30, 10),
		makeFragment("b", 5, 12, 25, 22),
		makeFragment("c", 110, 0, 130, 10),
		makeFragment("d", 105, 12, 125, 22),
		makeFragment("e", 220, 0, 240, 10),
	}

	lines, err := grouper.Group(fragments, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 1; i < len(lines); i++ {
		prev := lines[i-1].Rect.PageIndex(100, 0)
		cur := lines[i].Rect.PageIndex(100, 0)
		if cur < prev {
			t.Errorf("Line %d on page %d after line %d on page %d", i, cur, i-1, prev)
		}
	}
}

func TestLineGrouper_NonPositivePageWidth(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("x", 0, 0, 10, 10),
	}

	if _, err := grouper.Group(fragments, 0, 0); !errors.Is(err, ErrPageWidth) {
		t.Errorf("Expected ErrPageWidth for width 0, got %v", err)
	}
	if _, err := grouper.Group(fragments, -5, 0); !errors.Is(err, ErrPageWidth) {
		t.Errorf("Expected ErrPageWidth for width -5, got %v", err)
	}
}

// A fragment whose page index moves backward means the snapshot is
// inconsistent and must fail the pass.
func TestLineGrouper_BackwardPageFails(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("later", 150, 0, 170, 10),
		makeFragment("earlier", 10, 0, 30, 10),
	}

	_, err := grouper.Group(fragments, 100, 0)
	if !errors.Is(err, ErrBackwardPage) {
		t.Errorf("Expected ErrBackwardPage, got %v", err)
	}
}

// A degenerate rect is grouped like any other fragment; the distortion of
// the line rect is accepted, not masked.
func TestLineGrouper_DegenerateRectUnionsNormally(t *testing.T) {
	grouper := NewLineGrouper()
	fragments := []model.Fragment{
		makeFragment("word", 0, 0, 10, 10),
		makeFragment("", 12, 0, 12, 10), // zero width
	}

	lines, err := grouper.Group(fragments, 100, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Rect.Right != 12 {
		t.Errorf("Expected union to include degenerate rect, right=%g", lines[0].Rect.Right)
	}
}
