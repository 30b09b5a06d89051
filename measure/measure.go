// Package measure provides word-width measurement for materializing text
// fragments as positioned boxes.
package measure

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/width"
)

// Measurer reports the advance width of a word and the height of a text
// line at a given scale. Scale 1.0 is the measurer's natural size; headings
// are typically measured at a larger scale.
type Measurer interface {
	Advance(word string, scale float64) float64
	LineHeight(scale float64) float64
}

// FaceMeasurer measures words with a font.Face.
type FaceMeasurer struct {
	face font.Face
}

// NewFaceMeasurer creates a measurer for the given face. A nil face falls
// back to basicfont.Face7x13.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceMeasurer{face: face}
}

// Advance returns the horizontal advance of the word in pixels, scaled.
func (m *FaceMeasurer) Advance(word string, scale float64) float64 {
	adv := font.MeasureString(m.face, word)
	// fixed.Int26_6 carries 6 fractional bits.
	return float64(adv) / 64.0 * scale
}

// LineHeight returns the face's line height in pixels, scaled.
func (m *FaceMeasurer) LineHeight(scale float64) float64 {
	return float64(m.face.Metrics().Height) / 64.0 * scale
}

// RuneMeasurer assigns a fixed advance per rune, doubled for East Asian
// wide and fullwidth runes. It is deterministic across platforms, which
// makes it suitable for layout tests and monospace-style flows.
type RuneMeasurer struct {
	// RuneWidth is the advance of a narrow rune at scale 1.0.
	RuneWidth float64

	// Height is the line height at scale 1.0.
	Height float64
}

// NewRuneMeasurer creates a rune measurer with an 8x16 cell.
func NewRuneMeasurer() *RuneMeasurer {
	return &RuneMeasurer{RuneWidth: 8, Height: 16}
}

// Advance returns the word's advance: one cell per rune, two for wide and
// fullwidth runes.
func (m *RuneMeasurer) Advance(word string, scale float64) float64 {
	var cells float64
	for _, r := range word {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cells += 2
		default:
			cells++
		}
	}
	return cells * m.RuneWidth * scale
}

// LineHeight returns the cell height, scaled.
func (m *RuneMeasurer) LineHeight(scale float64) float64 {
	return m.Height * scale
}
