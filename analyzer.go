package folio

import (
	"fmt"

	"github.com/tsawler/folio/htmldoc"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/measure"
	"github.com/tsawler/folio/model"
)

// Analyzer provides a fluent interface for reconstructing lines and pages
// from a fragment source. Each configuration method returns a new Analyzer
// instance, making it safe for concurrent use and allowing method chaining.
type Analyzer struct {
	// Source
	source   GeometryProvider
	filename string // HTML file, opened lazily

	// Configuration
	options AnalyzeOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a copy of the Analyzer with copied options. This ensures
// immutability - each chain method returns a new instance.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		source:   a.source,
		filename: a.filename,
		options:  a.options.clone(),
		err:      a.err,
		warnings: append([]Warning(nil), a.warnings...),
	}
}

// ensureSource opens the HTML-backed source if one was requested by
// filename and is not open yet.
func (a *Analyzer) ensureSource() error {
	if a.source != nil {
		return nil
	}
	if a.filename == "" {
		return fmt.Errorf("no fragment source specified")
	}

	opts := htmldoc.DefaultOptions()
	if a.options.pageWidth > 0 {
		opts.PageWidth = a.options.pageWidth
	}
	if a.options.pageHeight > 0 {
		opts.PageHeight = a.options.pageHeight
	}
	if a.options.margin >= 0 {
		opts.Margin = a.options.margin
	}
	if a.options.measurer != nil {
		opts.Measurer = a.options.measurer
	}

	r, err := htmldoc.OpenWithOptions(a.filename, opts)
	if err != nil {
		return fmt.Errorf("failed to open HTML: %w", err)
	}
	a.source = r
	return nil
}

// ============================================================================
// Configuration Methods (return new Analyzer instance)
// ============================================================================

// PageRelative converts line and fragment rectangles to page-relative
// coordinates (horizontal values modulo the page width) after pages are
// assigned. Page assignment itself always uses the absolute rectangles.
//
// Example:
//
//	doc, _, err := folio.FromHTML("book.html").PageRelative().Document()
func (a *Analyzer) PageRelative() *Analyzer {
	newA := a.clone()
	newA.options.pageRelative = true
	return newA
}

// PageWidth sets the page width for HTML-backed analyzers. It has no effect
// on analyzers built from an existing GeometryProvider, whose environment
// supplies the width.
func (a *Analyzer) PageWidth(w float64) *Analyzer {
	newA := a.clone()
	newA.options.pageWidth = w
	return newA
}

// PageHeight sets the page height for HTML-backed analyzers.
func (a *Analyzer) PageHeight(h float64) *Analyzer {
	newA := a.clone()
	newA.options.pageHeight = h
	return newA
}

// Margin sets the page margin for HTML-backed analyzers.
func (a *Analyzer) Margin(m float64) *Analyzer {
	newA := a.clone()
	newA.options.margin = m
	return newA
}

// Measure sets the word measurer for HTML-backed analyzers.
//
// Example:
//
//	doc, _, err := folio.FromHTML("book.html").
//	    Measure(measure.NewFaceMeasurer(nil)).
//	    Document()
func (a *Analyzer) Measure(m measure.Measurer) *Analyzer {
	newA := a.clone()
	newA.options.measurer = m
	return newA
}

// ============================================================================
// Terminal Operations (execute the pass and return results)
// ============================================================================

// Document runs the full pass and returns the dense page sequence: lines
// grouped from the fragment list, assigned to pages, with the page count
// derived from the document extent. Returns the document, any warnings
// encountered (non-fatal conditions where analysis succeeded but results
// may be imperfect), and an error if the pass failed.
//
// Example:
//
//	doc, warnings, err := folio.FromHTML("book.html").Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(warnings))
//	}
func (a *Analyzer) Document() (*model.Document, []Warning, error) {
	if a.err != nil {
		return nil, nil, a.err
	}
	if err := a.ensureSource(); err != nil {
		return nil, nil, err
	}

	fragments, err := a.source.Fragments()
	if err != nil {
		return nil, nil, fmt.Errorf("fragment source: %w", err)
	}

	pageWidth := a.source.PageWidth()
	offsetX := a.source.PageOffsetX()

	a.checkDegenerate(fragments)

	grouper := layout.NewLineGrouper()
	lines, err := grouper.Group(fragments, pageWidth, offsetX)
	if err != nil {
		return nil, a.warnings, err
	}

	count, err := layout.PageCount(a.source.TotalWidth(), pageWidth)
	if err != nil {
		return nil, a.warnings, err
	}

	paginator := layout.NewPaginator()
	pages, err := paginator.Assign(lines, count, pageWidth, offsetX)
	if err != nil {
		return nil, a.warnings, err
	}

	if a.options.pageRelative {
		if err := paginator.Relativize(pages, pageWidth); err != nil {
			return nil, a.warnings, err
		}
	}

	doc := model.NewDocument()
	for _, page := range pages {
		doc.AddPage(page)
	}

	return doc, a.warnings, nil
}

// Lines runs the grouping stage only and returns the ordered line sequence
// with absolute rectangles.
//
// Example:
//
//	lines, _, err := folio.From(src).Lines()
//	for _, line := range lines {
//	    fmt.Printf("%q at %v\n", line.Text, line.Rect)
//	}
func (a *Analyzer) Lines() ([]model.Line, []Warning, error) {
	if a.err != nil {
		return nil, nil, a.err
	}
	if err := a.ensureSource(); err != nil {
		return nil, nil, err
	}

	fragments, err := a.source.Fragments()
	if err != nil {
		return nil, nil, fmt.Errorf("fragment source: %w", err)
	}

	a.checkDegenerate(fragments)

	grouper := layout.NewLineGrouper()
	lines, err := grouper.Group(fragments, a.source.PageWidth(), a.source.PageOffsetX())
	if err != nil {
		return nil, a.warnings, err
	}

	return lines, a.warnings, nil
}

// Text runs the full pass and returns all reconstructed text: lines joined
// with newlines, pages separated by blank lines.
func (a *Analyzer) Text() (string, []Warning, error) {
	doc, warnings, err := a.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.Text(), warnings, nil
}

// PageCount returns the total page count derived from the document extent,
// without running the grouping pass.
func (a *Analyzer) PageCount() (int, error) {
	if a.err != nil {
		return 0, a.err
	}
	if err := a.ensureSource(); err != nil {
		return 0, err
	}

	return layout.PageCount(a.source.TotalWidth(), a.source.PageWidth())
}

// checkDegenerate records a warning for each zero-area fragment rect. The
// fragments still participate in grouping unchanged.
func (a *Analyzer) checkDegenerate(fragments []model.Fragment) {
	for i, f := range fragments {
		if f.Rect.IsDegenerate() {
			a.warnings = append(a.warnings, Warning{
				Code:    WarnDegenerateRect,
				Message: fmt.Sprintf("fragment %d (%q) has a zero-area rect", i, f.Text),
			})
		}
	}
}
