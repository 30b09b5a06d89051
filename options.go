package folio

import "github.com/tsawler/folio/measure"

// AnalyzeOptions holds configuration for an analysis pass.
type AnalyzeOptions struct {
	// pageRelative converts line and fragment rects to page-relative
	// coordinates after page assignment.
	pageRelative bool

	// HTML layout settings (used only by HTML-backed analyzers)
	pageWidth  float64
	pageHeight float64
	margin     float64
	measurer   measure.Measurer
}

// defaultOptions returns the default analysis options.
func defaultOptions() AnalyzeOptions {
	return AnalyzeOptions{
		pageRelative: false,
		pageWidth:    0, // zero means use the htmldoc defaults
		pageHeight:   0,
		margin:       -1, // negative means use the htmldoc default
		measurer:     nil,
	}
}

// clone creates a copy of AnalyzeOptions.
func (o AnalyzeOptions) clone() AnalyzeOptions {
	return AnalyzeOptions{
		pageRelative: o.pageRelative,
		pageWidth:    o.pageWidth,
		pageHeight:   o.pageHeight,
		margin:       o.margin,
		measurer:     o.measurer,
	}
}
