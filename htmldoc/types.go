package htmldoc

import "github.com/tsawler/folio/measure"

// Options configure how a document's words are flowed into pages.
type Options struct {
	// PageWidth is the width of one page in document units. Pages are laid
	// out side by side, so page N starts at horizontal offset N*PageWidth.
	PageWidth float64

	// PageHeight is the height of one page.
	PageHeight float64

	// Margin is the blank border inside each page on all four sides.
	Margin float64

	// Measurer supplies word advance widths and line heights. Nil selects
	// the deterministic rune measurer.
	Measurer measure.Measurer
}

// DefaultOptions returns sensible defaults for an 800x600 page.
func DefaultOptions() Options {
	return Options{
		PageWidth:  800,
		PageHeight: 600,
		Margin:     40,
		Measurer:   measure.NewRuneMeasurer(),
	}
}

// word is one whitespace-delimited span extracted from the document, in
// traversal order, before layout.
type word struct {
	text     string
	scale    float64
	newBlock bool // the word opens a block element, forcing a line break
}

// headingScales maps heading elements to their measurement scale, following
// the conventional browser default sizes.
var headingScales = map[string]float64{
	"h1": 2.0,
	"h2": 1.5,
	"h3": 1.17,
	"h4": 1.0,
	"h5": 0.83,
	"h6": 0.67,
}

// blockElements force a line break before and after their content.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "div": true, "dl": true, "dd": true, "dt": true,
	"figure": true, "figcaption": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// skippedElements contribute no readable text.
var skippedElements = map[string]bool{
	"head": true, "script": true, "style": true, "noscript": true,
	"template": true, "iframe": true, "svg": true, "object": true,
}
