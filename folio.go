// Package folio reconstructs logical reading structure - lines of text and
// the pages they fall on - from a stream of positioned text fragments, using
// only each fragment's bounding geometry and a known page width. It serves
// accessibility tooling that must expose "what text is on which visual line
// and which page" for a paginated, horizontally scrolling text layout,
// without access to the layout engine's own line-breaking decisions.
//
// Basic usage:
//
//	doc, warnings, err := folio.FromHTML("book.html").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(warnings))
//	}
//	for _, page := range doc.Pages {
//	    fmt.Printf("page %d: %d lines\n", page.Index, page.LineCount())
//	}
//
// With options:
//
//	doc, _, err := folio.FromHTML("book.html").
//	    PageWidth(1024).
//	    PageRelative().
//	    Document()
//
// Callers that measure fragments themselves plug in via [From] with any
// [GeometryProvider]; the lower-level layout package is also available.
package folio

// From creates an Analyzer over an existing fragment source with its page
// geometry. The source is consumed exactly once, when a terminal operation
// runs.
//
// Example:
//
//	src := folio.NewSliceSource(fragments, 800, 0, 2400)
//	doc, warnings, err := folio.From(src).Document()
func From(source GeometryProvider) *Analyzer {
	return &Analyzer{
		source:  source,
		options: defaultOptions(),
	}
}

// FromHTML creates an Analyzer over an HTML file. The file is parsed and
// laid out when the first terminal operation runs, honoring any PageWidth,
// PageHeight, Margin, and Measure configuration on the chain.
//
// Example:
//
//	text, warnings, err := folio.FromHTML("book.html").Text()
func FromHTML(filename string) *Analyzer {
	return &Analyzer{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := folio.Must(folio.FromHTML("book.html").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	doc := folio.MustResult(folio.FromHTML("book.html").Document())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
