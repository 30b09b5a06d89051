// Package htmldoc materializes HTML text content as positioned fragments.
//
// The Reader parses a document with golang.org/x/net/html, walks the body's
// text nodes in document order (depth-first, source order), splits them into
// whitespace-delimited words, and flows the words into a horizontally
// paginated layout. The result is an ordered fragment list with measured
// rectangles, making the Reader a ready-made fragment source and geometry
// provider for line and page reconstruction.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/folio/measure"
	"github.com/tsawler/folio/model"
)

// Reader provides positioned fragments for an HTML document.
type Reader struct {
	doc      *html.Node
	title    string
	metadata map[string]string
	opts     Options

	words []word

	laidOut    bool
	fragments  []model.Fragment
	totalWidth float64
}

// Open opens an HTML file with default options.
func Open(filename string) (*Reader, error) {
	return OpenWithOptions(filename, DefaultOptions())
}

// OpenWithOptions opens an HTML file with custom layout options.
func OpenWithOptions(filename string, opts Options) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReaderWithOptions(f, opts)
}

// OpenReader parses HTML from an io.Reader with default options.
func OpenReader(r io.Reader) (*Reader, error) {
	return OpenReaderWithOptions(r, DefaultOptions())
}

// OpenReaderWithOptions parses HTML from an io.Reader with custom options.
func OpenReaderWithOptions(r io.Reader, opts Options) (*Reader, error) {
	if opts.PageWidth <= 0 {
		return nil, fmt.Errorf("page width must be positive, got %g", opts.PageWidth)
	}
	if opts.PageHeight <= 0 {
		return nil, fmt.Errorf("page height must be positive, got %g", opts.PageHeight)
	}
	if opts.Margin < 0 || 2*opts.Margin >= opts.PageWidth || 2*opts.Margin >= opts.PageHeight {
		return nil, fmt.Errorf("margin %g leaves no content area on a %gx%g page",
			opts.Margin, opts.PageWidth, opts.PageHeight)
	}
	if opts.Measurer == nil {
		opts.Measurer = measure.NewRuneMeasurer()
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:      doc,
		metadata: make(map[string]string),
		opts:     opts,
	}

	reader.extractHead(doc)
	reader.extractWords(doc)

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the document title, if any.
func (r *Reader) Title() string {
	return r.title
}

// Metadata returns the document's meta tags as name/content pairs.
func (r *Reader) Metadata() map[string]string {
	return r.metadata
}

// Fragments returns the ordered fragment list in document traversal order,
// laying the words out on first call. The returned slice is shared with the
// Reader; callers must not mutate it.
func (r *Reader) Fragments() ([]model.Fragment, error) {
	r.layOut()
	return r.fragments, nil
}

// PageWidth returns the configured page width.
func (r *Reader) PageWidth() float64 {
	return r.opts.PageWidth
}

// PageOffsetX returns the horizontal scroll offset. The Reader lays pages
// out from offset zero.
func (r *Reader) PageOffsetX() float64 {
	return 0
}

// TotalWidth returns the total scrollable extent of the laid-out document.
// A document with no words still occupies one blank page.
func (r *Reader) TotalWidth() float64 {
	r.layOut()
	return r.totalWidth
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.title = strings.TrimSpace(getTextContent(c))
			case "meta":
				name, content := "", ""
				for _, attr := range c.Attr {
					switch attr.Key {
					case "name", "property":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name != "" && content != "" {
					r.metadata[name] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// extractWords collects the body's words in document order.
func (r *Reader) extractWords(n *html.Node) {
	body := findElement(n, "body")
	if body == nil {
		// No body tag, extract from the root
		body = n
	}

	st := &walkState{scale: 1.0, breakNext: true}
	r.collectWords(body, st)
}

// walkState tracks the traversal state while collecting words.
type walkState struct {
	scale     float64
	breakNext bool // next word opens a new block
}

// collectWords walks DOM nodes depth-first in source order. Text nodes are
// split into whitespace-delimited words; whitespace-only runs produce no
// words at all, so degenerate zero-width fragments are filtered at the
// source.
func (r *Reader) collectWords(n *html.Node, st *walkState) {
	switch n.Type {
	case html.TextNode:
		for _, txt := range strings.Fields(n.Data) {
			r.words = append(r.words, word{
				text:     txt,
				scale:    st.scale,
				newBlock: st.breakNext,
			})
			st.breakNext = false
		}
		return

	case html.ElementNode:
		if skippedElements[n.Data] {
			return
		}

		prevScale := st.scale
		if s, ok := headingScales[n.Data]; ok {
			st.scale = s
		}
		if blockElements[n.Data] {
			st.breakNext = true
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			r.collectWords(c, st)
		}

		st.scale = prevScale
		if blockElements[n.Data] {
			st.breakNext = true
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectWords(c, st)
	}
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// getTextContent returns the concatenated text of a node's subtree.
func getTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(getTextContent(c))
	}
	return sb.String()
}
