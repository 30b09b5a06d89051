package model

// Document is the final output of an analysis pass: a dense, complete
// sequence of pages. Every index from 0 to PageCount()-1 is present, even
// when its page is empty. Nothing is mutated after a page is sealed into
// the document.
type Document struct {
	Pages []*Page
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page to the document.
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns a page by index (zero-based), or nil if out of range.
func (d *Document) GetPage(index int) *Page {
	if index < 0 || index >= len(d.Pages) {
		return nil
	}
	return d.Pages[index]
}

// AllLines returns every line across all pages, in page index order.
// Concatenating them reproduces the original line-grouping order.
func (d *Document) AllLines() []Line {
	var lines []Line
	for _, page := range d.Pages {
		lines = append(lines, page.Lines...)
	}
	return lines
}

// LineCount returns the total number of lines across all pages.
func (d *Document) LineCount() int {
	count := 0
	for _, page := range d.Pages {
		count += len(page.Lines)
	}
	return count
}

// Text returns all page texts joined with blank lines. Empty pages
// contribute nothing.
func (d *Document) Text() string {
	var text string
	for _, page := range d.Pages {
		pageText := page.Text()
		if pageText == "" {
			continue
		}
		if text != "" {
			text += "\n\n"
		}
		text += pageText
	}
	return text
}
