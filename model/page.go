package model

// Page is one horizontally paginated slice of the document: a zero-based
// index and the lines that fall on it, in reading order. A page with no
// lines is still a valid page (an all-image page, for example) and still
// counts toward page navigation.
type Page struct {
	Index int
	Lines []Line
}

// NewPage creates an empty page with the given index.
func NewPage(index int) *Page {
	return &Page{
		Index: index,
		Lines: make([]Line, 0),
	}
}

// AddLine appends a line to the page, preserving line order.
func (p *Page) AddLine(line Line) {
	p.Lines = append(p.Lines, line)
}

// LineCount returns the number of lines on the page.
func (p *Page) LineCount() int {
	return len(p.Lines)
}

// IsEmpty returns true if the page holds no lines.
func (p *Page) IsEmpty() bool {
	return len(p.Lines) == 0
}

// Text returns the page's line texts joined with newlines.
func (p *Page) Text() string {
	var text string
	for i, line := range p.Lines {
		if i > 0 {
			text += "\n"
		}
		text += line.Text
	}
	return text
}
