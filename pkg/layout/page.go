package layout

// Page accumulates draw instructions against one canvas. Flowing calls
// (Text, TextCentered, MoveDown) advance a cursor down the page the way a
// page-description document does; absolute calls (TextAt, Image, Rule) place
// content at fixed coordinates but still pull the cursor below what they drew,
// so flowed content never lands on top of a header block.
type Page struct {
	doc   Document
	x     float64
	y     float64
	style Style
	size  float64
}

// NewPage creates a page of the given size with the cursor at the top margin.
func NewPage(page Size, margin float64) *Page {
	return &Page{
		doc:   Document{Page: page, Margin: margin},
		x:     margin,
		y:     margin,
		style: Regular,
		size:  13,
	}
}

// SetFont sets the style and size used by subsequent text calls.
func (p *Page) SetFont(style Style, size float64) *Page {
	p.style = style
	p.size = size
	return p
}

func (p *Page) lineHeight() float64 {
	return p.size + 4
}

// Text writes a line at the left margin and advances the cursor.
func (p *Page) Text(s string) *Page {
	return p.TextAt(s, p.doc.Margin, p.y)
}

// TextAt writes a line at an absolute position. The cursor is moved below it.
func (p *Page) TextAt(s string, x, y float64) *Page {
	p.doc.Instructions = append(p.doc.Instructions, Instruction{
		Op:    OpText,
		Text:  s,
		Style: p.style,
		Size:  p.size,
		Align: AlignLeft,
		X:     x,
		Y:     y,
	})
	if next := y + p.lineHeight(); next > p.y {
		p.y = next
	}
	return p
}

// TextCentered writes a line centered across the full page width and advances
// the cursor.
func (p *Page) TextCentered(s string) *Page {
	p.doc.Instructions = append(p.doc.Instructions, Instruction{
		Op:    OpText,
		Text:  s,
		Style: p.style,
		Size:  p.size,
		Align: AlignCenter,
		X:     0,
		Y:     p.y,
		Width: p.doc.Page.W,
	})
	p.y += p.lineHeight()
	return p
}

// TextRight writes a line right-aligned inside the margins and advances the
// cursor.
func (p *Page) TextRight(s string) *Page {
	p.doc.Instructions = append(p.doc.Instructions, Instruction{
		Op:    OpText,
		Text:  s,
		Style: p.style,
		Size:  p.size,
		Align: AlignRight,
		X:     p.doc.Margin,
		Y:     p.y,
		Width: p.doc.Page.W - 2*p.doc.Margin,
	})
	p.y += p.lineHeight()
	return p
}

// Image places an asset inside a bounding box. Missing assets are the
// renderer's concern; the instruction is emitted regardless.
func (p *Page) Image(asset string, x, y, w, h float64) *Page {
	p.doc.Instructions = append(p.doc.Instructions, Instruction{
		Op:    OpImage,
		Asset: asset,
		X:     x,
		Y:     y,
		W:     w,
		H:     h,
	})
	return p
}

// Rule draws a horizontal line of the given length.
func (p *Page) Rule(x, y, length float64) *Page {
	p.doc.Instructions = append(p.doc.Instructions, Instruction{
		Op:     OpRule,
		X:      x,
		Y:      y,
		Length: length,
	})
	return p
}

// MoveDown advances the cursor by n lines at the current font size.
func (p *Page) MoveDown(n float64) *Page {
	p.y += n * p.lineHeight()
	return p
}

// Y returns the current cursor position.
func (p *Page) Y() float64 {
	return p.y
}

// SetY moves the cursor to an absolute vertical position.
func (p *Page) SetY(y float64) *Page {
	p.y = y
	return p
}

// Document returns the accumulated instruction stream.
func (p *Page) Document() *Document {
	return &p.doc
}
