// Package layout maps a voucher onto a fixed-size printable canvas as an
// ordered stream of draw instructions. The stream is backend-agnostic: the
// PDF renderer consumes it to produce bytes, and tests assert on instruction
// content and position without rendering anything.
package layout

// Op is the instruction variant tag.
type Op int

const (
	OpText Op = iota
	OpImage
	OpRule
)

// Align is the horizontal alignment of a text instruction inside its width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Style is the font weight of a text instruction.
type Style int

const (
	Regular Style = iota
	Bold
)

// Instruction is one draw command. Stream order is paint order: later
// instructions overlap earlier ones.
type Instruction struct {
	Op Op

	// OpText
	Text  string
	Style Style
	Size  float64
	Align Align
	Width float64 // alignment box width; 0 means natural width at X

	X float64
	Y float64

	// OpImage
	Asset string
	W     float64
	H     float64

	// OpRule
	Length float64
}

// Size is a page size in points.
type Size struct {
	W float64
	H float64
}

// Document is a completed instruction stream for one page.
type Document struct {
	Page         Size
	Margin       float64
	Instructions []Instruction
}
