// Package pdfrender turns a layout instruction stream into PDF bytes using
// gofpdf. It is the only package that knows about the PDF backend; layout
// decisions all happen upstream.
package pdfrender

import (
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"github.com/suriya388/backoffice-api/pkg/assets"
	"github.com/suriya388/backoffice-api/pkg/layout"
)

const fontFamily = "sarabun"

// Renderer draws layout documents with the fonts and logo from an asset
// store. When the Thai font files are absent it falls back to the built-in
// Helvetica faces rather than failing the request.
type Renderer struct {
	store *assets.Store
}

func New(store *assets.Store) *Renderer {
	return &Renderer{store: store}
}

// Render writes the document as a single-page PDF to w.
func (r *Renderer) Render(doc *layout.Document, w io.Writer) error {
	pdf, family := r.newPDF(doc)
	if pdf.Err() {
		// A corrupt font file surfaces here; retry on core fonts.
		log.Printf("pdfrender: embedded font rejected, falling back to core fonts: %v", pdf.Error())
		pdf, family = r.corePDF(doc)
	}

	r.draw(pdf, family, doc)
	return pdf.Output(w)
}

func (r *Renderer) newPDF(doc *layout.Document) (*gofpdf.Fpdf, string) {
	if !r.store.HasFonts() {
		return r.corePDF(doc)
	}
	pdf := newCanvas(doc)
	pdf.AddUTF8Font(fontFamily, "", r.store.FontRegular())
	pdf.AddUTF8Font(fontFamily, "B", r.store.FontBold())
	return pdf, fontFamily
}

func (r *Renderer) corePDF(doc *layout.Document) (*gofpdf.Fpdf, string) {
	return newCanvas(doc), "Helvetica"
}

func newCanvas(doc *layout.Document) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: doc.Page.W, Ht: doc.Page.H},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

func (r *Renderer) draw(pdf *gofpdf.Fpdf, family string, doc *layout.Document) {
	for _, in := range doc.Instructions {
		switch in.Op {
		case layout.OpText:
			r.drawText(pdf, family, in)
		case layout.OpImage:
			r.drawImage(pdf, in)
		case layout.OpRule:
			pdf.Line(in.X, in.Y, in.X+in.Length, in.Y)
		}
	}
}

func (r *Renderer) drawText(pdf *gofpdf.Fpdf, family string, in layout.Instruction) {
	style := ""
	if in.Style == layout.Bold {
		style = "B"
	}
	pdf.SetFont(family, style, in.Size)

	if in.Width > 0 {
		align := "L"
		switch in.Align {
		case layout.AlignCenter:
			align = "C"
		case layout.AlignRight:
			align = "R"
		}
		pdf.SetXY(in.X, in.Y)
		pdf.CellFormat(in.Width, in.Size+4, in.Text, "", 0, align, false, 0, "")
		return
	}
	// Text positions at the baseline; offset by the font size so Y means the
	// top of the line, matching the layout cursor.
	pdf.Text(in.X, in.Y+in.Size, in.Text)
}

func (r *Renderer) drawImage(pdf *gofpdf.Fpdf, in layout.Instruction) {
	if in.Asset != layout.LogoAsset {
		return
	}
	path := r.store.Logo()
	if path == "" {
		return
	}
	pdf.ImageOptions(path, in.X, in.Y, in.W, in.H, false,
		gofpdf.ImageOptions{ReadDpi: true}, 0, "")
}
