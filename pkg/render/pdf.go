package render

import (
	"bytes"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/errors"
	"github.com/akeil/gallery/internal/imaging"
	"github.com/akeil/gallery/internal/logging"
)

const (
	margin    = 36.0
	swatchBox = 48.0
	rowHeight = 60.0
	footerY   = -28.0
)

func renderCatalog(c *Context, g *gallery.Gallery, selected *gallery.Drawing, w io.Writer) error {
	if g == nil {
		return errors.NewValidationError("cannot render nil gallery")
	}
	logging.Debug("Render catalog for gallery %q", g.Title())

	pdf := setupPDF("A4", g)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	renderHeader(pdf, g, tr)

	_, pageHeight := pdf.GetPageSize()
	bottom := pageHeight + footerY - 12

	for _, d := range g.Drawings() {
		if pdf.GetY()+rowHeight > bottom {
			pdf.AddPage()
		}
		err := renderRow(c, pdf, d, d == selected, tr)
		if err != nil {
			return err
		}
	}

	if pdf.Err() {
		return errors.Wrap(pdf.Error(), "failed to render catalog for %q", g.Title())
	}
	err := pdf.Output(w)
	if err != nil {
		return errors.NewIOError(err, "failed to write catalog for %q", g.Title())
	}
	return nil
}

func setupPDF(pageSize string, g *gallery.Gallery) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, pageSize, fontDir)

	pdf.SetMargins(margin, margin, margin) // left, top, right
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("{totalPages}")
	pdf.SetProducer("gallery", true)
	pdf.SetTitle(g.Title(), true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(footerY)
		pdf.SetX(margin)
		pdf.SetFont("helvetica", "", 8)
		pdf.SetTextColor(127, 127, 127)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v", pdf.PageNo(), tr(g.Title()))
	})

	return pdf
}

func renderHeader(pdf *gofpdf.Fpdf, g *gallery.Gallery, tr func(string) string) {
	pdf.SetFont("helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 20, tr(g.Title()))
	pdf.Ln(22)

	pdf.SetFont("helvetica", "", 9)
	pdf.SetTextColor(96, 96, 96)
	pdf.Cellf(0, 12, "%d drawings  |  canvas %d x %d px", g.Len(), g.Width(), g.Height())
	pdf.Ln(24)
}

func renderRow(c *Context, pdf *gofpdf.Fpdf, d *gallery.Drawing, selected bool, tr func(string) string) error {
	data, err := previewPNG(c, d)
	if err != nil {
		return err
	}

	name := c.PreviewName(d)
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))

	y := pdf.GetY()
	iw, ih := imaging.FitSize(d.Width(), d.Height(), int(swatchBox))
	x0 := margin + (swatchBox-float64(iw))/2
	y0 := y + (swatchBox-float64(ih))/2
	pdf.ImageOptions(name, x0, y0, float64(iw), float64(ih), false, opts, 0, "")

	textX := margin + swatchBox + 12

	style := ""
	title := d.Title()
	if selected {
		style = "B"
		title += "  (selected)"
	}
	pdf.SetXY(textX, y+8)
	pdf.SetFont("helvetica", style, 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 14, tr(title))

	pdf.SetXY(textX, y+26)
	pdf.SetFont("helvetica", "", 9)
	pdf.SetTextColor(96, 96, 96)
	pdf.Cellf(0, 12, "%d x %d px  |  %v  |  %v", d.Width(), d.Height(), d.Color().Hex(), d.Status())

	pdf.SetXY(margin, y+rowHeight)
	return nil
}
