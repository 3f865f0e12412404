// Package render serializes sheet plans into printable artifacts.
package render

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/punchcraft/refill"
	"github.com/punchcraft/refill/internal/logging"
)

// WritePDF serializes the given sheet plans into a PDF document.
//
// Every sheet plan yields two consecutive pages: the content side, then
// the outline side. The duplex print pipeline puts each pair on the two
// faces of one physical sheet.
//
// Plans carry millimeters with a top-left origin; the conversion to the
// document's point units is owned by this package.
func WritePDF(plans []refill.SheetPlan, w io.Writer) error {
	if len(plans) == 0 {
		return refill.NewValidationError("nothing to render")
	}

	logging.Debug("render PDF with %v sheets", len(plans))
	pdf := setupPDF(plans[0].Size)

	for i, plan := range plans {
		err := contentSide(pdf, plan)
		if err != nil {
			return refill.Wrap(err, "sheet %v content side", i+1)
		}
		outlineSide(pdf, plan)
	}

	return pdf.Output(w)
}

func setupPDF(size refill.Size) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: toPt(size.Width), Ht: toPt(size.Height)},
	})

	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer("refill", true)

	return pdf
}

// toPt converts millimeters to points.
func toPt(mm float64) float64 {
	return mm / 25.4 * 72
}

func addPage(pdf *gofpdf.Fpdf, size refill.Size) {
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: toPt(size.Width), Ht: toPt(size.Height)})
}

func contentSide(pdf *gofpdf.Fpdf, plan refill.SheetPlan) error {
	addPage(pdf, plan.Size)

	for _, pl := range plan.Content {
		var err error
		switch r := pl.Page.Raster.(type) {
		case refill.ImageRaster:
			err = placeImage(pdf, pl, r)
		case refill.DocumentRaster:
			err = placeDocumentPage(pdf, pl, r)
		default:
			err = refill.NewValidationError("page %v has no renderable raster", pl.Page.ID())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func placeImage(pdf *gofpdf.Fpdf, pl refill.Placement, r refill.ImageRaster) error {
	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	var buf bytes.Buffer
	err := png.Encode(&buf, r.Image())
	if err != nil {
		return err
	}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, toPt(pl.X), toPt(pl.Y), toPt(pl.Width), toPt(pl.Height), flow, opts, link, linkStr)

	return pdf.Error()
}

func placeDocumentPage(pdf *gofpdf.Fpdf, pl refill.Placement, r refill.DocumentRaster) error {
	rs, err := r.Document()
	if err != nil {
		return err
	}

	im := gofpdi.NewImporter()
	var tpl int
	err = dontPanic(func() {
		tpl = im.ImportPageFromStream(pdf, &rs, r.PageNumber(), "/MediaBox")
	})
	if err != nil {
		return err
	}
	im.UseImportedTemplate(pdf, tpl, toPt(pl.X), toPt(pl.Y), toPt(pl.Width), toPt(pl.Height))

	return pdf.Error()
}

// outlineSide draws the back-side marks: 1 pt black strokes,
// the fixed default for trim lines, holes and crop marks.
func outlineSide(pdf *gofpdf.Fpdf, plan refill.SheetPlan) {
	addPage(pdf, plan.Size)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)

	for _, m := range plan.Outline {
		switch m := m.(type) {
		case refill.RectMark:
			pdf.Rect(toPt(m.X), toPt(m.Y), toPt(m.Width), toPt(m.Height), "D")
		case refill.CircleMark:
			pdf.Circle(toPt(m.X), toPt(m.Y), toPt(m.Radius), "D")
		case refill.LineMark:
			pdf.Line(toPt(m.X1), toPt(m.Y1), toPt(m.X2), toPt(m.Y2))
		}
	}
}

// dontPanic executes the given function in a separate goroutine.
// If that panics, this will recover and return the panic as an error.
// The gofpdi importer panics on malformed PDF input.
func dontPanic(f func()) error {
	rv := make(chan error, 1)

	go func() {
		defer func() {
			x := recover()
			if x != nil {
				logging.Warning("panic occurred (recovered): %v", x)
				rv <- fmt.Errorf("recovered from: %v", x)
				return
			}
			rv <- nil
		}()

		f()
	}()

	return <-rv
}
