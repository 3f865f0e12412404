package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/punchcraft/refill"
	"github.com/punchcraft/refill/internal/imaging"
	"github.com/punchcraft/refill/internal/logging"
)

// PreviewFront rasterizes the content side of a sheet plan at the given
// resolution.
//
// Image content is scaled and composed onto the canvas. Document pages
// have no rasterizer here; they show up as a gray bounding box.
func PreviewFront(plan refill.SheetPlan, dpi float64) image.Image {
	dst := canvas(plan.Size, dpi)

	for _, pl := range plan.Content {
		w := pxAt(pl.Width, dpi)
		h := pxAt(pl.Height, dpi)
		if w <= 0 || h <= 0 {
			continue
		}

		switch r := pl.Page.Raster.(type) {
		case refill.ImageRaster:
			scaled := imaging.Resize(r.Image(), w, h)
			imaging.Compose(dst, scaled, pxAt(pl.X, dpi), pxAt(pl.Y, dpi))
		default:
			logging.Info("no preview rasterizer for page %v, drawing bounding box", pl.Page.ID())
			gc := draw2dimg.NewGraphicContext(dst)
			gc.SetStrokeColor(color.RGBA{127, 127, 127, 255})
			gc.SetLineWidth(dpi / 72)
			k := dpi / 25.4
			draw2dkit.Rectangle(gc, pl.X*k, pl.Y*k, (pl.X+pl.Width)*k, (pl.Y+pl.Height)*k)
			gc.Stroke()
		}
	}

	return dst
}

// PreviewBack rasterizes the outline side of a sheet plan at the given
// resolution: trim lines, hole circles and crop marks as on paper.
func PreviewBack(plan refill.SheetPlan, dpi float64) image.Image {
	dst := canvas(plan.Size, dpi)

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetStrokeColor(color.Black)
	// 1 pt stroke, like the PDF output
	gc.SetLineWidth(dpi / 72)

	k := dpi / 25.4
	for _, m := range plan.Outline {
		switch m := m.(type) {
		case refill.RectMark:
			draw2dkit.Rectangle(gc, m.X*k, m.Y*k, (m.X+m.Width)*k, (m.Y+m.Height)*k)
		case refill.CircleMark:
			draw2dkit.Circle(gc, m.X*k, m.Y*k, m.Radius*k)
		case refill.LineMark:
			gc.MoveTo(m.X1*k, m.Y1*k)
			gc.LineTo(m.X2*k, m.Y2*k)
		}
		gc.Stroke()
	}

	return dst
}

func canvas(size refill.Size, dpi float64) *image.RGBA {
	r := image.Rect(0, 0, pxAt(size.Width, dpi), pxAt(size.Height, dpi))
	dst := image.NewRGBA(r)
	draw.Draw(dst, r, image.NewUniform(color.White), image.Point{}, draw.Src)
	return dst
}

func pxAt(mm, dpi float64) int {
	return int(math.Round(mm / 25.4 * dpi))
}
