package content

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/punchcraft/refill"
	"github.com/punchcraft/refill/internal/logging"
)

// ReadPDF ingests a PDF document and yields one raster per page.
//
// The pages are not rasterized here: each raster carries the document
// bytes and its page number, and reports pixel dimensions derived from
// the page's media box at the fixed content density.
func ReadPDF(path string) ([]refill.Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rs := bytes.NewReader(data)
	count, err := api.PageCount(rs, nil)
	if err != nil {
		return nil, refill.Wrap(err, "read PDF page count")
	}
	if count < 1 {
		return nil, refill.NewValidationError("PDF has no pages")
	}

	if _, err = rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	dims, err := api.PageDims(rs, nil)
	if err != nil {
		return nil, refill.Wrap(err, "read PDF page dimensions")
	}
	if len(dims) < count {
		return nil, refill.NewValidationError("PDF reports %v pages but %v dimensions", count, len(dims))
	}

	logging.Debug("ingest PDF with %v pages", count)

	rasters := make([]refill.Raster, count)
	for i := 0; i < count; i++ {
		p := &pdfPage{
			data: data,
			page: i + 1,
			wPx:  pointsToPx(dims[i].Width),
			hPx:  pointsToPx(dims[i].Height),
		}
		if p.wPx <= 0 || p.hPx <= 0 {
			return nil, refill.NewInvalidContentDimensions("PDF page %v: %vx%v px", p.page, p.wPx, p.hPx)
		}
		rasters[i] = p
	}
	return rasters, nil
}

// pointsToPx converts a PDF dimension in points to pixels at the fixed
// content density.
func pointsToPx(pt float64) int {
	return int(math.Round(pt / 72 * refill.ContentDPI))
}

// pdfPage is one page of an ingested PDF, addressable on its own.
type pdfPage struct {
	data []byte
	page int
	wPx  int
	hPx  int
}

func (p *pdfPage) PixelWidth() int {
	return p.wPx
}

func (p *pdfPage) PixelHeight() int {
	return p.hPx
}

func (p *pdfPage) PageNumber() int {
	return p.page
}

func (p *pdfPage) Document() (io.ReadSeeker, error) {
	return bytes.NewReader(p.data), nil
}
