// Package content ingests user files and turns them into content pages.
//
// Images are decoded in memory; PDF documents contribute one unit per
// page, with the page geometry read from the document and the actual
// placement left to the rendering backend.
package content

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/punchcraft/refill"
	"github.com/punchcraft/refill/internal/logging"
)

// Unit is one ingested logical unit of content.
// An image file yields one unit, a PDF one unit per page.
type Unit struct {
	Kind   refill.SourceKind
	Raster refill.Raster
}

// ReadFile ingests one file, dispatching on the file extension.
// Anything that is not a PDF is treated as an image.
func ReadFile(path string) ([]Unit, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		rasters, err := ReadPDF(path)
		if err != nil {
			return nil, refill.Wrap(err, "read %q", path)
		}
		units := make([]Unit, len(rasters))
		for i, r := range rasters {
			units[i] = Unit{Kind: refill.DocumentPageSource, Raster: r}
		}
		return units, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := ReadImage(f)
	if err != nil {
		return nil, refill.Wrap(err, "read %q", path)
	}
	return []Unit{{Kind: refill.ImageSource, Raster: r}}, nil
}

// ReadImage decodes a raster image.
// PNG, JPEG and GIF are supported through the stdlib,
// TIFF, BMP and WebP through golang.org/x/image.
func ReadImage(r io.Reader) (refill.Raster, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, refill.Wrap(err, "decode image")
	}

	ras := &imageRaster{img: img}
	if ras.PixelWidth() <= 0 || ras.PixelHeight() <= 0 {
		return nil, refill.NewInvalidContentDimensions("%vx%v px", ras.PixelWidth(), ras.PixelHeight())
	}
	logging.Debug("decoded %v image, %vx%v px", format, ras.PixelWidth(), ras.PixelHeight())

	return ras, nil
}

type imageRaster struct {
	img image.Image
}

func (r *imageRaster) PixelWidth() int {
	return r.img.Bounds().Dx()
}

func (r *imageRaster) PixelHeight() int {
	return r.img.Bounds().Dy()
}

func (r *imageRaster) Image() image.Image {
	return r.img
}
