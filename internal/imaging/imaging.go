package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize creates a copy of the given image, scaled to width x height
// pixels. Bilinear interpolation; content rasters are photos or scans,
// not pixel-exact masks.
func Resize(i image.Image, width, height int) image.Image {
	r := image.Rect(0, 0, width, height)
	dst := image.NewRGBA(r)
	s := draw.BiLinear
	s.Scale(dst, r, i, i.Bounds(), draw.Over, nil)
	return dst
}

// Compose draws src over dst with its top-left corner at (x, y).
func Compose(dst draw.Image, src image.Image, x, y int) {
	b := src.Bounds()
	target := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, target, src, b.Min, draw.Over)
}
