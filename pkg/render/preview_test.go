package render

import (
	"image/color"
	"testing"

	"github.com/punchcraft/refill"
)

func TestPreviewBack(t *testing.T) {
	plans := testPlans(t, 1, refill.A5)

	img := PreviewBack(plans[0], 150)
	b := img.Bounds()
	if b.Dx() != 874 || b.Dy() != 1240 {
		t.Fatalf("unexpected canvas size: %vx%v", b.Dx(), b.Dy())
	}

	// marks must leave visible ink on the white canvas
	inked := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if c.Y < 128 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Errorf("outline preview is blank")
	}
}

func TestPreviewFront(t *testing.T) {
	plans := testPlans(t, 1, refill.A4)

	img := PreviewFront(plans[0], 72)
	b := img.Bounds()
	// A4 at 72 dpi
	if b.Dx() != 595 || b.Dy() != 842 {
		t.Fatalf("unexpected canvas size: %vx%v", b.Dx(), b.Dy())
	}
}
