package refill

import (
	"github.com/punchcraft/refill/internal/logging"
)

// Size is a paper size in millimeters.
type Size struct {
	Width  float64
	Height float64
}

// The two supported sheet sizes.
var (
	A4 = Size{Width: 210, Height: 297}
	A5 = Size{Width: 148, Height: 210}
)

// SizeByName resolves a paper size from its common name ("a4" or "a5").
func SizeByName(name string) (Size, error) {
	switch name {
	case "a4", "A4":
		return A4, nil
	case "a5", "A5":
		return A5, nil
	}
	return Size{}, NewValidationError("unsupported sheet size %q", name)
}

// PageSide tells which physical edge the punch holes sit on for a page
// in the bound document.
// A left page has its holes on the right edge and vice versa.
type PageSide int

const (
	SideLeft PageSide = iota
	SideRight
)

// Opposite returns the other side.
func (s PageSide) Opposite() PageSide {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s PageSide) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "UNKNOWN"
	}
}

// SideByName resolves a page side from its name ("left" or "right").
func SideByName(name string) (PageSide, error) {
	switch name {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}
	return SideLeft, NewValidationError("invalid page side %q", name)
}

// ContentArea is the rectangle within a sheet where content may be placed
// without colliding with the hole margin. All values in millimeters,
// offsets relative to the top-left corner of the sheet.
//
// A ContentArea is derived on demand and never cached across layout
// passes, any input change invalidates it.
type ContentArea struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	// Approximate is set when the target/native size combination is not
	// modeled and the offsets are a best-effort guess.
	Approximate bool
}

// ResolveContentArea computes the content area for one native-size sheet
// of the given standard on the given target stock.
//
// Three cases, evaluated in order:
// target equals the native size (full sheet), target strictly larger
// (native sheet centered on the stock), and a fallback for any other
// combination. The fallback is flagged Approximate and logged,
// its offset math is not physically exact.
//
// Returns a DegenerateArea error if the resolved width or height is not
// positive; such a configuration cannot be printed and must not be
// silently clamped.
func ResolveContentArea(std BinderStandard, target Size, side PageSide, padding bool) (ContentArea, error) {
	margin := std.HoleMargin(padding)
	native := std.NativeSize

	a := ContentArea{
		Width:  native.Width - margin,
		Height: native.Height,
	}

	switch {
	case target == native:
		// Holes on the right edge for a left page: content stays at 0.
		// Holes on the left edge for a right page: content moves right.
		if side == SideRight {
			a.OffsetX = margin
		}
	case target.Width > native.Width && target.Height > native.Height:
		a.OffsetX = (target.Width - native.Width) / 2
		a.OffsetY = (target.Height - native.Height) / 2
		if side == SideRight {
			a.OffsetX += margin
		}
	default:
		logging.Warning("unsupported size combination: %vx%v on %vx%v, offsets are approximate",
			native.Width, native.Height, target.Width, target.Height)
		if side == SideRight {
			a.OffsetX = margin
		}
		a.Approximate = true
	}

	if a.Width <= 0 || a.Height <= 0 {
		return ContentArea{}, NewDegenerateArea("%vx%v mm for standard %q", a.Width, a.Height, std.ID)
	}

	return a, nil
}
