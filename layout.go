package refill

import (
	"github.com/punchcraft/refill/internal/logging"
)

// PackMode tells how logical pages are packed onto physical sheets.
type PackMode int

const (
	// PackSingle places one logical page per sheet.
	PackSingle PackMode = iota
	// PackTwoUp stacks two native-size pages on one larger sheet.
	PackTwoUp
)

func (m PackMode) String() string {
	switch m {
	case PackSingle:
		return "single"
	case PackTwoUp:
		return "2-up"
	default:
		return "UNKNOWN"
	}
}

// Placement positions one content page on the front of a sheet.
// Coordinates are millimeters from the sheet's top-left corner.
type Placement struct {
	Page   *ContentPage
	X      float64
	Y      float64
	Width  float64
	Height float64
	// Area is the content area the page was placed in,
	// including any 2-up sub-area offset.
	Area ContentArea
}

// SheetPlan describes one physical sheet: the image placements for the
// front (content side) and the marks for the back (outline side).
// The rendering backend emits them as two consecutive logical pages so
// the duplex print pipeline can put them on the two sides of one sheet.
type SheetPlan struct {
	Size    Size
	Mode    PackMode
	Content []Placement
	Outline []Mark
}

// PackModeFor decides the packing mode: 2-up applies only when the
// target sheet is strictly larger than the standard's native size and
// there are at least two pages.
func PackModeFor(std BinderStandard, target Size, pageCount int) PackMode {
	native := std.NativeSize
	if target != native && target.Width > native.Width && target.Height > native.Height && pageCount >= 2 {
		return PackTwoUp
	}
	return PackSingle
}

// Plan assigns every content page to a sheet and computes the draw
// geometry for both sides of each sheet.
//
// Plan is a pure function of its inputs and safe to call repeatedly,
// e.g. on every settings change. Page order is preserved; in 2-up mode
// consecutive pages are paired top/bottom.
func Plan(pages []*ContentPage, std BinderStandard, target Size, padding bool) ([]SheetPlan, error) {
	for _, p := range pages {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	mode := PackModeFor(std, target, len(pages))
	logging.Debug("plan %v pages on %vx%v mm (%v, %v)",
		len(pages), target.Width, target.Height, std.ID, mode)

	if mode == PackTwoUp {
		return planTwoUp(pages, std, target, padding)
	}
	return planSingle(pages, std, target, padding)
}

// planSingle emits one sheet per page. The trim outline sits where the
// native sheet sits on the stock: the full sheet if sizes match,
// centered if the stock is larger.
func planSingle(pages []*ContentPage, std BinderStandard, target Size, padding bool) ([]SheetPlan, error) {
	plans := make([]SheetPlan, 0, len(pages))
	for _, page := range pages {
		area, err := ResolveContentArea(std, target, page.Side, padding)
		if err != nil {
			return nil, err
		}

		pl, err := place(page, area)
		if err != nil {
			return nil, err
		}

		plans = append(plans, SheetPlan{
			Size:    target,
			Mode:    PackSingle,
			Content: []Placement{pl},
			Outline: OutlineMarks(trimRect(std, target), std, page.Side),
		})
	}
	return plans, nil
}

// planTwoUp consumes pages two at a time: the first of each pair goes to
// the top sub-area, the second to the bottom. Each sub-area reuses the
// native-size content area math, offset to its half of the sheet.
//
// The back side mirrors the sub-areas horizontally; vertical positions
// are preserved because duplex flipping happens along the long edge.
func planTwoUp(pages []*ContentPage, std BinderStandard, target Size, padding bool) ([]SheetPlan, error) {
	native := std.NativeSize
	half := target.Height / 2
	mirrorX := target.Width - native.Width

	plans := make([]SheetPlan, 0, (len(pages)+1)/2)
	for i := 0; i < len(pages); i += 2 {
		plan := SheetPlan{Size: target, Mode: PackTwoUp}

		slot := pages[i : i+1]
		if i+1 < len(pages) {
			slot = pages[i : i+2]
		}
		for j, page := range slot {
			yOff := 0.0
			if j == 1 {
				yOff = half
			}

			area, err := ResolveContentArea(std, native, page.Side, padding)
			if err != nil {
				return nil, err
			}
			area.OffsetY += yOff

			pl, err := place(page, area)
			if err != nil {
				return nil, err
			}
			plan.Content = append(plan.Content, pl)

			trim := Rect{X: mirrorX, Y: yOff, Width: native.Width, Height: native.Height}
			plan.Outline = append(plan.Outline, OutlineMarks(trim, std, page.Side)...)
		}

		plans = append(plans, plan)
	}
	return plans, nil
}

// place positions a page's content within its area, applying the page's
// own offset and scale. Offsets may move content outside the area.
func place(page *ContentPage, area ContentArea) (Placement, error) {
	w, h, err := page.SizeMm()
	if err != nil {
		return Placement{}, err
	}
	return Placement{
		Page:   page,
		X:      area.OffsetX + page.Position.XOffsetMm,
		Y:      area.OffsetY + page.Position.YOffsetMm,
		Width:  w,
		Height: h,
		Area:   area,
	}, nil
}

// trimRect is the cut line of the native sheet on the target stock.
func trimRect(std BinderStandard, target Size) Rect {
	native := std.NativeSize
	if target.Width > native.Width && target.Height > native.Height {
		return Rect{
			X:      (target.Width - native.Width) / 2,
			Y:      (target.Height - native.Height) / 2,
			Width:  native.Width,
			Height: native.Height,
		}
	}
	return Rect{Width: native.Width, Height: native.Height}
}
