package refill

import (
	"github.com/punchcraft/refill/internal/logging"
)

// Project collects the content pages and the layout settings for one
// print job. It is the mutable surface of this package; the geometry
// itself is computed by pure functions.
//
// A Project is not safe for concurrent use and is not persisted.
type Project struct {
	standardID string
	sheet      Size
	padding    bool
	pages      []*ContentPage
}

// NewProject creates an empty project for the given binder standard,
// targeting the standard's native sheet size.
// Fails with an UnknownStandard error for ids outside the catalog.
func NewProject(standardID string) (*Project, error) {
	std, err := Lookup(standardID)
	if err != nil {
		return nil, err
	}
	return &Project{
		standardID: std.ID,
		sheet:      std.NativeSize,
	}, nil
}

// Standard is the catalog id of the selected binder standard.
func (p *Project) Standard() string {
	return p.standardID
}

// SetStandard selects a different binder standard.
func (p *Project) SetStandard(id string) error {
	std, err := Lookup(id)
	if err != nil {
		return err
	}
	p.standardID = std.ID
	return nil
}

// SheetSize is the target sheet size for printing.
func (p *Project) SheetSize() Size {
	return p.sheet
}

// SetSheetSize selects the target sheet size for printing.
func (p *Project) SetSheetSize(s Size) {
	p.sheet = s
}

// Padding tells if the extra 5 mm buffer between content and hole
// margin is enabled.
func (p *Project) Padding() bool {
	return p.padding
}

// SetPadding enables or disables the extra buffer.
func (p *Project) SetPadding(enabled bool) {
	p.padding = enabled
}

// AddPage creates a content page for the given raster and appends it.
// The page side defaults to alternating left/right by position
// (first page left); use SetSide to override.
func (p *Project) AddPage(kind SourceKind, r Raster) (*ContentPage, error) {
	side := SideLeft
	if len(p.pages)%2 == 1 {
		side = SideRight
	}
	page, err := NewContentPage(kind, r, side)
	if err != nil {
		return nil, err
	}
	p.pages = append(p.pages, page)
	logging.Debug("added %v page %v (%v)", kind, page.ID(), side)
	return page, nil
}

// Pages lists the content pages in input order.
func (p *Project) Pages() []*ContentPage {
	pages := make([]*ContentPage, len(p.pages))
	copy(pages, p.pages)
	return pages
}

// Page finds a content page by id.
func (p *Project) Page(id string) (*ContentPage, bool) {
	for _, page := range p.pages {
		if page.ID() == id {
			return page, true
		}
	}
	return nil, false
}

// SetSide assigns the page side for one page.
func (p *Project) SetSide(id string, side PageSide) error {
	page, ok := p.Page(id)
	if !ok {
		return NewValidationError("no page with id %v", id)
	}
	page.Side = side
	return nil
}

// ToggleSide flips the page side for one page.
func (p *Project) ToggleSide(id string) error {
	page, ok := p.Page(id)
	if !ok {
		return NewValidationError("no page with id %v", id)
	}
	page.Side = page.Side.Opposite()
	return nil
}

// SetPosition assigns offset and scale for one page.
// A zero or negative scale is rejected here, at the edit boundary.
func (p *Project) SetPosition(id string, pos Position) error {
	if pos.Scale <= 0 {
		return NewValidationError("scale must be positive, got %v", pos.Scale)
	}
	page, ok := p.Page(id)
	if !ok {
		return NewValidationError("no page with id %v", id)
	}
	page.Position = pos
	return nil
}

// RemovePage deletes one page, preserving the order of the rest.
// Reports whether the page existed.
func (p *Project) RemovePage(id string) bool {
	for i, page := range p.pages {
		if page.ID() == id {
			p.pages = append(p.pages[:i], p.pages[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all pages.
func (p *Project) Clear() {
	p.pages = nil
}

// Plan computes the sheet plans for the current pages and settings.
// Safe to call repeatedly; the result depends only on the current state.
func (p *Project) Plan() ([]SheetPlan, error) {
	std, err := Lookup(p.standardID)
	if err != nil {
		return nil, err
	}
	return Plan(p.pages, std, p.sheet, p.padding)
}
