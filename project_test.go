package refill

import (
	"testing"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject("a5-20")
	if err != nil {
		t.Fatal(err)
	}
	if p.SheetSize() != A5 {
		t.Errorf("sheet size must default to the native size, got %v", p.SheetSize())
	}

	_, err = NewProject("no-such-standard")
	if !IsUnknownStandard(err) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProjectAddPageAlternatesSides(t *testing.T) {
	p, err := NewProject("a5-20")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		_, err = p.AddPage(ImageSource, a5Raster())
		if err != nil {
			t.Fatal(err)
		}
	}

	expected := []PageSide{SideLeft, SideRight, SideLeft, SideRight}
	for i, page := range p.Pages() {
		if page.Side != expected[i] {
			t.Errorf("page %v: side %v, want %v", i, page.Side, expected[i])
		}
	}
}

func TestProjectSideEdits(t *testing.T) {
	p, err := NewProject("a5-20")
	if err != nil {
		t.Fatal(err)
	}
	page, err := p.AddPage(ImageSource, a5Raster())
	if err != nil {
		t.Fatal(err)
	}

	err = p.SetSide(page.ID(), SideRight)
	if err != nil {
		t.Fatal(err)
	}
	if page.Side != SideRight {
		t.Errorf("side not updated")
	}

	err = p.ToggleSide(page.ID())
	if err != nil {
		t.Fatal(err)
	}
	if page.Side != SideLeft {
		t.Errorf("side not toggled")
	}

	if p.SetSide("missing", SideLeft) == nil {
		t.Errorf("missing error for unknown page id")
	}
}

func TestProjectSetPosition(t *testing.T) {
	p, err := NewProject("a5-20")
	if err != nil {
		t.Fatal(err)
	}
	page, err := p.AddPage(ImageSource, a5Raster())
	if err != nil {
		t.Fatal(err)
	}

	err = p.SetPosition(page.ID(), Position{XOffsetMm: -2, YOffsetMm: 4, Scale: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if page.Position.XOffsetMm != -2 || page.Position.Scale != 0.5 {
		t.Errorf("position not updated: %v", page.Position)
	}

	err = p.SetPosition(page.ID(), Position{Scale: 0})
	if err == nil {
		t.Errorf("missing error for zero scale")
	}
	if page.Position.Scale != 0.5 {
		t.Errorf("rejected edit must not change the page")
	}
}

func TestProjectRemoveAndClear(t *testing.T) {
	p, err := NewProject("a5-20")
	if err != nil {
		t.Fatal(err)
	}

	var ids []string
	for i := 0; i < 3; i++ {
		page, err := p.AddPage(ImageSource, a5Raster())
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, page.ID())
	}

	if !p.RemovePage(ids[1]) {
		t.Fatal("page not removed")
	}
	pages := p.Pages()
	if len(pages) != 2 {
		t.Fatalf("unexpected page count: %v", len(pages))
	}
	if pages[0].ID() != ids[0] || pages[1].ID() != ids[2] {
		t.Errorf("page order not preserved")
	}
	if p.RemovePage(ids[1]) {
		t.Errorf("removing twice must fail")
	}

	p.Clear()
	if len(p.Pages()) != 0 {
		t.Errorf("pages left after clear")
	}
}

func TestProjectPlan(t *testing.T) {
	p, err := NewProject("a5-20")
	if err != nil {
		t.Fatal(err)
	}
	p.SetSheetSize(A4)
	p.SetPadding(true)

	for i := 0; i < 3; i++ {
		_, err = p.AddPage(ImageSource, a5Raster())
		if err != nil {
			t.Fatal(err)
		}
	}

	plans, err := p.Plan()
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 2 {
		t.Fatalf("unexpected number of sheets: %v", len(plans))
	}
	if plans[0].Mode != PackTwoUp {
		t.Errorf("unexpected mode: %v", plans[0].Mode)
	}

	// planning is idempotent
	again, err := p.Plan()
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(plans) {
		t.Errorf("repeated planning differs")
	}
}

func TestProjectSetStandard(t *testing.T) {
	p, err := NewProject("a5-20")
	if err != nil {
		t.Fatal(err)
	}

	err = p.SetStandard("iso838")
	if err != nil {
		t.Fatal(err)
	}
	if p.Standard() != "iso838" {
		t.Errorf("standard not updated: %v", p.Standard())
	}

	if p.SetStandard("bogus") == nil {
		t.Errorf("missing error for unknown standard")
	}
	if p.Standard() != "iso838" {
		t.Errorf("failed update must not change the standard")
	}
}
