package refill

import (
	"math"
	"testing"
)

func mustLookup(t *testing.T, id string) BinderStandard {
	t.Helper()
	b, err := Lookup(id)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestResolveNativeSize(t *testing.T) {
	b := mustLookup(t, "a5-20")

	a, err := ResolveContentArea(b, A5, SideLeft, false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a.Width-139.5) > eps {
		t.Errorf("unexpected width: %v", a.Width)
	}
	if a.Height != 210 {
		t.Errorf("unexpected height: %v", a.Height)
	}
	if a.OffsetX != 0 || a.OffsetY != 0 {
		t.Errorf("unexpected offset: %v,%v", a.OffsetX, a.OffsetY)
	}
	if a.Approximate {
		t.Errorf("native size must not be approximate")
	}

	a, err = ResolveContentArea(b, A5, SideRight, false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a.OffsetX-8.5) > eps {
		t.Errorf("unexpected right-side offset: %v", a.OffsetX)
	}
}

// Toggling the padding flag must reduce the width by exactly 5 mm.
func TestPaddingDelta(t *testing.T) {
	for _, b := range Standards() {
		plain, err := ResolveContentArea(b, b.NativeSize, SideLeft, false)
		if err != nil {
			t.Fatal(err)
		}
		padded, err := ResolveContentArea(b, b.NativeSize, SideLeft, true)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(plain.Width-padded.Width-5) > eps {
			t.Errorf("%q: padding delta %v, want 5", b.ID, plain.Width-padded.Width)
		}
	}
}

// For the native size, the left and right offsets must add up to the
// hole margin.
func TestSideFlipSum(t *testing.T) {
	for _, b := range Standards() {
		left, err := ResolveContentArea(b, b.NativeSize, SideLeft, false)
		if err != nil {
			t.Fatal(err)
		}
		right, err := ResolveContentArea(b, b.NativeSize, SideRight, false)
		if err != nil {
			t.Fatal(err)
		}
		sum := left.OffsetX + right.OffsetX
		if math.Abs(sum-b.HoleMargin(false)) > eps {
			t.Errorf("%q: offset sum %v, want %v", b.ID, sum, b.HoleMargin(false))
		}
	}
}

func TestResolveCenteredOnLarger(t *testing.T) {
	b := mustLookup(t, "a5-20")

	a, err := ResolveContentArea(b, A4, SideLeft, false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a.OffsetX-31) > eps {
		t.Errorf("unexpected x offset: %v", a.OffsetX)
	}
	if math.Abs(a.OffsetY-43.5) > eps {
		t.Errorf("unexpected y offset: %v", a.OffsetY)
	}
	if math.Abs(a.Width-139.5) > eps {
		t.Errorf("unexpected width: %v", a.Width)
	}

	a, err = ResolveContentArea(b, A4, SideRight, false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a.OffsetX-39.5) > eps {
		t.Errorf("unexpected right-side x offset: %v", a.OffsetX)
	}
}

// A target smaller than the native size falls into the approximate
// branch.
func TestResolveFallback(t *testing.T) {
	b := mustLookup(t, "iso838")

	a, err := ResolveContentArea(b, A5, SideLeft, false)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Approximate {
		t.Errorf("fallback result must be flagged approximate")
	}
	if a.OffsetX != 0 || a.OffsetY != 0 {
		t.Errorf("unexpected offset: %v,%v", a.OffsetX, a.OffsetY)
	}

	a, err = ResolveContentArea(b, A5, SideRight, false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a.OffsetX-15) > eps {
		t.Errorf("unexpected right-side offset: %v", a.OffsetX)
	}
}

func TestResolveIdempotent(t *testing.T) {
	b := mustLookup(t, "filofax")

	first, err := ResolveContentArea(b, A4, SideRight, true)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ResolveContentArea(b, A4, SideRight, true)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated calls differ: %v != %v", first, second)
	}
}

// A margin wider than the sheet must be reported, not clamped.
func TestResolveDegenerate(t *testing.T) {
	b := BinderStandard{
		ID:           "test",
		NativeSize:   A5,
		HoleCount:    2,
		HoleDiameter: 6,
		EdgeDistance: 150,
		Pattern:      EvenSpan(80),
	}

	_, err := ResolveContentArea(b, A5, SideLeft, false)
	if err == nil {
		t.Fatal("missing error for degenerate area")
	}
	if !IsDegenerateArea(err) {
		t.Errorf("unexpected error type: %v", err)
	}
}

func TestSizeByName(t *testing.T) {
	s, err := SizeByName("a4")
	if err != nil {
		t.Fatal(err)
	}
	if s != A4 {
		t.Errorf("unexpected size: %v", s)
	}

	_, err = SizeByName("letter")
	if err == nil {
		t.Errorf("missing error for unsupported size")
	}
}

func TestSideOpposite(t *testing.T) {
	if SideLeft.Opposite() != SideRight {
		t.Errorf("unexpected opposite of left")
	}
	if SideRight.Opposite() != SideLeft {
		t.Errorf("unexpected opposite of right")
	}
}
