package refill

// The hole patterns that occur in the catalog.
// A pattern is pure data; EvalCenters interprets it.
type patternKind int

const (
	evenPitch patternKind = iota
	evenSpan
	symmetricGroups
)

// HolePattern describes how the punch holes of a binder standard are
// distributed along the sheet's vertical edge.
//
// A pattern does not know the number of holes or the sheet height,
// these are supplied when the pattern is evaluated.
type HolePattern struct {
	kind     patternKind
	pitch    float64
	groupGap float64
}

// EvenPitch creates a pattern with evenly spaced holes,
// `pitch` millimeters from center to center,
// centered on the sheet's vertical edge.
func EvenPitch(pitch float64) HolePattern {
	return HolePattern{kind: evenPitch, pitch: pitch}
}

// EvenSpan creates a pattern with evenly spaced holes where `span`
// is the center-to-center distance between adjacent holes.
// It is evaluated exactly like EvenPitch and exists to keep the catalog
// readable for standards that are specified by their spacing
// (e.g. ISO 838 with 80 mm).
func EvenSpan(span float64) HolePattern {
	return HolePattern{kind: evenSpan, pitch: span}
}

// SymmetricGroups creates a pattern with two 3-hole groups,
// mirrored about the sheet's vertical center with a central gap of
// `groupGap` millimeters between the two innermost holes
// and `pitch` millimeters between the holes of a group.
func SymmetricGroups(groupGap, pitch float64) HolePattern {
	return HolePattern{kind: symmetricGroups, pitch: pitch, groupGap: groupGap}
}

// EvalCenters computes the hole center positions for a sheet of the given
// height. Offsets are measured in millimeters from the top edge of the
// sheet. The returned list is ascending by construction.
func (p HolePattern) EvalCenters(count int, sheetHeightMm float64) []float64 {
	switch p.kind {
	case evenPitch, evenSpan:
		span := p.pitch * float64(count-1)
		start := (sheetHeightMm - span) / 2
		centers := make([]float64, count)
		for i := 0; i < count; i++ {
			centers[i] = start + float64(i)*p.pitch
		}
		return centers
	case symmetricGroups:
		center := sheetHeightMm / 2
		top := center - p.groupGap/2 - p.pitch
		bottom := center + p.groupGap/2 + p.pitch
		return []float64{
			top - p.pitch, top, top + p.pitch,
			bottom - p.pitch, bottom, bottom + p.pitch,
		}
	}
	return nil
}

// BinderStandard describes one hole-punch pattern for a physical
// filing system.
type BinderStandard struct {
	// ID is the catalog identifier.
	ID string
	// Name is the display name.
	Name string
	// NativeSize is the paper size the binder is made for.
	NativeSize Size
	// HoleCount is the number of punch holes.
	HoleCount int
	// HoleDiameter is the hole diameter in millimeters.
	HoleDiameter float64
	// EdgeDistance is the distance from the punched paper edge
	// to the hole centers, in millimeters.
	EdgeDistance float64
	// Pattern distributes the holes along the sheet edge.
	Pattern HolePattern
}

// HoleCenters computes the hole center positions for a sheet of the given
// height, measured top-down in millimeters.
// The result always has exactly HoleCount entries.
func (b BinderStandard) HoleCenters(sheetHeightMm float64) []float64 {
	return b.Pattern.EvalCenters(b.HoleCount, sheetHeightMm)
}

// HoleMargin is the width of the strip along the punched edge that must
// remain free of content: edge distance plus half a hole diameter,
// plus 5 mm if padding is enabled.
func (b BinderStandard) HoleMargin(padding bool) float64 {
	m := b.EdgeDistance + b.HoleDiameter/2
	if padding {
		m += paddingMm
	}
	return m
}

func (b BinderStandard) Validate() error {
	if b.HoleDiameter <= 0 {
		return NewValidationError("hole diameter must be positive, got %v", b.HoleDiameter)
	}
	if b.EdgeDistance < 0 {
		return NewValidationError("edge distance must not be negative, got %v", b.EdgeDistance)
	}
	if n := len(b.HoleCenters(b.NativeSize.Height)); n != b.HoleCount {
		return NewValidationError("pattern yields %v holes, standard declares %v", n, b.HoleCount)
	}
	return nil
}

// paddingMm is the optional extra buffer between content and hole margin.
const paddingMm = 5.0

// The closed catalog of supported binder standards.
var catalog = []BinderStandard{
	{
		ID:           "a5-20",
		Name:         "20-hole (JIS A5)",
		NativeSize:   A5,
		HoleCount:    20,
		HoleDiameter: 6,
		EdgeDistance: 5.5,
		Pattern:      EvenPitch(9.7),
	},
	{
		ID:           "iso838",
		Name:         "2-hole (ISO 838)",
		NativeSize:   A4,
		HoleCount:    2,
		HoleDiameter: 6,
		EdgeDistance: 12,
		Pattern:      EvenSpan(80),
	},
	{
		ID:           "filofax",
		Name:         "6-hole (Filofax)",
		NativeSize:   A5,
		HoleCount:    6,
		HoleDiameter: 4,
		EdgeDistance: 5.5,
		Pattern:      SymmetricGroups(50.8, 19),
	},
	{
		ID:           "a5-6",
		Name:         "6-hole (wide gap)",
		NativeSize:   A5,
		HoleCount:    6,
		HoleDiameter: 4,
		EdgeDistance: 5.5,
		Pattern:      SymmetricGroups(70, 19),
	},
	{
		ID:           "a4-4",
		Name:         "4-hole (888)",
		NativeSize:   A4,
		HoleCount:    4,
		HoleDiameter: 6,
		EdgeDistance: 12,
		Pattern:      EvenSpan(80),
	},
}

// Lookup finds a binder standard by its catalog id.
// Returns an UnknownStandard error if the id is not in the catalog,
// there is no fallback to a default standard.
func Lookup(id string) (BinderStandard, error) {
	for _, b := range catalog {
		if b.ID == id {
			return b, nil
		}
	}
	return BinderStandard{}, NewUnknownStandard("%v", id)
}

// Standards lists the catalog in a stable order.
func Standards() []BinderStandard {
	s := make([]BinderStandard, len(catalog))
	copy(s, catalog)
	return s
}
