package refill

import (
	"image"
	"io"

	"github.com/google/uuid"
)

// SourceKind tells where the raster for a content page came from.
type SourceKind int

const (
	// ImageSource is a decoded raster image (PNG, JPEG, ...).
	ImageSource SourceKind = iota
	// DocumentPageSource is one page of an uploaded document (PDF).
	DocumentPageSource
)

func (k SourceKind) String() string {
	switch k {
	case ImageSource:
		return "image"
	case DocumentPageSource:
		return "document-page"
	default:
		return "UNKNOWN"
	}
}

// ContentDPI is the fixed assumed density of content rasters.
const ContentDPI = 150.0

// PixelsToMm converts a pixel count to millimeters at ContentDPI.
func PixelsToMm(px int) float64 {
	return float64(px) / ContentDPI * 25.4
}

// Raster is the minimal view this package has of an ingested image.
// The actual pixel data is owned by the content source.
type Raster interface {
	PixelWidth() int
	PixelHeight() int
}

// ImageRaster is a raster backed by a decoded image,
// implemented by image uploads.
type ImageRaster interface {
	Raster
	Image() image.Image
}

// DocumentRaster is a raster backed by a page of an uploaded document.
// The document bytes are placed directly by the rendering backend.
type DocumentRaster interface {
	Raster
	// PageNumber is the 1-based page within the document.
	PageNumber() int
	// Document opens the original document data.
	Document() (io.ReadSeeker, error)
}

// Position places a content page within its content area.
// Offsets may be negative, content may intentionally overflow the area.
type Position struct {
	XOffsetMm float64
	YOffsetMm float64
	Scale     float64
}

// DefaultPosition is the position of newly ingested content.
func DefaultPosition() Position {
	return Position{Scale: 1}
}

// ContentPage is one logical unit of user content.
type ContentPage struct {
	id       string
	Kind     SourceKind
	Raster   Raster
	Position Position
	Side     PageSide
}

// NewContentPage creates a page for the given raster.
// Fails with an InvalidContentDimensions error if the raster reports
// a zero or negative pixel dimension.
func NewContentPage(kind SourceKind, r Raster, side PageSide) (*ContentPage, error) {
	if r == nil {
		return nil, NewInvalidContentDimensions("no raster")
	}
	if r.PixelWidth() <= 0 || r.PixelHeight() <= 0 {
		return nil, NewInvalidContentDimensions("%vx%v px", r.PixelWidth(), r.PixelHeight())
	}
	return &ContentPage{
		id:       uuid.New().String(),
		Kind:     kind,
		Raster:   r,
		Position: DefaultPosition(),
		Side:     side,
	}, nil
}

// ID is the stable identifier of this page.
func (p *ContentPage) ID() string {
	return p.id
}

// SizeMm computes the rendered size of this page's content in
// millimeters, from its pixel dimensions at ContentDPI and its scale.
func (p *ContentPage) SizeMm() (w, h float64, err error) {
	if p.Position.Scale <= 0 {
		return 0, 0, NewValidationError("scale must be positive, got %v", p.Position.Scale)
	}
	w = PixelsToMm(p.Raster.PixelWidth()) * p.Position.Scale
	h = PixelsToMm(p.Raster.PixelHeight()) * p.Position.Scale
	return w, h, nil
}

func (p *ContentPage) Validate() error {
	if p.Raster == nil || p.Raster.PixelWidth() <= 0 || p.Raster.PixelHeight() <= 0 {
		return NewInvalidContentDimensions("page %v", p.id)
	}
	if p.Position.Scale <= 0 {
		return NewValidationError("scale must be positive, got %v", p.Position.Scale)
	}
	switch p.Side {
	case SideLeft, SideRight:
		// ok
	default:
		return NewValidationError("invalid page side %v", p.Side)
	}
	return nil
}
