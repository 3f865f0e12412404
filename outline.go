package refill

// Rect is a rectangle in millimeters, top-left origin.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Mark is one draw instruction for the outline side of a sheet.
// The concrete types are RectMark, CircleMark and LineMark;
// all coordinates are millimeters from the sheet's top-left corner.
// Stroke width and color are fixed by the rendering backend.
type Mark interface {
	mark()
}

// RectMark is a rectangle border (the trim line).
type RectMark struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// CircleMark is a circle border centered at X,Y (a punch hole).
type CircleMark struct {
	X      float64
	Y      float64
	Radius float64
}

// LineMark is a straight line segment (a crop mark).
type LineMark struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

func (RectMark) mark()   {}
func (CircleMark) mark() {}
func (LineMark) mark()   {}

const (
	cropMarkLength = 5.0
	cropMarkOffset = 3.0
)

// OutlineMarks describes the back side of a sheet for one native-size
// area: the trim rectangle, one circle per punch hole and two crop marks
// per corner.
//
// The back is viewed from the reverse of the physical sheet, so the
// holes sit at the mirrored X position: content on a left page keeps its
// holes on the right edge, which appears near the left edge of the area
// here, mirrored to area.X + area.Width - edgeDistance. Hole centers are
// evaluated at the area's height.
func OutlineMarks(area Rect, std BinderStandard, side PageSide) []Mark {
	marks := make([]Mark, 0, 1+std.HoleCount+8)

	marks = append(marks, RectMark{X: area.X, Y: area.Y, Width: area.Width, Height: area.Height})

	holeX := area.X + std.EdgeDistance
	if side == SideLeft {
		holeX = area.X + area.Width - std.EdgeDistance
	}
	for _, c := range std.HoleCenters(area.Height) {
		marks = append(marks, CircleMark{X: holeX, Y: area.Y + c, Radius: std.HoleDiameter / 2})
	}

	marks = append(marks, cropMarks(area)...)

	return marks
}

// cropMarks builds the 8 corner marks: per corner one horizontal and one
// vertical segment, each 5 mm long, ending 3 mm outside the corner.
func cropMarks(area Rect) []Mark {
	x0 := area.X
	x1 := area.X + area.Width
	y0 := area.Y
	y1 := area.Y + area.Height

	horiz := func(x, y float64, dir float64) Mark {
		return LineMark{
			X1: x + dir*cropMarkOffset, Y1: y,
			X2: x + dir*(cropMarkOffset+cropMarkLength), Y2: y,
		}
	}
	vert := func(x, y float64, dir float64) Mark {
		return LineMark{
			X1: x, Y1: y + dir*cropMarkOffset,
			X2: x, Y2: y + dir*(cropMarkOffset+cropMarkLength),
		}
	}

	return []Mark{
		horiz(x0, y0, -1), vert(x0, y0, -1), // top left
		horiz(x1, y0, +1), vert(x1, y0, -1), // top right
		horiz(x0, y1, -1), vert(x0, y1, +1), // bottom left
		horiz(x1, y1, +1), vert(x1, y1, +1), // bottom right
	}
}
