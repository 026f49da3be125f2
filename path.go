package femtovg

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path. Glyph paths are expressed in font design
// units with the Y axis increasing up; callers scale them with the factor
// returned by text.Font.Scale.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
// The returned slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty returns true if the path has no drawing elements.
func (p *Path) IsEmpty() bool {
	for _, e := range p.elements {
		if _, ok := e.(Close); !ok {
			return false
		}
	}
	return true
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding box of all points of the path, control points
// included. It returns the zero Rect for an empty path.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		r = r.union(pt, first)
		first = false
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return r
}

// Scale returns a new path with all coordinates multiplied by (sx, sy).
func (p *Path) Scale(sx, sy float32) *Path {
	return p.mapPoints(func(pt Point) Point {
		return Point{X: pt.X * sx, Y: pt.Y * sy}
	})
}

// Translate returns a new path with all coordinates moved by (dx, dy).
func (p *Path) Translate(dx, dy float32) *Path {
	return p.mapPoints(func(pt Point) Point {
		return pt.Add(Point{X: dx, Y: dy})
	})
}

func (p *Path) mapPoints(f func(Point) Point) *Path {
	result := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := f(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := f(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			c, pt := f(e.Control), f(e.Point)
			result.QuadTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1, c2, pt := f(e.Control1), f(e.Control2), f(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}

// Equal reports whether two paths have identical elements.
func (p *Path) Equal(q *Path) bool {
	if p == nil || q == nil {
		return p == q
	}
	if len(p.elements) != len(q.elements) {
		return false
	}
	for i := range p.elements {
		if p.elements[i] != q.elements[i] {
			return false
		}
	}
	return true
}
