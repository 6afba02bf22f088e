package ui

// Point is a 2D coordinate or extent in logical pixels.
// Gadget positions are relative to the parent's origin.
type Point struct {
	X, Y float32
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Bounds is an axis-aligned rectangle defined by origin and size.
type Bounds struct {
	X, Y, W, H float32
}

// BoundsOf builds a Bounds from an origin point and a size point.
func BoundsOf(origin, size Point) Bounds {
	return Bounds{X: origin.X, Y: origin.Y, W: size.X, H: size.Y}
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.W &&
		p.Y >= b.Y && p.Y < b.Y+b.H
}

// Origin returns the top-left corner.
func (b Bounds) Origin() Point {
	return Point{X: b.X, Y: b.Y}
}
