package nodeedit

import (
	"fmt"
	"math"
)

// Point is a 2D point. Points have no identity; they are compared and
// combined by value.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Splat returns the point's x and y coordinates.
func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns the point moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes p−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
