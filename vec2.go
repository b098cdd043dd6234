package nodeedit

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector, used for translations and for accumulating point
// sums.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// Mul returns the vector scaled by f.
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}
