package nodeedit

import (
	"fmt"
	"slices"
)

// ShapeKind describes a shape's connectivity and whether its nodes carry
// bezier control points.
type ShapeKind int

const (
	// An open sequence of line segments.
	Polyline ShapeKind = iota + 1
	// A closed sequence of line segments.
	Polygon
	// An open bezier curve with per-node control points.
	OpenCurve
	// A closed bezier curve with per-node control points.
	ClosedCurve
)

// Closed reports whether the shape's last node connects back to its first.
func (k ShapeKind) Closed() bool {
	return k == Polygon || k == ClosedCurve
}

// HasControlPoints reports whether the shape carries a pair of control points
// per node.
func (k ShapeKind) HasControlPoints() bool {
	return k == OpenCurve || k == ClosedCurve
}

func (k ShapeKind) String() string {
	switch k {
	case Polyline:
		return "Polyline"
	case Polygon:
		return "Polygon"
	case OpenCurve:
		return "OpenCurve"
	case ClosedCurve:
		return "ClosedCurve"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Geometry is the full node geometry of a shape: the polygon and, for
// curve-typed kinds, the left and right control point sequences. Index i in
// each sequence belongs to the same logical node, and all three sequences
// always have the same length. Keeping them in one structure means every
// operation transforms them together, so they cannot fall out of alignment.
type Geometry struct {
	Kind    ShapeKind
	Polygon []Point
	// Left and Right are nil unless Kind.HasControlPoints().
	Left  []Point
	Right []Point
}

// NewGeometry returns a geometry for the given kind, copying the input
// slices. For kinds without control points, left and right must be nil. It
// panics if the control point sequences don't match the polygon's length;
// misaligned sequences are a programmer error, not a recoverable condition.
func NewGeometry(kind ShapeKind, polygon, left, right []Point) Geometry {
	if kind.HasControlPoints() {
		if len(left) != len(polygon) || len(right) != len(polygon) {
			panic(fmt.Sprintf("nodeedit: %d nodes but %d left and %d right control points",
				len(polygon), len(left), len(right)))
		}
	} else if left != nil || right != nil {
		panic(fmt.Sprintf("nodeedit: %v cannot have control points", kind))
	}
	return Geometry{
		Kind:    kind,
		Polygon: slices.Clone(polygon),
		Left:    slices.Clone(left),
		Right:   slices.Clone(right),
	}
}

// Len returns the number of nodes.
func (g Geometry) Len() int {
	return len(g.Polygon)
}

// Clone returns a deep copy of the geometry.
func (g Geometry) Clone() Geometry {
	return Geometry{
		Kind:    g.Kind,
		Polygon: slices.Clone(g.Polygon),
		Left:    slices.Clone(g.Left),
		Right:   slices.Clone(g.Right),
	}
}

// Equal reports whether two geometries have the same kind and the same node
// and control point values.
func (g Geometry) Equal(o Geometry) bool {
	return g.Kind == o.Kind &&
		slices.Equal(g.Polygon, o.Polygon) &&
		slices.Equal(g.Left, o.Left) &&
		slices.Equal(g.Right, o.Right)
}
