package nodeedit

import "slices"

// Split inserts a node at the midpoint of every segment between two adjacent
// selected nodes. For closed shapes, selecting both the first and the last
// node also splits the seam segment, appending the midpoint of the last and
// first point.
//
// The sequence is returned unchanged when the selection is empty or covers no
// adjacent pairs.
func Split(points []Point, sel *RangeSet, closed bool) []Point {
	if sel.IsEmpty() {
		return points
	}
	n := len(points)

	result := slices.Clone(points)

	if closed {
		first := sel.ranges[0]
		last := sel.ranges[len(sel.ranges)-1]
		if first.First == 0 && last.Last == n-1 {
			result = append(result, points[n-1].Midpoint(points[0]))
		}
	}

	// Within each range, insert midpoints back to front so the segment
	// endpoints keep their original indices until they're processed.
	for r := range sel.Backward() {
		for i := r.Last; i > r.First; i-- {
			result = slices.Insert(result, i, result[i-1].Midpoint(result[i]))
		}
	}

	return result
}

// SplitSegments applies [Split] to the polygon and, for curve-typed
// geometries, to both control point sequences, keeping the three sequences
// aligned. New control points are plain midpoints; no curve interpolation is
// attempted.
func (g Geometry) SplitSegments(sel *RangeSet) Geometry {
	out := g
	out.Polygon = Split(g.Polygon, sel, g.Kind.Closed())
	if g.Kind.HasControlPoints() {
		out.Left = Split(g.Left, sel, g.Kind.Closed())
		out.Right = Split(g.Right, sel, g.Kind.Closed())
	}
	return out
}
