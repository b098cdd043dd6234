package nodeedit

import "slices"

// mean returns the arithmetic mean of the points covered by the given ranges.
func mean(points []Point, ranges ...Range) Point {
	var sum Vec2
	n := 0
	for _, r := range ranges {
		for i := r.First; i <= r.Last; i++ {
			sum = sum.Add(Vec2(points[i]))
			n++
		}
	}
	return Pt(sum.X/float64(n), sum.Y/float64(n))
}

// Join collapses each selected range of nodes into a single node at the
// average of the range's points. For closed shapes, a selection touching both
// the first and the last node wraps around the closure point: the first and
// last ranges are merged into one averaged node, stored at index 0.
//
// The sequence is returned unchanged when the selection is empty, when the
// sequence has fewer than three points (joining would destroy the shape), or
// when a single range spans the entire sequence.
func Join(points []Point, sel *RangeSet, closed bool) []Point {
	if sel.IsEmpty() {
		return points
	}
	n := len(points)
	if n < 3 {
		return points
	}

	first := sel.ranges[0]
	last := sel.ranges[len(sel.ranges)-1]

	result := slices.Clone(points)

	// Indices into result are offset once the wrap-around merge has removed
	// nodes ahead of them.
	indexOffset := 0

	// Ranges still to be processed, as a subslice of sel.ranges.
	remaining := sel.ranges

	if first.First == 0 && last.Last == n-1 {
		// Nothing meaningful to join when the selection spans the whole
		// sequence.
		if len(sel.ranges) == 1 {
			return points
		}

		// The two boundary ranges are adjacent around the closure point.
		if closed {
			avg := mean(points, first, last)
			result = slices.Delete(result, last.First, last.First+last.Length())
			result = slices.Delete(result, 1, first.Length())
			result[0] = avg

			indexOffset = first.Length() - 1
			remaining = remaining[1 : len(remaining)-1]
		}
	}

	for i := len(remaining) - 1; i >= 0; i-- {
		r := remaining[i]
		avg := mean(points, r)
		result = slices.Delete(result, r.First+1-indexOffset, r.First+r.Length()-indexOffset)
		result[r.First-indexOffset] = avg
	}

	return result
}

// JoinNodes applies [Join] to the polygon and, for curve-typed geometries, to
// both control point sequences, keeping the three sequences aligned. Control
// points are averaged the same way as nodes; no curve interpolation is
// attempted.
func (g Geometry) JoinNodes(sel *RangeSet) Geometry {
	out := g
	out.Polygon = Join(g.Polygon, sel, g.Kind.Closed())
	if g.Kind.HasControlPoints() {
		out.Left = Join(g.Left, sel, g.Kind.Closed())
		out.Right = Join(g.Right, sel, g.Kind.Closed())
	}
	return out
}
