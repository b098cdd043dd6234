package nodeedit

import "slices"

// Delete removes the selected nodes, including their control points for
// curve-typed geometries. Ranges are removed back to front, so the indices of
// lower ranges stay valid while higher slices are cut out.
//
// ok is false when fewer than two nodes would remain; such a geometry is
// degenerate and the caller should remove the whole shape instead of
// committing the result.
func (g Geometry) Delete(sel *RangeSet) (_ Geometry, ok bool) {
	out := g.Clone()
	for r := range sel.Backward() {
		out.Polygon = slices.Delete(out.Polygon, r.First, r.Last+1)
		if g.Kind.HasControlPoints() {
			out.Left = slices.Delete(out.Left, r.First, r.Last+1)
			out.Right = slices.Delete(out.Right, r.First, r.Last+1)
		}
	}
	if out.Len() < 2 {
		return Geometry{}, false
	}
	return out, true
}
