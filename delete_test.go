package nodeedit

import "testing"

func TestDeleteInterior(t *testing.T) {
	g := NewGeometry(Polyline, []Point{
		Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0),
	}, nil, nil)

	got, ok := g.Delete(sel(1, 3))
	if !ok {
		t.Fatal("unexpected degenerate result")
	}
	diff(t, []Point{Pt(0, 0), Pt(2, 0), Pt(4, 0)}, got.Polygon)
}

func TestDeleteContiguousRun(t *testing.T) {
	g := NewGeometry(Polyline, []Point{
		Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0), Pt(5, 0),
	}, nil, nil)

	got, ok := g.Delete(sel(1, 2, 3))
	if !ok {
		t.Fatal("unexpected degenerate result")
	}
	diff(t, []Point{Pt(0, 0), Pt(4, 0), Pt(5, 0)}, got.Polygon)
}

func TestDeleteDegenerate(t *testing.T) {
	g := NewGeometry(Polygon, []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}, nil, nil)
	if _, ok := g.Delete(sel(0, 1)); ok {
		t.Error("deleting down to one point must signal shape removal")
	}
}

func TestDeleteCurveAlignment(t *testing.T) {
	polygon := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0)}
	left := []Point{Pt(0, 1), Pt(1, 1), Pt(2, 1), Pt(3, 1), Pt(4, 1)}
	right := []Point{Pt(0, 2), Pt(1, 2), Pt(2, 2), Pt(3, 2), Pt(4, 2)}
	g := NewGeometry(OpenCurve, polygon, left, right)

	got, ok := g.Delete(sel(1, 3))
	if !ok {
		t.Fatal("unexpected degenerate result")
	}
	diff(t, []Point{Pt(0, 0), Pt(2, 0), Pt(4, 0)}, got.Polygon)
	diff(t, []Point{Pt(0, 1), Pt(2, 1), Pt(4, 1)}, got.Left)
	diff(t, []Point{Pt(0, 2), Pt(2, 2), Pt(4, 2)}, got.Right)
}

func TestDeleteLeavesInputIntact(t *testing.T) {
	g := NewGeometry(Polyline, []Point{
		Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0),
	}, nil, nil)
	before := g.Clone()

	if _, ok := g.Delete(sel(1, 2)); !ok {
		t.Fatal("unexpected degenerate result")
	}
	if !g.Equal(before) {
		t.Error("Delete mutated its receiver")
	}
}
