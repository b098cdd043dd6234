package nodeedit_test

import (
	"fmt"

	"honnef.co/go/nodeedit"
)

func ExampleJoin() {
	points := []nodeedit.Point{
		nodeedit.Pt(0, 0),
		nodeedit.Pt(10, 0),
		nodeedit.Pt(10, 10),
		nodeedit.Pt(0, 10),
	}

	sel := new(nodeedit.RangeSet)
	sel.Insert(1)
	sel.Insert(2)

	for _, pt := range nodeedit.Join(points, sel, false) {
		fmt.Println(pt)
	}
	// Output:
	// (0, 0)
	// (10, 5)
	// (0, 10)
}

func ExampleEditor() {
	ed := nodeedit.NewEditor()
	shape := ed.AddShape(nodeedit.NewGeometry(nodeedit.Polygon, []nodeedit.Point{
		nodeedit.Pt(0, 0),
		nodeedit.Pt(10, 0),
		nodeedit.Pt(10, 10),
		nodeedit.Pt(0, 10),
	}, nil, nil))

	// Splitting the seam segment of a closed shape appends its midpoint.
	ed.SplitSegments([]nodeedit.NodeRef{
		{Shape: shape, Index: 0},
		{Shape: shape, Index: 3},
	})
	fmt.Println(shape.Geometry().Polygon)

	ed.Undo()
	fmt.Println(shape.Geometry().Polygon)
	// Output:
	// [(0, 0) (10, 0) (10, 10) (0, 10) (0, 5)]
	// [(0, 0) (10, 0) (10, 10) (0, 10)]
}
