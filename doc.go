// Package nodeedit implements node-level editing of polygons, polylines, and
// bezier shapes: deleting nodes, joining runs of nodes into their average, and
// splitting the segments between selected nodes.
//
// # Shapes and geometry
//
// A shape's geometry is a sequence of nodes, each a [Point]. Curve-typed
// shapes ([OpenCurve], [ClosedCurve]) additionally carry a left and a right
// control point per node; [Geometry] stores the polygon and the two control
// sequences together and keeps them index-aligned through every operation.
// Whether a shape's last node connects back to its first is determined by its
// [ShapeKind].
//
// # Selections
//
// Operations act on a selection of node indices, represented as a [RangeSet]:
// an ordered set of disjoint, non-adjacent inclusive ranges that merges
// adjacent insertions automatically. [GroupIndexes] builds one RangeSet per
// shape from a flat list of selected [NodeRef]s.
//
// # Editing
//
// The editing algorithms are pure: [Join] and [Split] map a point sequence
// and a selection to a new point sequence, and [Geometry.Delete],
// [Geometry.JoinNodes], and [Geometry.SplitSegments] apply them to all three
// sequences of a geometry at once. All of them process ranges back to front,
// so the indices of ranges yet to be processed stay valid while higher ranges
// shrink or grow the sequence.
//
// On closed shapes, a selection that touches both the first and the last node
// wraps around the closure point: join merges the two boundary ranges into a
// single averaged node, and split inserts an extra midpoint on the seam
// segment.
//
// # Editor
//
// [Editor] ties the algorithms to a collection of [Shape]s. Its operations
// group the current selection per shape, run the corresponding algorithm, and
// commit the results as undoable commands, grouped so that one user operation
// spanning several shapes undoes atomically. Operations that change nothing
// commit nothing. A deletion that would leave a shape with fewer than two
// nodes removes the shape instead.
package nodeedit
