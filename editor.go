package nodeedit

import "slices"

// Shape is an identity-bearing holder of a [Geometry]. Shapes are edited
// through an [Editor]; their geometry is only ever replaced wholesale, never
// mutated in place.
type Shape struct {
	geom Geometry
}

// Geometry returns a copy of the shape's current geometry.
func (s *Shape) Geometry() Geometry {
	return s.geom.Clone()
}

// Kind returns the shape's kind.
func (s *Shape) Kind() ShapeKind {
	return s.geom.Kind
}

// Editor holds a collection of shapes and applies the node editing
// operations to them, recording every change on an undo stack.
//
// Editors are not safe for concurrent use; the interactive callers they are
// written for permit only one active edit at a time.
type Editor struct {
	shapes  []*Shape
	history UndoStack
}

// NewEditor returns an empty editor.
func NewEditor() *Editor {
	return &Editor{}
}

// AddShape adds a shape with the given geometry and returns it. Adding a
// shape is not undoable; only edits are.
func (ed *Editor) AddShape(geom Geometry) *Shape {
	s := &Shape{geom: geom.Clone()}
	ed.shapes = append(ed.shapes, s)
	return s
}

// Shapes returns the editor's shapes in the order they were added, minus any
// that have been removed.
func (ed *Editor) Shapes() []*Shape {
	return slices.Clone(ed.shapes)
}

// Undo reverses the most recent operation. It reports whether there was
// anything to undo.
func (ed *Editor) Undo() bool {
	return ed.history.Undo()
}

// Redo reapplies the most recently undone operation. It reports whether
// there was anything to redo.
func (ed *Editor) Redo() bool {
	return ed.history.Redo()
}

// CanUndo reports whether the editor has anything to undo.
func (ed *Editor) CanUndo() bool {
	return ed.history.CanUndo()
}

// CanRedo reports whether the editor has anything to redo.
func (ed *Editor) CanRedo() bool {
	return ed.history.CanRedo()
}

// affected returns the shapes of grouped that belong to this editor, in the
// order they were added. Map iteration order is not reproducible, and
// replaying an undo macro must visit shapes deterministically.
func (ed *Editor) affected(grouped map[*Shape]*RangeSet) []*Shape {
	var shapes []*Shape
	for _, s := range ed.shapes {
		if _, ok := grouped[s]; ok {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

// DeleteNodes deletes the selected nodes from their shapes. A shape left
// with fewer than two nodes is removed entirely. The whole operation is
// recorded as one undo step.
func (ed *Editor) DeleteNodes(sel []NodeRef) {
	if len(sel) == 0 {
		return
	}
	grouped := GroupIndexes(sel)

	var cmds []Command
	for _, shape := range ed.affected(grouped) {
		geom, ok := shape.Geometry().Delete(grouped[shape])
		if !ok {
			cmds = append(cmds, NewRemoveShape(ed, shape))
		} else {
			cmds = append(cmds, NewChangeGeometry(shape, geom))
		}
	}
	if len(cmds) == 0 {
		return
	}
	ed.history.push("Delete Nodes", cmds)
}

// JoinNodes joins each run of consecutively selected nodes into a single
// node at their average position. Shapes whose geometry doesn't shrink are
// left untouched; if no shape changes, nothing is committed.
func (ed *Editor) JoinNodes(sel []NodeRef) {
	if len(sel) < 2 {
		return
	}
	grouped := GroupIndexes(sel)

	var cmds []Command
	for _, shape := range ed.affected(grouped) {
		old := shape.Geometry()
		geom := old.JoinNodes(grouped[shape])
		if geom.Len() < old.Len() {
			cmds = append(cmds, NewChangeGeometry(shape, geom))
		}
	}
	if len(cmds) == 0 {
		return
	}
	ed.history.push("Join Nodes", cmds)
}

// SplitSegments splits every segment between two adjacent selected nodes by
// inserting its midpoint. Shapes whose geometry doesn't grow are left
// untouched; if no shape changes, nothing is committed.
func (ed *Editor) SplitSegments(sel []NodeRef) {
	if len(sel) < 2 {
		return
	}
	grouped := GroupIndexes(sel)

	var cmds []Command
	for _, shape := range ed.affected(grouped) {
		old := shape.Geometry()
		geom := old.SplitSegments(grouped[shape])
		if geom.Len() > old.Len() {
			cmds = append(cmds, NewChangeGeometry(shape, geom))
		}
	}
	if len(cmds) == 0 {
		return
	}
	ed.history.push("Split Segments", cmds)
}
