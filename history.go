package nodeedit

import "slices"

// Command is a single reversible edit to an editor's shapes.
type Command interface {
	// Execute performs the command.
	Execute()
	// Undo reverses the command.
	Undo()
	// Description returns a human-readable description of the command.
	Description() string
}

// ChangeGeometry replaces a shape's geometry, remembering the previous
// geometry so the change can be undone.
type ChangeGeometry struct {
	shape  *Shape
	before Geometry
	after  Geometry
}

// NewChangeGeometry returns a command that sets shape's geometry to after,
// capturing the shape's current geometry for undo.
func NewChangeGeometry(shape *Shape, after Geometry) *ChangeGeometry {
	return &ChangeGeometry{
		shape:  shape,
		before: shape.Geometry(),
		after:  after.Clone(),
	}
}

func (c *ChangeGeometry) Execute() {
	c.shape.geom = c.after.Clone()
}

func (c *ChangeGeometry) Undo() {
	c.shape.geom = c.before.Clone()
}

func (c *ChangeGeometry) Description() string {
	return "Change Geometry"
}

// RemoveShape removes a shape from the editor, remembering its position so
// undo restores it in place.
type RemoveShape struct {
	editor *Editor
	shape  *Shape
	index  int
}

// NewRemoveShape returns a command that removes shape from ed.
func NewRemoveShape(ed *Editor, shape *Shape) *RemoveShape {
	return &RemoveShape{editor: ed, shape: shape}
}

func (c *RemoveShape) Execute() {
	c.index = slices.Index(c.editor.shapes, c.shape)
	c.editor.shapes = slices.Delete(c.editor.shapes, c.index, c.index+1)
}

func (c *RemoveShape) Undo() {
	c.editor.shapes = slices.Insert(c.editor.shapes, c.index, c.shape)
}

func (c *RemoveShape) Description() string {
	return "Remove Shape"
}

// A macro groups the commands of one user operation so they undo and redo
// atomically.
type macro struct {
	name string
	cmds []Command
}

// UndoStack records executed command macros and replays them for undo and
// redo. Pushing a new macro discards the redo history.
type UndoStack struct {
	done   []macro
	undone []macro
}

// push executes cmds and records them as a single undoable macro.
func (st *UndoStack) push(name string, cmds []Command) {
	for _, c := range cmds {
		c.Execute()
	}
	st.done = append(st.done, macro{name: name, cmds: cmds})
	st.undone = nil
}

// Undo reverses the most recent macro. It reports whether there was anything
// to undo.
func (st *UndoStack) Undo() bool {
	if len(st.done) == 0 {
		return false
	}
	m := st.done[len(st.done)-1]
	st.done = st.done[:len(st.done)-1]
	for i := len(m.cmds) - 1; i >= 0; i-- {
		m.cmds[i].Undo()
	}
	st.undone = append(st.undone, m)
	return true
}

// Redo reapplies the most recently undone macro. It reports whether there was
// anything to redo.
func (st *UndoStack) Redo() bool {
	if len(st.undone) == 0 {
		return false
	}
	m := st.undone[len(st.undone)-1]
	st.undone = st.undone[:len(st.undone)-1]
	for _, c := range m.cmds {
		c.Execute()
	}
	st.done = append(st.done, m)
	return true
}

// CanUndo reports whether the stack has anything to undo.
func (st *UndoStack) CanUndo() bool {
	return len(st.done) > 0
}

// CanRedo reports whether the stack has anything to redo.
func (st *UndoStack) CanRedo() bool {
	return len(st.undone) > 0
}

// UndoDescription returns the name of the macro that Undo would reverse, or
// "" if there is none.
func (st *UndoStack) UndoDescription() string {
	if len(st.done) == 0 {
		return ""
	}
	return st.done[len(st.done)-1].name
}
