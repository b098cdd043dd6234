package nodeedit

// NodeRef identifies a single node: the shape it belongs to and its index
// within that shape's geometry.
type NodeRef struct {
	Shape *Shape
	Index int
}

// GroupIndexes groups the selected node indices by their owning shape,
// producing one [RangeSet] per shape. Duplicate references collapse by
// RangeSet semantics.
func GroupIndexes(refs []NodeRef) map[*Shape]*RangeSet {
	grouped := make(map[*Shape]*RangeSet)
	for _, ref := range refs {
		set := grouped[ref.Shape]
		if set == nil {
			set = new(RangeSet)
			grouped[ref.Shape] = set
		}
		set.Insert(ref.Index)
	}
	return grouped
}
