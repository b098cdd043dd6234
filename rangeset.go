package nodeedit

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Range is an inclusive span [First, Last] of node indices, First <= Last.
type Range struct {
	First int
	Last  int
}

// Length returns the number of indices covered by the range.
func (r Range) Length() int {
	return r.Last - r.First + 1
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return r.First <= v && v <= r.Last
}

func (r Range) String() string {
	if r.First == r.Last {
		return fmt.Sprintf("[%d]", r.First)
	}
	return fmt.Sprintf("[%d, %d]", r.First, r.Last)
}

// RangeSet is an ordered set of integers, stored as disjoint, non-adjacent
// ranges. Inserting a value adjacent to an existing range extends that range,
// and two ranges made adjacent by an insertion merge into one, so at rest no
// two ranges ever touch or overlap.
//
// The zero value is an empty set ready for use.
type RangeSet struct {
	ranges []Range
}

// Insert adds v to the set. Inserting a value that is already contained is a
// no-op.
func (s *RangeSet) Insert(v int) {
	i, found := slices.BinarySearchFunc(s.ranges, v, func(r Range, v int) int {
		return cmp.Compare(r.First, v)
	})
	if found {
		return
	}
	// i is the position of the first range starting after v.
	if i > 0 {
		prev := &s.ranges[i-1]
		if v <= prev.Last {
			return
		}
		if v == prev.Last+1 {
			prev.Last = v
			if i < len(s.ranges) && s.ranges[i].First == v+1 {
				prev.Last = s.ranges[i].Last
				s.ranges = slices.Delete(s.ranges, i, i+1)
			}
			return
		}
	}
	if i < len(s.ranges) && s.ranges[i].First == v+1 {
		s.ranges[i].First = v
		return
	}
	s.ranges = slices.Insert(s.ranges, i, Range{First: v, Last: v})
}

// Contains reports whether v is in the set.
func (s *RangeSet) Contains(v int) bool {
	for _, r := range s.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set contains no values.
func (s *RangeSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Len returns the number of ranges in the set.
func (s *RangeSet) Len() int {
	return len(s.ranges)
}

// All returns an iterator over the ranges in ascending order.
func (s *RangeSet) All() iter.Seq[Range] {
	return slices.Values(s.ranges)
}

// Backward returns an iterator over the ranges in descending order. The
// editing algorithms process ranges back to front so that removals and
// insertions don't invalidate the indices of ranges yet to be processed.
func (s *RangeSet) Backward() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for i := len(s.ranges) - 1; i >= 0; i-- {
			if !yield(s.ranges[i]) {
				return
			}
		}
	}
}

func (s *RangeSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range s.ranges {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
