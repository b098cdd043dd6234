package nodeedit

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// sel builds a RangeSet from individual indices.
func sel(values ...int) *RangeSet {
	s := new(RangeSet)
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func collectRanges(s *RangeSet) []Range {
	return slices.Collect(s.All())
}
