// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"fmt"
	"sort"

	biointerval "github.com/biogo/store/interval"
)

// span is a SpanIndex element.  Spans are half-open.
type span struct {
	key        int
	start, end int
}

func (s span) Overlap(r biointerval.IntRange) bool {
	return s.end > r.Start && s.start < r.End
}

func (s span) ID() uintptr { return uintptr(s.key) }

func (s span) Range() biointerval.IntRange {
	return biointerval.IntRange{Start: s.start, End: s.end}
}

// query is a half-open probe; unlike span it is never inserted.
type query struct{ start, end int }

func (q query) Overlap(r biointerval.IntRange) bool {
	return q.end > r.Start && q.start < r.End
}

// SpanIndex is a dynamic set of keyed half-open spans supporting overlap
// queries.  Two spans overlap iff they share at least one position, so
// [0, 10) and [10, 20) do not overlap.
//
// The zero value is an empty index.  A SpanIndex is not safe for concurrent
// use.
type SpanIndex struct {
	tree biointerval.IntTree
	keys map[int]struct{}
}

// Insert adds [start, end) under key.  Keys must be nonnegative and unique.
func (x *SpanIndex) Insert(key, start, end int) error {
	if key < 0 {
		return fmt.Errorf("interval.SpanIndex.Insert: negative key %d", key)
	}
	if end < start {
		return fmt.Errorf("interval.SpanIndex.Insert: inverted span [%d, %d)", start, end)
	}
	if x.keys == nil {
		x.keys = make(map[int]struct{})
	}
	if _, found := x.keys[key]; found {
		return fmt.Errorf("interval.SpanIndex.Insert: duplicate key %d", key)
	}
	if err := x.tree.Insert(span{key: key, start: start, end: end}, false); err != nil {
		return fmt.Errorf("interval.SpanIndex.Insert: %v", err)
	}
	x.keys[key] = struct{}{}
	return nil
}

// Overlapping returns the keys of all spans overlapping [start, end), in
// increasing order.
func (x *SpanIndex) Overlapping(start, end int) []int {
	if end <= start {
		return nil
	}
	var keys []int
	for _, e := range x.tree.Get(query{start, end}) {
		keys = append(keys, e.(span).key)
	}
	sort.Ints(keys)
	return keys
}

// Len returns the number of spans in the index.
func (x *SpanIndex) Len() int { return len(x.keys) }
