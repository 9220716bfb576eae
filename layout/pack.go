// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"sort"

	"github.com/grailbio/rmsk/annotation"
	"github.com/grailbio/rmsk/interval"
)

// Layout is the result of Pack.
type Layout struct {
	// RowMap maps every group ID and every segment ID to a row.
	RowMap map[string]int
	// RowCount is the number of rows used plus one headroom row.  It is zero
	// iff no group was packed.
	RowCount int
}

// Row returns the row of a group or segment.
func (l Layout) Row(id string) (int, bool) {
	row, ok := l.RowMap[id]
	return row, ok
}

// Pack assigns a row to every group, such that no two groups in the same row
// have overlapping spans.
//
// Groups are placed widest aligned span first, ties broken by input order,
// and each group goes to the lowest row not occupied by a group it overlaps.
// The result only depends on the order and geometry of groups.
//
// A group with no aligned segment yields an *annotation.Error with code
// EmptyAlignedSet.
func Pack(groups []*annotation.Group) (Layout, error) {
	l := Layout{RowMap: make(map[string]int)}
	if len(groups) == 0 {
		return l, nil
	}
	widths := make([]int, len(groups))
	ids := make(map[string]bool, len(groups))
	for i, g := range groups {
		w, ok := g.AlignedWidth()
		if !ok {
			return Layout{}, &annotation.Error{
				Code:     annotation.EmptyAlignedSet,
				RecordID: g.ID,
				Msg:      "group has no aligned segment to sort by",
			}
		}
		if ids[g.ID] {
			return Layout{}, fmt.Errorf("layout.Pack: duplicate group ID %s", g.ID)
		}
		ids[g.ID] = true
		widths[i] = w
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return widths[order[i]] > widths[order[j]]
	})

	var (
		index  interval.SpanIndex
		rows   = make([]int, len(groups))
		maxRow = 0
		used   []bool
	)
	for _, gi := range order {
		g := groups[gi]
		for i := range used {
			used[i] = false
		}
		for _, other := range index.Overlapping(g.Start, g.End()) {
			r := rows[other]
			for r >= len(used) {
				used = append(used, false)
			}
			used[r] = true
		}
		row := 0
		for row < len(used) && used[row] {
			row++
		}
		rows[gi] = row
		if row > maxRow {
			maxRow = row
		}
		if err := index.Insert(gi, g.Start, g.End()); err != nil {
			return Layout{}, fmt.Errorf("layout.Pack: group %s: %v", g.ID, err)
		}
	}
	verifyRows(groups, rows, &index)

	for gi, g := range groups {
		l.RowMap[g.ID] = rows[gi]
		for _, s := range g.Segments {
			if _, found := l.RowMap[s.ID]; found {
				return Layout{}, fmt.Errorf("layout.Pack: duplicate segment ID %s in group %s", s.ID, g.ID)
			}
			l.RowMap[s.ID] = rows[gi]
		}
	}
	// One extra row of headroom for the labels of the last row.
	l.RowCount = maxRow + 2
	return l, nil
}

// verifyRows panics if two overlapping groups share a row.
func verifyRows(groups []*annotation.Group, rows []int, index *interval.SpanIndex) {
	for gi, g := range groups {
		for _, other := range index.Overlapping(g.Start, g.End()) {
			if other != gi && rows[other] == rows[gi] {
				panic(fmt.Sprintf("internal error: layout.Pack put overlapping groups %s and %s in row %d",
					g.ID, groups[other].ID, rows[gi]))
			}
		}
	}
}

// Assign returns a copy of every segment of groups, in group order, with Row
// set from l.
func Assign(groups []*annotation.Group, l Layout) ([]annotation.Segment, error) {
	n := 0
	for _, g := range groups {
		n += len(g.Segments)
	}
	segs := make([]annotation.Segment, 0, n)
	for _, g := range groups {
		for _, s := range g.Segments {
			row, ok := l.RowMap[s.ID]
			if !ok {
				return nil, fmt.Errorf("layout.Assign: segment %s of group %s has no row", s.ID, g.ID)
			}
			s.Row = row
			segs = append(segs, s)
		}
	}
	return segs, nil
}
