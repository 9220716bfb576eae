// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package layout

import (
	"sort"

	"github.com/grailbio/rmsk/annotation"
)

// DefaultLabelFreeSpace is how far, in genomic units, a label with no left
// neighbour in its row is extended to the left.
const DefaultLabelFreeSpace = 10000

// LabelAdjustment is the new geometry of one label segment.
type LabelAdjustment struct {
	ID    string
	Start int
	Width int
}

// PlaceLabels computes label geometry from row-stamped segments.
//
// Within each row, segments are ordered by start (ties keep their order in
// segs).  A label with a left neighbour starts right after the neighbour's
// end; a label with none is extended left by freeSpace.  The end of a label
// never moves, so its width absorbs the change and may become zero or
// negative when the neighbour leaves no room.
//
// Adjustments are returned ordered by row, then by position in the row.
func PlaceLabels(segs []annotation.Segment, freeSpace int) []LabelAdjustment {
	byRow := make(map[int][]int)
	for i, s := range segs {
		byRow[s.Row] = append(byRow[s.Row], i)
	}
	rows := make([]int, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	// Geometry as updated so far; an adjusted label is the left neighbour of
	// whatever follows it.
	starts := make([]int, len(segs))
	ends := make([]int, len(segs))
	for i, s := range segs {
		starts[i], ends[i] = s.Start, s.End()
	}

	var adj []LabelAdjustment
	for _, row := range rows {
		idx := byRow[row]
		sort.SliceStable(idx, func(i, j int) bool {
			return segs[idx[i]].Start < segs[idx[j]].Start
		})
		for k, i := range idx {
			if segs[i].Type != annotation.Label {
				continue
			}
			if k > 0 {
				starts[i] = ends[idx[k-1]] + 1
			} else {
				starts[i] -= freeSpace
			}
			adj = append(adj, LabelAdjustment{ID: segs[i].ID, Start: starts[i], Width: ends[i] - starts[i]})
		}
	}
	return adj
}

// ApplyLabels returns a copy of segs with the adjustments applied.
func ApplyLabels(segs []annotation.Segment, adj []LabelAdjustment) []annotation.Segment {
	byID := make(map[string]LabelAdjustment, len(adj))
	for _, a := range adj {
		byID[a.ID] = a
	}
	out := make([]annotation.Segment, len(segs))
	copy(out, segs)
	for i := range out {
		if a, ok := byID[out[i].ID]; ok && out[i].Type == annotation.Label {
			out[i].Start = a.Start
			out[i].Width = a.Width
		}
	}
	return out
}
