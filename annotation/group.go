// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package annotation

// Group holds the Segments decoded from one Record.
//
// The group span [Start, Start+Width) is the record's [chromStart, chromEnd).
// It is what row packing tests for overlap.  The aligned span covers the
// Aligned segments only, and is used only to order groups before packing.
type Group struct {
	ID       string
	Start    int
	Width    int
	Segments []Segment

	aligned      bool
	alignedStart int
	alignedEnd   int
}

// GroupID returns the ID of the group decoded from the record with the given
// ID.
func GroupID(recordID string) string { return "group." + recordID }

func alignedSpan(segs []Segment) (start, end int, ok bool) {
	for _, s := range segs {
		if s.Type != Aligned {
			continue
		}
		if !ok || s.Start < start {
			start = s.Start
		}
		if !ok || s.End() > end {
			end = s.End()
		}
		ok = true
	}
	return
}

// NewGroup creates a Group spanning [start, end).  segs must contain at least
// one Aligned segment; otherwise an EmptyAlignedSet error is returned.
func NewGroup(id string, start, end int, segs []Segment) (*Group, error) {
	g := &Group{ID: id, Start: start, Width: end - start, Segments: segs}
	if g.alignedStart, g.alignedEnd, g.aligned = alignedSpan(segs); !g.aligned {
		return nil, newError(EmptyAlignedSet, id, "no aligned segment among %d segment(s)", len(segs))
	}
	return g, nil
}

// End returns Start+Width.
func (g *Group) End() int { return g.Start + g.Width }

// AlignedSpan returns the smallest [start, end) covering every Aligned
// segment.  ok is false if the group holds no aligned segment, which can only
// happen for a Group literal that didn't go through NewGroup.
func (g *Group) AlignedSpan() (start, end int, ok bool) {
	if g.aligned {
		return g.alignedStart, g.alignedEnd, true
	}
	return alignedSpan(g.Segments)
}

// AlignedWidth is the row packing sort key: the length of AlignedSpan.
func (g *Group) AlignedWidth() (int, bool) {
	start, end, ok := g.AlignedSpan()
	return end - start, ok
}

// Label returns the group's label segment, if any.
func (g *Group) Label() (Segment, bool) {
	for _, s := range g.Segments {
		if s.Type == Label {
			return s, true
		}
	}
	return Segment{}, false
}
