// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"github.com/grailbio/rmsk/annotation"
	"github.com/stretchr/testify/assert"
)

func seg(id string, typ annotation.Type, row, start, width int) annotation.Segment {
	return annotation.Segment{ID: id, Type: typ, Row: row, Start: start, Width: width}
}

func TestPlaceLabels(t *testing.T) {
	segs := []annotation.Segment{
		seg("a.1", annotation.Aligned, 0, 1000, 200),
		seg("b.0", annotation.Label, 0, 1300, 500),
		seg("a.0", annotation.Label, 0, 500, 500),
		seg("c.0", annotation.Label, 1, 2000, 500),
		seg("c.1", annotation.Aligned, 1, 2500, 100),
	}
	adj := PlaceLabels(segs, DefaultLabelFreeSpace)
	assert.Equal(t, []LabelAdjustment{
		{"a.0", -9500, 10500},
		{"b.0", 1201, 599},
		{"c.0", -8000, 10500},
	}, adj)

	out := ApplyLabels(segs, adj)
	assert.Equal(t, 1201, out[1].Start)
	assert.Equal(t, 1800, out[1].End())
	assert.Equal(t, -9500, out[2].Start)
	assert.Equal(t, 1000, out[2].End())
	assert.Equal(t, segs[0], out[0])
	// The input is left alone.
	assert.Equal(t, 1300, segs[1].Start)
}

func TestPlaceLabelsChained(t *testing.T) {
	segs := []annotation.Segment{
		seg("x.0", annotation.Label, 2, 0, 500),
		seg("y.0", annotation.Label, 2, 100, 500),
		// Same start as y.0's neighbour candidate; order in segs decides.
		seg("z.1", annotation.Aligned, 3, 700, 50),
		seg("z.0", annotation.Label, 3, 700, 500),
	}
	adj := PlaceLabels(segs, 100)
	assert.Equal(t, []LabelAdjustment{
		{"x.0", -100, 600},
		{"y.0", 501, 99},
		{"z.0", 751, 449},
	}, adj)
}

func TestPlaceLabelsNoRoom(t *testing.T) {
	segs := []annotation.Segment{
		seg("a.1", annotation.Aligned, 0, 0, 2000),
		seg("b.0", annotation.Label, 0, 1000, 500),
	}
	adj := PlaceLabels(segs, DefaultLabelFreeSpace)
	assert.Equal(t, []LabelAdjustment{{"b.0", 2001, -501}}, adj)
}
