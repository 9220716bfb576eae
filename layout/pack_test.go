// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/grailbio/rmsk/annotation"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGroup returns a group spanning [start, end) whose aligned span is
// [start, start+alignedWidth), with a label in front of it.
func newGroup(t *testing.T, id string, start, end, alignedWidth int) *annotation.Group {
	segs := []annotation.Segment{
		{ID: id + ".0", GroupID: "group." + id, Type: annotation.Label, Start: start - 500, Width: 500},
		{ID: id + ".1", GroupID: "group." + id, Type: annotation.Aligned, Start: start, Width: alignedWidth},
	}
	g, err := annotation.NewGroup("group."+id, start, end, segs)
	require.NoError(t, err)
	return g
}

func rowsOf(l Layout, groups []*annotation.Group) []int {
	rows := make([]int, len(groups))
	for i, g := range groups {
		rows[i] = l.RowMap[g.ID]
	}
	return rows
}

func TestPack(t *testing.T) {
	groups := []*annotation.Group{
		newGroup(t, "a", 0, 100, 80),
		newGroup(t, "b", 50, 150, 90),
		newGroup(t, "c", 120, 200, 10),
		newGroup(t, "d", 300, 400, 50),
	}
	l, err := Pack(groups)
	require.NoError(t, err)
	// Placement order is b, a, d, c.
	assert.Equal(t, []int{1, 0, 1, 0}, rowsOf(l, groups))
	assert.Equal(t, 3, l.RowCount)

	for _, g := range groups {
		for _, s := range g.Segments {
			row, ok := l.Row(s.ID)
			expect.True(t, ok)
			expect.EQ(t, row, l.RowMap[g.ID])
		}
	}
	_, ok := l.Row("nonexistent")
	expect.False(t, ok)
}

func TestPackTouching(t *testing.T) {
	groups := []*annotation.Group{
		newGroup(t, "a", 0, 100, 100),
		newGroup(t, "b", 100, 200, 100),
	}
	l, err := Pack(groups)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, rowsOf(l, groups))
	assert.Equal(t, 2, l.RowCount)
}

func TestPackTies(t *testing.T) {
	x := newGroup(t, "x", 0, 100, 50)
	y := newGroup(t, "y", 10, 110, 50)
	z := newGroup(t, "z", 20, 120, 50)

	l, err := Pack([]*annotation.Group{x, y, z})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, rowsOf(l, []*annotation.Group{x, y, z}))

	l, err = Pack([]*annotation.Group{z, y, x})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, rowsOf(l, []*annotation.Group{z, y, x}))
	assert.Equal(t, 4, l.RowCount)
}

func TestPackEmpty(t *testing.T) {
	l, err := Pack(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, l.RowCount)
	assert.Empty(t, l.RowMap)
}

func TestPackErrors(t *testing.T) {
	bare := &annotation.Group{ID: "group.bare", Start: 0, Width: 10,
		Segments: []annotation.Segment{{ID: "bare.0", Type: annotation.Label, Start: -500, Width: 500}}}
	_, err := Pack([]*annotation.Group{newGroup(t, "a", 0, 100, 10), bare})
	code, ok := annotation.CodeOf(err)
	assert.True(t, ok, "%v", err)
	assert.Equal(t, annotation.EmptyAlignedSet, code)

	_, err = Pack([]*annotation.Group{newGroup(t, "a", 0, 100, 10), newGroup(t, "a", 500, 600, 10)})
	assert.Error(t, err)
}

func randomGroups(t *testing.T, rnd *rand.Rand, n int) []*annotation.Group {
	groups := make([]*annotation.Group, n)
	for i := range groups {
		start := rnd.Intn(50000)
		end := start + 1 + rnd.Intn(3000)
		groups[i] = newGroup(t, fmt.Sprintf("g%d", i), start, end, 1+rnd.Intn(end-start))
	}
	return groups
}

func overlaps(a, b *annotation.Group) bool {
	return a.Start < b.End() && b.Start < a.End()
}

func TestPackRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for iter := 0; iter < 20; iter++ {
		groups := randomGroups(t, rnd, 200)
		l, err := Pack(groups)
		require.NoError(t, err)

		maxDegree := 0
		for i, a := range groups {
			degree := 0
			for j, b := range groups {
				if i == j || !overlaps(a, b) {
					continue
				}
				degree++
				if l.RowMap[a.ID] == l.RowMap[b.ID] {
					t.Fatalf("%s and %s overlap in row %d", a.ID, b.ID, l.RowMap[a.ID])
				}
			}
			if degree > maxDegree {
				maxDegree = degree
			}
		}
		// Greedy coloring never needs more than maxDegree+1 colors; plus the
		// headroom row.
		expect.LE(t, l.RowCount, maxDegree+2)

		again, err := Pack(groups)
		require.NoError(t, err)
		assert.Equal(t, l, again)
	}
}

func TestAssign(t *testing.T) {
	groups := []*annotation.Group{
		newGroup(t, "a", 0, 100, 80),
		newGroup(t, "b", 50, 150, 90),
	}
	l, err := Pack(groups)
	require.NoError(t, err)
	segs, err := Assign(groups, l)
	require.NoError(t, err)
	require.Equal(t, 4, len(segs))
	assert.Equal(t, "a.0", segs[0].ID)
	assert.Equal(t, 1, segs[0].Row)
	assert.Equal(t, 1, segs[1].Row)
	assert.Equal(t, 0, segs[2].Row)
	assert.Equal(t, 0, segs[3].Row)
	// The groups themselves are untouched.
	assert.Equal(t, 0, groups[0].Segments[0].Row)

	delete(l.RowMap, "b.1")
	_, err = Assign(groups, l)
	assert.Error(t, err)
}
