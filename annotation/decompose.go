// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package annotation

import "strconv"

// Opts controls Decompose.
type Opts struct {
	// LabelWidth is the width reserved for the label segment, immediately
	// left of the first aligned block.
	LabelWidth int
}

// DefaultOpts is the default Opts value.
var DefaultOpts = Opts{
	LabelWidth: 500,
}

// block is a segment under construction, in record-relative coordinates.
type block struct {
	start, width int
	typ          Type
}

// validate checks the block arrays.  On success it returns the index of the
// first aligned block.
func validate(r *Record) (int, error) {
	if r.BlockCount < 2 {
		return 0, newError(MalformedRecord, r.ID, "blockCount %d < 2", r.BlockCount)
	}
	if len(r.BlockSizes) != r.BlockCount || len(r.BlockStarts) != r.BlockCount {
		return 0, newError(MalformedRecord, r.ID, "blockCount %d, but %d blockSizes and %d blockStarts",
			r.BlockCount, len(r.BlockSizes), len(r.BlockStarts))
	}
	if r.ChromStart < 0 || r.ChromStart >= r.ChromEnd {
		return 0, newError(MalformedRecord, r.ID, "invalid span [%d, %d)", r.ChromStart, r.ChromEnd)
	}
	last := r.BlockCount - 1
	firstAligned := -1
	for i, start := range r.BlockStarts {
		if start < UnalignedStart {
			return 0, newError(MalformedRecord, r.ID, "blockStarts[%d] = %d", i, start)
		}
		if start != UnalignedStart {
			if i > 0 && i < last {
				if r.BlockSizes[i] <= 0 {
					return 0, newError(MalformedRecord, r.ID, "aligned block %d has size %d", i, r.BlockSizes[i])
				}
				if firstAligned < 0 {
					firstAligned = i
				}
			}
			continue
		}
		// An inner unaligned block is placed relative to the aligned blocks on
		// both sides, so neither neighbour may be a sentinel.
		if i > 0 && i < last && (r.BlockStarts[i-1] == UnalignedStart || r.BlockStarts[i+1] == UnalignedStart) {
			return 0, newError(MalformedRecord, r.ID, "unaligned sentinel at non-edge index %d has no aligned neighbour", i)
		}
	}
	if firstAligned < 0 {
		return 0, newError(EmptyAlignedSet, r.ID, "none of %d block(s) is aligned", r.BlockCount)
	}
	return firstAligned, nil
}

// Decompose derives the typed segments of r and returns them as a Group.
//
// The segments are emitted in this order: the left unaligned flank (if any),
// the label, the right unaligned flank (if any), then the interior blocks
// from left to right.  The first and last blocks only ever describe flanks.
//
// Errors are of type *Error.
func Decompose(r Record, opts Opts) (*Group, error) {
	firstAligned, err := validate(&r)
	if err != nil {
		return nil, err
	}
	name, err := ParseName(r.Name)
	if err != nil {
		return nil, newError(MalformedRecord, r.ID, "%v", err)
	}

	sizes, starts := r.BlockSizes, r.BlockStarts
	last := r.BlockCount - 1
	blocks := make([]block, 0, 2*r.BlockCount)

	if sizes[0] > 0 && starts[0] == UnalignedStart {
		blocks = append(blocks, block{0, sizes[0], LeftUnaligned})
	}
	// The label must come after the left flank and before everything else.
	blocks = append(blocks, block{starts[firstAligned] - opts.LabelWidth, opts.LabelWidth, Label})

	if sizes[last] > 0 && starts[last] == UnalignedStart {
		penultimateEnd := starts[last-1] + sizes[last-1]
		blocks = append(blocks, block{penultimateEnd, sizes[last], RightUnaligned})
	}

	for i := 1; i < last; i++ {
		size, start := sizes[i], starts[i]
		if start != UnalignedStart {
			blocks = append(blocks, block{start, size, Aligned})
			continue
		}
		prevEnd := starts[i-1] + sizes[i-1]
		nextStart := starts[i+1]
		gap := nextStart - prevEnd

		switch {
		case size > 0 && gap < size:
			// The unaligned block doesn't fit in the gap, so it overlaps both
			// neighbours by half the excess.  The joins become zero-length
			// markers pointing back at the overlap.
			overlap := (size - gap) / 2
			blocks = append(blocks,
				block{prevEnd - overlap, size, InnerUnaligned},
				block{prevEnd + 1, -overlap, LeftJoining},
				block{nextStart + overlap, -overlap, RightJoining})
		case size > 0:
			// Center the block in the gap; the joins take up the slack.
			join := (gap - size) / 2
			innerStart := prevEnd + join
			blocks = append(blocks,
				block{innerStart, size, InnerUnaligned},
				block{prevEnd + 1, join, LeftJoining},
				block{innerStart + size, join, RightJoining})
		default:
			// Join only.  A negative size is the amount the neighbours overlap.
			join := (gap - size) / 2
			leftStart := prevEnd + size
			if leftStart < 0 {
				leftStart = 0
			}
			blocks = append(blocks,
				block{leftStart, join, LeftJoining},
				block{leftStart + join, join, RightJoining})
		}
	}

	segs := make([]Segment, len(blocks))
	groupID := GroupID(r.ID)
	for i, b := range blocks {
		start := r.ChromStart + b.start - 1
		if start < 0 && b.typ != Label {
			return nil, newError(NegativeCoordinate, r.ID, "%v segment %d starts at %d", b.typ, i, start)
		}
		segs[i] = Segment{
			ID:            r.ID + "." + strconv.Itoa(i),
			GroupID:       groupID,
			Start:         start,
			Width:         b.width,
			Type:          b.typ,
			ClassName:     name.Class,
			FamilyName:    name.Family,
			SubfamilyName: name.Subfamily,
			Score:         r.Score,
			Strand:        r.Strand,
		}
	}
	return NewGroup(groupID, r.ChromStart, r.ChromEnd, segs)
}
