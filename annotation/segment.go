// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package annotation

import "fmt"

// Type discriminates the kinds of Segment produced by Decompose.
type Type uint8

const (
	// Aligned is a block with a known genomic coordinate.
	Aligned Type = iota
	// LeftUnaligned is the unaligned flank before the first aligned block.
	LeftUnaligned
	// RightUnaligned is the unaligned flank after the last aligned block.
	RightUnaligned
	// InnerUnaligned is an unaligned block between two aligned blocks.
	InnerUnaligned
	// LeftJoining connects an aligned block to the unaligned block on its
	// right.
	LeftJoining
	// RightJoining connects an unaligned block to the aligned block on its
	// right.
	RightJoining
	// Label reserves room for the subfamily name.
	Label

	numTypes
)

var typeNames = [numTypes]string{
	"aligned",
	"left-unaligned",
	"right-unaligned",
	"inner-unaligned",
	"left-joining",
	"right-joining",
	"label",
}

func (t Type) String() string {
	if t >= numTypes {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// ParseType is the inverse of Type.String.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("annotation.ParseType: unknown segment type %q", s)
}

// Segment is one typed sub-interval of a Record.
//
// Joining segments may have a negative Width.  They are zero-length
// connectors in that case, and the sign encodes the direction the connector
// is drawn in.
type Segment struct {
	// ID is "<record id>.<index>", where index is the emission order within
	// the record.
	ID string
	// GroupID is the ID of the Group the segment belongs to.
	GroupID string
	Start   int
	Width   int
	Type    Type

	ClassName     string
	FamilyName    string
	SubfamilyName string
	Score         int
	Strand        Strand

	// Row is assigned by layout.Assign.  It is zero until then.
	Row int
}

// End returns Start+Width.
func (s Segment) End() int { return s.Start + s.Width }
