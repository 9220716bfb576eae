// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package annotation

import (
	"fmt"
	"strings"
)

// UnalignedStart is the blockStarts sentinel marking a block without a
// coordinate in the genome frame.
const UnalignedStart = -1

// Strand is the orientation of a repeat alignment.
type Strand int8

const (
	// Forward is the "+" strand.
	Forward Strand = iota
	// Reverse is the "-" strand.
	Reverse
)

// ParseStrand parses "+" or "-".
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	}
	return Forward, fmt.Errorf("annotation.ParseStrand: invalid strand %q", s)
}

// String returns "+" or "-".
func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// Record is one RepeatMasker joined alignment, as stored in the UCSC
// rmskJoined track.  Block i covers
// [ChromStart+BlockStarts[i], ChromStart+BlockStarts[i]+BlockSizes[i]) unless
// BlockStarts[i] is UnalignedStart.
type Record struct {
	ID         string
	Chrom      string
	ChromStart int
	ChromEnd   int
	Score      int
	Strand     Strand
	BlockCount int
	// BlockSizes may hold zero or negative values.  A negative size on an
	// unaligned block is the amount by which its neighbours overlap.
	BlockSizes  []int
	BlockStarts []int
	// Name is "subfamily#class/family".
	Name string
}

// Name is the decoded form of Record.Name.
type Name struct {
	Subfamily string
	Class     string
	Family    string
}

// ParseName splits "subfamily#class/family".  Class and family are optional;
// the subfamily is required.
func ParseName(s string) (Name, error) {
	var n Name
	parts := strings.SplitN(s, "#", 2)
	n.Subfamily = parts[0]
	if n.Subfamily == "" {
		return n, fmt.Errorf("annotation.ParseName: missing subfamily in %q", s)
	}
	if len(parts) > 1 {
		sub := strings.SplitN(parts[1], "/", 2)
		n.Class = sub[0]
		if len(sub) > 1 {
			n.Family = sub[1]
		}
	}
	return n, nil
}

// String reassembles the name in its record form.
func (n Name) String() string {
	switch {
	case n.Class == "" && n.Family == "":
		return n.Subfamily
	case n.Family == "":
		return n.Subfamily + "#" + n.Class
	}
	return n.Subfamily + "#" + n.Class + "/" + n.Family
}
