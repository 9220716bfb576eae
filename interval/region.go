// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PosMax is the exclusive end of a region with no positional restriction.
const PosMax = math.MaxInt32 - 1

// Region is a genomic query range, with 0-based half-open coordinates.
type Region struct {
	Chrom  string
	Start0 int
	End    int
}

// Overlaps checks whether [start, end) on chrom intersects the region.
func (r Region) Overlaps(chrom string, start, end int) bool {
	return chrom == r.Chrom && start < r.End && r.Start0 < end
}

// String formats the region as [chrom]:[1-based first pos]-[last pos].
func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start0+1, r.End)
}

// parsePos parses a 1-based position, ignoring digit-grouping commas.
func parsePos(s string) (int, error) {
	pos, err := strconv.Atoi(strings.Replace(s, ",", "", -1))
	if err != nil {
		return 0, err
	}
	if pos <= 0 || pos > PosMax {
		return 0, fmt.Errorf("position %s out of range", s)
	}
	return pos, nil
}

// ParseRegionString parses a samtools-style region: "chrom", "chrom:pos" or
// "chrom:first-last", with 1-based inclusive positions.  A bare chromosome
// covers [0, PosMax).
func ParseRegionString(region string) (Region, error) {
	colon := strings.IndexByte(region, ':')
	if colon < 0 {
		if region == "" {
			return Region{}, fmt.Errorf("interval.ParseRegionString: empty region string")
		}
		return Region{Chrom: region, End: PosMax}, nil
	}
	r := Region{Chrom: region[:colon]}
	if r.Chrom == "" {
		return Region{}, fmt.Errorf("interval.ParseRegionString: %q: empty chromosome", region)
	}
	first, last := region[colon+1:], ""
	dash := strings.IndexByte(first, '-')
	if dash >= 0 {
		first, last = first[:dash], first[dash+1:]
	}
	start1, err := parsePos(first)
	if err != nil {
		return Region{}, fmt.Errorf("interval.ParseRegionString: %q: %v", region, err)
	}
	end := start1
	if dash >= 0 {
		if end, err = parsePos(last); err != nil {
			return Region{}, fmt.Errorf("interval.ParseRegionString: %q: %v", region, err)
		}
		if end < start1 {
			return Region{}, fmt.Errorf("interval.ParseRegionString: %q: inverted range", region)
		}
	}
	r.Start0, r.End = start1-1, end
	return r, nil
}

// ParseRegionsString parses a list of regions separated by ';' or spaces.
// Commas are reserved for digit grouping, as in "chr1:1,000-2,000".
func ParseRegionsString(regions string) ([]Region, error) {
	var out []Region
	for _, field := range strings.FieldsFunc(regions, func(r rune) bool { return r == ';' || r == ' ' }) {
		r, err := ParseRegionString(field)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
