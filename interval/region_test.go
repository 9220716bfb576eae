// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestParseRegionString(t *testing.T) {
	tests := []struct {
		region string
		chrom  string
		start0 int
		end    int
	}{
		{
			"chr1:1-1000",
			"chr1",
			0,
			1000,
		},
		{
			"chr1:1000",
			"chr1",
			999,
			1000,
		},
		{
			"chr1",
			"chr1",
			0,
			PosMax,
		},
		{
			"chrX:1,000,001-1,250,000",
			"chrX",
			1000000,
			1250000,
		},
	}

	for _, tt := range tests {
		result, err := ParseRegionString(tt.region)
		expect.NoError(t, err)
		expect.EQ(t, tt.chrom, result.Chrom)
		expect.EQ(t, tt.start0, result.Start0)
		expect.EQ(t, tt.end, result.End)
	}
}

func TestParseRegionStringErrors(t *testing.T) {
	for _, region := range []string{"", ":1-10", "chr1:0", "chr1:0-10", "chr1:10-5", "chr1:a-b", "chr1:5-x", "chr1:5-", "chr1:", "chr1:-5"} {
		_, err := ParseRegionString(region)
		expect.NotNil(t, err, region)
	}
}

func TestParseRegionsString(t *testing.T) {
	regions, err := ParseRegionsString("chr1:1-100;chr2:50-60 chr3")
	expect.NoError(t, err)
	expect.EQ(t, regions, []Region{
		{"chr1", 0, 100},
		{"chr2", 49, 60},
		{"chr3", 0, PosMax},
	})
	expect.EQ(t, regions[1].String(), "chr2:50-60")

	_, err = ParseRegionsString("chr1:1-100;:5")
	expect.NotNil(t, err)
}

func TestRegionOverlaps(t *testing.T) {
	r := Region{"chr1", 100, 200}
	expect.True(t, r.Overlaps("chr1", 150, 160))
	expect.True(t, r.Overlaps("chr1", 0, 101))
	expect.True(t, r.Overlaps("chr1", 199, 300))
	expect.False(t, r.Overlaps("chr1", 0, 100))
	expect.False(t, r.Overlaps("chr1", 200, 300))
	expect.False(t, r.Overlaps("chr2", 150, 160))
}
