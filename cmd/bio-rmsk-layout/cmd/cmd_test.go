// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/rmsk/annotation"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBED = `chr1	10000	10468	(TAACCC)n#Simple_repeat	1504	+	10000	10468	0	3	0,468,0	-1,0,-1	1	(TAACCC)n
chr1	10300	10500	MER5A#DNA/hAT-Charlie	300	+	10300	10500	0	3	0,200,0	-1,0,-1	2	MER5A
chr1	20000	20100	Bad#Unknown	10	+	20000	20100	0	4	0,10,10,0	-1,-1,0,-1	3	Bad
chr2	500	800	AluY#SINE/Alu	2156	+	500	800	0	3	0,300,0	-1,0,-1	4	AluY
`

func writeInput(t *testing.T, dir string) string {
	path := filepath.Join(dir, "rmsk.bed")
	require.NoError(t, ioutil.WriteFile(path, []byte(testBED), 0600))
	return path
}

func defaultLayoutOpts() layoutOpts {
	return layoutOpts{labelWidth: 500, labelFreeSpace: 10000}
}

func TestLayout(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()
	in := writeInput(t, tempDir)

	opts := defaultLayoutOpts()
	opts.out = filepath.Join(tempDir, "out.tsv")
	opts.digest = true
	require.NoError(t, runLayout(ctx, opts, in))
	data, err := ioutil.ReadFile(opts.out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header, 2 segments for each of the 3 good records.
	require.Equal(t, 7, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "id\tgroup\tchrom"))

	rows := map[string]string{}
	for _, line := range lines[1:] {
		cols := strings.Split(line, "\t")
		rows[cols[1]] = cols[2] + ":" + cols[12]
	}
	assert.Equal(t, map[string]string{
		"group.1": "chr1:0",
		"group.2": "chr1:1",
		"group.4": "chr2:0",
	}, rows)

	opts.regions = "chr2:1-1000"
	require.NoError(t, runLayout(ctx, opts, in))
	data, err = ioutil.ReadFile(opts.out)
	require.NoError(t, err)
	expect.EQ(t, strings.Count(string(data), "\n"), 3)

	opts.regions = "chr2:5-1"
	assert.Error(t, runLayout(ctx, opts, in))
}

func TestCheck(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	in := writeInput(t, tempDir)

	var buf bytes.Buffer
	err := runCheck(context.Background(), in, &buf)
	assert.Error(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, annotation.MalformedRecord.String()+"\t1\n"), out)
	assert.Contains(t, out, "record 3:")
	assert.Contains(t, out, "3 of 4 record(s) ok")
}

func TestChromRegions(t *testing.T) {
	regions := chromRegions([]annotation.Record{{Chrom: "chr2"}, {Chrom: "chr1"}, {Chrom: "chr2"}})
	require.Equal(t, 2, len(regions))
	expect.EQ(t, regions[0].Chrom, "chr2")
	expect.EQ(t, regions[1].Chrom, "chr1")
}
