// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rmskbed

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/rmsk/annotation"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// bedRow is one line of an rmskJoined BED file.
type bedRow struct {
	Chrom       string
	ChromStart  int
	ChromEnd    int
	Name        string
	Score       int
	Strand      string
	AlignStart  int
	AlignEnd    int
	Reserved    string
	BlockCount  int
	BlockSizes  string
	BlockStarts string
	ID          string
	Description string
}

// parseIntList parses "1,2,3" or "1,2,3,".
func parseIntList(s string) ([]int, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ",")
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadBED reads rmskJoined BED records.  Syntax errors abort the read; block
// arrays that are merely inconsistent are left for annotation.Decompose to
// report.
func ReadBED(in io.Reader) ([]annotation.Record, error) {
	r := tsv.NewReader(bufio.NewReaderSize(in, 64<<10))
	r.Comment = '#'
	var (
		records []annotation.Record
		row     bedRow
	)
	for lineIdx := 1; ; lineIdx++ {
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "rmskbed.ReadBED: record %d", lineIdx)
		}
		strand, err := annotation.ParseStrand(row.Strand)
		if err != nil {
			return nil, errors.Wrapf(err, "rmskbed.ReadBED: record %d", lineIdx)
		}
		sizes, err := parseIntList(row.BlockSizes)
		if err != nil {
			return nil, errors.Wrapf(err, "rmskbed.ReadBED: record %d: blockSizes", lineIdx)
		}
		starts, err := parseIntList(row.BlockStarts)
		if err != nil {
			return nil, errors.Wrapf(err, "rmskbed.ReadBED: record %d: blockStarts", lineIdx)
		}
		if row.ID == "" {
			return nil, errors.Errorf("rmskbed.ReadBED: record %d has no id", lineIdx)
		}
		records = append(records, annotation.Record{
			ID:          row.ID,
			Chrom:       row.Chrom,
			ChromStart:  row.ChromStart,
			ChromEnd:    row.ChromEnd,
			Score:       row.Score,
			Strand:      strand,
			BlockCount:  row.BlockCount,
			BlockSizes:  sizes,
			BlockStarts: starts,
			Name:        row.Name,
		})
	}
	return records, nil
}

// jsonRecord is the wire form of a record in the JSON encoding.
type jsonRecord struct {
	ID          string `json:"id"`
	Chrom       string `json:"chrom"`
	ChromStart  int    `json:"chromStart"`
	ChromEnd    int    `json:"chromEnd"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Strand      string `json:"strand"`
	BlockCount  int    `json:"blockCount"`
	BlockSizes  []int  `json:"blockSizes"`
	BlockStarts []int  `json:"blockStarts"`
}

// ReadJSON reads a JSON array of records.
func ReadJSON(in io.Reader) ([]annotation.Record, error) {
	var raw []jsonRecord
	if err := json.NewDecoder(in).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "rmskbed.ReadJSON")
	}
	records := make([]annotation.Record, len(raw))
	for i, jr := range raw {
		if jr.ID == "" {
			return nil, errors.Errorf("rmskbed.ReadJSON: record %d has no id", i)
		}
		strand, err := annotation.ParseStrand(jr.Strand)
		if err != nil {
			return nil, errors.Wrapf(err, "rmskbed.ReadJSON: record %s", jr.ID)
		}
		records[i] = annotation.Record{
			ID:          jr.ID,
			Chrom:       jr.Chrom,
			ChromStart:  jr.ChromStart,
			ChromEnd:    jr.ChromEnd,
			Score:       jr.Score,
			Strand:      strand,
			BlockCount:  jr.BlockCount,
			BlockSizes:  jr.BlockSizes,
			BlockStarts: jr.BlockStarts,
			Name:        jr.Name,
		}
	}
	return records, nil
}

// isJSONPath checks whether path names a JSON file, compressed or not.
func isJSONPath(path string) bool {
	return strings.HasSuffix(strings.TrimSuffix(path, ".gz"), ".json")
}

// ReadFile reads the records in path.  "*.json" and "*.json.gz" are read as
// JSON, everything else as BED.
func ReadFile(ctx context.Context, path string) (records []annotation.Record, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.Wrapf(err, "rmskbed.ReadFile: open %s", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return nil, errors.Wrapf(err, "rmskbed.ReadFile: %s", path)
		}
		defer gz.Close() // nolint: errcheck
		reader = gz
	}
	if isJSONPath(path) {
		records, err = ReadJSON(reader)
	} else {
		records, err = ReadBED(reader)
	}
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	log.Printf("rmskbed: %s: read %d record(s)", path, len(records))
	return records, nil
}
