// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rmskbed

import (
	"context"
	"sort"

	"github.com/grailbio/base/log"
	"github.com/grailbio/rmsk/annotation"
	"github.com/grailbio/rmsk/interval"
)

// FileSource answers region queries from an in-memory record list.  It
// implements pipeline.Source.  It is safe for concurrent use once built.
type FileSource struct {
	records []annotation.Record
	byChrom map[string]*interval.SpanIndex
	// unindexed lists, per chromosome, the records whose span couldn't be
	// indexed.
	unindexed map[string][]int
}

// NewFileSource indexes records by chromosome and span.  A record with an
// inverted span can't be indexed; it is returned by every Fetch on its
// chromosome, so that decomposition reports it.
func NewFileSource(records []annotation.Record) *FileSource {
	s := &FileSource{
		records:   records,
		byChrom:   make(map[string]*interval.SpanIndex),
		unindexed: make(map[string][]int),
	}
	for i, r := range records {
		idx := s.byChrom[r.Chrom]
		if idx == nil {
			idx = &interval.SpanIndex{}
			s.byChrom[r.Chrom] = idx
		}
		if err := idx.Insert(i, r.ChromStart, r.ChromEnd); err != nil {
			log.Debug.Printf("rmskbed: record %s: %v", r.ID, err)
			s.unindexed[r.Chrom] = append(s.unindexed[r.Chrom], i)
		}
	}
	return s
}

// OpenFileSource reads path with ReadFile and indexes the records.
func OpenFileSource(ctx context.Context, path string) (*FileSource, error) {
	records, err := ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewFileSource(records), nil
}

// Records returns every record, in file order.
func (s *FileSource) Records() []annotation.Record { return s.records }

// Fetch returns the records whose [chromStart, chromEnd) overlaps region, in
// file order, plus any unindexable records on region's chromosome.
func (s *FileSource) Fetch(ctx context.Context, region interval.Region) ([]annotation.Record, error) {
	idx := s.byChrom[region.Chrom]
	if idx == nil {
		return nil, nil
	}
	keys := idx.Overlapping(region.Start0, region.End)
	if bad := s.unindexed[region.Chrom]; len(bad) > 0 {
		keys = append(keys, bad...)
		sort.Ints(keys)
	}
	out := make([]annotation.Record, len(keys))
	for i, k := range keys {
		out[i] = s.records[k]
	}
	return out, nil
}
