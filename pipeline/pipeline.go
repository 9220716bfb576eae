// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pipeline turns the RepeatMasker records of a query into laid-out
// segments: decomposition, row packing, row assignment and label placement.
package pipeline

import (
	"context"
	"runtime"
	"strconv"

	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/rmsk/annotation"
	"github.com/grailbio/rmsk/interval"
	"github.com/grailbio/rmsk/layout"
)

// Opts controls Run and RunQueries.
type Opts struct {
	// Decompose is passed to annotation.Decompose.
	Decompose annotation.Opts
	// LabelFreeSpace is passed to layout.PlaceLabels.
	LabelFreeSpace int
	// Parallelism bounds the number of queries RunQueries processes at once.
	// 0 means runtime.NumCPU().
	Parallelism int
}

// DefaultOpts is the default Opts value.
var DefaultOpts = Opts{
	Decompose:      annotation.DefaultOpts,
	LabelFreeSpace: layout.DefaultLabelFreeSpace,
}

// Failure is a record that was skipped.
type Failure struct {
	RecordID string
	// Err is an *annotation.Error.
	Err error
}

// Result is the laid-out form of one query.
type Result struct {
	// Region is the query region.  It is only set by RunQueries.
	Region interval.Region
	// Groups holds one group per successfully decoded record, in input
	// order.  Their segments carry no row.
	Groups []*annotation.Group
	// Segments is the final, flat segment list: rows assigned and labels
	// placed.
	Segments []annotation.Segment
	// RowCount is layout.Layout.RowCount.
	RowCount int
	// Failures lists the skipped records, in input order.
	Failures []Failure
}

// Decode runs only the decomposition step of Run.  The result has Groups and
// Failures set.
func Decode(records []annotation.Record, opts Opts) *Result {
	res := &Result{Groups: make([]*annotation.Group, 0, len(records))}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			res.fail(r.ID, &annotation.Error{Code: annotation.MalformedRecord, RecordID: r.ID, Msg: "duplicate record ID"})
			continue
		}
		seen[r.ID] = true
		g, err := annotation.Decompose(r, opts.Decompose)
		if err != nil {
			res.fail(r.ID, err)
			continue
		}
		res.Groups = append(res.Groups, g)
	}
	return res
}

// Run lays out one query's records.  Records that fail to decode, and records
// whose ID was already seen, are reported in Result.Failures and skipped.  The
// returned error is non-nil only if layout itself fails.
func Run(records []annotation.Record, opts Opts) (*Result, error) {
	res := Decode(records, opts)
	l, err := layout.Pack(res.Groups)
	if err != nil {
		return nil, errors.E(errors.Invalid, "pipeline.Run: pack", err)
	}
	segs, err := layout.Assign(res.Groups, l)
	if err != nil {
		return nil, errors.E(errors.Invalid, "pipeline.Run: assign", err)
	}
	res.Segments = layout.ApplyLabels(segs, layout.PlaceLabels(segs, opts.LabelFreeSpace))
	res.RowCount = l.RowCount
	return res, nil
}

func (r *Result) fail(id string, err error) {
	log.Debug.Printf("pipeline: skipping record %s: %v", id, err)
	r.Failures = append(r.Failures, Failure{RecordID: id, Err: err})
}

// FailureCounts counts the failures by error code.
func (r *Result) FailureCounts() map[annotation.ErrorCode]int {
	counts := make(map[annotation.ErrorCode]int)
	for _, f := range r.Failures {
		code, _ := annotation.CodeOf(f.Err)
		counts[code]++
	}
	return counts
}

// Fingerprint hashes the ID, type, geometry and row of every segment, in
// order.  Two runs over the same records produce the same fingerprint.
func (r *Result) Fingerprint() uint64 {
	buf := make([]byte, 0, 64*len(r.Segments))
	for _, s := range r.Segments {
		buf = append(buf, s.ID...)
		buf = append(buf, '\t')
		buf = append(buf, s.Type.String()...)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(s.Start), 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(s.Width), 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(s.Row), 10)
		buf = append(buf, '\n')
	}
	buf = strconv.AppendInt(buf, int64(r.RowCount), 10)
	return farm.Fingerprint64(buf)
}

// Source supplies the records of a genomic region.
type Source interface {
	Fetch(ctx context.Context, region interval.Region) ([]annotation.Record, error)
}

// RunQueries fetches and lays out each region independently.  Results are
// returned in the order of regions.  Up to opts.Parallelism regions are
// processed at once.
func RunQueries(ctx context.Context, src Source, regions []interval.Region, opts Opts) ([]*Result, error) {
	results := make([]*Result, len(regions))
	if len(regions) == 0 {
		return results, nil
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(regions) {
		parallelism = len(regions)
	}
	err := traverse.Each(parallelism, func(jobIdx int) error {
		for i := jobIdx; i < len(regions); i += parallelism {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := src.Fetch(ctx, regions[i])
			if err != nil {
				return errors.E(err, "fetch", regions[i].String())
			}
			res, err := Run(records, opts)
			if err != nil {
				return errors.E(err, regions[i].String())
			}
			res.Region = regions[i]
			log.Debug.Printf("pipeline: %v: %d record(s), %d segment(s), %d row(s), %d skipped",
				regions[i], len(records), len(res.Segments), res.RowCount, len(res.Failures))
			results[i] = res
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
