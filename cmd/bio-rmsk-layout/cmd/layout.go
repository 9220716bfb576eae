// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/rmsk/annotation"
	"github.com/grailbio/rmsk/encoding/rmskbed"
	"github.com/grailbio/rmsk/interval"
	"github.com/grailbio/rmsk/pipeline"
)

type layoutOpts struct {
	// regions is the -regions flag.  Empty means one region per chromosome.
	regions string
	// out is the output path.  Empty means stdout.
	out            string
	parallelism    int
	labelWidth     int
	labelFreeSpace int
	// digest logs Result.Fingerprint for every region.
	digest bool
}

// chromRegions returns one whole-chromosome region per chromosome, in order
// of first appearance.
func chromRegions(records []annotation.Record) []interval.Region {
	var regions []interval.Region
	seen := map[string]bool{}
	for _, r := range records {
		if !seen[r.Chrom] {
			seen[r.Chrom] = true
			regions = append(regions, interval.Region{Chrom: r.Chrom, Start0: 0, End: interval.PosMax})
		}
	}
	return regions
}

func runLayout(ctx context.Context, opts layoutOpts, path string) (err error) {
	src, err := rmskbed.OpenFileSource(ctx, path)
	if err != nil {
		return err
	}
	var regions []interval.Region
	if opts.regions != "" {
		if regions, err = interval.ParseRegionsString(opts.regions); err != nil {
			return errors.E(errors.Invalid, err, "-regions")
		}
	} else {
		regions = chromRegions(src.Records())
	}
	results, err := pipeline.RunQueries(ctx, src, regions, pipelineOpts(opts))
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if opts.out != "" {
		var dst file.File
		if dst, err = file.Create(ctx, opts.out); err != nil {
			return errors.E(err, "create", opts.out)
		}
		defer file.CloseAndReport(ctx, dst, &err)
		out = dst.Writer(ctx)
	}
	w := rmskbed.NewWriter(out)
	nSkipped := 0
	for _, res := range results {
		if err = w.Write(res.Region.Chrom, res.Segments); err != nil {
			return err
		}
		nSkipped += len(res.Failures)
		for _, f := range res.Failures {
			log.Debug.Printf("%v: skipped: %v", res.Region, f.Err)
		}
		if opts.digest {
			log.Printf("%v: %d group(s), %d row(s), fingerprint %016x", res.Region, len(res.Groups), res.RowCount, res.Fingerprint())
		}
	}
	if nSkipped > 0 {
		log.Printf("%s: %d record(s) skipped; run 'check' for details", path, nSkipped)
	}
	return w.Flush()
}
