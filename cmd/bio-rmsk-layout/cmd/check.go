// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/grailbio/rmsk/annotation"
	"github.com/grailbio/rmsk/encoding/rmskbed"
	"github.com/grailbio/rmsk/pipeline"
)

// runCheck decodes all of path's records and prints the failures to w.  Row
// packing is not run, so records of different chromosomes never interact.
func runCheck(ctx context.Context, path string, w io.Writer) error {
	records, err := rmskbed.ReadFile(ctx, path)
	if err != nil {
		return err
	}
	res := pipeline.Decode(records, pipeline.DefaultOpts)
	counts := res.FailureCounts()
	codes := make([]int, 0, len(counts))
	for code := range counts {
		codes = append(codes, int(code))
	}
	sort.Ints(codes)
	for _, code := range codes {
		c := annotation.ErrorCode(code)
		fmt.Fprintf(w, "%s\t%d\n", c, counts[c])
		for _, f := range res.Failures {
			if got, _ := annotation.CodeOf(f.Err); got == c {
				fmt.Fprintf(w, "\t%v\n", f.Err)
			}
		}
	}
	fmt.Fprintf(w, "%d of %d record(s) ok\n", len(res.Groups), len(records))
	if len(res.Failures) > 0 {
		return fmt.Errorf("%s: %d record(s) failed", path, len(res.Failures))
	}
	return nil
}
