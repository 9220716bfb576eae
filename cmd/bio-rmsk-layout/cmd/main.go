// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/rmsk/annotation"
	"github.com/grailbio/rmsk/layout"
	"github.com/grailbio/rmsk/pipeline"
	"v.io/x/lib/cmdline"
)

func newCmdLayout() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "layout",
		Short:    "Decompose records and assign display rows",
		ArgsName: "path",
	}
	opts := layoutOpts{}
	cmd.Flags.StringVar(&opts.regions, "regions", "", `A ';'-separated list of regions to lay out, each
in the form 'chr', 'chr:pos' or 'chr:begin-end' (1-based, closed).
By default every chromosome of the input is one region.`)
	cmd.Flags.StringVar(&opts.out, "out", "", "Output TSV path. Defaults to stdout")
	cmd.Flags.IntVar(&opts.parallelism, "parallelism", 0, "Maximum number of regions laid out at once; 0 = runtime.NumCPU()")
	cmd.Flags.IntVar(&opts.labelWidth, "label-width", annotation.DefaultOpts.LabelWidth, "Width reserved for each label before the first aligned block")
	cmd.Flags.IntVar(&opts.labelFreeSpace, "label-free-space", layout.DefaultLabelFreeSpace, "Extra room given to a label with no left neighbour in its row")
	cmd.Flags.BoolVar(&opts.digest, "digest", false, "Log a fingerprint of each region's layout")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("layout takes one pathname argument, but got %v", argv)
		}
		return runLayout(vcontext.Background(), opts, argv[0])
	})
	return cmd
}

func newCmdCheck() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "check",
		Short:    "Report records that can't be decomposed",
		ArgsName: "path",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("check takes one pathname argument, but got %v", argv)
		}
		return runCheck(vcontext.Background(), argv[0], os.Stdout)
	})
	return cmd
}

func pipelineOpts(opts layoutOpts) pipeline.Opts {
	popts := pipeline.DefaultOpts
	popts.Decompose.LabelWidth = opts.labelWidth
	popts.LabelFreeSpace = opts.labelFreeSpace
	popts.Parallelism = opts.parallelism
	return popts
}

// Run is the entry point of bio-rmsk-layout.
func Run() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-rmsk-layout",
			Short:    "Tools for laying out RepeatMasker joined annotations",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdLayout(),
				newCmdCheck(),
			},
		})
}
