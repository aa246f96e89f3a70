// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gotok/sim"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveSummary := io.ArgToBool(3, true)
	doprof := io.ArgToInt(4, 0)

	// message
	if verbose {
		io.PfWhite("\nGotok -- Go Tokamak Core Transport\n")
		io.Pf("Copyright 2016 The Gotok Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save summary", "saveSummary", saveSummary,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.Prof(doprof == 2, !verbose)()
	}

	// analysis data
	analysis, err := sim.NewMain(fnamepath, erasePrev, saveSummary, verbose)
	if err != nil {
		chk.Panic("cannot allocate simulation:\n%v", err)
	}

	// run simulation
	res, err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if verbose {
		io.Pf("\nelapsed time = %v (%d steps)\n", res.WallTime, res.Steps)
	}
}
