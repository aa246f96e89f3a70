// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotok/inp"
)

// Main holds all data for one transport simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure; may be nil
	Dom     *Domain         // the simulation domain
	Solver  Solver          // time-advance solver; e.g. implicit
	ShowMsg bool            // show messages
}

// NewMain reads the input file and allocates domain and solver
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary at the end of the run
//   verbose     -- show messages
func NewMain(simfilepath string, erasePrev, saveSummary, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim = inp.ReadSim(simfilepath, erasePrev)
	if o.Sim == nil {
		return nil, chk.Err("cannot read simulation input data")
	}

	// summary
	if saveSummary {
		o.Summary = new(Summary)
	}

	// message
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// allocate domain
	o.Dom, err = NewDomain(o.Sim)
	if err != nil {
		return nil, chk.Err("cannot allocate domain:\n%v", err)
	}

	// allocate solver
	o.Solver, err = NewSolver(o.Sim.Solver.Type, o.Dom)
	if err != nil {
		return nil, err
	}
	return
}

// Results holds the run statistics returned by Run
type Results struct {
	Steps    int           // accepted steps
	Iters    int           // accumulated nonlinear iterations
	WallTime time.Duration // elapsed wall-clock time
}

// Run runs the simulation up to the final time of the control data
func (o *Main) Run() (res *Results, err error) {

	// progress observer
	ctx, cancel := context.WithCancel(context.Background())
	obs := NewObserver(ctx, &Observable{Now: o.Dom.Now, Tf: o.Sim.Control.Tf}, 0, o.ShowMsg)
	defer func() {
		cancel()
		obs.Wait()
	}()

	// output callback
	out := func(t float64, dom *Domain) error {
		if o.Summary == nil {
			return nil
		}
		st, err := dom.Srcs.Terms(dom.Profiles, t)
		if err != nil {
			return err
		}
		o.Summary.Append(t, dom, st)
		return nil
	}

	// message
	if o.ShowMsg {
		io.Pf("> Running time-advance solver\n")
	}

	// time loop
	cputime := time.Now()
	err = o.Solver.Run(o.Sim.Control.Tf, o.Sim.Control.DtOut, o.ShowMsg, out)
	if err != nil {
		return
	}

	// save summary
	if o.Summary != nil {
		err = o.Summary.Save(o.Sim)
		if err != nil {
			return
		}
	}

	// results
	res = &Results{Steps: o.Dom.Steps, Iters: o.Dom.Iters, WallTime: time.Now().Sub(cputime)}
	if o.ShowMsg {
		io.Pf("> Run completed: t=%g steps=%d iters=%d cpu=%v\n",
			o.Dom.T, res.Steps, res.Iters, res.WallTime)
	}
	return
}
