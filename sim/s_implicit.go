// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/inp"
)

// SolverImplicit advances the profiles with the backward-Euler scheme and
// an adaptive timestep. On a recoverable failure (non-convergence or a
// diverging iteration) the step is rejected, the state restored and the
// step retried with a smaller Δt; on success Δt grows by DtGrowth, is
// scaled by the safety factor DtSafety and clamped to the input limits.
// The multiplier md halves on rejections exactly like the divergence
// control of the quasi-static driver.
type SolverImplicit struct {
	dom *Domain
}

// add to factory
func init() {
	solverallocators["imp"] = func(dom *Domain) Solver {
		return &SolverImplicit{dom}
	}
}

// nextDt returns the timestep for the next accepted step: grow by
// DtGrowth, apply the safety factor and clamp to [DtMin, DtMax]
func nextDt(dt float64, dat inp.SolverData) float64 {
	return utl.Max(dat.DtMin, utl.Min(dt*dat.DtGrowth*dat.DtSafety, dat.DtMax))
}

// Run runs the simulation from the domain's current time up to tf
func (o *SolverImplicit) Run(tf, dtout float64, verbose bool, out OutCallback) (err error) {

	dom := o.dom
	dat := dom.Sim.Solver

	t := dom.T
	dt := utl.Min(dat.DtIni, dtout)
	tout := utl.Min(t+dtout, tf)
	md := 1.0     // timestep multiplier for divergence control
	ndiverg := 0  // number of consecutive rejected steps
	if out != nil {
		if err = out(t, dom); err != nil {
			return
		}
	}

	for t < tf-1e-12 {

		// never step past the next output instant or the final time
		dt = utl.Min(md*dt, dat.DtMax)
		if t+dt > tout {
			dt = tout - t
		}
		if dt < dat.DtMin {
			return chk.Err("timestep %g fell below minimum %g at t=%g after %d rejections", dt, dat.DtMin, t, ndiverg)
		}

		// attempt one implicit step
		dom.backup()
		diverging, err := dom.runIterations(t+dt, dt)

		// rejection: restore and shrink
		if diverging || IsRecoverable(err) {
			if !dat.DvgCtrl {
				if err != nil {
					return err
				}
				return core.ErrNonConvergence
			}
			dom.restore()
			ndiverg++
			if ndiverg > dat.NdvgMax {
				return chk.Err("too many consecutive rejected steps (%d) at t=%g", ndiverg, t)
			}
			md *= 0.5
			if verbose {
				io.Pfred(". . . step rejected (t=%g, dt=%g, md=%g) . . .\n", t, dt, md)
			}
			continue
		}
		if err != nil {
			return err // fatal: NaN/Inf or model fault
		}

		// acceptance
		t += dt
		dom.Steps++
		ndiverg = 0
		md = 1.0
		dt = nextDt(dt, dat)

		// sawtooth: trigger check on the accepted state; relaxation is
		// applied to a copy and swapped in wholesale
		if dom.Saw != nil {
			if dom.Saw.Check(dom.Profiles, dom.Geom, t, dt) {
				mixed := dom.Profiles.GetCopy()
				dom.Saw.Relax(mixed, dom.Geom, t, dt)
				dom.Profiles = mixed
				if verbose {
					io.Pfyel(". . . sawtooth crash at t=%g . . .\n", t)
				}
			}
		}

		// output
		if t >= tout-1e-12 {
			if out != nil {
				if err = out(t, dom); err != nil {
					return err
				}
			}
			tout = utl.Min(tout+dtout, tf)
		}
		if verbose && dat.ShowR {
			io.Pf("t=%13.6e dt=%13.6e steps=%d iters=%d\n", t, dt, dom.Steps, dom.Iters)
		}
	}
	return
}
