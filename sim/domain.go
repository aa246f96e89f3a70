// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the time-advance loop: the simulation domain
// owning the evolving profiles, the implicit solver and the progress
// observer
package sim

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/fvm"
	"github.com/cpmech/gotok/grid"
	"github.com/cpmech/gotok/inp"
	"github.com/cpmech/gotok/mdl/source"
	"github.com/cpmech/gotok/mdl/transport"
	"github.com/cpmech/gotok/mhd"
)

// Domain holds the evolving state of one simulation. A single logical
// simulation-advance task owns the profile state exclusively: only the
// solver mutates Profiles, and only at step boundaries, so an accepted
// step is atomic from the caller's perspective (the whole new snapshot is
// published, or the old one remains current). The current simulation time
// is additionally published through an atomic word so the read-only
// observer can poll it without synchronization.
type Domain struct {

	// essential
	Sim   *inp.Simulation   // simulation input data
	Geom  *grid.Geometry    // read-only geometric descriptor
	Trans transport.Model   // transport model
	Srcs  *source.Composite // composed source models
	Saw   *mhd.Sawtooth     // sawtooth machine; nil when inactive
	Bld   *fvm.Builder      // coefficient builder

	// state
	Profiles *core.Profiles // current accepted snapshot
	T        float64        // current time [s]
	Steps    int            // accepted steps
	Iters    int            // accumulated nonlinear iterations

	// backup for divergence control
	bkp  *core.Profiles
	bkpT float64

	// observer window
	tbits uint64 // atomic float64 bits of T
}

// NewDomain allocates the domain: geometry, initial profiles, transport
// and source models, and the sawtooth machine
func NewDomain(sd *inp.Simulation) (o *Domain, err error) {

	o = new(Domain)
	o.Sim = sd
	msh := sd.Mesh
	o.Geom = grid.NewGeometry(msh.Ncells, msh.Rmaj, msh.Rmin, msh.B0, msh.Q0, msh.Qedge)
	o.Bld = fvm.NewBuilder(o.Geom, sd.Dynamic.Zeff)

	// transport model
	o.Trans, err = transport.New(sd.Transport.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot allocate transport model: %v", core.ErrModelLoad, err)
	}
	err = o.Trans.Init(o.Geom, sd.Transport.Prms)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot initialise transport model: %v", core.ErrModelLoad, err)
	}

	// source models
	o.Srcs = source.NewComposite(o.Geom)
	for _, sdat := range sd.Sources {
		m, err := source.New(sdat.Type)
		if err != nil {
			return nil, chk.Err("cannot allocate source model %q: %v", sdat.Name, err)
		}
		err = m.Init(o.Geom, sdat.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise source model %q: %v", sdat.Name, err)
		}
		o.Srcs.Append(sdat.Name, m)
	}

	// sawtooth
	if sd.Sawtooth.Active {
		st := sd.Sawtooth
		o.Saw = mhd.NewSawtooth(st.Qcrit, st.MinInterval, st.MixTime, st.RhoQ1, st.MixMult)
	}

	// initial profiles
	o.Profiles = o.initialProfiles()
	o.publishTime(0)
	return
}

// initialProfiles builds parabolic initial profiles between the core and
// edge values of the dynamic data
func (o *Domain) initialProfiles() *core.Profiles {
	g := o.Geom
	dyn := o.Sim.Dynamic
	nc := g.NCells()
	pf := core.NewProfiles(nc)
	for i := 0; i < nc; i++ {
		rho := g.CellRho[i]
		shape := 1.0 - rho*rho
		pf.Ti[i] = dyn.TiEdge + (dyn.TiCore-dyn.TiEdge)*shape
		pf.Te[i] = dyn.TeEdge + (dyn.TeCore-dyn.TeEdge)*shape
		pf.Ne[i] = dyn.NeEdge + (dyn.NeCore-dyn.NeEdge)*shape
		pf.Psi[i] = math.Pi * g.B0 * g.Rmin * g.Rmin * rho * rho / o.Geom.Qcell(i)
	}
	return pf
}

// backup saves a copy of the current state (divergence control)
func (o *Domain) backup() {
	if o.bkp == nil {
		o.bkp = core.NewProfiles(o.Profiles.NCells())
	}
	o.bkp.Set(o.Profiles)
	o.bkpT = o.T
}

// restore restores the backed-up state
func (o *Domain) restore() {
	o.Profiles.Set(o.bkp)
	o.T = o.bkpT
	o.publishTime(o.T)
}

// publishTime stores t in the atomic observer window
func (o *Domain) publishTime(t float64) {
	atomic.StoreUint64(&o.tbits, math.Float64bits(t))
}

// Now returns the last published simulation time. Safe for concurrent use
// by the observer; the value is advisory and may lag a step in flight.
func (o *Domain) Now() float64 {
	return math.Float64frombits(atomic.LoadUint64(&o.tbits))
}

// runIterations advances the profiles from time t−Δt to t with the
// implicit scheme, iterating the nonlinear coefficients to convergence.
// Coefficients are recomputed from the current guess each iteration
// (Newton-type fixed point); convergence is measured by the RMS norm of
// the iterate update against Itol. On success the new snapshot is
// published wholesale. Reaching NmaxIt returns core.ErrNonConvergence
// (recoverable); NaN/Inf in coefficients propagates as a fatal fault.
func (o *Domain) runIterations(t, dt float64) (diverging bool, err error) {

	dat := o.Sim.Solver
	dyn := o.Sim.Dynamic
	g := o.Geom
	nc := g.NCells()

	old := o.Profiles
	guess := old.GetCopy()

	// edge boundary values per equation; the flux edge value is pinned to
	// its initial edge value (no externally driven loop voltage here)
	bcs := map[string]float64{
		"ti":  dyn.TiEdge,
		"te":  dyn.TeEdge,
		"ne":  dyn.NeEdge,
		"psi": old.Psi[nc-1],
	}

	xnew := make([]float64, nc)
	var prevL float64

	for it := 0; it < dat.NmaxIt; it++ {
		o.Iters++

		// transport and sources at current guess
		tc, err := o.Trans.Coeffs(guess)
		if err != nil {
			return false, chk.Err("transport model failed: %v", err)
		}
		if err := tc.Check(); err != nil {
			return false, err
		}
		st, err := o.Srcs.Terms(guess, t)
		if err != nil {
			return false, chk.Err("source models failed: %v", err)
		}

		// assemble and solve one equation at a time
		var ldu float64
		for _, key := range []string{"ti", "te", "ne", "psi"} {
			blk, err := o.Bld.Build(key, old, guess, tc, st, bcs[key])
			if err != nil {
				return false, err // critical: NaN/Inf propagates
			}
			x := guess.Field(key)
			fvm.SolveBlock(blk, old.Field(key), dt, g.Drho, xnew)
			l := la.VecRmsError(xnew, x, dat.Atol, dat.Rtol, x)
			if l > ldu {
				ldu = l
			}
			copy(x, xnew)
		}

		// convergence on the iterate update
		if ldu < dat.Itol {
			o.Profiles = guess // atomic publication of the whole snapshot
			o.T = t
			o.publishTime(t)
			return false, nil
		}

		// divergence check
		if it > 1 && dat.DvgCtrl {
			if ldu > prevL {
				return true, nil
			}
		}
		prevL = ldu
	}
	return false, core.ErrNonConvergence
}

// IsRecoverable reports whether err allows a retry with a smaller timestep
func IsRecoverable(err error) bool {
	return errors.Is(err, core.ErrNonConvergence)
}
