// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mhd implements the sawtooth relaxation state machine: crash
// detection on the estimated on-axis safety factor and conservative
// redistribution of the core profiles inside the inversion radius
package mhd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/grid"
	"github.com/cpmech/gotok/phys"
)

// state machine states
const (
	Stable = iota // no crash pending
	Triggered     // crash detected, redistribution pending
	Relaxed       // redistribution applied this step
)

// Sawtooth holds the crash detector and profile redistributor
type Sawtooth struct {

	// parameters
	QCrit       float64 // critical on-axis safety factor (crash when q0 < QCrit)
	MinInterval float64 // minimum time between crashes [s] (rate limiting)
	MixTime     float64 // mixing time scale [s]
	RhoQ1       float64 // normalized radius of the q=1 surface
	MixMult     float64 // mixing region extends to RhoQ1·MixMult

	// state
	State     int     // current machine state
	lastCrash float64 // time of the last applied crash [s]
}

// NewSawtooth returns a sawtooth machine with the given parameters in the
// Stable state
func NewSawtooth(qcrit, minInterval, mixTime, rhoQ1, mixMult float64) *Sawtooth {
	if rhoQ1 <= 0 || rhoQ1 >= 1 {
		chk.Panic("sawtooth: rhoQ1=%g must be within (0,1)", rhoQ1)
	}
	return &Sawtooth{
		QCrit:       qcrit,
		MinInterval: minInterval,
		MixTime:     mixTime,
		RhoQ1:       rhoQ1,
		MixMult:     mixMult,
		State:       Stable,
		lastCrash:   -minInterval, // allow a crash at t=0
	}
}

// Q0Estimate returns the estimated on-axis safety factor.
//
// This is a simplified proxy, not a true equilibrium q(0) calculation: the
// innermost face q is scaled by the ratio of the volume-averaged to the
// on-axis ion temperature (temperature peaking heuristic), so strongly
// peaked profiles lower the estimate. Downstream behavior depends on this
// exact heuristic; do not replace it with an equilibrium solve.
func (o *Sawtooth) Q0Estimate(pf *core.Profiles, g *grid.Geometry) float64 {
	var tsum float64
	for i, ti := range pf.Ti {
		tsum += ti * g.CellVol[i]
	}
	tavg := tsum / g.Volume
	t0 := pf.Ti[0]
	if t0 < 1.0 {
		return g.Q[0]
	}
	return g.Q[0] * tavg / t0
}

// Check runs the Stable→Triggered transition at time t with candidate
// timestep dt. The crash triggers only when the estimated q0 is below
// QCrit AND dt is at least MinInterval AND at least MinInterval has passed
// since the last crash: small timesteps must not repeatedly re-detect a
// crash whose physical cycle is much slower than a single step.
func (o *Sawtooth) Check(pf *core.Profiles, g *grid.Geometry, t, dt float64) bool {
	if o.Q0Estimate(pf, g) >= o.QCrit {
		o.State = Stable
		return false
	}
	if dt < o.MinInterval {
		return false
	}
	if t-o.lastCrash < o.MinInterval {
		return false
	}
	o.State = Triggered
	return true
}

// InversionIndex returns the first cell index whose normalized radius
// exceeds RhoQ1, falling back to the innermost third of the grid when no
// cell qualifies
func (o *Sawtooth) InversionIndex(g *grid.Geometry) int {
	return indexBeyond(g, o.RhoQ1)
}

// indexBeyond returns the first cell index whose normalized radius exceeds
// rlim, falling back to the innermost third of the grid when no cell
// qualifies
func indexBeyond(g *grid.Geometry, rlim float64) int {
	for i, rho := range g.CellRho {
		if rho > rlim {
			return i
		}
	}
	return g.NCells() / 3
}

// Relax runs the Triggered→Relaxed transition: profiles inside the mixing
// region (cells before the first normalized radius beyond RhoQ1·MixMult,
// or the innermost third when no cell lies beyond) are mixed toward their
// volume-weighted means with fraction clamp(dt/MixTime, 0, 1); the
// poloidal flux is left untouched (sawteeth do not directly relax flux in
// this model) and every cell outside the region is unchanged bit-for-bit.
// Total particle count and density-weighted thermal energy inside the
// region are conserved to within numerical tolerance.
func (o *Sawtooth) Relax(pf *core.Profiles, g *grid.Geometry, t, dt float64) {
	if o.State != Triggered {
		return
	}
	nmix := indexBeyond(g, o.RhoQ1*o.MixMult)
	if nmix < 2 {
		o.State = Stable
		return
	}
	frac := phys.Clamp(dt/o.MixTime, 0, 1)
	mix(pf.Ti, g.CellVol, nmix, frac)
	mix(pf.Te, g.CellVol, nmix, frac)
	mix(pf.Ne, g.CellVol, nmix, frac)
	o.lastCrash = t
	o.State = Relaxed
}

// mix moves x[:n] toward its volume-weighted mean by fraction frac
func mix(x, vol []float64, n int, frac float64) {
	var xsum, vsum float64
	for i := 0; i < n; i++ {
		xsum += x[i] * vol[i]
		vsum += vol[i]
	}
	mean := xsum / vsum
	for i := 0; i < n; i++ {
		x[i] += frac * (mean - x[i])
	}
}
