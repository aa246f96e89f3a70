// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/grid"
)

// AuxHeat implements a generic auxiliary source with Gaussian radial
// deposition: heating split between ions and electrons, an optional edge
// particle source and optional driven current. With tramp > 0 all
// amplitudes ramp linearly from zero to their nominal values over the first
// tramp seconds (time-dependent source).
type AuxHeat struct {
	geom  *grid.Geometry
	ptot  float64 // total deposited power [MW]
	rho0  float64 // deposition center (normalized)
	w     float64 // deposition width (normalized)
	fion  float64 // fraction of power to ions
	sn    float64 // total particle source rate [1/s]
	snrho float64 // particle deposition center
	snw   float64 // particle deposition width
	iext  float64 // total driven current [A]
	tramp float64 // ramp time [s]; 0 = always on

	// deposition shapes (normalized to unit volume integral)
	gp []float64
	gn []float64
}

// add model to factory
func init() {
	allocators["auxheat"] = func() Model { return new(AuxHeat) }
}

// Init initialises this structure
func (o *AuxHeat) Init(g *grid.Geometry, prms dbf.Params) (err error) {
	o.geom = g
	o.ptot, o.rho0, o.w = 10.0, 0.0, 0.25
	o.fion = 0.5
	o.snrho, o.snw = 0.8, 0.1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ptot":
			o.ptot = p.V
		case "rho0":
			o.rho0 = p.V
		case "w":
			o.w = p.V
		case "fion":
			o.fion = p.V
		case "sn":
			o.sn = p.V
		case "snrho":
			o.snrho = p.V
		case "snw":
			o.snw = p.V
		case "iext":
			o.iext = p.V
		case "tramp":
			o.tramp = p.V
		default:
			return chk.Err("auxheat: parameter named %q is incorrect", p.N)
		}
	}
	o.gp = o.shape(o.rho0, o.w)
	o.gn = o.shape(o.snrho, o.snw)
	return
}

// shape returns a Gaussian deposition profile normalized so that
// Σ shape_i·V_i = 1
func (o *AuxHeat) shape(rho0, w float64) (s []float64) {
	g := o.geom
	nc := g.NCells()
	s = make([]float64, nc)
	var sum float64
	for i := 0; i < nc; i++ {
		d := (g.CellRho[i] - rho0) / w
		s[i] = math.Exp(-d * d / 2.0)
		sum += s[i] * g.CellVol[i]
	}
	for i := 0; i < nc; i++ {
		s[i] /= sum
	}
	return
}

// ramp returns the time-dependence factor at time t
func (o *AuxHeat) ramp(t float64) float64 {
	if o.tramp <= 0 {
		return 1.0
	}
	if t >= o.tramp {
		return 1.0
	}
	if t < 0 {
		return 0.0
	}
	return t / o.tramp
}

// Terms computes the cell-defined source terms at time t
func (o *AuxHeat) Terms(pf *core.Profiles, t float64) (st *core.SourceTerms, err error) {
	g := o.geom
	nc := g.NCells()
	st = core.NewSourceTerms(nc)
	f := o.ramp(t)
	area := g.Volume / (2.0 * math.Pi * g.Rmaj) // effective poloidal cross-section
	for i := 0; i < nc; i++ {
		st.Qi[i] = f * o.ptot * o.fion * o.gp[i]
		st.Qe[i] = f * o.ptot * (1.0 - o.fion) * o.gp[i]
		st.Sn[i] = f * o.sn * o.gn[i]
		st.Jext[i] = f * o.iext * o.gp[i] * g.Volume / area // current density ∝ power deposition
	}
	st.Meta = append(st.Meta, &core.SourceMeta{
		Name: "auxheat", Cat: "other",
		PowIon: f * o.ptot * o.fion,
		PowEle: f * o.ptot * (1.0 - o.fion),
	})
	return
}
