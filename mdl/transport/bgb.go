// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/fvm"
	"github.com/cpmech/gotok/grid"
	"github.com/cpmech/gotok/phys"
)

// BohmGyroBohm implements the empirical Bohm/gyroBohm scaling model:
//
//   χ_B  = Te/(16·B)              (Bohm)
//   χ_gB = (ρs/a)·χ_B             (gyroBohm, ρs = √(mi·Te·Qe)/(Qe·B))
//   χ    = cb·χ_B + cgb·χ_gB
//
// with Te in eV and B in Tesla. The ion channel is the electron channel
// scaled by cion; the particle diffusivity is dmult·χe with a constant
// inward pinch vpin. All diffusivities are floored at minchi.
type BohmGyroBohm struct {
	geom   *grid.Geometry
	cb     float64 // Bohm calibration factor
	cgb    float64 // gyroBohm calibration factor
	cion   float64 // ion-to-electron channel ratio
	dmult  float64 // particle diffusivity multiplier
	vpin   float64 // particle pinch velocity [m/s] (negative = inward)
	minchi float64 // diffusivity floor [m²/s]
	mion   float64 // ion mass [kg]
}

// add model to factory
func init() {
	allocators["bohmgyrobohm"] = func() Model { return new(BohmGyroBohm) }
}

// Init initialises this structure
func (o *BohmGyroBohm) Init(g *grid.Geometry, prms dbf.Params) (err error) {
	o.geom = g
	o.cb, o.cgb = 2e-3, 0.5
	o.cion, o.dmult = 2.0, 0.2
	o.vpin = -0.1
	o.minchi = 0.05
	o.mion = phys.Md
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "cb":
			o.cb = p.V
		case "cgb":
			o.cgb = p.V
		case "cion":
			o.cion = p.V
		case "dmult":
			o.dmult = p.V
		case "vpin":
			o.vpin = p.V
		case "minchi":
			o.minchi = p.V
		case "mion":
			o.mion = p.V * phys.Amu
		default:
			return chk.Err("bohmgyrobohm: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Coeffs computes the face-defined coefficients
func (o *BohmGyroBohm) Coeffs(pf *core.Profiles) (tc *core.TransportCoeffs, err error) {
	g := o.geom
	nf := g.NCells() + 1
	tc = core.NewTransportCoeffs(nf)
	teFace := fvm.CellToFace(pf.Te)
	for f := 0; f < nf; f++ {
		te := teFace[f]
		if te < 1.0 {
			te = 1.0
		}
		chib := te / (16.0 * g.B0)
		rhos := math.Sqrt(o.mion*te*phys.Qe) / (phys.Qe * g.B0)
		chigb := rhos / g.Rmin * chib
		chie := o.cb*chib + o.cgb*chigb
		if chie < o.minchi {
			chie = o.minchi
		}
		chii := o.cion * chie
		if chii < o.minchi {
			chii = o.minchi
		}
		de := o.dmult * chie
		if de < o.minchi {
			de = o.minchi
		}
		tc.ChiI[f] = chii
		tc.ChiE[f] = chie
		tc.De[f] = de
		tc.Ve[f] = o.vpin * g.FaceRho[f]
	}
	return
}
