// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/grid"
)

// Constant implements the trivial baseline model returning fixed
// diffusivities and convection independent of the profiles
type Constant struct {
	geom *grid.Geometry
	chii float64 // ion heat diffusivity [m²/s]
	chie float64 // electron heat diffusivity [m²/s]
	de   float64 // particle diffusivity [m²/s]
	ve   float64 // particle convection velocity [m/s]
}

// add model to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
}

// Init initialises this structure
func (o *Constant) Init(g *grid.Geometry, prms dbf.Params) (err error) {
	o.geom = g
	o.chii, o.chie, o.de, o.ve = 1.0, 1.0, 0.5, 0.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "chii":
			o.chii = p.V
		case "chie":
			o.chie = p.V
		case "de":
			o.de = p.V
		case "ve":
			o.ve = p.V
		default:
			return chk.Err("constant: parameter named %q is incorrect", p.N)
		}
	}
	if o.chii < 0 || o.chie < 0 || o.de < 0 {
		return chk.Err("constant: diffusivities must be non-negative")
	}
	return
}

// Coeffs computes the face-defined coefficients
func (o *Constant) Coeffs(pf *core.Profiles) (tc *core.TransportCoeffs, err error) {
	nf := o.geom.NCells() + 1
	tc = core.NewTransportCoeffs(nf)
	for f := 0; f < nf; f++ {
		tc.ChiI[f] = o.chii
		tc.ChiE[f] = o.chie
		tc.De[f] = o.de
		tc.Ve[f] = o.ve
	}
	return
}
