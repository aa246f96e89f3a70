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
	"github.com/cpmech/gotok/phys"
)

// ealpha is the alpha-particle birth energy [J]
const ealpha = 3.52e6 * phys.Qe

// Fusion implements DT alpha heating for a 50:50 fuel mix. The reactivity
// uses the quadratic approximation σv ≈ 1.1e-24·(Ti/keV)² m³/s, adequate
// for 2–25 keV ion temperatures. Alpha power is split between ions and
// electrons by the fion fraction.
type Fusion struct {
	geom *grid.Geometry
	fion float64 // fraction of alpha power to ions
	fdil float64 // fuel dilution ni_fuel/ne
}

// add model to factory
func init() {
	allocators["fusion"] = func() Model { return new(Fusion) }
}

// Init initialises this structure
func (o *Fusion) Init(g *grid.Geometry, prms dbf.Params) (err error) {
	o.geom = g
	o.fion = 0.3
	o.fdil = 0.9
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "fion":
			o.fion = p.V
		case "fdil":
			o.fdil = p.V
		default:
			return chk.Err("fusion: parameter named %q is incorrect", p.N)
		}
	}
	if o.fion < 0 || o.fion > 1 {
		return chk.Err("fusion: fion=%g must be within [0,1]", o.fion)
	}
	return
}

// Terms computes the cell-defined source terms at time t
func (o *Fusion) Terms(pf *core.Profiles, t float64) (st *core.SourceTerms, err error) {
	g := o.geom
	nc := g.NCells()
	st = core.NewSourceTerms(nc)
	var pion, pele float64
	for i := 0; i < nc; i++ {
		tikev := math.Max(pf.Ti[i], 0) / phys.KeV
		sigv := 1.1e-24 * tikev * tikev
		nd := 0.5 * o.fdil * pf.Ne[i] // 50:50 DT
		p := nd * nd * sigv * ealpha / 1e6 // MW/m³
		st.Qi[i] = o.fion * p
		st.Qe[i] = (1.0 - o.fion) * p
		pion += st.Qi[i] * g.CellVol[i]
		pele += st.Qe[i] * g.CellVol[i]
	}
	st.Meta = append(st.Meta, &core.SourceMeta{Name: "fusion", Cat: "fusion", PowIon: pion, PowEle: pele})
	return
}
