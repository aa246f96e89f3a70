// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/grid"
	"github.com/cpmech/gotok/phys"
)

// Exchange implements the classical ion-electron collisional heat exchange
//
//   Q_ie = 3·(me/mi)·ne·Qe·(Te − Ti)/τe   [W/m³]
//
// deposited with +Q on ions and −Q on electrons. The exchange moves energy
// between species without creating any, so the metadata ion and electron
// powers must sum to zero to within floating-point tolerance.
type Exchange struct {
	geom *grid.Geometry
	zeff float64
	mion float64
}

// add model to factory
func init() {
	allocators["exchange"] = func() Model { return new(Exchange) }
}

// Init initialises this structure
func (o *Exchange) Init(g *grid.Geometry, prms dbf.Params) (err error) {
	o.geom = g
	o.zeff = 1.5
	o.mion = phys.Md
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "zeff":
			o.zeff = p.V
		case "mion":
			o.mion = p.V * phys.Amu
		default:
			return chk.Err("exchange: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Terms computes the cell-defined source terms at time t
func (o *Exchange) Terms(pf *core.Profiles, t float64) (st *core.SourceTerms, err error) {
	g := o.geom
	nc := g.NCells()
	st = core.NewSourceTerms(nc)
	var ptot float64
	for i := 0; i < nc; i++ {
		taue := phys.TauE(pf.Ne[i], pf.Te[i], o.zeff)
		q := 3.0 * (phys.Me / o.mion) * pf.Ne[i] * phys.Qe * (pf.Te[i] - pf.Ti[i]) / taue / 1e6 // MW/m³
		st.Qi[i] = q
		st.Qe[i] = -q
		ptot += q * g.CellVol[i]
	}
	st.Meta = append(st.Meta, &core.SourceMeta{Name: "exchange", Cat: "other", PowIon: ptot, PowEle: -ptot})
	return
}
