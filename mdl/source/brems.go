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

// Brems implements bremsstrahlung radiation losses on the electron channel:
//
//   P = 5.35e-37 · Zeff · ne² · √(Te/keV)   [W/m³]
//
// reported as a negative electron power with category "radiation"
type Brems struct {
	geom *grid.Geometry
	zeff float64
}

// add model to factory
func init() {
	allocators["brems"] = func() Model { return new(Brems) }
}

// Init initialises this structure
func (o *Brems) Init(g *grid.Geometry, prms dbf.Params) (err error) {
	o.geom = g
	o.zeff = 1.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "zeff":
			o.zeff = p.V
		default:
			return chk.Err("brems: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Terms computes the cell-defined source terms at time t
func (o *Brems) Terms(pf *core.Profiles, t float64) (st *core.SourceTerms, err error) {
	g := o.geom
	nc := g.NCells()
	st = core.NewSourceTerms(nc)
	var ptot float64
	for i := 0; i < nc; i++ {
		te := math.Max(pf.Te[i], 1.0)
		p := 5.35e-37 * o.zeff * pf.Ne[i] * pf.Ne[i] * math.Sqrt(te/phys.KeV) / 1e6 // MW/m³
		st.Qe[i] = -p
		ptot -= p * g.CellVol[i]
	}
	st.Meta = append(st.Meta, &core.SourceMeta{Name: "brems", Cat: "radiation", PowEle: ptot})
	return
}
