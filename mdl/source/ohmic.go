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

// Ohmic implements ohmic heating P = η·j² with Spitzer resistivity and the
// cylindrical current-density estimate j = 2·B0/(μ0·R·q)
type Ohmic struct {
	geom *grid.Geometry
	zeff float64
}

// add model to factory
func init() {
	allocators["ohmic"] = func() Model { return new(Ohmic) }
}

// Init initialises this structure
func (o *Ohmic) Init(g *grid.Geometry, prms dbf.Params) (err error) {
	o.geom = g
	o.zeff = 1.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "zeff":
			o.zeff = p.V
		default:
			return chk.Err("ohmic: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Terms computes the cell-defined source terms at time t
func (o *Ohmic) Terms(pf *core.Profiles, t float64) (st *core.SourceTerms, err error) {
	g := o.geom
	nc := g.NCells()
	st = core.NewSourceTerms(nc)
	var ptot float64
	for i := 0; i < nc; i++ {
		te := math.Max(pf.Te[i], 1.0)
		clog := phys.ClogEE(pf.Ne[i], te)
		eta := 1.65e-9 * o.zeff * clog * math.Pow(te/phys.KeV, -1.5)
		j := 2.0 * g.B0 / (phys.Mu0 * g.Rmaj * g.Qcell(i))
		p := eta * j * j / 1e6 // MW/m³
		st.Qe[i] = p
		ptot += p * g.CellVol[i]
	}
	st.Meta = append(st.Meta, &core.SourceMeta{Name: "ohmic", Cat: "ohmic", PowEle: ptot})
	return
}
