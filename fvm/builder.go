// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/grid"
	"github.com/cpmech/gotok/phys"
)

// Builder assembles the per-equation finite-volume coefficients (Block1D)
// from the current-guess profiles, the geometry, the transport coefficients
// and the source terms. One Block1D is produced per evolved quantity and per
// nonlinear iteration.
//
// Unit handling: source power densities arrive in MW/m³ and are rescaled by
// phys.MW2EVS (≈6.24e24) into eV/(m³·s); all intermediate arithmetic is
// float64 so the large factor does not lose precision.
type Builder struct {
	Geom *grid.Geometry // read-only geometric descriptor
	Zeff float64        // effective charge (for resistivity)
}

// NewBuilder returns a coefficient builder for the given geometry
func NewBuilder(g *grid.Geometry, zeff float64) *Builder {
	return &Builder{Geom: g, Zeff: zeff}
}

// Build produces the Block1D coefficients of the equation selected by key
// ∈ {"ti","te","ne","psi"}.
//  Input:
//   old    -- profiles at the last accepted step (transient-out term)
//   guess  -- current nonlinear-iteration guess (coefficients, transient-in)
//   tc     -- transport coefficients (face-defined)
//   st     -- source terms (cell-defined, MW/m³ at the boundary)
//   bcEdge -- Dirichlet value at the edge face, folded into the last cell
//  The returned coefficients are checked for NaN/Inf; corruption is a
//  critical fault (core.ErrNaN) signalled upward, never swallowed.
func (o *Builder) Build(key string, old, guess *core.Profiles, tc *core.TransportCoeffs, st *core.SourceTerms, bcEdge float64) (b *core.Block1D, err error) {

	g := o.Geom
	nc := g.NCells()
	chk.IntAssert(guess.NCells(), nc)
	b = core.NewBlock1D(nc)

	neFace := CellToFace(guess.Ne)

	switch key {

	case "ti":
		for i := 0; i < nc; i++ {
			vp := o.vpCell(i)
			b.TransientInCell[i] = 1.5 * guess.Ne[i] * vp
			b.TransientOutCell[i] = 1.5 * old.Ne[i] * vp
			b.SourceCell[i] = vp * st.Qi[i] * phys.MW2EVS
		}
		for f := 0; f <= nc; f++ {
			b.DFace[f] = neFace[f] * tc.ChiI[f] * g.G1[f]
		}

	case "te":
		for i := 0; i < nc; i++ {
			vp := o.vpCell(i)
			b.TransientInCell[i] = 1.5 * guess.Ne[i] * vp
			b.TransientOutCell[i] = 1.5 * old.Ne[i] * vp
			b.SourceCell[i] = vp * st.Qe[i] * phys.MW2EVS
		}
		for f := 0; f <= nc; f++ {
			b.DFace[f] = neFace[f] * tc.ChiE[f] * g.G1[f]
		}

	case "ne":
		for i := 0; i < nc; i++ {
			vp := o.vpCell(i)
			b.TransientInCell[i] = vp
			b.TransientOutCell[i] = vp
			b.SourceCell[i] = vp * st.Sn[i]
		}
		for f := 0; f <= nc; f++ {
			b.DFace[f] = tc.De[f] * g.G1[f]
			b.VFace[f] = tc.Ve[f] * g.G2[f]
		}

	case "psi":
		// simplified cylindrical current diffusion: the flux relaxes
		// resistively with D = η/μ0 and driven current enters as a
		// loop-voltage source
		teFace := CellToFace(guess.Te)
		for i := 0; i < nc; i++ {
			vp := o.vpCell(i)
			eta := o.resistivity(guess.Ne[i], guess.Te[i])
			b.TransientInCell[i] = vp
			b.TransientOutCell[i] = vp
			b.SourceCell[i] = vp * eta * g.Rmaj * st.Jext[i]
		}
		for f := 0; f <= nc; f++ {
			etaf := o.resistivity(neFace[f], teFace[f])
			b.DFace[f] = etaf / phys.Mu0 * g.G1[f]
		}

	default:
		return nil, chk.Err("unknown equation key %q", key)
	}

	// fold Dirichlet edge value into the last cell: the boundary value sits
	// on the edge face at distance Δρ/2 from the last cell center
	dEdge := 2.0 * b.DFace[nc] / g.Drho
	vEdge := b.VFace[nc]
	b.SourceMatCell[nc-1] -= dEdge / g.Drho
	b.SourceCell[nc-1] += (dEdge - vEdge) * bcEdge / g.Drho
	b.DFace[nc] = 0 // edge face is now fully represented by the fold
	b.VFace[nc] = 0

	// critical fault check
	if err = b.CheckFinite(); err != nil {
		return nil, err
	}
	return
}

// vpCell returns V' at the center of cell i
func (o *Builder) vpCell(i int) float64 {
	return 4.0 * math.Pi * math.Pi * o.Geom.Rmaj * o.Geom.Rmin * o.Geom.Rmin * o.Geom.CellRho[i]
}

// resistivity returns the Spitzer parallel resistivity [Ω·m]
func (o *Builder) resistivity(ne, te float64) float64 {
	if te < 1.0 {
		te = 1.0
	}
	clog := phys.ClogEE(ne, te)
	return 1.65e-9 * o.Zeff * clog * math.Pow(te/phys.KeV, -1.5)
}
