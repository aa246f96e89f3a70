// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/grid"
)

// testSetup returns a small geometry with uniform profiles and constant
// transport coefficients
func testSetup(nc int) (g *grid.Geometry, pf *core.Profiles, tc *core.TransportCoeffs, st *core.SourceTerms) {
	g = grid.NewGeometry(nc, 6.2, 2.0, 5.3, 1.0, 3.5)
	pf = core.NewProfiles(nc)
	for i := 0; i < nc; i++ {
		pf.Ti[i] = 5000
		pf.Te[i] = 6000
		pf.Ne[i] = 1e20
		pf.Psi[i] = 0.1
	}
	tc = core.NewTransportCoeffs(nc + 1)
	for f := 0; f <= nc; f++ {
		tc.ChiI[f] = 1.0
		tc.ChiE[f] = 1.5
		tc.De[f] = 0.5
		tc.Ve[f] = -0.2
	}
	st = core.NewSourceTerms(nc)
	return
}

func Test_build01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build01. per-equation coefficients")

	nc := 10
	g, pf, tc, st := testSetup(nc)
	bld := NewBuilder(g, 2.0)

	// ion heat equation: transient 1.5·ne·V', diffusion ne·χ·G1
	b, err := bld.Build("ti", pf, pf, tc, st, 5000)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	neFace := CellToFace(pf.Ne)
	for i := 0; i < nc; i++ {
		vp := 4.0 * math.Pi * math.Pi * g.Rmaj * g.Rmin * g.Rmin * g.CellRho[i]
		chk.Float64(tst, "tin", 1e8, b.TransientInCell[i], 1.5*pf.Ne[i]*vp)
		chk.Float64(tst, "tout", 1e8, b.TransientOutCell[i], 1.5*pf.Ne[i]*vp)
	}
	for f := 1; f < nc; f++ {
		chk.Float64(tst, "dface(ti)", 1e7, b.DFace[f], neFace[f]*tc.ChiI[f]*g.G1[f])
	}

	// axis face carries no flux
	chk.Float64(tst, "dface[0]", 1e-15, b.DFace[0], 0)

	// particle equation: convection on G2
	b, err = bld.Build("ne", pf, pf, tc, st, 1e20)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for f := 1; f < nc; f++ {
		chk.Float64(tst, "dface(ne)", 1e-8, b.DFace[f], tc.De[f]*g.G1[f])
		chk.Float64(tst, "vface(ne)", 1e-8, b.VFace[f], tc.Ve[f]*g.G2[f])
	}

	// unknown key
	_, err = bld.Build("pressure", pf, pf, tc, st, 0)
	if err == nil {
		tst.Errorf("test failed: unknown key must be rejected\n")
	}
}

func Test_build02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build02. Dirichlet edge fold")

	nc := 10
	g, pf, tc, st := testSetup(nc)
	tc.Ve[nc] = 0 // diffusion-only edge for the closed-form check
	bld := NewBuilder(g, 2.0)
	bc := 1.2e20
	b, err := bld.Build("ne", pf, pf, tc, st, bc)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// the edge face is folded into the last cell and then zeroed
	chk.Float64(tst, "dface[nc]", 1e-15, b.DFace[nc], 0)
	chk.Float64(tst, "vface[nc]", 1e-15, b.VFace[nc], 0)
	dEdge := 2.0 * tc.De[nc] * g.G1[nc] / g.Drho
	chk.Float64(tst, "smat[nc-1]", 1e-8, b.SourceMatCell[nc-1], -dEdge/g.Drho)
	chk.Float64(tst, "s[nc-1]", 1e-8*bc, b.SourceCell[nc-1], dEdge*bc/g.Drho)
}

func Test_build03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build03. NaN in coefficients is a critical fault")

	nc := 10
	g, pf, tc, st := testSetup(nc)
	bld := NewBuilder(g, 2.0)
	tc.ChiI[3] = math.NaN()
	_, err := bld.Build("ti", pf, pf, tc, st, 5000)
	if !errors.Is(err, core.ErrNaN) {
		tst.Errorf("test failed: NaN must map to core.ErrNaN. got %v\n", err)
	}
}

func Test_build04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build04. uniform profile at the edge value is steady")

	nc := 16
	g, pf, tc, st := testSetup(nc)
	for f := 0; f <= nc; f++ {
		tc.Ve[f] = 0
	}
	bld := NewBuilder(g, 2.0)

	// with zero sources and the boundary pinned at the uniform value, one
	// implicit step must return the profile unchanged
	b, err := bld.Build("ne", pf, pf, tc, st, pf.Ne[nc-1])
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	xnew := make([]float64, nc)
	SolveBlock(b, pf.Ne, 0.01, g.Drho, xnew)
	chk.Array(tst, "ne steady", 1e8, xnew, pf.Ne)
}
