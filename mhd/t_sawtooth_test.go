// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mhd

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/grid"
)

// peakedProfiles returns strongly peaked parabolic profiles on g
func peakedProfiles(g *grid.Geometry) (pf *core.Profiles) {
	nc := g.NCells()
	pf = core.NewProfiles(nc)
	for i := 0; i < nc; i++ {
		rho := g.CellRho[i]
		shape := 1.0 - rho*rho
		pf.Ti[i] = 500 + 14500*shape
		pf.Te[i] = 500 + 12500*shape
		pf.Ne[i] = 2e19 + 1.0e20*shape
		pf.Psi[i] = 0.5 * rho * rho
	}
	return
}

func Test_saw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saw01. trigger conditions and rate limiting")

	// q(0)=0.8 < qcrit for peaked profiles; mininterval=0.01
	g := grid.NewGeometry(50, 6.2, 2.0, 5.3, 0.8, 3.5)
	pf := peakedProfiles(g)
	saw := NewSawtooth(1.0, 0.01, 0.002, 0.4, 1.1)

	// the peaking heuristic lowers the estimate below q(0)
	q0 := saw.Q0Estimate(pf, g)
	if q0 >= 0.8 {
		tst.Errorf("test failed: peaked Ti must lower the q0 estimate. got %g\n", q0)
		return
	}

	// small timestep: no trigger even though q0 < qcrit
	if saw.Check(pf, g, 0.1, 0.005) {
		tst.Errorf("test failed: dt below the minimum interval must not trigger\n")
		return
	}

	// large enough timestep triggers
	if !saw.Check(pf, g, 0.1, 0.02) {
		tst.Errorf("test failed: crash should trigger with dt=0.02\n")
		return
	}
	chk.IntAssert(saw.State, Triggered)
	saw.Relax(pf, g, 0.1, 0.02)
	chk.IntAssert(saw.State, Relaxed)

	// rate limiting: the next crash needs MinInterval to pass
	if saw.Check(pf, g, 0.105, 0.02) {
		tst.Errorf("test failed: crashes must be rate limited\n")
		return
	}
	if !saw.Check(pf, g, 0.12, 0.02) {
		tst.Errorf("test failed: crash should re-trigger after the interval\n")
		return
	}

	// high enough q(0) keeps the estimate above the threshold even with the
	// peaking penalty (≈0.52 here)
	g2 := grid.NewGeometry(50, 6.2, 2.0, 5.3, 2.5, 3.5)
	saw2 := NewSawtooth(1.0, 0.01, 0.002, 0.4, 1.1)
	if saw2.Check(peakedProfiles(g2), g2, 0.1, 0.02) {
		tst.Errorf("test failed: q0 above qcrit must not trigger\n")
		return
	}
	chk.IntAssert(saw2.State, Stable)
}

func Test_saw02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saw02. relaxation conserves and stays inside the region")

	g := grid.NewGeometry(50, 6.2, 2.0, 5.3, 0.8, 3.5)
	pf := peakedProfiles(g)
	ref := pf.GetCopy()
	saw := NewSawtooth(1.0, 0.01, 0.002, 0.4, 1.1)

	// totals before
	var n0, wi0, we0 float64
	for i := 0; i < g.NCells(); i++ {
		n0 += pf.Ne[i] * g.CellVol[i]
		wi0 += pf.Ti[i] * g.CellVol[i]
		we0 += pf.Te[i] * g.CellVol[i]
	}

	if !saw.Check(pf, g, 0.1, 0.02) {
		tst.Errorf("test failed: crash should trigger\n")
		return
	}
	saw.Relax(pf, g, 0.1, 0.02)

	// inversion radius lies in (RhoQ1, 1)
	idx := saw.InversionIndex(g)
	if g.CellRho[idx] <= 0.2 || g.CellRho[idx] >= 1.0 {
		tst.Errorf("test failed: inversion radius %g out of range\n", g.CellRho[idx])
		return
	}

	// the core flattens: on-axis temperature drops
	if pf.Ti[0] >= ref.Ti[0] {
		tst.Errorf("test failed: relaxation must lower the on-axis temperature\n")
		return
	}

	// cells outside the mixing region are unchanged bit-for-bit; flux is
	// never touched
	rmix := saw.RhoQ1 * saw.MixMult
	for i := 0; i < g.NCells(); i++ {
		if g.CellRho[i] >= rmix {
			if pf.Ti[i] != ref.Ti[i] || pf.Te[i] != ref.Te[i] || pf.Ne[i] != ref.Ne[i] {
				tst.Errorf("test failed: cell %d outside the region was modified\n", i)
				return
			}
		}
		if pf.Psi[i] != ref.Psi[i] {
			tst.Errorf("test failed: poloidal flux must not be relaxed\n")
			return
		}
	}

	// totals after: particles and thermal content conserved within 1%
	var n1, wi1, we1 float64
	for i := 0; i < g.NCells(); i++ {
		n1 += pf.Ne[i] * g.CellVol[i]
		wi1 += pf.Ti[i] * g.CellVol[i]
		we1 += pf.Te[i] * g.CellVol[i]
	}
	if math.Abs(n1-n0)/n0 > 1e-12 {
		tst.Errorf("test failed: particle count not conserved: %g vs %g\n", n1, n0)
		return
	}
	if math.Abs(wi1-wi0)/wi0 > 0.01 || math.Abs(we1-we0)/we0 > 0.01 {
		tst.Errorf("test failed: thermal content changed by more than 1%%\n")
	}
}

func Test_saw03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saw03. relax is a no-op unless triggered")

	g := grid.NewGeometry(50, 6.2, 2.0, 5.3, 1.5, 3.5)
	pf := peakedProfiles(g)
	ref := pf.GetCopy()
	saw := NewSawtooth(1.0, 0.01, 0.002, 0.4, 1.1)

	// Stable state: nothing happens
	saw.Relax(pf, g, 0.1, 0.02)
	chk.Array(tst, "Ti", 1e-15, pf.Ti, ref.Ti)
	chk.Array(tst, "Ne", 1e-15, pf.Ne, ref.Ne)

	// invalid q=1 radius panics
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("test failed: rhoQ1 out of (0,1) must panic\n")
		}
	}()
	NewSawtooth(1.0, 0.01, 0.002, 1.5, 1.1)
}

func Test_saw04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saw04. mixing region falls back to the innermost third")

	// rhoQ1·mixMult = 1.045 lies beyond every cell centre, so the region
	// must shrink to the innermost third instead of swallowing the grid
	g := grid.NewGeometry(50, 6.2, 2.0, 5.3, 0.8, 3.5)
	pf := peakedProfiles(g)
	ref := pf.GetCopy()
	saw := NewSawtooth(1.0, 0.01, 0.002, 0.95, 1.1)

	if !saw.Check(pf, g, 0.1, 0.02) {
		tst.Errorf("test failed: crash should trigger\n")
		return
	}
	saw.Relax(pf, g, 0.1, 0.02)
	chk.IntAssert(saw.State, Relaxed)

	// the core flattens
	if pf.Ti[0] >= ref.Ti[0] {
		tst.Errorf("test failed: relaxation must lower the on-axis temperature\n")
		return
	}

	// everything from the innermost third outward is unchanged bit-for-bit,
	// the edge cell in particular
	for i := g.NCells() / 3; i < g.NCells(); i++ {
		if pf.Ti[i] != ref.Ti[i] || pf.Te[i] != ref.Te[i] || pf.Ne[i] != ref.Ne[i] {
			tst.Errorf("test failed: cell %d beyond the fallback region was modified\n", i)
			return
		}
	}
}
