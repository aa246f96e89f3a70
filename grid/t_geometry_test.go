// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_geom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom01. geometric descriptor")

	nc := 25
	g := NewGeometry(nc, 6.2, 2.0, 5.3, 1.0, 3.5)

	// counts derive from the face array
	chk.IntAssert(g.NCells(), nc)
	chk.IntAssert(len(g.FaceRho), nc+1)
	chk.IntAssert(len(g.CellRho), nc)
	chk.IntAssert(len(g.G0), nc+1)
	chk.IntAssert(len(g.CellVol), nc)

	// grid
	chk.Float64(tst, "ρ_face[0]", 1e-15, g.FaceRho[0], 0)
	chk.Float64(tst, "ρ_face[nc]", 1e-15, g.FaceRho[nc], 1)
	chk.Float64(tst, "Δρ", 1e-15, g.Drho, 1.0/float64(nc))
	chk.Float64(tst, "ρ_cell[0]", 1e-15, g.CellRho[0], 0.5*g.Drho)

	// the axis face carries a zero metric
	chk.Float64(tst, "G0[0]", 1e-15, g.G0[0], 0)
	chk.Float64(tst, "G1[0]", 1e-15, g.G1[0], 0)
	chk.Float64(tst, "G2[0]", 1e-15, g.G2[0], 0)

	// V' at the edge and total volume of the circular torus
	vpEdge := 4.0 * math.Pi * math.Pi * 6.2 * 2.0 * 2.0
	chk.Float64(tst, "G0[nc]", 1e-11, g.G0[nc], vpEdge)
	chk.Float64(tst, "G1[nc]", 1e-11, g.G1[nc], vpEdge/4.0)
	chk.Float64(tst, "G2[nc]", 1e-11, g.G2[nc], vpEdge/2.0)
	vtot := 2.0 * math.Pi * 6.2 * math.Pi * 2.0 * 2.0
	chk.Float64(tst, "Volume", 1e-9, g.Volume, vtot)

	// cell volumes add up to the total
	sum := 0.0
	for _, v := range g.CellVol {
		sum += v
	}
	chk.Float64(tst, "ΣCellVol", 1e-9, sum, g.Volume)

	// parabolic q profile
	chk.Float64(tst, "q(0)", 1e-15, g.Q[0], 1.0)
	chk.Float64(tst, "q(1)", 1e-15, g.Q[nc], 3.5)
	chk.Float64(tst, "q(0.5)", 1e-14, g.Q[nc/2+1], 1.0+2.5*g.FaceRho[nc/2+1]*g.FaceRho[nc/2+1])
}

func Test_geom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom02. too few cells panics")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("test failed: NewGeometry should have panicked\n")
		}
	}()
	NewGeometry(2, 6.2, 2.0, 5.3, 1.0, 3.5)
}

func Test_grad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grad01. shared gradient stencil")

	// linear profile: exact everywhere, ends included
	n := 11
	x := make([]float64, n)
	f := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) * 0.1
		f[i] = 3.0 - 2.0*x[i]
	}
	df := Gradient(f, x)
	for i := 0; i < n; i++ {
		chk.Float64(tst, "df/dx linear", 1e-13, df[i], -2.0)
	}

	// quadratic profile: the central stencil is exact in the interior
	for i := 0; i < n; i++ {
		f[i] = x[i] * x[i]
	}
	df = Gradient(f, x)
	for i := 1; i < n-1; i++ {
		chk.Float64(tst, "df/dx quadratic", 1e-13, df[i], 2.0*x[i])
	}
}
