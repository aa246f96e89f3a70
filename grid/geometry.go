// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the radial grid and the geometric descriptor of
// the torus used by the transport equations
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Geometry holds the read-only geometric descriptor of a circular
// large-aspect-ratio equilibrium. The radial coordinate ρ is normalized to
// [0,1]; metric fields are defined on cell faces and thus have length
// NCells()+1. The number of cells is always derived from the face arrays,
// never stored, so the two cannot diverge.
//
//  Metric fields:
//   G0 -- V' = dV/dρ [m³]          (transient/source metric)
//   G1 -- V'/a²     [m]            (diffusion metric)
//   G2 -- V'/a      [m²]           (convection metric)
//   G3 -- ρ·a/R     [-]            (local inverse aspect ratio)
type Geometry struct {

	// input
	Rmaj float64 // major radius [m]
	Rmin float64 // minor radius [m]
	B0   float64 // toroidal field at Rmaj [T]

	// radial grid (normalized)
	FaceRho []float64 // [nc+1] face coordinates
	CellRho []float64 // [nc] cell centers
	Drho    float64   // uniform spacing

	// metrics (face-defined)
	G0 []float64 // [nc+1]
	G1 []float64 // [nc+1]
	G2 []float64 // [nc+1]
	G3 []float64 // [nc+1]

	// auxiliary
	CellVol []float64 // [nc] cell volumes [m³]
	Volume  float64   // total plasma volume [m³]
	Q       []float64 // [nc+1] safety factor on faces
}

// NewGeometry builds the geometric descriptor for a circular torus with
// ncells radial cells and a parabolic safety-factor profile from q0 on axis
// to qedge at the boundary
func NewGeometry(ncells int, rmaj, rmin, b0, q0, qedge float64) (o *Geometry) {
	if ncells < 3 {
		chk.Panic("geometry needs at least 3 radial cells. ncells=%d is invalid", ncells)
	}
	o = new(Geometry)
	o.Rmaj, o.Rmin, o.B0 = rmaj, rmin, b0

	// radial grid
	nf := ncells + 1
	o.FaceRho = utl.LinSpace(0, 1, nf)
	o.Drho = 1.0 / float64(ncells)
	o.CellRho = make([]float64, ncells)
	for i := 0; i < ncells; i++ {
		o.CellRho[i] = (o.FaceRho[i] + o.FaceRho[i+1]) / 2.0
	}

	// metrics
	o.G0 = make([]float64, nf)
	o.G1 = make([]float64, nf)
	o.G2 = make([]float64, nf)
	o.G3 = make([]float64, nf)
	o.Q = make([]float64, nf)
	c := 4.0 * math.Pi * math.Pi * rmaj * rmin * rmin
	for i, rho := range o.FaceRho {
		vp := c * rho // dV/dρ
		o.G0[i] = vp
		o.G1[i] = vp / (rmin * rmin)
		o.G2[i] = vp / rmin
		o.G3[i] = rho * rmin / rmaj
		o.Q[i] = q0 + (qedge-q0)*rho*rho
	}

	// cell volumes
	o.CellVol = make([]float64, ncells)
	for i, rho := range o.CellRho {
		o.CellVol[i] = c * rho * o.Drho
		o.Volume += o.CellVol[i]
	}
	return
}

// NCells returns the number of radial cells, derived from the length of the
// face-defined metric arrays
func (o *Geometry) NCells() int {
	return len(o.FaceRho) - 1
}

// Rcell returns the unnormalized minor-radius coordinate of cell i [m]
func (o *Geometry) Rcell(i int) float64 {
	return o.CellRho[i] * o.Rmin
}

// Qcell returns the safety factor interpolated at the center of cell i
func (o *Geometry) Qcell(i int) float64 {
	return (o.Q[i] + o.Q[i+1]) / 2.0
}
