// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotok/core"
)

// Assemble turns one Block1D into the tridiagonal system of the implicit
// (backward-Euler) step. The face flux in the +ρ direction is
//
//   Φ_f = −DFace·(xR − xL)/Δρ + VFace·x_face
//
// with x_face given by the power-law blend (FaceWeights). The per-cell
// balance, multiplied by Δρ, yields
//
//   (Δρ·tin/Δt − Δρ·smat)·x_i + (Φ_{i+1} − Φ_i) = Δρ·s_i + Δρ·tout·xold_i/Δt
//
// The axis face carries zero metric (no flux); the edge face has been
// folded into the last cell's source coefficients by the builder.
func Assemble(b *core.Block1D, xold []float64, dt, drho float64, sub, dia, sup, rhs []float64) {

	n := len(b.TransientInCell)
	chk.IntAssert(len(xold), n)

	// transient and source terms
	for i := 0; i < n; i++ {
		sub[i], sup[i] = 0, 0
		dia[i] = drho*b.TransientInCell[i]/dt - drho*b.SourceMatCell[i]
		rhs[i] = drho*b.SourceCell[i] + drho*b.TransientOutCell[i]*xold[i]/dt
	}

	// interior faces: face f connects cells f-1 (L) and f (R)
	for f := 1; f < n; f++ {
		dcond := b.DFace[f] / drho
		v := b.VFace[f]
		pe := Peclet(v, b.DFace[f], drho)
		wL, wR := FaceWeights(v, Alpha(pe))

		// Φ_f enters cell f-1 with +, cell f with −
		dia[f-1] += dcond + v*wL
		sup[f-1] += -dcond + v*wR
		dia[f] += dcond - v*wR
		sub[f] += -dcond - v*wL
	}
}

// SolveBlock assembles and solves one Block1D, writing the new cell values
// into xnew
func SolveBlock(b *core.Block1D, xold []float64, dt, drho float64, xnew []float64) {
	n := len(xold)
	sub := make([]float64, n)
	dia := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)
	Assemble(b, xold, dt, drho, sub, dia, sup, rhs)
	SolveTridiag(sub, dia, sup, rhs, xnew)
}
