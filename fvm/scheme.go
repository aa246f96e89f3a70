// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm implements the 1-D radial finite-volume discretization of the
// transport equations: the Patankar power-law face scheme, the per-equation
// coefficient builder and the tridiagonal solve.
package fvm

import "math"

// DepsMin is the floor applied to face diffusion coefficients when forming
// the Péclet number, to avoid division by zero
const DepsMin = 1e-30

// Peclet returns the face Péclet number Pe = v·Δx/D with D floored by
// DepsMin
func Peclet(v, d, dx float64) float64 {
	if d < DepsMin {
		d = DepsMin
	}
	return v * dx / d
}

// Alpha returns the power-law weighting factor α(Pe) ∈ [0,1]:
//
//   α = (max(0, 1 − 0.1·|Pe|))⁵   for |Pe| ≤ 10
//   α = 0                         for |Pe| > 10
//
// α=1 selects pure 2nd-order central differencing (Pe≈0); α=0 selects pure
// 1st-order upwinding (convection-dominated). Central differencing alone
// oscillates at high Pe; pure upwinding is stable but overly diffusive at
// low Pe; the power-law blend interpolates smoothly between the two.
func Alpha(pe float64) float64 {
	ape := math.Abs(pe)
	if ape > 10.0 {
		return 0
	}
	b := 1.0 - 0.1*ape
	if b < 0 {
		return 0
	}
	return b * b * b * b * b
}

// FaceValue blends the two adjacent cell values into a face value using the
// weighting factor α and the sign of the face velocity:
//
//   x_face = α·(xL + xR)/2 + (1 − α)·upwind(xL, xR, v)
func FaceValue(xL, xR, v, alpha float64) float64 {
	up := xL
	if v < 0 {
		up = xR
	}
	return alpha*(xL+xR)/2.0 + (1.0-alpha)*up
}

// FaceWeights returns the coefficients (wL, wR) such that
// x_face = wL·xL + wR·xR for the blended scheme
func FaceWeights(v, alpha float64) (wL, wR float64) {
	wL = alpha / 2.0
	wR = alpha / 2.0
	if v >= 0 {
		wL += 1.0 - alpha
	} else {
		wR += 1.0 - alpha
	}
	return
}

// CellToFace interpolates a cell-defined array onto faces: arithmetic mean
// at interior faces, the adjacent single-cell value at the two boundary
// faces (no blending)
func CellToFace(x []float64) (xf []float64) {
	n := len(x)
	xf = make([]float64, n+1)
	xf[0] = x[0]
	for i := 1; i < n; i++ {
		xf[i] = (x[i-1] + x[i]) / 2.0
	}
	xf[n] = x[n-1]
	return
}
