// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import "github.com/cpmech/gosl/chk"

// SolveTridiag solves the tridiagonal system
//
//   sub[i]·x[i-1] + dia[i]·x[i] + sup[i]·x[i+1] = rhs[i]
//
// with the Thomas algorithm, writing the solution into x. sub[0] and
// sup[n-1] are ignored. The n-cell radial systems assembled here are always
// diagonally dominant (Patankar coefficients), so no pivoting is needed.
func SolveTridiag(sub, dia, sup, rhs, x []float64) {
	n := len(dia)
	chk.IntAssert(len(x), n)

	// scratch space for forward elimination
	cp := make([]float64, n)
	dp := make([]float64, n)

	// forward elimination
	cp[0] = sup[0] / dia[0]
	dp[0] = rhs[0] / dia[0]
	for i := 1; i < n; i++ {
		den := dia[i] - sub[i]*cp[i-1]
		if i < n-1 {
			cp[i] = sup[i] / den
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / den
	}

	// back substitution
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
}
