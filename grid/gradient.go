// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/chk"

// Gradient computes df/dx with a 2nd-order central stencil in the interior
// and 1st-order one-sided stencils at the two ends. This is the single
// stencil shared by all normalized-gradient computations (temperature,
// density, safety factor); transport models must use it rather than rolling
// their own so that gradient-derived features stay mutually consistent.
func Gradient(f, x []float64) (df []float64) {
	n := len(f)
	chk.IntAssert(len(x), n)
	if n < 2 {
		chk.Panic("gradient needs at least 2 points. n=%d is invalid", n)
	}
	df = make([]float64, n)
	df[0] = (f[1] - f[0]) / (x[1] - x[0])
	for i := 1; i < n-1; i++ {
		df[i] = (f[i+1] - f[i-1]) / (x[i+1] - x[i-1])
	}
	df[n-1] = (f[n-1] - f[n-2]) / (x[n-1] - x[n-2])
	return
}
