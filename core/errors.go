// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "errors"

// Fault taxonomy for the solve pipeline. The solver classifies failures with
// errors.Is against these sentinels:
//  critical    -- ErrNaN: numerical corruption; always fatal, never retried
//  error       -- ErrUnphysical: negative diffusivity etc; rejected at the
//                 call site, never accepted into the solved system
//                 ErrModelLoad: wraps allocation/initialisation failures at
//                 the transport-model boundary, before any step runs
//  recoverable -- ErrNonConvergence: retried with a smaller timestep
//                 ErrPredictor: converted to the empirical fallback result
//                 at the transport-model boundary
var (
	// ErrNaN indicates NaN/Inf in coefficient or profile arrays
	ErrNaN = errors.New("gotok: NaN or Inf detected in coefficients")

	// ErrNonConvergence indicates the nonlinear iteration cap was reached
	// without meeting the tolerance
	ErrNonConvergence = errors.New("gotok: nonlinear iterations did not converge")

	// ErrUnphysical indicates an unphysical value such as a negative
	// diffusivity
	ErrUnphysical = errors.New("gotok: unphysical value")

	// ErrPredictor indicates the surrogate predictor failed or returned
	// malformed output
	ErrPredictor = errors.New("gotok: surrogate predictor failed")

	// ErrUnsupportedPlatform indicates the surrogate runtime is not
	// available on this platform
	ErrUnsupportedPlatform = errors.New("gotok: surrogate runtime unsupported on this platform")

	// ErrModelLoad indicates a model could not be loaded/initialised
	ErrModelLoad = errors.New("gotok: model load failure")
)
