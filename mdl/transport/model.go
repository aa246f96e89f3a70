// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package transport implements the transport models producing diffusivity
// and convection fields from the current profiles and the geometry
package transport

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/grid"
)

// Model defines transport models
type Model interface {
	Init(g *grid.Geometry, prms dbf.Params) error                // Init initialises this structure
	Coeffs(pf *core.Profiles) (*core.TransportCoeffs, error)     // Coeffs computes the face-defined coefficients
}

// New transport model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'transport' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
