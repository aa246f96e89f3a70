// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/cpmech/gosl/chk"

// OutCallback is called after each accepted output instant
type OutCallback func(t float64, dom *Domain) error

// Solver advances the domain in time up to tf, invoking out at every
// dtout interval (and at tf)
type Solver interface {
	Run(tf, dtout float64, verbose bool, out OutCallback) error
}

// solverallocators holds the available time-steppers
var solverallocators = make(map[string]func(dom *Domain) Solver)

// NewSolver returns a solver by name; e.g. "imp"
func NewSolver(name string, dom *Domain) (Solver, error) {
	alloc, ok := solverallocators[name]
	if !ok {
		return nil, chk.Err("solver %q is not available", name)
	}
	return alloc(dom), nil
}
