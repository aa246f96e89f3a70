// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package core holds the data shared by the transport models, the
// coefficient builder and the solver: evolved profiles, transport
// coefficients, source terms and the assembled per-equation coefficients.
// Arrays are plain float64 slices (eager evaluation); temperatures are eV,
// densities m⁻³, poloidal flux Wb.
package core

import "github.com/cpmech/gosl/chk"

// Profiles holds one snapshot of the evolved core profiles on the radial
// cell grid. A new instance is produced for each accepted step; the solver
// never mutates a snapshot it has already published.
type Profiles struct {
	Ti  []float64 // ion temperature [eV]
	Te  []float64 // electron temperature [eV]
	Ne  []float64 // electron density [m⁻³]
	Psi []float64 // poloidal flux [Wb]
}

// NewProfiles allocates a zeroed snapshot with ncells cells
func NewProfiles(ncells int) *Profiles {
	return &Profiles{
		Ti:  make([]float64, ncells),
		Te:  make([]float64, ncells),
		Ne:  make([]float64, ncells),
		Psi: make([]float64, ncells),
	}
}

// Set copies other into this snapshot
//  Note: both must have been pre-allocated with the same number of cells
func (o *Profiles) Set(other *Profiles) {
	chk.IntAssert(len(o.Ti), len(other.Ti))
	copy(o.Ti, other.Ti)
	copy(o.Te, other.Te)
	copy(o.Ne, other.Ne)
	copy(o.Psi, other.Psi)
}

// GetCopy returns a deep copy of this snapshot
func (o *Profiles) GetCopy() *Profiles {
	other := NewProfiles(len(o.Ti))
	other.Set(o)
	return other
}

// NCells returns the number of radial cells
func (o *Profiles) NCells() int {
	return len(o.Ti)
}

// Field returns the profile array selected by key ∈ {"ti","te","ne","psi"}
func (o *Profiles) Field(key string) []float64 {
	switch key {
	case "ti":
		return o.Ti
	case "te":
		return o.Te
	case "ne":
		return o.Ne
	case "psi":
		return o.Psi
	}
	chk.Panic("unknown profile key %q", key)
	return nil
}
