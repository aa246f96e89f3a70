// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// TransportCoeffs holds the face-defined transport coefficients produced by
// a transport model. Diffusivities must be non-negative and finite; the
// convection velocity may be signed.
type TransportCoeffs struct {
	ChiI []float64 // [nf] ion heat diffusivity [m²/s]
	ChiE []float64 // [nf] electron heat diffusivity [m²/s]
	De   []float64 // [nf] particle diffusivity [m²/s]
	Ve   []float64 // [nf] particle convection velocity [m/s]
}

// NewTransportCoeffs allocates zeroed coefficients for nfaces faces
func NewTransportCoeffs(nfaces int) *TransportCoeffs {
	return &TransportCoeffs{
		ChiI: make([]float64, nfaces),
		ChiE: make([]float64, nfaces),
		De:   make([]float64, nfaces),
		Ve:   make([]float64, nfaces),
	}
}

// Check validates the coefficients: negative or non-finite diffusivities are
// rejected with ErrUnphysical; a large dynamic range (max/min > 1e4) is
// logged as a warning only
func (o *TransportCoeffs) Check() error {
	min, max := math.Inf(1), 0.0
	for _, chi := range [][]float64{o.ChiI, o.ChiE, o.De} {
		for _, v := range chi {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaN
			}
			if v < 0 {
				return ErrUnphysical
			}
			if v > 0 {
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
		}
	}
	for _, v := range o.Ve {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaN
		}
	}
	if min > 0 && max/min > 1e4 {
		io.Pfyel("warning: large diffusivity dynamic range: max/min = %g\n", max/min)
	}
	return nil
}

// SourceMeta holds the per-contributor power-balance entry attached to
// SourceTerms. Categories: "fusion", "ohmic", "radiation", "other".
type SourceMeta struct {
	Name   string  // contributor name
	Cat    string  // category
	PowIon float64 // total power to ions [MW]
	PowEle float64 // total power to electrons [MW]
}

// SourceTerms holds the cell-defined source terms produced by source models.
// SourceTerms form an additive monoid: the identity is all-zero terms with
// empty (non-nil) metadata, and Add sums fields while concatenating the
// metadata lists in order. Equality for testing purposes ignores Meta.
type SourceTerms struct {
	Qi   []float64     // [nc] ion heating power density [MW/m³]
	Qe   []float64     // [nc] electron heating power density [MW/m³]
	Sn   []float64     // [nc] particle source [1/(m³·s)]
	Jext []float64     // [nc] driven current density [A/m²]
	Meta []*SourceMeta // ordered per-contributor power-balance entries
}

// NewSourceTerms returns the monoid identity: all-zero terms with empty,
// non-nil metadata, so consumers can unconditionally inspect Meta
func NewSourceTerms(ncells int) *SourceTerms {
	return &SourceTerms{
		Qi:   make([]float64, ncells),
		Qe:   make([]float64, ncells),
		Sn:   make([]float64, ncells),
		Jext: make([]float64, ncells),
		Meta: []*SourceMeta{},
	}
}

// Add accumulates other into this set of terms and appends its metadata
func (o *SourceTerms) Add(other *SourceTerms) {
	chk.IntAssert(len(o.Qi), len(other.Qi))
	for i := range o.Qi {
		o.Qi[i] += other.Qi[i]
		o.Qe[i] += other.Qe[i]
		o.Sn[i] += other.Sn[i]
		o.Jext[i] += other.Jext[i]
	}
	o.Meta = append(o.Meta, other.Meta...)
}

// TotalPowers returns the summed ion and electron powers [MW] from the
// metadata entries (power-balance accounting)
func (o *SourceTerms) TotalPowers() (pion, pele float64) {
	for _, m := range o.Meta {
		pion += m.PowIon
		pele += m.PowEle
	}
	return
}

// Block1D holds the assembled finite-volume coefficients of one discretized
// transport equation, ready for the tridiagonal solve. All arrays are
// transient: they are produced fresh from the current-guess profiles each
// nonlinear iteration and discarded after the step converges.
//
//  The discretized equation for cell value x reads
//
//   (tin·x^{new} − tout·x^{old})/Δt =
//       (1/Δρ)·[ flux(i+1/2) − flux(i−1/2) ] + smat·x^{new} + s
//
//  with face flux   flux = dface·(∂x/∂ρ) − vface·x_face
type Block1D struct {
	TransientInCell  []float64 // [nc] coefficient of x^{new} in transient term
	TransientOutCell []float64 // [nc] coefficient of x^{old} in transient term
	DFace            []float64 // [nf] face diffusion coefficient (metric included)
	VFace            []float64 // [nf] face convection coefficient (metric included)
	SourceMatCell    []float64 // [nc] implicit source coefficient
	SourceCell       []float64 // [nc] explicit source
}

// NewBlock1D allocates coefficients for ncells cells
func NewBlock1D(ncells int) *Block1D {
	return &Block1D{
		TransientInCell:  make([]float64, ncells),
		TransientOutCell: make([]float64, ncells),
		DFace:            make([]float64, ncells+1),
		VFace:            make([]float64, ncells+1),
		SourceMatCell:    make([]float64, ncells),
		SourceCell:       make([]float64, ncells),
	}
}

// CheckFinite returns ErrNaN (critical) if any coefficient array contains
// NaN or Inf
func (o *Block1D) CheckFinite() error {
	for _, a := range [][]float64{o.TransientInCell, o.TransientOutCell, o.DFace, o.VFace, o.SourceMatCell, o.SourceCell} {
		for _, v := range a {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaN
			}
		}
	}
	return nil
}
