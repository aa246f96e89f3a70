// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_coeffs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coeffs01. transport coefficient checks")

	tc := NewTransportCoeffs(6)
	for i := range tc.ChiI {
		tc.ChiI[i] = 1.0
		tc.ChiE[i] = 2.0
		tc.De[i] = 0.5
	}
	if err := tc.Check(); err != nil {
		tst.Errorf("test failed: valid coefficients rejected: %v\n", err)
		return
	}

	// NaN is critical
	tc.ChiE[3] = math.NaN()
	err := tc.Check()
	if !errors.Is(err, ErrNaN) {
		tst.Errorf("test failed: NaN should map to ErrNaN. got %v\n", err)
		return
	}

	// negative diffusivity is unphysical
	tc.ChiE[3] = 2.0
	tc.De[1] = -0.1
	err = tc.Check()
	if !errors.Is(err, ErrUnphysical) {
		tst.Errorf("test failed: negative diffusivity should map to ErrUnphysical. got %v\n", err)
		return
	}

	// signed convection is fine
	tc.De[1] = 0.5
	tc.Ve[2] = -10.0
	if err := tc.Check(); err != nil {
		tst.Errorf("test failed: signed convection rejected: %v\n", err)
	}
}

func Test_sources01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sources01. source terms monoid")

	// identity: all-zero with empty non-nil metadata
	id := NewSourceTerms(4)
	if id.Meta == nil {
		tst.Errorf("test failed: identity Meta must be non-nil\n")
		return
	}
	chk.IntAssert(len(id.Meta), 0)

	// adding the identity changes nothing
	a := NewSourceTerms(4)
	a.Qi[0], a.Qe[1], a.Sn[2], a.Jext[3] = 1, 2, 3, 4
	a.Meta = append(a.Meta, &SourceMeta{Name: "nbi", Cat: "other", PowIon: 10, PowEle: 5})
	a.Add(id)
	chk.Array(tst, "Qi", 1e-15, a.Qi, []float64{1, 0, 0, 0})
	chk.IntAssert(len(a.Meta), 1)

	// addition sums fields and concatenates metadata in order
	b := NewSourceTerms(4)
	b.Qi[0], b.Qe[1] = 9, -2
	b.Meta = append(b.Meta, &SourceMeta{Name: "rad", Cat: "radiation", PowEle: -1})
	a.Add(b)
	chk.Array(tst, "Qi sum", 1e-15, a.Qi, []float64{10, 0, 0, 0})
	chk.Array(tst, "Qe sum", 1e-15, a.Qe, []float64{0, 0, 0, 0})
	chk.IntAssert(len(a.Meta), 2)
	if a.Meta[0].Name != "nbi" || a.Meta[1].Name != "rad" {
		tst.Errorf("test failed: metadata order not preserved\n")
		return
	}

	// power balance accounting
	pion, pele := a.TotalPowers()
	chk.Float64(tst, "Pion", 1e-15, pion, 10)
	chk.Float64(tst, "Pele", 1e-15, pele, 4)
}

func Test_profiles01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profiles01. snapshot copy semantics")

	pf := NewProfiles(3)
	pf.Ti[0], pf.Te[1], pf.Ne[2], pf.Psi[0] = 100, 200, 1e19, 0.5
	cp := pf.GetCopy()
	chk.Array(tst, "Ti", 1e-15, cp.Ti, pf.Ti)
	chk.Array(tst, "Psi", 1e-15, cp.Psi, pf.Psi)

	// the copy is deep
	cp.Ti[0] = -1
	chk.Float64(tst, "Ti[0] original", 1e-15, pf.Ti[0], 100)

	// field selection by key
	chk.Array(tst, "Field(ne)", 1e-15, pf.Field("ne"), pf.Ne)

	// block finiteness check
	blk := NewBlock1D(3)
	if err := blk.CheckFinite(); err != nil {
		tst.Errorf("test failed: zero block should be finite: %v\n", err)
		return
	}
	blk.DFace[2] = math.Inf(1)
	if !errors.Is(blk.CheckFinite(), ErrNaN) {
		tst.Errorf("test failed: Inf in block should map to ErrNaN\n")
	}
}
