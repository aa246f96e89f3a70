// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/fvm"
	"github.com/cpmech/gotok/grid"
	"github.com/cpmech/gotok/phys"
)

// NumFeatures is the number of dimensionless input features computed per
// radial cell for the surrogate predictor
const NumFeatures = 10

// Predictor is the opaque black-box interface to the neural surrogate. It
// receives one feature row per radial cell and must return one output row
// per cell with at least 3 columns: gyroBohm-normalized ion heat flux,
// electron heat flux and particle flux.
//
// Predictors may be backed by non-reentrant external runtimes; the
// Surrogate model serializes all calls, so implementations need not be
// safe for concurrent use.
type Predictor interface {
	Predict(features [][]float64) (outputs [][]float64, err error)
}

// Surrogate implements the neural-surrogate transport model. It computes
// ten dimensionless features per cell, invokes the predictor, and converts
// its gyroBohm-normalized outputs to physical diffusivities:
//
//   χ = |out_GB| · χ_GB,   χ_GB = Te^1.5·√mi / ((Qe·B)²·a)   (Te in J)
//
// Surrogate failure is never fatal: if the predictor errors, returns
// malformed output, or is absent (unsupported platform), the model
// silently substitutes the Bohm/gyroBohm result for that step, logging the
// event. Surrogates can legitimately be asked to extrapolate outside their
// training domain, so this fallback is part of the model contract rather
// than an error path.
type Surrogate struct {
	geom     *grid.Geometry
	fallback *BohmGyroBohm
	pred     Predictor
	mu       sync.Mutex // serializes predictor access
	minchi   float64
	mion     float64
	zeff     float64
}

// add model to factory
func init() {
	allocators["surrogate"] = func() Model { return new(Surrogate) }
}

// Init initialises this structure. The same parameters configure the
// embedded Bohm/gyroBohm fallback.
func (o *Surrogate) Init(g *grid.Geometry, prms dbf.Params) (err error) {
	o.geom = g
	o.minchi = 0.05
	o.mion = phys.Md
	o.zeff = 1.5
	var rest dbf.Params
	for _, p := range prms {
		switch p.N {
		case "minchi":
			o.minchi = p.V
			rest = append(rest, p)
		case "mion":
			o.mion = p.V * phys.Amu
			rest = append(rest, p)
		case "zeff":
			o.zeff = p.V
		default:
			rest = append(rest, p)
		}
	}
	o.fallback = new(BohmGyroBohm)
	return o.fallback.Init(g, rest)
}

// SetPredictor attaches the black-box predictor. A nil predictor means the
// surrogate runtime is unsupported on this platform and every step will use
// the fallback.
func (o *Surrogate) SetPredictor(p Predictor) {
	o.pred = p
}

// Coeffs computes the face-defined coefficients
func (o *Surrogate) Coeffs(pf *core.Profiles) (tc *core.TransportCoeffs, err error) {

	out, ferr := o.predict(pf)
	if ferr != nil {
		io.Pfred("surrogate prediction failed (%v); using bohmgyrobohm fallback\n", ferr)
		return o.fallback.Coeffs(pf)
	}

	g := o.geom
	nc := g.NCells()

	// convert gyroBohm outputs to physical diffusivities on cells
	chii := make([]float64, nc)
	chie := make([]float64, nc)
	de := make([]float64, nc)
	for i := 0; i < nc; i++ {
		teJ := pf.Te[i] * phys.Qe
		chigb := math.Pow(teJ, 1.5) * math.Sqrt(o.mion) / (math.Pow(phys.Qe*g.B0, 2) * g.Rmin)
		chii[i] = math.Abs(out[i][0]) * chigb
		chie[i] = math.Abs(out[i][1]) * chigb
		de[i] = math.Abs(out[i][2]) * chigb
	}

	// interpolate to faces and floor
	tc = core.NewTransportCoeffs(nc + 1)
	copy(tc.ChiI, fvm.CellToFace(chii))
	copy(tc.ChiE, fvm.CellToFace(chie))
	copy(tc.De, fvm.CellToFace(de))
	for f := 0; f <= nc; f++ {
		if tc.ChiI[f] < o.minchi {
			tc.ChiI[f] = o.minchi
		}
		if tc.ChiE[f] < o.minchi {
			tc.ChiE[f] = o.minchi
		}
		if tc.De[f] < o.minchi {
			tc.De[f] = o.minchi
		}
	}
	return
}

// predict runs the serialized predictor call and validates its output
func (o *Surrogate) predict(pf *core.Profiles) (out [][]float64, err error) {
	if o.pred == nil {
		return nil, core.ErrUnsupportedPlatform
	}
	feats := o.Features(pf)
	o.mu.Lock()
	out, err = o.pred.Predict(feats)
	o.mu.Unlock()
	if err != nil {
		return nil, core.ErrPredictor
	}
	if len(out) != len(feats) {
		return nil, core.ErrPredictor
	}
	for _, row := range out {
		if len(row) < 3 {
			return nil, core.ErrPredictor
		}
		for _, v := range row[:3] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, core.ErrPredictor
			}
		}
	}
	return
}

// Features computes the ten dimensionless input features per radial cell:
//
//   0: R/L_Ti   normalized ion temperature gradient
//   1: R/L_Te   normalized electron temperature gradient
//   2: R/L_ne   normalized density gradient
//   3: q        safety factor
//   4: s        magnetic shear (r/q)·dq/dr
//   5: ε        local inverse aspect ratio r/R
//   6: Ti/Te    temperature ratio
//   7: log10ν*  log-collisionality
//   8: ni/ne    normalized ion density (quasi-neutral, Zeff-corrected)
//   9: ρ        normalized radius
//
// All gradients use the shared grid.Gradient stencil so they stay
// consistent across features.
func (o *Surrogate) Features(pf *core.Profiles) (feats [][]float64) {
	g := o.geom
	nc := g.NCells()

	// unnormalized minor-radius coordinate at cell centers
	r := make([]float64, nc)
	qc := make([]float64, nc)
	for i := 0; i < nc; i++ {
		r[i] = g.Rcell(i)
		qc[i] = g.Qcell(i)
	}

	dti := grid.Gradient(pf.Ti, r)
	dte := grid.Gradient(pf.Te, r)
	dne := grid.Gradient(pf.Ne, r)
	dq := grid.Gradient(qc, r)

	nine := (o.zeff + 1.0) / (2.0 * o.zeff) // dilution from quasi-neutrality

	feats = make([][]float64, nc)
	for i := 0; i < nc; i++ {
		row := make([]float64, NumFeatures)
		row[0] = -g.Rmaj * dti[i] / math.Max(pf.Ti[i], 1.0)
		row[1] = -g.Rmaj * dte[i] / math.Max(pf.Te[i], 1.0)
		row[2] = -g.Rmaj * dne[i] / math.Max(pf.Ne[i], 1.0)
		row[3] = qc[i]
		row[4] = r[i] / qc[i] * dq[i]
		row[5] = r[i] / g.Rmaj
		row[6] = pf.Ti[i] / math.Max(pf.Te[i], 1.0)
		row[7] = o.logNuStar(pf.Ne[i], pf.Te[i], qc[i], r[i])
		row[8] = nine
		row[9] = g.CellRho[i]
		feats[i] = row
	}
	return
}

// logNuStar returns log10 of the normalized electron collisionality
func (o *Surrogate) logNuStar(ne, te, q, r float64) float64 {
	g := o.geom
	eps := math.Max(r/g.Rmaj, 1e-3)
	te = math.Max(te, 1.0)
	vth := math.Sqrt(2.0 * te * phys.Qe / phys.Me)
	nue := 1.0 / phys.TauE(ne, te, o.zeff)
	nustar := nue * q * g.Rmaj / (math.Pow(eps, 1.5) * vth)
	return math.Log10(math.Max(nustar, 1e-10))
}
