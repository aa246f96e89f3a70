// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gotok
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
}

// MeshData holds the static grid/machine description. These values never
// change mid-run; changing any of them requires re-deriving the grid.
type MeshData struct {
	Ncells int     `json:"ncells"` // number of radial cells
	Rmaj   float64 `json:"rmaj"`   // major radius [m]
	Rmin   float64 `json:"rmin"`   // minor radius [m]
	B0     float64 `json:"b0"`     // toroidal field [T]
	Q0     float64 `json:"q0"`     // on-axis safety factor
	Qedge  float64 `json:"qedge"`  // edge safety factor
}

// SolverData holds solver data
type SolverData struct {

	// nonlinear solver
	Type    string  `json:"type"`    // solver type: {imp} => implicit
	NmaxIt  int     `json:"nmaxit"`  // number of max iterations
	Atol    float64 `json:"atol"`    // absolute tolerance
	Rtol    float64 `json:"rtol"`    // relative tolerance
	DvgCtrl bool    `json:"dvgctrl"` // use divergence control
	NdvgMax int     `json:"ndvgmax"` // max number of continued divergence
	ShowR   bool    `json:"showr"`   // show residual

	// adaptive timestep
	DtIni    float64 `json:"dtini"`    // initial timestep [s]
	DtMin    float64 `json:"dtmin"`    // minimum timestep [s]
	DtMax    float64 `json:"dtmax"`    // maximum timestep [s]
	DtGrowth float64 `json:"dtgrowth"` // growth factor on accepted steps
	DtSafety float64 `json:"dtsafety"` // safety factor (<1)

	// constants
	Eps float64 `json:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0

	// derived
	Itol float64 // iterations tolerance
}

// DynamicData holds the dynamic runtime parameters: boundary conditions and
// initial profile shapes. These may change between steps without
// re-deriving the grid.
type DynamicData struct {
	TiEdge float64 `json:"tiedge"` // ion temperature at edge [eV]
	TeEdge float64 `json:"teedge"` // electron temperature at edge [eV]
	NeEdge float64 `json:"needge"` // electron density at edge [m⁻³]
	TiCore float64 `json:"ticore"` // initial on-axis ion temperature [eV]
	TeCore float64 `json:"tecore"` // initial on-axis electron temperature [eV]
	NeCore float64 `json:"necore"` // initial on-axis electron density [m⁻³]
	Zeff   float64 `json:"zeff"`   // effective charge
}

// TransportData selects and parameterizes the transport model
type TransportData struct {
	Type string     `json:"type"` // model name; e.g. "constant", "bohmgyrobohm", "surrogate"
	Prms dbf.Params `json:"prms"` // model parameters
}

// SourceData selects and parameterizes one source model
type SourceData struct {
	Name string     `json:"name"` // instance name; e.g. "nbi"
	Type string     `json:"type"` // model name; e.g. "ohmic", "auxheat"
	Prms dbf.Params `json:"prms"` // model parameters
}

// SawtoothData holds the sawtooth machine parameters
type SawtoothData struct {
	Active      bool    `json:"active"`      // enable sawtooth crashes
	Qcrit       float64 `json:"qcrit"`       // critical on-axis safety factor
	MinInterval float64 `json:"mininterval"` // minimum time between crashes [s]
	MixTime     float64 `json:"mixtime"`     // mixing time scale [s]
	RhoQ1       float64 `json:"rhoq1"`       // normalized q=1 radius
	MixMult     float64 `json:"mixmult"`     // mixing region multiplier
}

// ControlData holds the time-stepping control
type ControlData struct {
	Tf    float64 `json:"tf"`    // final time [s]
	DtOut float64 `json:"dtout"` // output interval [s]
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data          `json:"data"`      // global simulation data
	Mesh      MeshData      `json:"mesh"`      // static grid/machine data
	Solver    SolverData    `json:"solver"`    // solver data
	Dynamic   DynamicData   `json:"dynamic"`   // dynamic runtime parameters
	Transport TransportData `json:"transport"` // transport model selection
	Sources   []*SourceData `json:"sources"`   // source model selections
	Sawtooth  SawtoothData  `json:"sawtooth"`  // sawtooth parameters
	Control   ControlData   `json:"control"`   // time control

	// derived
	DirOut  string // directory to save results
	Key     string // simulation key; e.g. mysim01.sim => mysim01
	EncType string // encoder type
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasePrev bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b := io.ReadFile(simfilepath)

	// set default values
	o.SetDefault()

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gotok/" + o.Key
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// set solver constants
	o.Solver.PostProcess()

	// validate
	o.Validate()
	return &o
}

// SetDefault sets default values
func (o *Simulation) SetDefault() {

	// mesh
	o.Mesh.Ncells = 25
	o.Mesh.Rmaj = 6.2
	o.Mesh.Rmin = 2.0
	o.Mesh.B0 = 5.3
	o.Mesh.Q0 = 1.0
	o.Mesh.Qedge = 3.5

	// solver
	o.Solver.Type = "imp"
	o.Solver.NmaxIt = 30
	o.Solver.Atol = 1e-8
	o.Solver.Rtol = 1e-6
	o.Solver.DvgCtrl = true
	o.Solver.NdvgMax = 20
	o.Solver.DtIni = 1e-3
	o.Solver.DtMin = 1e-6
	o.Solver.DtMax = 0.2
	o.Solver.DtGrowth = 1.2
	o.Solver.DtSafety = 0.95
	o.Solver.Eps = 1e-16

	// dynamic
	o.Dynamic.TiEdge = 100
	o.Dynamic.TeEdge = 100
	o.Dynamic.NeEdge = 5e19
	o.Dynamic.TiCore = 8000
	o.Dynamic.TeCore = 8000
	o.Dynamic.NeCore = 1e20
	o.Dynamic.Zeff = 1.5

	// transport
	o.Transport.Type = "constant"

	// sawtooth
	o.Sawtooth.Qcrit = 1.0
	o.Sawtooth.MinInterval = 0.01
	o.Sawtooth.MixTime = 0.002
	o.Sawtooth.RhoQ1 = 0.4
	o.Sawtooth.MixMult = 1.1

	// control
	o.Control.Tf = 1.0
	o.Control.DtOut = 0.05
}

// PostProcess performs a post-processing of the just read json file
func (o *SolverData) PostProcess() {
	o.Itol = utl.Max(10.0*o.Eps/o.Rtol, utl.Min(0.01, math.Sqrt(o.Rtol)))
}

// Validate panics on inconsistent static data
func (o *Simulation) Validate() {
	if o.Mesh.Ncells < 3 {
		chk.Panic("ncells=%d is too small", o.Mesh.Ncells)
	}
	if o.Solver.DtMin > o.Solver.DtMax {
		chk.Panic("dtmin=%g must not exceed dtmax=%g", o.Solver.DtMin, o.Solver.DtMax)
	}
	if o.Solver.DtSafety <= 0 || o.Solver.DtSafety > 1 {
		chk.Panic("dtsafety=%g must be within (0,1]", o.Solver.DtSafety)
	}
	if o.Control.Tf < 1e-14 {
		chk.Panic("tf=%g is too small", o.Control.Tf)
	}
}
