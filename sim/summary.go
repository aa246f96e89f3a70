// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/inp"
)

// Snapshot holds one saved output instant
type Snapshot struct {
	T        float64 // time [s]
	Ti       []float64
	Te       []float64
	Ne       []float64
	Psi      []float64
	PowIon   float64 // net ion heating [MW]
	PowEle   float64 // net electron heating [MW]
	Sawtooth int     // sawtooth state at this instant
}

// Summary records the output instants of one run
type Summary struct {
	OutTimes  []float64
	Steps     int
	Iters     int
	Snapshots []*Snapshot
}

// Append stores an output instant taken from the domain
func (o *Summary) Append(t float64, dom *Domain, st *core.SourceTerms) {
	pf := dom.Profiles
	snap := &Snapshot{
		T:   t,
		Ti:  append([]float64(nil), pf.Ti...),
		Te:  append([]float64(nil), pf.Te...),
		Ne:  append([]float64(nil), pf.Ne...),
		Psi: append([]float64(nil), pf.Psi...),
	}
	if st != nil {
		snap.PowIon, snap.PowEle = st.TotalPowers()
	}
	if dom.Saw != nil {
		snap.Sawtooth = int(dom.Saw.State)
	}
	o.OutTimes = append(o.OutTimes, t)
	o.Snapshots = append(o.Snapshots, snap)
	o.Steps = dom.Steps
	o.Iters = dom.Iters
}

// Save saves the summary to DirOut using the input's encoder type
func (o *Summary) Save(sd *inp.Simulation) (err error) {
	fn := io.Sf("%s/%s_sum.%s", sd.DirOut, sd.Key, sd.EncType)
	fil, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create summary file %q: %v", fn, err)
	}
	defer fil.Close()
	enc := utl.NewEncoder(fil, sd.EncType)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary: %v", err)
	}
	return
}

// ReadSummary reads a summary previously saved by Save
func ReadSummary(sd *inp.Simulation) (o *Summary, err error) {
	fn := io.Sf("%s/%s_sum.%s", sd.DirOut, sd.Key, sd.EncType)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open summary file %q: %v", fn, err)
	}
	defer fil.Close()
	o = new(Summary)
	dec := utl.NewDecoder(fil, sd.EncType)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary: %v", err)
	}
	return
}
