// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package source implements the heating/particle/current source models and
// their additive composition
package source

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gotok/core"
	"github.com/cpmech/gotok/grid"
)

// Model defines source models
type Model interface {
	Init(g *grid.Geometry, prms dbf.Params) error            // Init initialises this structure
	Terms(pf *core.Profiles, t float64) (*core.SourceTerms, error) // Terms computes the cell-defined source terms at time t
}

// New source model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'source' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Composite holds a named, ordered collection of source models and sums
// their terms. SourceTerms form an additive monoid, so the composite of
// zero sources returns all-zero terms with empty (non-nil) metadata and
// consumers can unconditionally inspect the metadata for power-balance
// accounting.
type Composite struct {
	geom   *grid.Geometry
	names  []string
	models []Model
}

// NewComposite returns an empty composite for the given geometry
func NewComposite(g *grid.Geometry) *Composite {
	return &Composite{geom: g}
}

// Append adds a named source model to the collection, preserving order
func (o *Composite) Append(name string, m Model) {
	o.names = append(o.names, name)
	o.models = append(o.models, m)
}

// Names returns the names of the collected models, in order
func (o *Composite) Names() []string {
	return o.names
}

// Terms sums the terms of all collected models, concatenating their
// metadata in order
func (o *Composite) Terms(pf *core.Profiles, t float64) (st *core.SourceTerms, err error) {
	st = core.NewSourceTerms(o.geom.NCells())
	for i, m := range o.models {
		one, err := m.Terms(pf, t)
		if err != nil {
			return nil, chk.Err("source %q failed: %v", o.names[i], err)
		}
		st.Add(one)
	}
	return
}
