// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"time"

	"github.com/cpmech/gosl/io"
)

// Observer periodically reports the simulation progress from a separate
// goroutine. It only reads the atomically published time; it never touches
// the profile state, so it needs no lock against the solver.
type Observer struct {
	dom    *Observable
	period time.Duration
	done   chan struct{}
}

// Observable is the read-only view the observer needs
type Observable struct {
	Now func() float64 // last published simulation time
	Tf  float64        // final time
}

// NewObserver starts a progress reporter polling every period (default
// 100 ms when period ≤ 0). Stop it via the returned Observer or by
// cancelling ctx; it also stops by itself once the published time reaches
// the final time.
func NewObserver(ctx context.Context, obs *Observable, period time.Duration, verbose bool) (o *Observer) {
	if period <= 0 {
		period = 100 * time.Millisecond
	}
	o = &Observer{dom: obs, period: period, done: make(chan struct{})}
	go func() {
		defer close(o.done)
		ticker := time.NewTicker(o.period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t := obs.Now()
				if verbose {
					io.Pf("progress: t=%13.6e of %g (%.1f%%)\n", t, obs.Tf, 100*t/obs.Tf)
				}
				if t >= obs.Tf {
					return
				}
			}
		}
	}()
	return
}

// Wait blocks until the observer goroutine has terminated
func (o *Observer) Wait() {
	<-o.done
}
