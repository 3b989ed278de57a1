// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace implements the random execution trace database: the
// ordered log of every random choice a probabilistic program makes,
// the ambient-trace registry ERPs and factor/condition calls read, and
// the trace-update protocol the MCMC kernels in
// github.com/dritchie/probabilistic-go/kernel drive.
package trace

import "github.com/dritchie/probabilistic-go/erp"

// Record is one random-choice record: a single entry in a Trace's
// choice database, keyed by Name.
type Record struct {
	// Name is the choice's dynamic-context identity, derived by the
	// identity package.
	Name string
	// ERP is the family that produced Val. Two records name the same
	// choice family iff their ERP values compare equal.
	ERP erp.ERP
	// Params holds the parameters in effect at Val's most recent
	// sample or refresh.
	Params []float64
	// Val is the recorded value.
	Val erp.Value
	// LogProb is erp.LogProb(Val, Params).
	LogProb float64
	// Active is valid only during an ongoing Update: it marks whether
	// this update's re-execution reached the record.
	Active bool
	// Conditioned, when true, means Val is pinned by the user and must
	// not be proposed away from.
	Conditioned bool
	// Structural, when true, means this choice governs which other
	// choices exist: crossing between structures requires the LARJ
	// kernel rather than the random-walk kernel.
	Structural bool
}

// clone returns a shallow copy of r suitable for installing into a
// cloned Trace. Params and the Val vector (for Dirichlet) are shared
// by reference, matching spec.md §9's guidance to reuse immutable
// parameter sequences rather than deep-copy them; Record itself is
// copied by value so mutating the clone's fields never affects r.
func (r *Record) clone() *Record {
	c := *r
	return &c
}
