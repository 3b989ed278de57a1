// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package erp defines the elementary random procedures (ERPs) that an
// embedded probabilistic program invokes: the primitive samplers whose
// outcomes the trace package (github.com/dritchie/probabilistic-go/trace)
// records as choice points. Each ERP is a capability object exposing a
// sampler, a log-density, and a Metropolis-Hastings proposal kernel,
// adapted in spirit from gonum.org/v1/gonum/stat/distuv's
// RandLogProber interfaces but widened with Propose/ProposeLogProb for
// MCMC use.
package erp

// ERP is one elementary random procedure: a family of distributions
// together with the proposal kernel the random-walk and LARJ kernels
// use to perturb a value of this family in place.
//
// Concrete ERPs are zero-size struct types exposed as package-level
// singletons (Flip, Gaussian, …). Two ERP values of the same
// concrete type compare equal with ==, which is what the trace
// package relies on to decide whether a reused choice record still
// names the same random-variable family (spec: a miss occurs if
// "its erp identity differs").
type ERP interface {
	// Sample draws a value from the distribution described by params.
	Sample(params []float64) Value
	// LogProb returns the log-density of v under params. It returns
	// negative infinity for values outside the distribution's support.
	LogProb(v Value, params []float64) float64
	// Propose draws a new value conditioned on the current one,
	// params held fixed. Families without an informative proposal
	// kernel default to an independent draw from Sample.
	Propose(curr Value, params []float64) Value
	// ProposeLogProb is the log-density of proposing proposed given
	// that curr is the current value; it must be consistent with
	// Propose.
	ProposeLogProb(curr, proposed Value, params []float64) float64
}

// negLogRoot2Pi mirrors the constant gonum.org/v1/gonum's distuv
// package precomputes for the normal log-density.
const negLogRoot2Pi = -0.9189385332046727
