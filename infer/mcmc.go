// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package infer drives the MCMC kernels in
// github.com/dritchie/probabilistic-go/kernel over a trace.Trace to
// produce posterior samples, and aggregates those samples into the
// estimators (Distrib, Expectation, MAP) user code actually wants.
package infer

import (
	"fmt"
	"os"

	"github.com/dritchie/probabilistic-go/erp"
	"github.com/dritchie/probabilistic-go/kernel"
	"github.com/dritchie/probabilistic-go/trace"
)

// Sample is one emitted posterior draw: the computation's return value
// together with the trace log-probability it was drawn at.
type Sample struct {
	Value   erp.Value
	LogProb float64
}

// Kernel is the transition kernel interface the drivers below step:
// both *kernel.RandomWalk[*trace.Trace] and *kernel.LARJ satisfy it.
type Kernel interface {
	Step(curr *trace.Trace) *trace.Trace
}

// RejectionSample draws a single sample from computation by rejection
// initialisation alone: it builds a trace and returns its return
// value, trying again internally for as long as conditionsSatisfied
// fails (spec.md §4.7 step 1, reused directly rather than duplicated
// here since trace.New already implements the rejection loop).
func RejectionSample(computation trace.Computation) erp.Value {
	return trace.New(computation).ReturnValue()
}

// TraceMH runs numsamps*lag steps of k over a trace built from
// computation, emitting one Sample every lag steps (spec.md §4.7).
func TraceMH(computation trace.Computation, k Kernel, numsamps, lag int, verbose bool) []Sample {
	if lag <= 0 {
		lag = 1
	}
	curr := trace.New(computation)
	samples := make([]Sample, 0, numsamps)
	for i := 1; i <= numsamps*lag; i++ {
		curr = k.Step(curr)
		if i%lag == 0 {
			samples = append(samples, Sample{Value: curr.ReturnValue(), LogProb: curr.LogProb()})
			if verbose {
				fmt.Fprintf(os.Stderr, "trace-mh: sample %d/%d logprob=%g\n", i/lag, numsamps, curr.LogProb())
			}
		}
	}
	return samples
}

// LARJMH runs numsamps*lag steps of a LARJ kernel built from a
// RandomWalk(structural=false) diffusion kernel, annealSteps, and an
// optional fixed jumpFreq.
func LARJMH(computation trace.Computation, annealSteps int, jumpFreq *float64, numsamps, lag int, verbose bool) []Sample {
	diffusion := kernel.NewRandomWalk[*trace.Trace](false, true)
	larj := kernel.NewLARJ(diffusion, annealSteps, jumpFreq)
	return TraceMH(computation, larj, numsamps, lag, verbose)
}

// NewRandomWalkKernel returns a RandomWalk kernel over the requested
// variable classes, for callers assembling a TraceMH call directly.
func NewRandomWalkKernel(structural, nonstructural bool) Kernel {
	return kernel.NewRandomWalk[*trace.Trace](structural, nonstructural)
}
