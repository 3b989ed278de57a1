// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the MCMC transition kernels that drive
// inference over a trace.Trace: a single-variable random-walk
// Metropolis-Hastings kernel, and a locally-annealed reversible-jump
// (LARJ) kernel that bridges between differently-structured
// executions via an interpolated annealing path.
package kernel

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
)

// Chainable is the subset of trace.Trace's surface the random-walk
// kernel needs. It is parameterized over the concrete type S so that
// both *trace.Trace and the LARJ kernel's internal *lerpTrace
// composite (kernel/lerp.go) can drive the same kernel logic: Go
// requires a method's return type to match an interface exactly, so
// ProposeChange must return S, not Chainable[S], for either concrete
// type to satisfy this interface.
type Chainable[S any] interface {
	LogProb() float64
	ConditionsSatisfied() bool
	FreeVarNames(structural, nonstructural bool) []string
	ProposeChange(name string, structureIsFixed bool) (next S, fwdPropLP, rvsPropLP float64)
	// Reexecute returns a fresh re-run of the computation with no
	// variable deliberately changed, for the "nothing eligible to
	// propose" case (spec.md §4.5 step 1).
	Reexecute(structureIsFixed bool) S
}

// RandomWalk is the random-walk single-variable Metropolis-Hastings
// kernel (spec.md §4.5): it picks one eligible variable uniformly at
// random, proposes a new value for it via the variable's own ERP
// proposal kernel, and accepts or rejects by the Metropolis-Hastings
// ratio.
type RandomWalk[S Chainable[S]] struct {
	// Structural and NonStructural select which variable classes are
	// eligible for proposal; at least one should be true.
	Structural, NonStructural bool

	ProposalsMade     int
	ProposalsAccepted int
}

// NewRandomWalk returns a RandomWalk kernel over the requested
// variable classes.
func NewRandomWalk[S Chainable[S]](structural, nonstructural bool) *RandomWalk[S] {
	return &RandomWalk[S]{Structural: structural, NonStructural: nonstructural}
}

// Step performs one random-walk transition from curr, returning the
// next state (curr itself, unchanged, on rejection; a fresh re-executed
// clone of curr when there is nothing to propose).
func (k *RandomWalk[S]) Step(curr S) S {
	free := curr.FreeVarNames(k.Structural, k.NonStructural)
	if len(free) == 0 {
		// Nothing to propose: re-execute in case the computation has
		// non-trace randomness, per spec.md §4.5 step 1.
		return curr.Reexecute(!k.Structural)
	}

	name := free[rng.Intn(len(free))]
	k.ProposalsMade++

	structureIsFixed := !k.Structural
	next, fwdPropLP, rvsPropLP := curr.ProposeChange(name, structureIsFixed)
	fwdPropLP -= math.Log(float64(len(free)))

	nextFree := next.FreeVarNames(k.Structural, k.NonStructural)
	rvsPropLP -= math.Log(float64(len(nextFree)))

	acceptLP := next.LogProb() - curr.LogProb() + rvsPropLP - fwdPropLP
	if next.ConditionsSatisfied() && math.Log(rng.Float64()) < acceptLP {
		k.ProposalsAccepted++
		return next
	}
	return curr
}

// AcceptRate returns the fraction of proposals this kernel has
// accepted, or 0 if it has made none.
func (k *RandomWalk[S]) AcceptRate() float64 {
	if k.ProposalsMade == 0 {
		return 0
	}
	return float64(k.ProposalsAccepted) / float64(k.ProposalsMade)
}
