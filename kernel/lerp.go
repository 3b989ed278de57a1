// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/dritchie/probabilistic-go/trace"

// lerpTrace is the LARJ kernel's linear-interpolation composite
// (spec.md §4.6 step 4, §9 "LARJ interpolated trace"): it is not a
// standalone trace, just a weighted view over two real traces that
// exposes the same Chainable surface so the random-walk kernel can
// take annealing steps along the path between them.
type lerpTrace struct {
	trace1, trace2 *trace.Trace
	alpha          float64
}

func newLerpTrace(trace1, trace2 *trace.Trace, alpha float64) *lerpTrace {
	return &lerpTrace{trace1: trace1, trace2: trace2, alpha: alpha}
}

func (l *lerpTrace) LogProb() float64 {
	return (1-l.alpha)*l.trace1.LogProb() + l.alpha*l.trace2.LogProb()
}

func (l *lerpTrace) ConditionsSatisfied() bool {
	return l.trace1.ConditionsSatisfied() && l.trace2.ConditionsSatisfied()
}

// FreeVarNames is the union of both constituent traces' free
// variables: an annealing diffusion step may perturb a variable that
// exists on only one side of the interpolation.
func (l *lerpTrace) FreeVarNames(structural, nonstructural bool) []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range l.trace1.FreeVarNames(structural, nonstructural) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for _, n := range l.trace2.FreeVarNames(structural, nonstructural) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// ProposeChange propagates the same proposal to whichever of the two
// constituent traces actually contains name (spec.md §4.6 step 4), and
// recomputes both. The combined forward/reverse proposal log-densities
// are the same (1−α)/α weighting as LogProb, so the annealing path's
// Metropolis-Hastings math stays internally consistent at every α.
func (l *lerpTrace) ProposeChange(name string, structureIsFixed bool) (*lerpTrace, float64, float64) {
	next1, next2 := l.trace1, l.trace2
	var fwd1, rvs1, fwd2, rvs2 float64

	if l.trace1.GetRecord(name) != nil {
		next1, fwd1, rvs1 = l.trace1.ProposeChange(name, structureIsFixed)
	}
	if l.trace2.GetRecord(name) != nil {
		next2, fwd2, rvs2 = l.trace2.ProposeChange(name, structureIsFixed)
	}

	fwd := (1-l.alpha)*fwd1 + l.alpha*fwd2
	rvs := (1-l.alpha)*rvs1 + l.alpha*rvs2
	return &lerpTrace{trace1: next1, trace2: next2, alpha: l.alpha}, fwd, rvs
}

// Reexecute re-runs both constituent traces with no deliberate change.
func (l *lerpTrace) Reexecute(structureIsFixed bool) *lerpTrace {
	return &lerpTrace{
		trace1: l.trace1.Reexecute(structureIsFixed),
		trace2: l.trace2.Reexecute(structureIsFixed),
		alpha:  l.alpha,
	}
}
