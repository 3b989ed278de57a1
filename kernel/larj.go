// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
	"github.com/dritchie/probabilistic-go/trace"
)

// LARJ is the locally-annealed reversible-jump kernel (spec.md §4.6):
// it bridges between executions of different structural shapes by
// proposing a new value for a structural variable, then taking short
// random-walk steps along a linear-interpolation path between the old
// and new structures before testing acceptance.
type LARJ struct {
	// Diffusion is the inner non-structural kernel used both for
	// ordinary (non-jump) steps and, via an internally-held twin
	// configured the same way, for the annealing path's intermediate
	// steps. Typically constructed with Structural=false,
	// NonStructural=true.
	Diffusion *RandomWalk[*trace.Trace]
	// AnnealSteps is the number of intermediate random-walk steps
	// taken along the interpolation path during a jump.
	AnnealSteps int
	// JumpFreq, if non-nil, fixes the probability of taking a jump
	// step rather than delegating to Diffusion. If nil, it is derived
	// each step from the current ratio of structural to total free
	// variables.
	JumpFreq *float64

	annealer *RandomWalk[*lerpTrace]

	JumpsProposed int
	JumpsAccepted int
}

// NewLARJ returns a LARJ kernel wrapping diffusion.
func NewLARJ(diffusion *RandomWalk[*trace.Trace], annealSteps int, jumpFreq *float64) *LARJ {
	return &LARJ{
		Diffusion:   diffusion,
		AnnealSteps: annealSteps,
		JumpFreq:    jumpFreq,
		annealer:    NewRandomWalk[*lerpTrace](diffusion.Structural, diffusion.NonStructural),
	}
}

// JumpAcceptRate returns the fraction of jump steps this kernel has
// accepted, or 0 if it has proposed none.
func (k *LARJ) JumpAcceptRate() float64 {
	if k.JumpsProposed == 0 {
		return 0
	}
	return float64(k.JumpsAccepted) / float64(k.JumpsProposed)
}

// Step performs one LARJ transition from curr.
func (k *LARJ) Step(curr *trace.Trace) *trace.Trace {
	structVars := curr.FreeVarNames(true, false)
	nonStructVars := curr.FreeVarNames(false, true)
	if len(structVars)+len(nonStructVars) == 0 {
		return curr.Reexecute(false)
	}

	p := 0.0
	if k.JumpFreq != nil {
		p = *k.JumpFreq
	} else if len(structVars) > 0 {
		p = float64(len(structVars)) / float64(len(structVars)+len(nonStructVars))
	}

	if rng.Float64() < p {
		return k.jumpStep(curr)
	}
	return k.Diffusion.Step(curr)
}

func (k *LARJ) jumpStep(curr *trace.Trace) *trace.Trace {
	oldStruct := curr.Clone()
	newStruct := curr.Clone()

	structVarsBefore := newStruct.FreeVarNames(true, false)
	name := structVarsBefore[rng.Intn(len(structVarsBefore))]
	oldNum := len(structVarsBefore)

	rec := newStruct.GetRecord(name)
	origVal := rec.Val
	propVal := rec.ERP.Propose(origVal, rec.Params)
	fwdPropLP := rec.ERP.ProposeLogProb(origVal, propVal, rec.Params)

	rec.Val = propVal
	rec.LogProb = rec.ERP.LogProb(rec.Val, rec.Params)

	newStruct.Update(false)
	newNum := len(newStruct.FreeVarNames(true, false))
	fwdPropLP += newStruct.NewLogProb() - math.Log(float64(oldNum))

	annealingLpRatio := 0.0
	hasNonStruct := len(oldStruct.FreeVarNames(false, true)) > 0 || len(newStruct.FreeVarNames(false, true)) > 0
	if hasNonStruct && k.AnnealSteps > 0 {
		lerp := newLerpTrace(oldStruct, newStruct, 0)
		denom := float64(k.AnnealSteps - 1)
		for i := 0; i < k.AnnealSteps; i++ {
			alpha := 0.0
			if denom > 0 {
				alpha = float64(i) / denom
			}
			lerp.alpha = alpha
			annealingLpRatio += lerp.LogProb()
			lerp = k.annealer.Step(lerp)
			annealingLpRatio -= lerp.LogProb()
		}
		oldStruct, newStruct = lerp.trace1, lerp.trace2
	}

	rvsPropLP := rec.ERP.ProposeLogProb(propVal, origVal, rec.Params) +
		oldStruct.LPDiff(newStruct) - math.Log(float64(newNum))

	acceptLP := newStruct.LogProb() - curr.LogProb() + rvsPropLP - fwdPropLP + annealingLpRatio

	k.JumpsProposed++
	if newStruct.ConditionsSatisfied() && math.Log(rng.Float64()) < acceptLP {
		k.JumpsAccepted++
		return newStruct
	}
	return curr
}
