// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/dritchie/probabilistic-go/erp"
	"github.com/dritchie/probabilistic-go/identity"
	"github.com/dritchie/probabilistic-go/internal/rng"
	"github.com/dritchie/probabilistic-go/trace"
)

func gaussianComputation() erp.Value {
	v := trace.Observe(erp.Gaussian, []float64{0, 1}, false, nil, identity.CallSite(0))
	return v
}

func TestRandomWalkStepPreservesTypeAndAccepts(t *testing.T) {
	rng.Seed(7)
	k := NewRandomWalk[*trace.Trace](false, true)
	curr := trace.New(gaussianComputation)
	for i := 0; i < 200; i++ {
		curr = k.Step(curr)
	}
	if k.ProposalsMade == 0 {
		t.Fatal("RandomWalk made no proposals over 200 steps")
	}
	if rate := k.AcceptRate(); rate < 0 || rate > 1 {
		t.Errorf("AcceptRate() = %v, want value in [0,1]", rate)
	}
	if k.ProposalsAccepted == 0 {
		t.Error("RandomWalk accepted none of its proposals over 200 steps")
	}
	if kind := curr.ReturnValue().Kind(); kind != erp.KindReal {
		t.Errorf("ReturnValue().Kind() = %v after 200 steps, want %v", kind, erp.KindReal)
	}
}

func TestRandomWalkRejectionReturnsSamePointer(t *testing.T) {
	rng.Seed(1)
	k := NewRandomWalk[*trace.Trace](false, true)
	curr := trace.New(gaussianComputation)
	// A kernel step either returns curr unchanged (reject) or a fresh
	// clone (accept); it must never mutate curr in place.
	before := curr
	beforeLP := curr.LogProb()
	next := k.Step(curr)
	if next != before && next == nil {
		t.Fatal("Step returned nil")
	}
	if k.ProposalsAccepted == 0 && next != before {
		t.Error("rejected Step returned a different trace than the one it was given")
	}
	if beforeLP != curr.LogProb() {
		t.Error("Step mutated the trace it was given")
	}
}

func TestRandomWalkNoEligibleVariablesReexecutes(t *testing.T) {
	k := NewRandomWalk[*trace.Trace](true, false) // only structural; gaussianComputation has none
	curr := trace.New(gaussianComputation)
	next := k.Step(curr)
	if next == curr {
		t.Error("Step with no eligible variables should return a fresh Reexecute, not the same pointer")
	}
}

func transDimensionalComputation() erp.Value {
	var a float64
	if trace.Observe(erp.Flip, []float64{0.9}, true, nil, identity.CallSite(0)).Bool() {
		a = trace.Observe(erp.Beta, []float64{1, 5}, false, nil, identity.CallSite(0)).Real()
	} else {
		a = 0.7
	}
	b := trace.Observe(erp.Flip, []float64{a}, false, nil, identity.CallSite(0)).Bool()
	trace.Condition(b)
	return erp.Real(a)
}

func TestLARJStepRunsAcrossStructures(t *testing.T) {
	rng.Seed(42)
	diffusion := NewRandomWalk[*trace.Trace](false, true)
	larj := NewLARJ(diffusion, 3, nil)
	curr := trace.New(transDimensionalComputation)
	for i := 0; i < 100; i++ {
		curr = larj.Step(curr)
		if !curr.ConditionsSatisfied() {
			t.Fatalf("step %d produced a trace with unsatisfied conditions", i)
		}
	}
	if rate := larj.JumpAcceptRate(); rate < 0 || rate > 1 {
		t.Errorf("JumpAcceptRate() = %v, want value in [0,1]", rate)
	}
}

func TestLARJFixedJumpFrequency(t *testing.T) {
	rng.Seed(3)
	freq := 1.0
	diffusion := NewRandomWalk[*trace.Trace](false, true)
	larj := NewLARJ(diffusion, 2, &freq)
	curr := trace.New(transDimensionalComputation)
	for i := 0; i < 20; i++ {
		curr = larj.Step(curr)
	}
	if larj.JumpsProposed == 0 {
		t.Error("JumpFreq=1 should always take the jump branch")
	}
}
