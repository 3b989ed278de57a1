// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dritchie/probabilistic-go/erp"
	"github.com/dritchie/probabilistic-go/identity"
)

func flipAt(site string, p float64) erp.Value {
	return Observe(erp.Flip, []float64{p}, false, nil, site)
}

func twoFlipsComputation() erp.Value {
	a := flipAt(identity.CallSite(0), 0.5)
	b := flipAt(identity.CallSite(0), 0.3)
	Condition(true)
	return erp.Bool(a.Bool() && b.Bool())
}

func TestProbabilityAccounting(t *testing.T) {
	tr := New(twoFlipsComputation)
	if diff := tr.CheckProbabilityAccounting(); diff > 1e-9 {
		t.Errorf("probability accounting violated: |logprob - sum(vars.logprob)| = %v", diff)
	}
}

func TestRecordKeying(t *testing.T) {
	tr := New(twoFlipsComputation)
	for name, r := range tr.vars {
		if tr.vars[name] != r {
			t.Errorf("vars[%q] is not its own stored record", name)
		}
	}
}

func TestActivityAfterUpdate(t *testing.T) {
	tr := New(twoFlipsComputation)
	for name, r := range tr.vars {
		if !r.Active {
			t.Errorf("record %q retained with Active == false after update", name)
		}
	}
}

func TestConditionedPinning(t *testing.T) {
	pinned := erp.Bool(true)
	comp := func() erp.Value {
		return Observe(erp.Flip, []float64{0.01}, false, &pinned, identity.CallSite(0))
	}
	tr := New(comp)
	for _, r := range tr.vars {
		if !r.Conditioned {
			t.Fatalf("record not marked Conditioned")
		}
		if !r.Val.Equal(pinned) {
			t.Errorf("conditioned record's value drifted from the pinned value: got %v, want %v", r.Val, pinned)
		}
		wantLP := r.ERP.LogProb(r.Val, r.Params)
		if math.Abs(r.LogProb-wantLP) > 1e-9 {
			t.Errorf("conditioned record's LogProb is stale: got %v, want %v", r.LogProb, wantLP)
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	tr := New(twoFlipsComputation)
	clone := tr.Clone()

	for name, r := range clone.vars {
		r.Val = erp.Bool(!r.Val.Bool())
		r.Active = false
		clone.vars[name] = r
	}
	clone.logprob = -999
	clone.varlist = append(clone.varlist, nil)

	if tr.logprob == -999 {
		t.Error("mutating the clone's logprob affected the source trace")
	}
	if len(tr.varlist) == len(clone.varlist) && len(tr.varlist) != 0 {
		t.Error("mutating the clone's varlist length affected the source trace")
	}
	for name, r := range tr.vars {
		cr, ok := clone.vars[name]
		if !ok {
			continue
		}
		if r == cr {
			t.Errorf("clone shares the same *Record pointer as the source for %q", name)
		}
	}
}

func TestCloneMatchesSourceFreeVarNames(t *testing.T) {
	tr := New(twoFlipsComputation)
	clone := tr.Clone()

	srcNames := tr.FreeVarNames(true, true)
	cloneNames := clone.FreeVarNames(true, true)
	sort.Strings(srcNames)
	sort.Strings(cloneNames)
	if diff := cmp.Diff(srcNames, cloneNames); diff != "" {
		t.Errorf("clone's free variable names differ from the source (-source +clone):\n%s", diff)
	}
}

func TestNewRejectsUntilConditionsSatisfied(t *testing.T) {
	attempts := 0
	comp := func() erp.Value {
		attempts++
		b := Observe(erp.Flip, []float64{0.5}, false, nil, identity.CallSite(0)).Bool()
		Condition(b)
		return erp.Bool(b)
	}
	tr := New(comp)
	if !tr.ConditionsSatisfied() {
		t.Fatal("New returned a trace whose conditions are not satisfied")
	}
	if !tr.ReturnValue().Bool() {
		t.Error("New returned a trace whose return value contradicts its own condition")
	}
	if attempts == 0 {
		t.Error("computation was never run")
	}
}

func TestLookupHitOnParamChangeRecomputesLogProb(t *testing.T) {
	p := 0.5
	comp := func() erp.Value {
		return Observe(erp.Flip, []float64{p}, false, nil, identity.CallSite(0))
	}
	tr := New(comp)
	before := tr.LogProb()
	p = 0.9
	tr.Update(true)
	after := tr.LogProb()
	if before == after {
		t.Error("changing an ERP's parameters between updates did not change logprob")
	}
}

func TestFreeVarNamesExcludesConditioned(t *testing.T) {
	pinned := erp.Bool(true)
	comp := func() erp.Value {
		a := Observe(erp.Flip, []float64{0.5}, false, nil, identity.CallSite(0))
		b := Observe(erp.Flip, []float64{0.5}, false, &pinned, identity.CallSite(0))
		return erp.Bool(a.Bool() && b.Bool())
	}
	tr := New(comp)
	free := tr.FreeVarNames(true, true)
	if len(free) != 1 {
		t.Errorf("FreeVarNames returned %d names, want 1 (conditioned record excluded)", len(free))
	}
}
