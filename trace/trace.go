// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"math"

	"github.com/dritchie/probabilistic-go/erp"
	"github.com/dritchie/probabilistic-go/identity"
)

// Computation is the nullary user program a Trace re-executes on every
// Update. It returns the program's result.
type Computation func() erp.Value

// Trace is the random execution trace of one probabilistic
// computation: the record of every choice it has made, plus the
// running log-probability accumulators the MCMC kernels read.
//
// A Trace is owned exclusively by whichever chain produced it; the
// clone-propose-accept/discard discipline in the kernel package is
// what keeps a proposal from ever mutating the trace it started from.
// Updates are not safe to run concurrently: the ambient trace and the
// active identity scope they install are unsynchronized process-wide
// variables.
type Trace struct {
	computation Computation

	vars    map[string]*Record
	varlist []*Record
	cursor  int

	logprob    float64
	newlogprob float64
	oldlogprob float64

	conditionsSatisfied bool
	returnValue         erp.Value

	scope *identity.Scope
}

// New builds a Trace for computation by rejection initialisation:
// it repeatedly runs Update on a cleared trace until conditionsSatisfied
// holds (spec.md §4.7 step 1, §7 "false condition").
func New(computation Computation) *Trace {
	t := &Trace{
		computation: computation,
		vars:        make(map[string]*Record),
		scope:       identity.NewScope(),
	}
	for {
		t.vars = make(map[string]*Record)
		t.varlist = nil
		t.Update(false)
		if t.conditionsSatisfied {
			return t
		}
	}
}

// ReturnValue is the value the computation returned on its most recent
// Update.
func (t *Trace) ReturnValue() erp.Value { return t.returnValue }

// LogProb is the joint log-density plus factor contributions of the
// current execution.
func (t *Trace) LogProb() float64 { return t.logprob }

// NewLogProb is the sum of LogProb over records created during the
// most recent Update.
func (t *Trace) NewLogProb() float64 { return t.newlogprob }

// OldLogProb is the sum of LogProb over records abandoned during the
// most recent Update.
func (t *Trace) OldLogProb() float64 { return t.oldlogprob }

// ConditionsSatisfied reports whether every condition call observed
// during the most recent Update held.
func (t *Trace) ConditionsSatisfied() bool { return t.conditionsSatisfied }

// NumVars returns the number of live choice records.
func (t *Trace) NumVars() int { return len(t.vars) }

// GetRecord returns the record named name, or nil if there is none.
func (t *Trace) GetRecord(name string) *Record {
	return t.vars[name]
}

// Update re-runs the computation, reusing, resampling and
// garbage-collecting choice records as described in spec.md §4.3.
//
// If structureIsFixed is false, varlist is rebuilt from scratch: the
// computation is expected to visit a (possibly) different set of
// choices than last time. If true, the caller promises the same
// choices will be visited in the same order, letting Lookup skip
// straight to the positional slot instead of deriving a name.
func (t *Trace) Update(structureIsFixed bool) {
	prevTrace := setCurrent(t)
	prevScope := identity.SetActive(t.scope)
	defer func() {
		identity.SetActive(prevScope)
		setCurrent(prevTrace)
	}()

	t.logprob = 0
	t.newlogprob = 0
	t.conditionsSatisfied = true
	t.scope.Reset()
	t.cursor = 0

	if !structureIsFixed {
		t.varlist = nil
	}
	for _, r := range t.vars {
		r.Active = false
	}

	t.returnValue = t.computation()

	t.oldlogprob = 0
	for name, r := range t.vars {
		if !r.Active {
			t.oldlogprob += r.LogProb
			delete(t.vars, name)
		}
	}
}

// Lookup is invoked by every ERP call. callSite identifies the source
// position of the call (see the identity package); it is only used
// when a fresh name must be derived, which keeps trace decoupled from
// the exact call depth of whatever user-facing wrapper invoked it.
//
// conditioned, when non-nil, pins the choice to that value.
func (t *Trace) Lookup(e erp.ERP, params []float64, isStructural bool, conditioned *erp.Value, callSite string) erp.Value {
	idx := t.cursor
	t.cursor++

	inFlatList := idx < len(t.varlist)
	var candidate *Record
	if inFlatList {
		candidate = t.varlist[idx]
	}

	var name string
	if candidate == nil {
		name = t.scope.Name(callSite)
		candidate = t.vars[name]
	}

	miss := candidate == nil || candidate.ERP != e || candidate.Structural != isStructural
	if miss {
		if name == "" {
			name = t.scope.Name(callSite)
		}
		record := t.newRecord(name, e, params, isStructural, conditioned)
		t.vars[name] = record
		if inFlatList {
			t.varlist[idx] = record
		} else {
			t.varlist = append(t.varlist, record)
		}
		t.logprob += record.LogProb
		record.Active = true
		return record.Val
	}

	t.refresh(candidate, params, conditioned)
	t.logprob += candidate.LogProb
	candidate.Active = true
	if !inFlatList {
		t.varlist = append(t.varlist, candidate)
	}
	return candidate.Val
}

func (t *Trace) newRecord(name string, e erp.ERP, params []float64, isStructural bool, conditioned *erp.Value) *Record {
	conditionedFlag := conditioned != nil
	var val erp.Value
	if conditioned != nil {
		val = *conditioned
	} else {
		val = e.Sample(params)
	}
	ll := e.LogProb(val, params)
	t.newlogprob += ll
	return &Record{
		Name:        name,
		ERP:         e,
		Params:      params,
		Val:         val,
		LogProb:     ll,
		Active:      true,
		Conditioned: conditionedFlag,
		Structural:  isStructural,
	}
}

func (t *Trace) refresh(r *Record, params []float64, conditioned *erp.Value) {
	r.Conditioned = conditioned != nil
	changed := false
	if !erp.ParamsEqual(r.Params, params) {
		r.Params = params
		changed = true
	}
	if conditioned != nil && !conditioned.Equal(r.Val) {
		r.Val = *conditioned
		r.Conditioned = true
		changed = true
	}
	if changed {
		r.LogProb = r.ERP.LogProb(r.Val, r.Params)
	}
}

// AddFactor adds num directly to logprob without creating a record.
func (t *Trace) AddFactor(num float64) {
	t.logprob += num
}

// ConditionOn conjoins boolexpr onto conditionsSatisfied.
func (t *Trace) ConditionOn(boolexpr bool) {
	t.conditionsSatisfied = t.conditionsSatisfied && boolexpr
}

// FreeVarNames returns the names of non-conditioned records filtered
// by structural/nonstructural class.
func (t *Trace) FreeVarNames(structural, nonstructural bool) []string {
	names := make([]string, 0, len(t.vars))
	for name, r := range t.vars {
		if r.Conditioned {
			continue
		}
		if (structural && r.Structural) || (nonstructural && !r.Structural) {
			names = append(names, name)
		}
	}
	return names
}

// Clone returns a deep-enough copy of t: vars, varlist and the
// accumulators are copied by value; the ERP singletons and parameter
// slices backing each record are shared by reference (spec.md §9 —
// they are immutable from the kernels' point of view). Mutating the
// clone never affects t.
func (t *Trace) Clone() *Trace {
	nt := &Trace{
		computation:         t.computation,
		vars:                make(map[string]*Record, len(t.vars)),
		varlist:             make([]*Record, len(t.varlist)),
		cursor:              t.cursor,
		logprob:             t.logprob,
		newlogprob:          t.newlogprob,
		oldlogprob:          t.oldlogprob,
		conditionsSatisfied: t.conditionsSatisfied,
		returnValue:         t.returnValue,
		scope:               identity.NewScope(),
	}
	for i, r := range t.varlist {
		c := r.clone()
		nt.varlist[i] = c
		nt.vars[c.Name] = c
	}
	for name, r := range t.vars {
		if _, ok := nt.vars[name]; !ok {
			nt.vars[name] = r.clone()
		}
	}
	return nt
}

// ProposeChange clones t, proposes a new value for the variable named
// name using its ERP's proposal kernel, re-runs the computation, and
// returns the resulting trace together with the forward and reverse
// proposal log-densities (including the newlogprob/oldlogprob
// contributions the re-execution produced), per spec.md §4.3.
func (t *Trace) ProposeChange(name string, structureIsFixed bool) (next *Trace, fwdPropLP, rvsPropLP float64) {
	next = t.Clone()
	r := next.GetRecord(name)
	origVal := r.Val
	propVal := r.ERP.Propose(origVal, r.Params)
	fwdPropLP = r.ERP.ProposeLogProb(origVal, propVal, r.Params)
	rvsPropLP = r.ERP.ProposeLogProb(propVal, origVal, r.Params)
	r.Val = propVal
	r.LogProb = r.ERP.LogProb(r.Val, r.Params)
	next.Update(structureIsFixed)
	fwdPropLP += next.newlogprob
	rvsPropLP += next.oldlogprob
	return next, fwdPropLP, rvsPropLP
}

// Reexecute returns a clone of t re-run with no variable deliberately
// changed, for a kernel's "nothing eligible to propose" case.
func (t *Trace) Reexecute(structureIsFixed bool) *Trace {
	nt := t.Clone()
	nt.Update(structureIsFixed)
	return nt
}

// LPDiff returns the total logprob of records present in t.vars but
// absent from other.vars — the log-probability mass that disappears
// across a structural move (spec.md §4.3).
func (t *Trace) LPDiff(other *Trace) float64 {
	sum := 0.0
	for name, r := range t.vars {
		if _, ok := other.vars[name]; !ok {
			sum += r.LogProb
		}
	}
	return sum
}

// CheckProbabilityAccounting returns the absolute difference between
// logprob and the sum of every live record's logprob, for use by tests
// verifying the probability-accounting invariant (spec.md §8). Factor
// contributions are folded into logprob directly by AddFactor, so a
// computation that calls factor will show a nonzero difference here
// unless the caller accounts for the factor total separately.
func (t *Trace) CheckProbabilityAccounting() float64 {
	sum := 0.0
	for _, r := range t.vars {
		sum += r.LogProb
	}
	return math.Abs(t.logprob - sum)
}
