// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import "github.com/dritchie/probabilistic-go/erp"

// currentTrace is the process-wide ambient-trace registry: "the trace
// currently being filled" (spec.md §4.4). It holds at most one trace;
// Trace.Update installs and restores it around the user computation,
// so a nested inference query (an inner MCMC run started while an
// outer query is mid-step) correctly saves and restores the slot
// around its own run, per spec.md §5.
var currentTrace *Trace

// Current returns the ambient trace, or nil if no Update is in
// progress.
func Current() *Trace {
	return currentTrace
}

// setCurrent installs t as the ambient trace and returns the
// previously-installed one, for the caller to restore later.
func setCurrent(t *Trace) *Trace {
	prev := currentTrace
	currentTrace = t
	return prev
}

// Factor adds num to the ambient trace's log-probability, or does
// nothing if there is no ambient trace (spec.md §4.4).
func Factor(num float64) {
	if t := Current(); t != nil {
		t.AddFactor(num)
	}
}

// Condition imposes boolexpr as a hard constraint on the ambient
// trace, or does nothing if there is no ambient trace.
func Condition(boolexpr bool) {
	if t := Current(); t != nil {
		t.ConditionOn(boolexpr)
	}
}

// Observe is the entry point every public ERP wrapper funnels through.
// With no ambient trace in progress it degrades gracefully: it samples
// (or returns the conditioned value) without recording anything,
// matching spec.md §4.4's "calling an ERP outside any query just draws
// a sample". With an ambient trace, it delegates to that trace's
// Lookup, which is the only place record reuse/creation happens.
func Observe(e erp.ERP, params []float64, isStructural bool, conditioned *erp.Value, callSite string) erp.Value {
	t := Current()
	if t == nil {
		if conditioned != nil {
			return *conditioned
		}
		return e.Sample(params)
	}
	return t.Lookup(e, params, isStructural, conditioned, callSite)
}
