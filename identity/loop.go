// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package identity

// activeScope is the Scope random choices made during the current
// trace update should register their loop context with, or nil
// outside of any update. It is set by trace.Trace.Update around
// the user computation; it lives here, rather than in trace, so that
// the loop helpers below do not need to import the trace package.
var activeScope *Scope

// SetActive installs s as the scope loop helpers push/pop against,
// returning the previously active scope so callers can restore it.
// trace.Trace.Update calls this on entry/exit the same way it installs
// and restores the ambient trace.
func SetActive(s *Scope) *Scope {
	prev := activeScope
	activeScope = s
	return prev
}

// ForEach is a 'for' loop control structure for use inside
// probabilistic computations, adapted from
// original_source/probabilistic/control.py's prfor. Wrapping a loop
// this way gives every call site inside block a distinct identity per
// iteration, even when block shares call sites across iterations (a
// helper function invoked from two different loops, for instance).
func ForEach[T any](items []T, block func(T)) {
	site := CallSite(1)
	scope := activeScope
	for _, elem := range items {
		if scope != nil {
			scope.Push(site)
		}
		block(elem)
		if scope != nil {
			scope.Pop()
		}
	}
}

// While is a 'while' loop control structure for use inside
// probabilistic computations, adapted from control.py's prwhile.
func While(cond func() bool, block func()) {
	site := CallSite(1)
	scope := activeScope
	for cond() {
		if scope != nil {
			scope.Push(site)
		}
		block()
		if scope != nil {
			scope.Pop()
		}
	}
}

// PushActive pushes label onto the active scope, if there is one. It
// lets packages outside identity (memoize, in particular) extend the
// dynamic-context path without holding a *Scope of their own.
func PushActive(label string) {
	if activeScope != nil {
		activeScope.Push(label)
	}
}

// PopActive pops the most recently pushed active-scope label, if
// there is one.
func PopActive() {
	if activeScope != nil {
		activeScope.Pop()
	}
}

// MapFloat64 is a higher-order 'map' for use inside probabilistic
// computations, adapted from control.py's prmap. It transforms every
// element of items with proc, giving each application its own loop
// scope the same way ForEach does.
func MapFloat64[T any](items []T, proc func(T) float64) []float64 {
	site := CallSite(1)
	scope := activeScope
	out := make([]float64, len(items))
	for i, elem := range items {
		if scope != nil {
			scope.Push(site)
		}
		out[i] = proc(elem)
		if scope != nil {
			scope.Pop()
		}
	}
	return out
}
