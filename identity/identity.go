// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package identity is the naming oracle: it derives a stable string
// identity for each random choice from the dynamic context in which it
// was made, so that the trace package can recognize "the same choice"
// across re-executions of a probabilistic program.
//
// CPython's sys._getframe() lets the original implementation walk the
// interpreter stack by frame pointer and build a name from
// (code object id, instruction offset) pairs. Go exposes no equivalent
// of a frame pointer, and spec.md §9's design notes recommend the
// statically-compiled alternative directly: a call-site identifier
// (stable across re-executions of the same binary) combined with a
// runtime loop-counter map keyed by that identifier. That is what
// Scope implements here.
package identity

import (
	"fmt"
	"runtime"
	"strings"
)

// CallSite returns a string identifying the source position of the
// caller skip frames up from CallSite itself (skip=0 names CallSite's
// own caller). It stands in for the spec's (codeId, programCounter)
// pair: "file:line:function" is stable across re-executions of one
// process and uniquely identifies a source position, the way a (code object id,
// bytecode offset) pair does in the Python original.
func CallSite(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown:0"
	}
	fn := runtime.FuncForPC(pc)
	name := "?"
	if fn != nil {
		name = fn.Name()
	}
	return fmt.Sprintf("%s:%d:%s", file, line, name)
}

// Scope accumulates the loop-nesting context a name is generated
// under, and the per-call-site occurrence counters used to
// disambiguate repeat visits to the same call site within a single
// trace update. A Trace owns one Scope and resets it at the start of
// every Update (spec.md §4.3 step 2: "loop counters cleared").
type Scope struct {
	path       []string
	occurrence map[string]int
}

// NewScope returns a cleared Scope.
func NewScope() *Scope {
	return &Scope{occurrence: make(map[string]int)}
}

// Reset clears the scope's loop path and occurrence counters, as Trace
// Update must do at the start of every re-execution.
func (s *Scope) Reset() {
	s.path = s.path[:0]
	for k := range s.occurrence {
		delete(s.occurrence, k)
	}
}

// Push enters a nested loop/map scope identified by label, which
// should itself be a CallSite-derived string so that two distinct
// source-level loops never share a scope id.
func (s *Scope) Push(label string) {
	s.path = append(s.path, label)
}

// Pop leaves the most recently pushed scope.
func (s *Scope) Pop() {
	s.path = s.path[:len(s.path)-1]
}

// Name derives the dynamic-context identity for a random choice made
// at the given call site: the current loop path, the call site itself,
// and an occurrence count that increments on every visit so that two
// consecutive calls to the same ERP from the same line (inside a
// recursive call, or a loop not wrapped in ForEach/While/MapFloat64)
// produce distinct names. It is stable across replays of the same
// control-flow path, because the same path visits each call site the
// same number of times in the same order, and distinct otherwise.
func (s *Scope) Name(callSite string) string {
	var key string
	if len(s.path) == 0 {
		key = callSite
	} else {
		key = strings.Join(s.path, ">") + ">" + callSite
	}
	n := s.occurrence[key]
	s.occurrence[key] = n + 1
	return fmt.Sprintf("%s#%d", key, n)
}
