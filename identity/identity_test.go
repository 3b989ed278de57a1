// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package identity

import "testing"

func TestScopeNameDistinctForRepeatedCallSite(t *testing.T) {
	s := NewScope()
	const site = "file.go:10:foo"
	a := s.Name(site)
	b := s.Name(site)
	if a == b {
		t.Errorf("two calls to Name(%q) returned the same name %q", site, a)
	}
}

func TestScopeNameStableAcrossResets(t *testing.T) {
	s := NewScope()
	const site = "file.go:10:foo"
	first := s.Name(site)
	s.Reset()
	second := s.Name(site)
	if first != second {
		t.Errorf("Name(%q) after Reset = %q, want %q (same as before reset)", site, second, first)
	}
}

func TestScopeNameDistinctByPath(t *testing.T) {
	s := NewScope()
	const site = "file.go:10:foo"
	s.Push("loop-a")
	inA := s.Name(site)
	s.Pop()
	s.Push("loop-b")
	inB := s.Name(site)
	s.Pop()
	if inA == inB {
		t.Errorf("Name(%q) under different loop paths returned the same name %q", site, inA)
	}
}

func TestForEachGivesEachIterationADistinctName(t *testing.T) {
	s := NewScope()
	SetActive(s)
	defer SetActive(nil)

	var names []string
	ForEach([]int{1, 2, 3}, func(int) {
		names = append(names, s.Name(CallSite(0)))
	})
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("ForEach iteration produced a duplicate name %q", n)
		}
		seen[n] = true
	}
	if len(names) != 3 {
		t.Fatalf("got %d names, want 3", len(names))
	}
}

func TestCallSiteStableAcrossCalls(t *testing.T) {
	site := func() string { return CallSite(0) }
	a := site()
	b := site()
	if a != b {
		t.Errorf("CallSite from the same source position returned %q then %q", a, b)
	}
}
