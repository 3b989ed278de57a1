// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memoize

import "testing"

func TestFuncCachesPerArgument(t *testing.T) {
	calls := 0
	f := Func(func(x int) int {
		calls++
		return x * 2
	})

	if got := f(1); got != 2 {
		t.Fatalf("f(1) = %d, want 2", got)
	}
	if got := f(1); got != 2 {
		t.Fatalf("f(1) second call = %d, want 2", got)
	}
	if calls != 1 {
		t.Errorf("underlying function called %d times for the same argument, want 1", calls)
	}

	if got := f(2); got != 4 {
		t.Fatalf("f(2) = %d, want 4", got)
	}
	if calls != 2 {
		t.Errorf("underlying function called %d times across two distinct arguments, want 2", calls)
	}
}

func TestFuncAtUsesExplicitSite(t *testing.T) {
	calls := 0
	f := FuncAt("caller-supplied-site", func(x string) int {
		calls++
		return len(x)
	})
	f("ab")
	f("ab")
	if calls != 1 {
		t.Errorf("FuncAt cached function called %d times for repeated equal argument, want 1", calls)
	}
	if got := f("abc"); got != 3 {
		t.Errorf("f(\"abc\") = %d, want 3", got)
	}
}

func TestTwoMemoizedFunctionsDoNotShareCaches(t *testing.T) {
	f := Func(func(x int) int { return x + 1 })
	g := Func(func(x int) int { return x + 2 })
	if f(1) == g(1) {
		t.Error("two independently memoized functions produced the same result for the same argument")
	}
}
