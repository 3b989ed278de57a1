// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memoize adapts
// original_source/probabilistic/memoize.py's MemoizedFunction for
// probabilistic computations: a memoized function must not just cache
// its result per argument, it must also give the random choices it
// makes on its first call for a given argument a name that stays
// stable no matter which order future trace re-executions visit
// arguments in.
package memoize

import (
	"fmt"

	"github.com/dritchie/probabilistic-go/identity"
)

// Func memoizes f: the first call with a given argument runs f's body
// (so any random choices inside it get recorded), and every subsequent
// call with an equal argument returns the cached result without
// re-running f or touching the trace.
//
// Go's cPickle-based argument hashing in the original has no
// equivalent, so A is constrained to comparable: callers needing a
// richer key (a struct of several arguments, say) should use a
// comparable struct type as A.
func Func[A comparable, R any](f func(A) R) func(A) R {
	return FuncAt(identity.CallSite(1), f)
}

// FuncAt is Func with an explicit call-site identifier, for callers
// (such as the probabilistic package's Mem) that wrap this package
// behind another function and so cannot let CallSite measure its own
// caller's frame correctly.
func FuncAt[A comparable, R any](site string, f func(A) R) func(A) R {
	cache := make(map[A]R)
	return func(a A) R {
		if v, ok := cache[a]; ok {
			return v
		}
		label := fmt.Sprintf("%s{%v}", site, a)
		identity.PushActive(label)
		v := f(a)
		identity.PopActive()
		cache[a] = v
		return v
	}
}
