// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package probabilistic embeds a probabilistic programming language in
// Go: ordinary Go functions that call Flip, Gaussian, Gamma and the
// rest below describe a generative model, and the infer package
// recovers its posterior by MCMC over the trace it implicitly builds.
//
// A computation is just a func() erp.Value; Condition and Factor
// reweight it, and Mem gives it memoized subroutines that still
// participate correctly in trace re-execution. The erp, identity and
// trace packages underneath are usable standalone, but most programs
// only need this package and infer.
package probabilistic

import (
	"github.com/dritchie/probabilistic-go/erp"
	"github.com/dritchie/probabilistic-go/identity"
	"github.com/dritchie/probabilistic-go/memoize"
	"github.com/dritchie/probabilistic-go/trace"
)

// Value re-exports erp.Value, the tagged union every ERP call returns.
type Value = erp.Value

// choiceOpts collects the optional modifiers a random-choice call can
// take. Go has no default-argument syntax, so isStructural and
// conditionedValue (spec.md §4.1's optional parameters) are expressed
// as a functional-options slice instead, following the same pattern
// the gonum plot package uses for its optional styling arguments.
type choiceOpts struct {
	structural  bool
	conditioned *erp.Value
}

// Option modifies the behavior of a single random-choice call.
type Option func(*choiceOpts)

// Structural marks a choice as structural: it governs which other
// choices the computation goes on to make, so crossing between its
// values is a reversible-jump move rather than a fixed-dimension one.
func Structural() Option {
	return func(o *choiceOpts) { o.structural = true }
}

// Conditioned pins a choice to v: it is treated as observed data
// rather than proposed over, and will not appear in FreeVarNames.
func Conditioned(v Value) Option {
	return func(o *choiceOpts) { o.conditioned = &v }
}

func resolve(opts []Option) choiceOpts {
	var o choiceOpts
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Flip draws a Bernoulli(p) boolean.
func Flip(p float64, opts ...Option) bool {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Flip, []float64{p}, o.structural, o.conditioned, site).Bool()
}

// FairCoin draws a Bernoulli(0.5) boolean.
func FairCoin(opts ...Option) bool {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Flip, []float64{0.5}, o.structural, o.conditioned, site).Bool()
}

// Gaussian draws a real value from Normal(mu, sigma).
func Gaussian(mu, sigma float64, opts ...Option) float64 {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Gaussian, []float64{mu, sigma}, o.structural, o.conditioned, site).Real()
}

// GammaRV draws a real value from Gamma(shape, scale).
func GammaRV(shape, scale float64, opts ...Option) float64 {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Gamma, []float64{shape, scale}, o.structural, o.conditioned, site).Real()
}

// BetaRV draws a real value in (0,1) from Beta(a, b).
func BetaRV(a, b float64, opts ...Option) float64 {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Beta, []float64{a, b}, o.structural, o.conditioned, site).Real()
}

// Binomial draws an integer count from Binomial(n, p).
func Binomial(p float64, n int, opts ...Option) int {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Binomial, []float64{p, float64(n)}, o.structural, o.conditioned, site).Int()
}

// PoissonRV draws an integer count from Poisson(lambda).
func PoissonRV(lambda float64, opts ...Option) int {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Poisson, []float64{lambda}, o.structural, o.conditioned, site).Int()
}

// UniformReal draws a real value uniformly from [lo, hi).
func UniformReal(lo, hi float64, opts ...Option) float64 {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Uniform, []float64{lo, hi}, o.structural, o.conditioned, site).Real()
}

// Multinomial draws a category index from the categorical distribution
// with relative masses theta (they need not sum to 1).
func Multinomial(theta []float64, opts ...Option) int {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Multinomial, theta, o.structural, o.conditioned, site).Int()
}

// DirichletRV draws a point on the simplex from Dirichlet(alpha).
func DirichletRV(alpha []float64, opts ...Option) []float64 {
	o := resolve(opts)
	site := identity.CallSite(1)
	return trace.Observe(erp.Dirichlet, alpha, o.structural, o.conditioned, site).Vector()
}

// UniformDraw picks an element of items uniformly at random. It is
// built from Multinomial the way original_source/probabilistic's
// uniformDraw is built from multinomial: a derived ERP rather than a
// primitive one.
func UniformDraw[T any](items []T, opts ...Option) T {
	theta := make([]float64, len(items))
	for i := range theta {
		theta[i] = 1
	}
	idx := Multinomial(theta, opts...)
	return items[idx]
}

// Condition imposes boolexpr as a hard constraint on the ambient
// trace: a rejection-sampled or MH-sampled computation that ever
// fails its condition is retried or rejected outright (spec.md §4.4).
func Condition(boolexpr bool) {
	trace.Condition(boolexpr)
}

// Factor adds num to the ambient trace's log-probability, reweighting
// the computation without representing a discrete choice.
func Factor(num float64) {
	trace.Factor(num)
}

// SoftEq reweights the ambient trace by how close b is to a, using a
// Gaussian log-density of standard deviation tolerance in place of a
// hard equality condition.
func SoftEq(a, b, tolerance float64) {
	Factor(erp.SoftEq(a, b, tolerance))
}

// Mem memoizes f for use inside a probabilistic computation: repeated
// calls with an equal argument reuse the first call's result (and its
// random choices' names) instead of resampling.
func Mem[A comparable, R any](f func(A) R) func(A) R {
	return memoize.FuncAt(identity.CallSite(1), f)
}
