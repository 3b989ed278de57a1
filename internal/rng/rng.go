// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng owns the process-wide random source used by the erp,
// trace and kernel packages. The inference engine runs a single
// logical chain at a time (see the concurrency model in SPEC_FULL.md
// §5), so a single guarded source is sufficient; it plays the role
// that the per-distribution Source *rand.Rand field plays in
// gonum.org/v1/gonum/stat/distuv, centralized because trace proposals
// and acceptance draws must come from one consistent stream.
package rng

import (
	"math"
	"math/rand"
	"sync"
)

var (
	mu  sync.Mutex
	src = rand.New(rand.NewSource(1))
)

// Seed reseeds the process-wide source.
func Seed(seed int64) {
	mu.Lock()
	defer mu.Unlock()
	src = rand.New(rand.NewSource(seed))
}

// Float64 returns a pseudo-random number in [0,1).
func Float64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return src.Float64()
}

// NormFloat64 returns a pseudo-random number from a standard normal
// distribution.
func NormFloat64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return src.NormFloat64()
}

// ExpFloat64 returns a pseudo-random number from an exponential
// distribution with rate 1.
func ExpFloat64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return src.ExpFloat64()
}

// Intn returns a pseudo-random number in [0,n).
func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return src.Intn(n)
}

// Gamma draws from a Gamma(shape, scale) distribution using the
// Marsaglia-Tsang method (for shape >= 1) boosted for shape < 1, the
// same algorithm family random.gammavariate in CPython's random module
// implements.
func Gamma(shape, scale float64) float64 {
	if shape < 1 {
		// Boost: Gamma(shape) = Gamma(shape+1) * U^(1/shape)
		u := Float64()
		return Gamma(shape+1, scale) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3.0
	c := 1.0 / (3.0 * math.Sqrt(d))
	for {
		var x, v float64
		for {
			x = NormFloat64()
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := Float64()
		x2 := x * x
		if u < 1-0.0331*x2*x2 {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x2+d*(1-v+math.Log(v)) {
			return d * v * scale
		}
	}
}
