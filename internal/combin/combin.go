// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package combin implements the small amount of combinatorics needed
// by the erp package's discrete ERPs, adapted from
// gonum.org/v1/gonum/stat/combin.
package combin

import "math"

const (
	badNegInput = "combin: negative input"
	badSetSize  = "combin: n < k"
)

// Binomial returns the binomial coefficient of (n,k), also commonly
// referred to as "n choose k".
//
// n and k must be non-negative with n >= k, otherwise Binomial will
// panic. No check is made for overflow.
func Binomial(n, k int) int {
	if n < 0 || k < 0 {
		panic(badNegInput)
	}
	if n < k {
		panic(badSetSize)
	}
	if k > n/2 {
		k = n - k
	}
	b := 1
	for i := 1; i <= k; i++ {
		b = (n - k + i) * b / i
	}
	return b
}

// LogBinomial returns the natural logarithm of the binomial
// coefficient of (n,k), computed via the log-gamma function so that it
// does not overflow for the n encountered by the Binomial ERP's
// LogProb.
func LogBinomial(n, k int) float64 {
	if n < 0 || k < 0 {
		panic(badNegInput)
	}
	if n < k {
		panic(badSetSize)
	}
	a, _ := math.Lgamma(float64(n) + 1)
	b, _ := math.Lgamma(float64(k) + 1)
	c, _ := math.Lgamma(float64(n-k) + 1)
	return a - b - c
}
