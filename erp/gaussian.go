// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
)

// gaussianERP implements the normal distribution. params is [mu, sigma].
// LogProb is adapted from gonum.org/v1/gonum/distuv's Normal.LogProb.
type gaussianERP struct{}

// Gaussian is the normal-distribution ERP singleton.
var Gaussian ERP = gaussianERP{}

func (gaussianERP) Sample(params []float64) Value {
	mu, sigma := params[0], params[1]
	return Real(rng.NormFloat64()*sigma + mu)
}

func (gaussianERP) LogProb(v Value, params []float64) float64 {
	mu, sigma := params[0], params[1]
	x := v.Real()
	return negLogRoot2Pi - math.Log(sigma) - (x-mu)*(x-mu)/(2*sigma*sigma)
}

// Propose is the drift kernel: a Gaussian step centered at the current
// value with the prior's own sigma, per spec.md §4.1.
func (gaussianERP) Propose(curr Value, params []float64) Value {
	sigma := params[1]
	return Real(rng.NormFloat64()*sigma + curr.Real())
}

func (gaussianERP) ProposeLogProb(curr, proposed Value, params []float64) float64 {
	sigma := params[1]
	x := proposed.Real()
	mu := curr.Real()
	return negLogRoot2Pi - math.Log(sigma) - (x-mu)*(x-mu)/(2*sigma*sigma)
}
