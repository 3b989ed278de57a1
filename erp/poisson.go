// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
)

// poissonERP implements the Poisson distribution, params = [lambda].
// Sample is adapted from gonum.org/v1/gonum/stat/distuv's Poisson.Rand,
// which samples via repeated multiplication of uniform variates (see
// Devroye, Non-Uniform Random Variate Generation, p504).
type poissonERP struct{}

// Poisson is the Poisson-distribution ERP singleton.
var Poisson ERP = poissonERP{}

func (poissonERP) Sample(params []float64) Value {
	lambda := params[0]
	x := 0
	prod := 1.0
	exp := math.Exp(-lambda)
	for {
		prod *= rng.Float64()
		if prod <= exp {
			return Int(x)
		}
		x++
	}
}

func (poissonERP) LogProb(v Value, params []float64) float64 {
	lambda := params[0]
	k := v.Int()
	if k < 0 {
		return math.Inf(-1)
	}
	lg, _ := math.Lgamma(float64(k) + 1)
	return float64(k)*math.Log(lambda) - lambda - lg
}

func (poissonERP) Propose(curr Value, params []float64) Value {
	return poissonERP{}.Sample(params)
}

func (poissonERP) ProposeLogProb(curr, proposed Value, params []float64) float64 {
	return poissonERP{}.LogProb(proposed, params)
}
