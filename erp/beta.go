// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
)

// betaERP implements the Beta distribution, params = [a, b]. Sampling
// uses the standard two-Gamma-draw construction:
// X ~ Gamma(a,1), Y ~ Gamma(b,1) => X/(X+Y) ~ Beta(a,b).
type betaERP struct{}

// Beta is the Beta-distribution ERP singleton.
var Beta ERP = betaERP{}

func (betaERP) Sample(params []float64) Value {
	a, b := params[0], params[1]
	x := rng.Gamma(a, 1)
	y := rng.Gamma(b, 1)
	return Real(x / (x + y))
}

func logBeta(a, b float64) float64 {
	lga, _ := math.Lgamma(a)
	lgb, _ := math.Lgamma(b)
	lgab, _ := math.Lgamma(a + b)
	return lga + lgb - lgab
}

func (betaERP) LogProb(v Value, params []float64) float64 {
	a, b := params[0], params[1]
	x := v.Real()
	if x <= 0 || x >= 1 {
		return math.Inf(-1)
	}
	return (a-1)*math.Log(x) + (b-1)*math.Log(1-x) - logBeta(a, b)
}

func (betaERP) Propose(curr Value, params []float64) Value {
	return betaERP{}.Sample(params)
}

func (betaERP) ProposeLogProb(curr, proposed Value, params []float64) float64 {
	return betaERP{}.LogProb(proposed, params)
}
