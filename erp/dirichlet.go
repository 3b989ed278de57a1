// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
)

// dirichletERP implements the Dirichlet distribution over the simplex,
// params = alpha (the concentration vector). Sampling draws one
// Gamma(alpha_i, 1) per component and renormalizes, the standard
// construction original_source/probabilistic/erp.py also uses.
type dirichletERP struct{}

// Dirichlet is the Dirichlet-distribution ERP singleton.
var Dirichlet ERP = dirichletERP{}

func (dirichletERP) Sample(params []float64) Value {
	theta := make([]float64, len(params))
	sum := 0.0
	for i, a := range params {
		theta[i] = rng.Gamma(a, 1)
		sum += theta[i]
	}
	for i := range theta {
		theta[i] /= sum
	}
	return Vector(theta)
}

func (dirichletERP) LogProb(v Value, params []float64) float64 {
	theta := v.Vector()
	if len(theta) != len(params) {
		return math.Inf(-1)
	}
	alphaSum := 0.0
	for _, a := range params {
		alphaSum += a
	}
	lg, _ := math.Lgamma(alphaSum)
	logp := lg
	for i, a := range params {
		if theta[i] <= 0 {
			return math.Inf(-1)
		}
		logp += (a - 1) * math.Log(theta[i])
		lga, _ := math.Lgamma(a)
		logp -= lga
	}
	return logp
}

func (dirichletERP) Propose(curr Value, params []float64) Value {
	return dirichletERP{}.Sample(params)
}

func (dirichletERP) ProposeLogProb(curr, proposed Value, params []float64) float64 {
	return dirichletERP{}.LogProb(proposed, params)
}
