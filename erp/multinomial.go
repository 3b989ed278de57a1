// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
)

// multinomialERP implements a single categorical draw over len(params)
// categories with relative masses params (they need not sum to 1).
// Despite the name (kept from the source implementation this is
// adapted from), this is the categorical distribution, not the
// multivariate-count multinomial.
type multinomialERP struct{}

// Multinomial is the categorical-distribution ERP singleton.
var Multinomial ERP = multinomialERP{}

func multinomialSample(theta []float64) int {
	total := 0.0
	for _, t := range theta {
		total += t
	}
	x := rng.Float64() * total
	accum := 0.0
	for i, t := range theta {
		accum += t
		if x < accum {
			return i
		}
	}
	return len(theta) - 1
}

func multinomialLogProb(k int, theta []float64) float64 {
	if k < 0 || k >= len(theta) {
		return math.Inf(-1)
	}
	total := 0.0
	for _, t := range theta {
		total += t
	}
	if theta[k] <= 0 {
		return math.Inf(-1)
	}
	return math.Log(theta[k] / total)
}

func (multinomialERP) Sample(params []float64) Value {
	return Int(multinomialSample(params))
}

func (multinomialERP) LogProb(v Value, params []float64) float64 {
	return multinomialLogProb(v.Int(), params)
}

// Propose zeroes out the current category's mass and renormalizes,
// so the proposal always moves to a different category (spec.md §4.1).
func (multinomialERP) Propose(curr Value, params []float64) Value {
	zeroed := make([]float64, len(params))
	copy(zeroed, params)
	zeroed[curr.Int()] = 0
	return Int(multinomialSample(zeroed))
}

func (multinomialERP) ProposeLogProb(curr, proposed Value, params []float64) float64 {
	zeroed := make([]float64, len(params))
	copy(zeroed, params)
	zeroed[curr.Int()] = 0
	return multinomialLogProb(proposed.Int(), zeroed)
}
