// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
)

// uniformERP implements the continuous uniform distribution,
// params = [lo, hi].
type uniformERP struct{}

// Uniform is the uniform-distribution ERP singleton.
var Uniform ERP = uniformERP{}

func (uniformERP) Sample(params []float64) Value {
	lo, hi := params[0], params[1]
	return Real(lo + rng.Float64()*(hi-lo))
}

func (uniformERP) LogProb(v Value, params []float64) float64 {
	lo, hi := params[0], params[1]
	x := v.Real()
	if x < lo || x > hi {
		return math.Inf(-1)
	}
	return -math.Log(hi - lo)
}

func (uniformERP) Propose(curr Value, params []float64) Value {
	return uniformERP{}.Sample(params)
}

func (uniformERP) ProposeLogProb(curr, proposed Value, params []float64) float64 {
	return uniformERP{}.LogProb(proposed, params)
}
