// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
)

// flipERP implements the Bernoulli distribution. params[0] is the
// probability of true; it defaults to 0.5 when omitted.
type flipERP struct{}

// Flip is the Bernoulli ERP singleton.
var Flip ERP = flipERP{}

func flipProb(params []float64) float64 {
	if len(params) == 0 {
		return 0.5
	}
	return params[0]
}

func (flipERP) Sample(params []float64) Value {
	return Bool(rng.Float64() < flipProb(params))
}

func (flipERP) LogProb(v Value, params []float64) float64 {
	p := flipProb(params)
	prob := p
	if !v.Bool() {
		prob = 1 - p
	}
	return math.Log(prob)
}

// Propose deterministically flips the bit: it is the only other value
// a boolean variable can take.
func (flipERP) Propose(curr Value, params []float64) Value {
	return Bool(!curr.Bool())
}

// ProposeLogProb is always 0: flipping the bit is the only possible
// proposal, so it happens with probability 1.
func (flipERP) ProposeLogProb(curr, proposed Value, params []float64) float64 {
	return 0
}
