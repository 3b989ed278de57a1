// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/rng"
)

// gammaERP implements the Gamma distribution, parameterized as
// params = [shape, scale], matching CPython's random.gammavariate(a, b)
// which original_source/probabilistic/erp.py samples from directly.
type gammaERP struct{}

// Gamma is the Gamma-distribution ERP singleton.
var Gamma ERP = gammaERP{}

func (gammaERP) Sample(params []float64) Value {
	shape, scale := params[0], params[1]
	return Real(rng.Gamma(shape, scale))
}

func (gammaERP) LogProb(v Value, params []float64) float64 {
	shape, scale := params[0], params[1]
	x := v.Real()
	if x <= 0 {
		return math.Inf(-1)
	}
	lg, _ := math.Lgamma(shape)
	return (shape-1)*math.Log(x) - x/scale - lg - shape*math.Log(scale)
}

// Propose redraws independently from the prior; the Gamma family has
// no informative drift kernel defined in spec.md §4.1.
func (gammaERP) Propose(curr Value, params []float64) Value {
	return gammaERP{}.Sample(params)
}

func (gammaERP) ProposeLogProb(curr, proposed Value, params []float64) float64 {
	return gammaERP{}.LogProb(proposed, params)
}
