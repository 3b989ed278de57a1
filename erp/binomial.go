// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import (
	"math"

	"github.com/dritchie/probabilistic-go/internal/combin"
	"github.com/dritchie/probabilistic-go/internal/rng"
)

// binomialERP implements the binomial distribution, params = [p, n]
// (note n is carried as a float64 parameter and truncated to int, to
// keep the uniform []float64 params convention of the choice record).
type binomialERP struct{}

// Binomial is the binomial-distribution ERP singleton.
var Binomial ERP = binomialERP{}

func (binomialERP) Sample(params []float64) Value {
	p, n := params[0], int(params[1])
	k := 0
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			k++
		}
	}
	return Int(k)
}

func (binomialERP) LogProb(v Value, params []float64) float64 {
	p, n := params[0], int(params[1])
	k := v.Int()
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return combin.LogBinomial(n, k) + float64(k)*math.Log(p) + float64(n-k)*math.Log(1-p)
}

func (binomialERP) Propose(curr Value, params []float64) Value {
	return binomialERP{}.Sample(params)
}

func (binomialERP) ProposeLogProb(curr, proposed Value, params []float64) float64 {
	return binomialERP{}.LogProb(proposed, params)
}
