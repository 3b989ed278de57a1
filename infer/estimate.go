// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer

import "github.com/dritchie/probabilistic-go/erp"

// DistribEntry is one entry of a Distrib result: a value the
// computation returned together with its empirical frequency.
//
// erp.Value cannot be a Go map key (its Vector variant holds a slice,
// which is not comparable), so Distrib returns a slice of entries
// keyed by Value.String() internally rather than the literal
// map[Value]float64 the specification describes.
type DistribEntry struct {
	Value erp.Value
	Prob  float64
}

// Distrib tabulates samples into the empirical distribution over
// distinct return values.
func Distrib(samples []Sample) []DistribEntry {
	counts := make(map[string]int)
	reps := make(map[string]erp.Value)
	order := make([]string, 0)
	for _, s := range samples {
		key := s.Value.String()
		if _, ok := counts[key]; !ok {
			order = append(order, key)
			reps[key] = s.Value
		}
		counts[key]++
	}
	total := float64(len(samples))
	out := make([]DistribEntry, 0, len(order))
	for _, key := range order {
		out = append(out, DistribEntry{Value: reps[key], Prob: float64(counts[key]) / total})
	}
	return out
}

// Expectation returns the mean of f applied to every sample's value.
func Expectation(samples []Sample, f func(erp.Value) float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += f(s.Value)
	}
	return sum / float64(len(samples))
}

// MAP returns the value of whichever sample attained the highest
// log-probability.
func MAP(samples []Sample) erp.Value {
	best := samples[0]
	for _, s := range samples[1:] {
		if s.LogProb > best.LogProb {
			best = s
		}
	}
	return best.Value
}
