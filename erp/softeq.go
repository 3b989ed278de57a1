// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import "math"

// SoftEq converts approximate equality of a and b into a Gaussian
// log-factor suitable for use with factor: it is the log-density of a
// Gaussian centered at a with standard deviation tolerance, evaluated
// at b. Larger deviations from equality are penalized smoothly rather
// than rejected outright the way a hard condition would.
func SoftEq(a, b, tolerance float64) float64 {
	return negLogRoot2Pi - math.Log(tolerance) - (b-a)*(b-a)/(2*tolerance*tolerance)
}
