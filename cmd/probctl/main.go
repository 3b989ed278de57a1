// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command probctl runs the built-in example computations through the
// trace-MH and LARJ inference drivers, reports acceptance statistics,
// and can plot the resulting sample stream.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
