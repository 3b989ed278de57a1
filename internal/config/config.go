// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads probctl's run configuration from flags, with an
// optional config file and PROBCTL_-prefixed environment overlay via
// viper, grounded on DataDog-datadog-agent's cobra+pflag+viper
// configuration stack.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Chain holds everything one probctl run command invocation needs.
type Chain struct {
	Computation string
	Kernel      string
	Samples     int
	Lag         int
	AnnealSteps int
	JumpFreq    float64
	HasJumpFreq bool
	Seed        int64
	Verbose     bool
}

// Load binds flags and an optional config file/environment overlay
// into a Chain.
func Load(flags *pflag.FlagSet, configFile string) (Chain, error) {
	v := viper.New()
	v.SetEnvPrefix("PROBCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return Chain{}, errors.Wrap(err, "config: binding flags")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Chain{}, errors.Wrapf(err, "config: reading %s", configFile)
		}
	}

	c := Chain{
		Computation: v.GetString("computation"),
		Kernel:      v.GetString("kernel"),
		Samples:     v.GetInt("samples"),
		Lag:         v.GetInt("lag"),
		AnnealSteps: v.GetInt("anneal-steps"),
		Seed:        v.GetInt64("seed"),
		Verbose:     v.GetBool("verbose"),
	}
	if v.IsSet("jump-freq") {
		c.JumpFreq = v.GetFloat64("jump-freq")
		c.HasJumpFreq = true
	}
	if c.Samples <= 0 {
		return Chain{}, errors.New("config: --samples must be positive")
	}
	if c.Lag <= 0 {
		c.Lag = 1
	}
	return c, nil
}
