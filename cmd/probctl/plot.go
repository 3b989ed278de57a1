// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the running log-probability of a sample stream produced by 'probctl run --output'",
		RunE:  runPlot,
	}
	flags := cmd.Flags()
	flags.String("input", "", "newline-delimited JSON samples file (from 'probctl run --output')")
	flags.String("out", "", "output figure path (png, svg, pdf, ...)")
	flags.Float64("width", 16, "plot width in cm")
	flags.Float64("height", 8, "plot height in cm")
	return cmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	out, _ := cmd.Flags().GetString("out")
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")
	if input == "" || out == "" {
		return errors.New("probctl: plot requires --input and --out")
	}

	points, err := readSamplePoints(input)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Trace log-probability by sample"
	p.X.Label.Text = "sample index"
	p.Y.Label.Text = "logprob"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(points)
	if err != nil {
		return errors.Wrap(err, "probctl: building plot line")
	}
	p.Add(line)

	if err := p.Save(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, out); err != nil {
		return errors.Wrapf(err, "probctl: saving plot to %s", out)
	}
	return nil
}

func readSamplePoints(path string) (plotter.XYs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "probctl: opening %s", path)
	}
	defer f.Close()

	var points plotter.XYs
	sc := bufio.NewScanner(f)
	i := 0
	for sc.Scan() {
		var s jsonSample
		if err := json.Unmarshal(sc.Bytes(), &s); err != nil {
			return nil, errors.Wrapf(err, "probctl: parsing sample %d", i)
		}
		points = append(points, plotter.XY{X: float64(i), Y: s.LogProb})
		i++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "probctl: reading samples")
	}
	return points, nil
}
