// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
	"github.com/ajroetker/go-pdwt/hwy/contrib/wavelet"
)

type forwardOptions struct {
	input     string
	output    string
	filter    string
	levels    int
	swt       bool
	threshold float32
	hard      bool
	normalize bool
}

func newForwardCmd(g *globalOptions) *cobra.Command {
	opts := &forwardOptions{}
	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Decompose a grayscale image into a coefficient file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForward(g, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "input PNG or JPEG image (required)")
	f.StringVarP(&opts.output, "output", "o", "", "output coefficient file (required)")
	f.StringVarP(&opts.filter, "wavelet", "w", "haar", "wavelet name, see 'pdwt filters'")
	f.IntVarP(&opts.levels, "levels", "l", 1, "decomposition levels, 0 for the most that keep bands wider than the filter")
	f.BoolVar(&opts.swt, "swt", false, "undecimated (stationary) transform")
	f.Float32Var(&opts.threshold, "threshold", 0, "threshold detail coefficients before writing")
	f.BoolVar(&opts.hard, "hard", false, "use hard instead of soft thresholding")
	f.BoolVar(&opts.normalize, "normalize", false, "scale gray levels to [0, 1] before the transform")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runForward(g *globalOptions, opts *forwardOptions) error {
	img, err := readPlane(opts.input)
	if err != nil {
		return err
	}
	if opts.normalize {
		if err := image.BrightnessContrast(img, img, 1.0/255, 0); err != nil {
			return err
		}
	}
	f, err := wavelet.LoadFilter[float32](opts.filter, opts.swt)
	if err != nil {
		return err
	}
	levels := opts.levels
	if levels == 0 {
		levels = wavelet.MaxLevelsFor(f, img.Rows(), img.Cols(), opts.swt)
	}
	coeffs, err := wavelet.NewCoefficients[float32](img.Rows(), img.Cols(), levels, opts.swt)
	if err != nil {
		return errors.Wrapf(err, "%s", opts.input)
	}

	e := newEngine[float32](g)
	defer e.Close()
	scratch := make([]float32, wavelet.ScratchLen(img.Rows(), img.Cols(), opts.swt))
	transform := e.Forward
	if opts.swt {
		transform = e.ForwardUndecimated
	}
	if err := transform(f, img, coeffs, scratch, levels); err != nil {
		return err
	}

	if opts.threshold > 0 {
		if opts.hard {
			e.HardThreshold(coeffs, opts.threshold, true)
		} else {
			e.SoftThreshold(coeffs, opts.threshold, true)
		}
	}
	g.logger.Info("forward transform",
		"input", opts.input, "rows", img.Rows(), "cols", img.Cols(),
		"wavelet", f.Name(), "levels", levels, "swt", opts.swt)
	return saveCoefficients(opts.output, fileInfo{filter: f.Name(), normalized: opts.normalize}, coeffs)
}
