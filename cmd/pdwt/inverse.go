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
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
	"github.com/ajroetker/go-pdwt/hwy/contrib/wavelet"
)

type inverseOptions struct {
	input  string
	output string
}

func newInverseCmd(g *globalOptions) *cobra.Command {
	opts := &inverseOptions{}
	cmd := &cobra.Command{
		Use:   "inverse",
		Short: "Reconstruct a grayscale PNG from a coefficient file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInverse(g, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "input coefficient file (required)")
	f.StringVarP(&opts.output, "output", "o", "", "output PNG image (required)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runInverse(g *globalOptions, opts *inverseOptions) error {
	info, coeffs, err := loadCoefficients(opts.input)
	if err != nil {
		return err
	}
	swt := coeffs.Undecimated()
	f, err := wavelet.LoadFilter[float32](info.filter, swt)
	if err != nil {
		return err
	}

	e := newEngine[float32](g)
	defer e.Close()
	rows, cols := coeffs.Rows(), coeffs.Cols()
	img := image.NewPlane[float32](rows, cols)
	scratch := make([]float32, wavelet.ScratchLen(rows, cols, swt))
	transform := e.Inverse
	if swt {
		transform = e.InverseUndecimated
	}
	if err := transform(f, coeffs, img, scratch, coeffs.Levels()); err != nil {
		return err
	}
	if info.normalized {
		if err := image.BrightnessContrast(img, img, 255, 0); err != nil {
			return err
		}
	}
	g.logger.Info("inverse transform",
		"input", opts.input, "rows", rows, "cols", cols,
		"wavelet", info.filter, "levels", coeffs.Levels(), "swt", swt)
	return writePlane(opts.output, img)
}
