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
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/go-pdwt/hwy/contrib/filterbank"
	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
	"github.com/ajroetker/go-pdwt/hwy/contrib/wavelet"
)

var errReconstruction = errors.New("pdwt: reconstruction error above tolerance")

type checkOptions struct {
	filters   []string
	levels    int
	size      int
	tolerance float64
	seed      uint64
}

type checkResult struct {
	filter   string
	swt      bool
	levels   int
	maxError float64
	rmse     float64
}

func newCheckCmd(g *globalOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify forward/inverse reconstruction on random images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), g, opts, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&opts.filters, "wavelet", "w", []string{"all"}, "wavelets to check, or 'all'")
	f.IntVarP(&opts.levels, "levels", "l", 3, "decomposition levels")
	f.IntVar(&opts.size, "size", 128, "side of the square test image")
	f.Float64Var(&opts.tolerance, "tolerance", 1e-9, "largest accepted absolute error")
	f.Uint64Var(&opts.seed, "seed", 1, "random image seed")
	return cmd
}

// checkFilters expands "all", drops duplicates and rejects unknown names.
func checkFilters(names []string) ([]string, error) {
	known := filterbank.Names()
	names = lo.Uniq(lo.Map(names, func(n string, _ int) string {
		return strings.ToLower(strings.TrimSpace(n))
	}))
	if lo.Contains(names, "all") {
		return known, nil
	}
	if unknown := lo.Without(names, known...); len(unknown) > 0 {
		return nil, errors.Wrapf(filterbank.ErrUnknownFilter, "%s", strings.Join(unknown, ", "))
	}
	return names, nil
}

func runCheck(ctx context.Context, g *globalOptions, opts *checkOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	names, err := checkFilters(opts.filters)
	if err != nil {
		return err
	}

	e := newEngine[float64](g)
	defer e.Close()
	img := randomImage(opts.size, opts.seed)

	type job struct {
		filter string
		swt    bool
	}
	jobs := lo.FlatMap(names, func(name string, _ int) []job {
		return []job{{name, false}, {name, true}}
	})
	results := make([]checkResult, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := checkOne(e, j.filter, j.swt, img, opts.levels)
			if err != nil {
				return errors.Wrapf(err, "%s swt=%v", j.filter, j.swt)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WAVELET\tMODE\tLEVELS\tMAX ERROR\tRMSE\t")
	var failed []string
	for _, r := range results {
		mode := "dwt"
		if r.swt {
			mode = "swt"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3g\t%.3g\t\n", r.filter, mode, r.levels, r.maxError, r.rmse)
		if r.maxError > opts.tolerance {
			failed = append(failed, r.filter+"/"+mode)
		}
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}
	if len(failed) > 0 {
		return errors.Wrapf(errReconstruction, "%s", strings.Join(failed, ", "))
	}
	return nil
}

// checkOne runs one forward/inverse pair. The level count is clamped to what
// the image allows in the given mode.
func checkOne(e *wavelet.Engine[float64], name string, swt bool, img *image.Plane[float64], levels int) (checkResult, error) {
	rows, cols := img.Rows(), img.Cols()
	levels = min(levels, wavelet.MaxLevels(rows, cols, swt))
	f, err := wavelet.LoadFilter[float64](name, swt)
	if err != nil {
		return checkResult{}, err
	}
	coeffs, err := wavelet.NewCoefficients[float64](rows, cols, levels, swt)
	if err != nil {
		return checkResult{}, err
	}
	scratch := make([]float64, wavelet.ScratchLen(rows, cols, swt))
	rec := image.NewPlane[float64](rows, cols)

	forward, inverse := e.Forward, e.Inverse
	if swt {
		forward, inverse = e.ForwardUndecimated, e.InverseUndecimated
	}
	if err := forward(f, img, coeffs, scratch, levels); err != nil {
		return checkResult{}, err
	}
	if err := inverse(f, coeffs, rec, scratch, levels); err != nil {
		return checkResult{}, err
	}
	return checkResult{
		filter:   name,
		swt:      swt,
		levels:   levels,
		maxError: floats.Distance(img.Data(), rec.Data(), math.Inf(1)),
		rmse:     floats.Distance(img.Data(), rec.Data(), 2) / math.Sqrt(float64(rows*cols)),
	}, nil
}

func randomImage(size int, seed uint64) *image.Plane[float64] {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	p := image.NewPlane[float64](size, size)
	data := p.Data()
	for i := range data {
		data[i] = rng.Float64()
	}
	return p
}
