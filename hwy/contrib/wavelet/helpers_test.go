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

package wavelet

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-pdwt/hwy"
	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
)

// randomPlane returns a rows x cols plane of deterministic values in [0, 1).
func randomPlane[T hwy.Floats](rows, cols int, seed uint64) *image.Plane[T] {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	p := image.NewPlane[T](rows, cols)
	data := p.Data()
	for i := range data {
		data[i] = T(rng.Float64())
	}
	return p
}

// rampPlane returns x[i][j] = cols*i + j.
func rampPlane[T hwy.Floats](rows, cols int) *image.Plane[T] {
	p := image.NewPlane[T](rows, cols)
	for r := range rows {
		for c := range cols {
			p.Set(r, c, T(cols*r+c))
		}
	}
	return p
}

func approxOpts(tol float64) cmp.Option {
	return cmpopts.EquateApprox(tol, tol)
}

// requirePlane fails the test if got differs from want beyond tol.
func requirePlane[T hwy.Floats](t *testing.T, want, got *image.Plane[T], tol float64) {
	t.Helper()
	if want.Rows() != got.Rows() || want.Cols() != got.Cols() {
		t.Fatalf("plane is %dx%d, want %dx%d", got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	if diff := cmp.Diff(want.Data(), got.Data(), approxOpts(tol)); diff != "" {
		t.Fatalf("plane mismatch (-want +got):\n%s", diff)
	}
}

// requireConstant fails the test if any sample of p differs from v beyond tol.
func requireConstant[T hwy.Floats](t *testing.T, p *image.Plane[T], v T, tol float64) {
	t.Helper()
	want := image.NewPlane[T](p.Rows(), p.Cols())
	want.Fill(v)
	requirePlane(t, want, p, tol)
}

// roundTrip runs a forward and an inverse transform on its own engine and
// returns the coefficients and the reconstruction.
func roundTrip[T hwy.Floats](t *testing.T, e *Engine[T], f *FilterContext[T], img *image.Plane[T], levels int, undecimated bool) (*Coefficients[T], *image.Plane[T]) {
	t.Helper()
	rows, cols := img.Rows(), img.Cols()
	coeffs, err := NewCoefficients[T](rows, cols, levels, undecimated)
	if err != nil {
		t.Fatalf("NewCoefficients: %v", err)
	}
	scratch := make([]T, ScratchLen(rows, cols, undecimated))
	out := image.NewPlane[T](rows, cols)
	forward, inverse := e.Forward, e.Inverse
	if undecimated {
		forward, inverse = e.ForwardUndecimated, e.InverseUndecimated
	}
	if err := forward(f, img, coeffs, scratch, levels); err != nil {
		t.Fatalf("forward: %v", err)
	}
	kept := cloneCoefficients(coeffs)
	if err := inverse(f, coeffs, out, scratch, levels); err != nil {
		t.Fatalf("inverse: %v", err)
	}
	return kept, out
}

// cloneCoefficients deep-copies a set, at the dimensions each band reports.
func cloneCoefficients[T hwy.Floats](c *Coefficients[T]) *Coefficients[T] {
	bands := make([]*image.Plane[T], c.Len())
	for i, b := range c.Bands() {
		bands[i] = b.Clone()
	}
	return &Coefficients[T]{
		bands:       bands,
		rows:        c.rows,
		cols:        c.cols,
		levels:      c.levels,
		undecimated: c.undecimated,
	}
}

// periodicAnalysis is a direct periodized filter: out[o] is the sum over m
// of filt[m] * x[(step*o + factor*(F/2) - factor*m) mod N].
func periodicAnalysis(x, filt []float64, step, factor int) []float64 {
	n, half := len(x), len(filt)/2
	out := make([]float64, n/step)
	for o := range out {
		for m, v := range filt {
			i := ((step*o+factor*(half-m))%n + n) % n
			out[o] += v * x[i]
		}
	}
	return out
}

// referenceLevel applies periodicAnalysis along the rows and then along the
// columns of x, returning the approximation and the H, V and D bands.
func referenceLevel(x [][]float64, l, h []float64, step, factor int) (a, dh, dv, dd [][]float64) {
	var lo, hi [][]float64
	for _, row := range x {
		lo = append(lo, periodicAnalysis(row, l, step, factor))
		hi = append(hi, periodicAnalysis(row, h, step, factor))
	}
	cols := func(p [][]float64, filt []float64) [][]float64 {
		t := transpose(p)
		for i := range t {
			t[i] = periodicAnalysis(t[i], filt, step, factor)
		}
		return transpose(t)
	}
	return cols(lo, l), cols(lo, h), cols(hi, l), cols(hi, h)
}

func transpose(p [][]float64) [][]float64 {
	t := make([][]float64, len(p[0]))
	for c := range t {
		t[c] = make([]float64, len(p))
		for r := range p {
			t[c][r] = p[r][c]
		}
	}
	return t
}

func planeRows(p *image.Plane[float64]) [][]float64 {
	rows := make([][]float64, p.Rows())
	for r := range rows {
		rows[r] = slices.Clone(p.Row(r))
	}
	return rows
}

func rowsPlane(rows [][]float64) *image.Plane[float64] {
	p := image.NewPlane[float64](len(rows), len(rows[0]))
	for r, row := range rows {
		copy(p.Row(r), row)
	}
	return p
}
